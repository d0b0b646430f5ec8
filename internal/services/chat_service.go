package services

import "strings"

// ChatService answers storefront questions from a fixed keyword table.
// First matching rule wins; unknown messages get the fallback reply.
type ChatService struct{}

func NewChatService() *ChatService { return &ChatService{} }

type chatRule struct {
	keywords []string
	reply    string
}

var chatRules = []chatRule{
	{[]string{"bonjour", "salut", "bonsoir", "hello"},
		"Bonjour ! Bienvenue chez EDS. Comment puis-je vous aider ?"},
	{[]string{"livraison", "expédition", "expedition", "délai", "delai"},
		"La livraison est gratuite dès 50€ d'achat et prend 3 à 5 jours ouvrés."},
	{[]string{"retour", "rembours", "échange", "echange"},
		"Vous disposez de 30 jours pour retourner un article non porté. Le remboursement est effectué sous 14 jours."},
	{[]string{"paiement", "payer", "carte", "paypal"},
		"Nous acceptons les cartes bancaires et PayPal. Le paiement est sécurisé."},
	{[]string{"taille", "pointure", "guide"},
		"Consultez notre guide des tailles sur chaque fiche produit. En cas de doute, prenez la taille au-dessus."},
	{[]string{"promo", "réduction", "reduction", "solde"},
		"Nos promotions en cours sont affichées sur la page d'accueil. Inscrivez-vous pour être prévenu des soldes !"},
	{[]string{"horaire", "contact", "téléphone", "telephone", "email"},
		"Notre service client est joignable du lundi au vendredi de 9h à 18h à contact@eds-boutique.fr."},
	{[]string{"merci"},
		"Avec plaisir ! N'hésitez pas si vous avez d'autres questions."},
}

const chatFallback = "Désolé, je n'ai pas compris. Vous pouvez me poser des questions sur la livraison, les retours, le paiement ou les tailles."

func (s *ChatService) Reply(message string) string {
	msg := strings.ToLower(strings.TrimSpace(message))
	if msg == "" {
		return chatFallback
	}
	for _, r := range chatRules {
		for _, kw := range r.keywords {
			if strings.Contains(msg, kw) {
				return r.reply
			}
		}
	}
	return chatFallback
}

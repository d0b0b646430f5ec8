// Package seed generates the canonical demo catalog. It is the single
// fixture source shared by the seed command, the startup bootstrap, the
// admin reseed action and the tests.
package seed

import (
	"encoding/json"
	"fmt"
	"math"
	"math/rand/v2"

	"edshop/internal/domain"
)

var categories = []string{"homme", "femme", "enfant"}

var typesByCategory = map[string][]string{
	"homme":  {"T-Shirt", "Chemise", "Jean", "Veste", "Short", "Costume", "Chaussures", "Montre", "Bijoux"},
	"femme":  {"Robe", "Jupe", "Top", "Chemisier", "Sac", "Chaussures", "Montre", "Bijoux", "Accessoires"},
	"enfant": {"T-Shirt", "Robe", "Short", "Chaussures", "Jouets", "Accessoires"},
}

var descriptions = []string{
	"Produit de haute qualité avec un design exceptionnel et des matériaux durables.",
	"Confort et style réunis dans ce magnifique produit parfait pour toutes les occasions.",
	"Matériaux premium pour une durabilité optimale et un confort exceptionnel.",
	"Tendance actuelle avec un excellent rapport qualité-prix, idéal au quotidien.",
	"Design élégant et moderne, parfait pour les événements spéciaux et le quotidien.",
}

// Local fallbacks used as the last entry of every image set.
var localImages = []string{
	"/static/images/products/fashion-1.jpg",
	"/static/images/products/fashion-2.jpg",
	"/static/images/products/fashion-3.jpg",
	"/static/images/products/watch-1.jpg",
	"/static/images/products/shoes-1.jpg",
	"/static/images/products/jewelry-1.jpg",
}

// Generate builds n catalog entries. IDs are left zero; the store assigns
// them on insertion. The rng is injectable so tests can fix the fixture.
func Generate(n int, rng *rand.Rand) []domain.Product {
	out := make([]domain.Product, 0, n)
	for i := 1; i <= n; i++ {
		category := categories[rng.IntN(len(categories))]
		kinds := typesByCategory[category]
		kind := kinds[rng.IntN(len(kinds))]

		images := []string{
			fmt.Sprintf("https://picsum.photos/400/400?random=%d1", i),
			fmt.Sprintf("https://picsum.photos/400/400?random=%d2", i),
			localImages[rng.IntN(len(localImages))],
		}
		imagesJSON, _ := json.Marshal(images)

		out = append(out, domain.Product{
			Name:        fmt.Sprintf("%s EDS %d", kind, i),
			Description: descriptions[rng.IntN(len(descriptions))],
			Price:       math.Round((rng.Float64()*200+10)*100) / 100,
			Category:    category,
			ImagesJSON:  string(imagesJSON),
			Quantity:    rng.IntN(100),
		})
	}
	return out
}

// NewRand returns the production entropy source for catalog generation.
func NewRand() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

package handlers

import (
	"github.com/jmoiron/sqlx"

	"edshop/internal/config"
	"edshop/internal/repos"
	"edshop/internal/services"
)

type Deps struct {
	CatalogHandler *CatalogHandler
	ProductHandler *ProductHandler
	OrderHandler   *OrderHandler
	ChatHandler    *ChatHandler
	AdminHandler   *AdminHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config) *Deps {
	prodRepo := repos.NewProductRepo(db)
	orderRepo := repos.NewOrderRepo(db)
	visitRepo := repos.NewVisitorRepo(db)

	catalogSvc := services.NewCatalogService(prodRepo)
	orderSvc := services.NewOrderService(orderRepo)
	chatSvc := services.NewChatService()
	reseedSvc := services.NewReseedService(prodRepo, cfg.SeedCount)

	return &Deps{
		CatalogHandler: &CatalogHandler{Catalog: catalogSvc, Visitors: visitRepo},
		ProductHandler: &ProductHandler{Products: prodRepo},
		OrderHandler:   &OrderHandler{Order: orderSvc, Repo: orderRepo},
		ChatHandler:    &ChatHandler{Chat: chatSvc},
		AdminHandler: &AdminHandler{
			Orders:   orderRepo,
			Products: prodRepo,
			Visitors: visitRepo,
			Reseed:   reseedSvc,
		},
	}
}

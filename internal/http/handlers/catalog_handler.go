package handlers

import (
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	applog "edshop/internal/log"
	"edshop/internal/repos"
	"edshop/internal/services"
	"edshop/internal/validate"
)

type CatalogHandler struct {
	Catalog  *services.CatalogService
	Visitors *repos.VisitorRepo
}

// Home renders the full-catalog browse page (20 per page) and counts the
// visit.
func (h *CatalogHandler) Home(c *fiber.Ctx) error {
	page := validate.Page(c.Query("page"))
	res, err := h.Catalog.List(services.Filter{}, page, services.BrowsePageSize)
	if err != nil {
		applog.Error(c, "catalog.home.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "Impossible de charger la boutique. Réessayez."})
	}
	if err := h.Visitors.Bump(time.Now()); err != nil {
		// Counting visits must never break the page
		applog.Error(c, "visits.bump.fail", err, nil)
	}
	return render(c, "home", fiber.Map{"Result": res})
}

// CategoryPage lists one category (12 per page). Unknown categories get
// the 404 page rather than silently showing the whole catalog.
func (h *CatalogHandler) CategoryPage(c *fiber.Ctx) error {
	name, ok := validate.Category(c.Params("name"))
	if !ok {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Cette catégorie n'existe pas"})
	}
	page := validate.Page(c.Query("page"))
	res, err := h.Catalog.List(services.Filter{Category: name}, page, services.FilterPageSize)
	if err != nil {
		applog.Error(c, "catalog.category.fail", err, map[string]any{"category": name})
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "Impossible de charger la catégorie. Réessayez."})
	}
	return render(c, "category", fiber.Map{"Category": name, "Result": res})
}

// SearchPage renders search results; terms under two characters behave
// like an empty search.
func (h *CatalogHandler) SearchPage(c *fiber.Ctx) error {
	q := strings.TrimSpace(c.Query("q"))
	page := validate.Page(c.Query("page"))
	res, err := h.Catalog.List(services.NormalizeFilter("", q), page, services.FilterPageSize)
	if err != nil {
		applog.Error(c, "catalog.search.fail", err, map[string]any{"q": q})
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "Impossible de charger les résultats. Réessayez."})
	}
	qp := ""
	if q != "" {
		qp = "q=" + url.QueryEscape(q) + "&"
	}
	return render(c, "search", fiber.Map{"Q": q, "Result": res, "QueryPrefix": qp})
}

// Products is the JSON listing API: GET /api/v1/products?category=&search=&page=
// Invalid category and short search terms are dropped, a bad page number
// defaults to 1. A storage failure is a 500, never an empty success.
func (h *CatalogHandler) Products(c *fiber.Ctx) error {
	f := services.NormalizeFilter(c.Query("category"), c.Query("search"))
	page := validate.Page(c.Query("page"))

	res, err := h.Catalog.List(f, page, services.FilterPageSize)
	if err != nil {
		applog.Error(c, "api.products.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "query failed"})
	}
	return c.JSON(res)
}

package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	applog "edshop/internal/log"
	"edshop/internal/repos"
	"edshop/internal/services"
	"edshop/internal/validate"
)

type AdminHandler struct {
	Orders   *repos.OrderRepo
	Products *repos.ProductRepo
	Visitors *repos.VisitorRepo
	Reseed   *services.ReseedService
}

// Dashboard shows recent orders, catalog size and visit counters.
func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	orders, err := h.Orders.ListLatest(25)
	if err != nil {
		applog.Error(c, "admin.orders.list.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "Impossible de charger le tableau de bord"})
	}
	orderCount, _ := h.Orders.Count()
	productCount, _ := h.Products.Count("", "")
	today, _ := h.Visitors.Today(time.Now())
	total, _ := h.Visitors.Total()

	return render(c, "admin", fiber.Map{
		"Orders":        orders,
		"OrderCount":    orderCount,
		"ProductCount":  productCount,
		"VisitorsToday": today,
		"VisitorsTotal": total,
	})
}

// UpdateOrderStatus handles POST /admin/orders/:id/status.
func (h *AdminHandler) UpdateOrderStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	status, ok := validate.Status(c.FormValue("status"))
	if id == "" || !ok {
		return c.Status(fiber.StatusBadRequest).SendString("invalid id or status")
	}
	if err := h.Orders.UpdateStatus(id, status); err != nil {
		applog.Error(c, "admin.orders.update.fail", err, map[string]any{"order_id": id})
		return c.Status(fiber.StatusBadRequest).SendString("could not update status")
	}
	applog.Audit(c, "admin.orders.update", map[string]any{"order_id": id, "status": status})
	return c.Redirect("/admin")
}

// RunReseed handles POST /api/v1/admin/reseed: the operator action that
// truncates and regenerates the whole catalog.
func (h *AdminHandler) RunReseed(c *fiber.Ctx) error {
	n, err := h.Reseed.Run()
	if err != nil {
		applog.Error(c, "admin.reseed.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "reseed failed"})
	}
	applog.Audit(c, "admin.reseed", map[string]any{"count": n})
	return c.JSON(fiber.Map{"seeded": n})
}

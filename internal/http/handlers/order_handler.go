package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	applog "edshop/internal/log"
	"edshop/internal/repos"
	"edshop/internal/services"
)

type OrderHandler struct {
	Order *services.OrderService
	Repo  *repos.OrderRepo
}

// CartPage and CheckoutPage are shells: the cart itself lives in the
// browser's local storage and only reaches the server at submission.
func (h *OrderHandler) CartPage(c *fiber.Ctx) error {
	return render(c, "cart", fiber.Map{})
}

func (h *OrderHandler) CheckoutPage(c *fiber.Ctx) error {
	return render(c, "checkout", fiber.Map{})
}

// Place handles POST /api/v1/orders with the snapshotted cart lines.
func (h *OrderHandler) Place(c *fiber.Ctx) error {
	var in services.Intake
	if err := c.BodyParser(&in); err != nil {
		applog.Security(c, "order.body.bad", map[string]any{"err": err.Error()})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	o, clientTotal, err := h.Order.Place(in)
	if err != nil {
		if errors.Is(err, services.ErrMissingField) || errors.Is(err, services.ErrEmptyCart) {
			applog.Security(c, "order.place.reject", map[string]any{"reason": err.Error()})
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		applog.Error(c, "order.place.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not place order"})
	}

	applog.Audit(c, "order.place", map[string]any{
		"order_id":     o.ID,
		"server_total": o.Total,
		"client_total": clientTotal,
		"mismatch":     o.Total != clientTotal,
	})
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"orderId": o.ID, "status": o.Status})
}

// View renders the order confirmation page.
func (h *OrderHandler) View(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Commande introuvable"})
	}
	o, err := h.Repo.Get(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Commande introuvable"})
	}
	return render(c, "order", fiber.Map{"Order": o, "Lines": o.Lines()})
}

package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"edshop/internal/repos"
)

type ProductHandler struct {
	Products *repos.ProductRepo
}

func (h *ProductHandler) Detail(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id < 1 {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Cet article n'est plus disponible"})
	}
	p, err := h.Products.Get(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Cet article n'est plus disponible"})
	}
	return render(c, "product", fiber.Map{"P": p})
}

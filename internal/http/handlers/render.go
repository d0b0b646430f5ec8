package handlers

import (
	"github.com/gofiber/fiber/v2"

	"edshop/internal/validate"
)

func render(c *fiber.Ctx, tmpl string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	// Every page shows the category nav
	data["Categories"] = validate.Categories
	return c.Render(tmpl, data)
}

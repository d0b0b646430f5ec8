package handlers

import (
	"github.com/gofiber/fiber/v2"

	"edshop/internal/domain"
	"edshop/internal/services"
)

type ChatHandler struct {
	Chat *services.ChatService
}

// Reply handles POST /api/v1/chat {"message": "..."}.
func (h *ChatHandler) Reply(c *fiber.Ctx) error {
	var in struct {
		Message string `json:"message"`
	}
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	return c.JSON(domain.ChatReply{Reply: h.Chat.Reply(in.Message)})
}

package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pokedecks/tcg-backend/internal/dto"
	"github.com/pokedecks/tcg-backend/internal/services"
)

type CardHandler struct {
	cardService *services.CardService
}

func NewCardHandler(cardService *services.CardService) *CardHandler {
	return &CardHandler{cardService: cardService}
}

// ListCards handles GET /cards - returns the whole catalog, Pokédex order.
func (h *CardHandler) ListCards(c *fiber.Ctx) error {
	cards, err := h.cardService.ListCards()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch cards",
		})
	}
	return c.JSON(cards)
}

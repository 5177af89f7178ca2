package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/pokedecks/tcg-backend/internal/dto"
	"github.com/pokedecks/tcg-backend/internal/middleware"
	"github.com/pokedecks/tcg-backend/internal/services"
)

type DeckHandler struct {
	deckService *services.DeckService
}

func NewDeckHandler(deckService *services.DeckService) *DeckHandler {
	return &DeckHandler{deckService: deckService}
}

// CreateDeck handles POST /decks - creates a deck with exactly ten cards.
func (h *DeckHandler) CreateDeck(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.CreateDeckRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	if req.Name == "" || req.Cards == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Name and cards are required",
		})
	}

	deck, err := h.deckService.CreateDeck(userID, req.Name, req.Cards)
	if err != nil {
		return deckErrorResponse(c, err, "Failed to create deck")
	}

	return c.Status(fiber.StatusCreated).JSON(dto.DeckMessageResponse{
		Message: "Deck created",
		Deck:    dto.NewDeckResponse(deck),
	})
}

// GetMyDecks handles GET /decks/mine - returns every deck of the
// authenticated user, cards resolved.
func (h *DeckHandler) GetMyDecks(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	decks, err := h.deckService.GetDecksByUser(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch decks",
		})
	}

	if len(decks) == 0 {
		return c.JSON(fiber.Map{"message": "No decks found"})
	}

	resp := dto.DeckListResponse{Decks: make([]dto.DeckResponse, len(decks))}
	for i := range decks {
		resp.Decks[i] = dto.NewDeckResponse(&decks[i])
	}
	return c.JSON(resp)
}

// GetDeck handles GET /decks/:id.
func (h *DeckHandler) GetDeck(c *fiber.Ctx) error {
	userID, deckID, ok := deckRequestIDs(c)
	if !ok {
		return nil
	}

	deck, err := h.deckService.GetDeckByID(deckID, userID)
	if err != nil {
		return deckErrorResponse(c, err, "Failed to fetch deck")
	}

	return c.JSON(fiber.Map{"deck": dto.NewDeckResponse(deck)})
}

// UpdateDeck handles PATCH /decks/:id - partial update of name and/or cards.
func (h *DeckHandler) UpdateDeck(c *fiber.Ctx) error {
	userID, deckID, ok := deckRequestIDs(c)
	if !ok {
		return nil
	}

	var req dto.UpdateDeckRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	if req.Name == nil && req.Cards == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Nothing to update",
		})
	}

	deck, err := h.deckService.UpdateDeck(deckID, userID, &req)
	if err != nil {
		return deckErrorResponse(c, err, "Failed to update deck")
	}

	return c.JSON(dto.DeckMessageResponse{
		Message: "Deck updated",
		Deck:    dto.NewDeckResponse(deck),
	})
}

// DeleteDeck handles DELETE /decks/:id.
func (h *DeckHandler) DeleteDeck(c *fiber.Ctx) error {
	userID, deckID, ok := deckRequestIDs(c)
	if !ok {
		return nil
	}

	if _, err := h.deckService.DeleteDeck(deckID, userID); err != nil {
		return deckErrorResponse(c, err, "Failed to delete deck")
	}

	return c.JSON(fiber.Map{"message": "Deck deleted"})
}

// deckRequestIDs pulls the authenticated user and the :id path parameter;
// when ok is false the response has already been written.
func deckRequestIDs(c *fiber.Ctx) (userID, deckID uuid.UUID, ok bool) {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
		return uuid.Nil, uuid.Nil, false
	}

	deckID, err = uuid.Parse(c.Params("id"))
	if err != nil {
		c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid deck ID",
		})
		return uuid.Nil, uuid.Nil, false
	}

	return userID, deckID, true
}

// deckErrorResponse maps the deck service's sentinel errors onto status
// codes; anything unrecognized collapses to a generic 500.
func deckErrorResponse(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, services.ErrDeckNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Deck not found",
		})
	case errors.Is(err, services.ErrNotDeckOwner):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: "You do not own this deck",
		})
	case errors.Is(err, services.ErrWrongCardCount),
		errors.Is(err, services.ErrDuplicateCard),
		errors.Is(err, services.ErrUnknownCard):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: fallback,
		})
	}
}

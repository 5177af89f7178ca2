package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/pokedecks/tcg-backend/internal/models"
)

type CreateDeckRequest struct {
	Name  string `json:"name"`
	Cards []uint `json:"cards"`
}

// UpdateDeckRequest is a partial update: nil means "leave unchanged".
type UpdateDeckRequest struct {
	Name  *string `json:"name"`
	Cards *[]uint `json:"cards"`
}

type DeckResponse struct {
	ID        uuid.UUID     `json:"id"`
	Name      string        `json:"name"`
	UserID    uuid.UUID     `json:"user_id"`
	Cards     []models.Card `json:"cards"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

type DeckMessageResponse struct {
	Message string       `json:"message"`
	Deck    DeckResponse `json:"deck"`
}

type DeckListResponse struct {
	Decks []DeckResponse `json:"decks"`
}

// NewDeckResponse flattens a deck's card links into the catalog cards they
// reference.
func NewDeckResponse(deck *models.Deck) DeckResponse {
	cards := make([]models.Card, 0, len(deck.CardLinks))
	for _, link := range deck.CardLinks {
		cards = append(cards, link.Card)
	}
	return DeckResponse{
		ID:        deck.ID,
		Name:      deck.Name,
		UserID:    deck.UserID,
		Cards:     cards,
		CreatedAt: deck.CreatedAt,
		UpdatedAt: deck.UpdatedAt,
	}
}

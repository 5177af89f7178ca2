package services

import (
	"fmt"

	"github.com/pokedecks/tcg-backend/internal/models"
	"gorm.io/gorm"
)

type CardService struct {
	db *gorm.DB
}

func NewCardService(db *gorm.DB) *CardService {
	return &CardService{db: db}
}

// ListCards returns the full catalog ordered by Pokédex number.
func (s *CardService) ListCards() ([]models.Card, error) {
	var cards []models.Card
	if err := s.db.Order("pokedex_number ASC").Find(&cards).Error; err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}
	return cards, nil
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// DeckSize is the number of cards every deck must hold.
const DeckSize = 10

type Deck struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string     `gorm:"not null;size:100" json:"name"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	CardLinks []DeckCard `gorm:"foreignKey:DeckID" json:"-"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// DeckCard links a deck to one card of the catalog. The unique index backs
// the application-level duplicate check.
type DeckCard struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	DeckID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_deck_cards_deck_card" json:"deck_id"`
	CardID uint      `gorm:"not null;uniqueIndex:idx_deck_cards_deck_card" json:"card_id"`
	Card   Card      `gorm:"foreignKey:CardID" json:"card"`
}

package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/pokedecks/tcg-backend/internal/dto"
	"github.com/pokedecks/tcg-backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrDeckNotFound   = errors.New("deck not found")
	ErrNotDeckOwner   = errors.New("deck belongs to another user")
	ErrWrongCardCount = fmt.Errorf("a deck must contain exactly %d cards", models.DeckSize)
	ErrDuplicateCard  = errors.New("a deck cannot contain the same card twice")
	ErrUnknownCard    = errors.New("unknown card id")
)

type DeckService struct {
	db *gorm.DB
}

func NewDeckService(db *gorm.DB) *DeckService {
	return &DeckService{db: db}
}

// CreateDeck validates the card set and creates the deck together with its
// card links in one transaction, so a partial deck is never observable.
func (s *DeckService) CreateDeck(userID uuid.UUID, name string, cardIDs []uint) (*models.Deck, error) {
	if err := s.validateCardSet(cardIDs); err != nil {
		return nil, err
	}

	deck := models.Deck{
		ID:     uuid.New(),
		Name:   name,
		UserID: userID,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&deck).Error; err != nil {
			return fmt.Errorf("failed to create deck: %w", err)
		}
		return createCardLinks(tx, deck.ID, cardIDs)
	})
	if err != nil {
		return nil, err
	}

	return s.loadDeck(deck.ID)
}

// GetDecksByUser returns the user's full deck set, cards resolved.
func (s *DeckService) GetDecksByUser(userID uuid.UUID) ([]models.Deck, error) {
	var decks []models.Deck
	err := s.db.Preload("CardLinks.Card").
		Where("user_id = ?", userID).
		Find(&decks).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list decks: %w", err)
	}
	return decks, nil
}

// GetDeckByID looks the deck up by id alone, then compares ownership. The
// same three-way outcome (not found, not owner, proceed) applies to every
// by-id operation.
func (s *DeckService) GetDeckByID(deckID, requesterID uuid.UUID) (*models.Deck, error) {
	deck, err := s.loadDeck(deckID)
	if err != nil {
		return nil, err
	}
	if deck.UserID != requesterID {
		return nil, ErrNotDeckOwner
	}
	return deck, nil
}

// UpdateDeck applies a partial update. A new card set goes through the same
// validation as CreateDeck; on any validation failure the deck is left
// untouched. Replacing the card set deletes the existing links and inserts
// the new ones inside one transaction.
func (s *DeckService) UpdateDeck(deckID, requesterID uuid.UUID, req *dto.UpdateDeckRequest) (*models.Deck, error) {
	deck, err := s.loadDeck(deckID)
	if err != nil {
		return nil, err
	}
	if deck.UserID != requesterID {
		return nil, ErrNotDeckOwner
	}

	if req.Cards != nil {
		if err := s.validateCardSet(*req.Cards); err != nil {
			return nil, err
		}
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if req.Name != nil {
			if err := tx.Model(deck).Update("name", *req.Name).Error; err != nil {
				return fmt.Errorf("failed to rename deck: %w", err)
			}
		}
		if req.Cards != nil {
			if err := tx.Where("deck_id = ?", deck.ID).Delete(&models.DeckCard{}).Error; err != nil {
				return fmt.Errorf("failed to clear deck cards: %w", err)
			}
			if err := createCardLinks(tx, deck.ID, *req.Cards); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.loadDeck(deck.ID)
}

// DeleteDeck removes the deck and all of its card links as one unit.
func (s *DeckService) DeleteDeck(deckID, requesterID uuid.UUID) (*models.Deck, error) {
	deck, err := s.loadDeck(deckID)
	if err != nil {
		return nil, err
	}
	if deck.UserID != requesterID {
		return nil, ErrNotDeckOwner
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("deck_id = ?", deck.ID).Delete(&models.DeckCard{}).Error; err != nil {
			return fmt.Errorf("failed to delete deck cards: %w", err)
		}
		if err := tx.Delete(&models.Deck{}, "id = ?", deck.ID).Error; err != nil {
			return fmt.Errorf("failed to delete deck: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return deck, nil
}

func (s *DeckService) loadDeck(deckID uuid.UUID) (*models.Deck, error) {
	var deck models.Deck
	err := s.db.Preload("CardLinks.Card").First(&deck, "id = ?", deckID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrDeckNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load deck: %w", err)
	}
	return &deck, nil
}

// validateCardSet enforces the deck-shape invariants: exactly DeckSize ids,
// no duplicates, and every id present in the catalog.
func (s *DeckService) validateCardSet(cardIDs []uint) error {
	if len(cardIDs) != models.DeckSize {
		return ErrWrongCardCount
	}

	seen := make(map[uint]struct{}, len(cardIDs))
	for _, id := range cardIDs {
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: card %d", ErrDuplicateCard, id)
		}
		seen[id] = struct{}{}
	}

	var cards []models.Card
	if err := s.db.Where("id IN ?", cardIDs).Find(&cards).Error; err != nil {
		return fmt.Errorf("failed to resolve cards: %w", err)
	}
	if len(cards) != len(cardIDs) {
		for _, c := range cards {
			delete(seen, c.ID)
		}
		missing := make([]uint, 0, len(seen))
		for id := range seen {
			missing = append(missing, id)
		}
		return fmt.Errorf("%w: %v", ErrUnknownCard, missing)
	}
	return nil
}

func createCardLinks(tx *gorm.DB, deckID uuid.UUID, cardIDs []uint) error {
	links := make([]models.DeckCard, len(cardIDs))
	for i, cardID := range cardIDs {
		links[i] = models.DeckCard{
			ID:     uuid.New(),
			DeckID: deckID,
			CardID: cardID,
		}
	}
	if err := tx.Omit("Card").Create(&links).Error; err != nil {
		return fmt.Errorf("failed to link deck cards: %w", err)
	}
	return nil
}

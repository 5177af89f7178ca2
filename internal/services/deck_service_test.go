package services

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/pokedecks/tcg-backend/internal/dto"
	"github.com/pokedecks/tcg-backend/internal/models"
	"github.com/pokedecks/tcg-backend/internal/testutil"
)

func cardSet(ids []uint, deck *models.Deck) map[uint]bool {
	got := make(map[uint]bool)
	for _, link := range deck.CardLinks {
		got[link.CardID] = true
	}
	want := make(map[uint]bool)
	for _, id := range ids {
		want[id] = true
	}
	for id := range want {
		if !got[id] {
			return nil
		}
	}
	return got
}

func TestCreateDeck(t *testing.T) {
	db := testutil.OpenDB(t)
	ids := testutil.SeedCards(t, db, 12)
	svc := NewDeckService(db)
	owner := uuid.New()

	deck, err := svc.CreateDeck(owner, "Starter", ids[:10])
	if err != nil {
		t.Fatalf("CreateDeck failed: %v", err)
	}
	if deck.Name != "Starter" || deck.UserID != owner {
		t.Errorf("unexpected deck: name=%q owner=%s", deck.Name, deck.UserID)
	}
	if len(deck.CardLinks) != models.DeckSize {
		t.Fatalf("expected %d card links, got %d", models.DeckSize, len(deck.CardLinks))
	}
	if cardSet(ids[:10], deck) == nil {
		t.Errorf("deck cards do not match the requested set")
	}
	for _, link := range deck.CardLinks {
		if link.Card.ID != link.CardID {
			t.Errorf("card %d not resolved on link", link.CardID)
		}
	}
}

func TestCreateDeckWrongCardCount(t *testing.T) {
	db := testutil.OpenDB(t)
	ids := testutil.SeedCards(t, db, 12)
	svc := NewDeckService(db)

	for _, n := range []int{0, 9, 11} {
		if _, err := svc.CreateDeck(uuid.New(), "Bad", ids[:n]); !errors.Is(err, ErrWrongCardCount) {
			t.Errorf("CreateDeck with %d cards: got %v, want ErrWrongCardCount", n, err)
		}
	}

	var count int64
	if err := db.Model(&models.Deck{}).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 0 {
		t.Errorf("expected no decks after failed creates, got %d", count)
	}
}

func TestCreateDeckUnknownCard(t *testing.T) {
	db := testutil.OpenDB(t)
	ids := testutil.SeedCards(t, db, 9)
	svc := NewDeckService(db)

	bad := append(append([]uint{}, ids...), 999)
	_, err := svc.CreateDeck(uuid.New(), "Ghost deck", bad)
	if !errors.Is(err, ErrUnknownCard) {
		t.Fatalf("got %v, want ErrUnknownCard", err)
	}

	var decks, links int64
	db.Model(&models.Deck{}).Count(&decks)
	db.Model(&models.DeckCard{}).Count(&links)
	if decks != 0 || links != 0 {
		t.Errorf("failed create left rows behind: decks=%d links=%d", decks, links)
	}
}

func TestCreateDeckDuplicateCard(t *testing.T) {
	db := testutil.OpenDB(t)
	ids := testutil.SeedCards(t, db, 9)
	svc := NewDeckService(db)

	dup := append(append([]uint{}, ids...), ids[0])
	if _, err := svc.CreateDeck(uuid.New(), "Twins", dup); !errors.Is(err, ErrDuplicateCard) {
		t.Fatalf("got %v, want ErrDuplicateCard", err)
	}
}

func TestGetDecksByUser(t *testing.T) {
	db := testutil.OpenDB(t)
	ids := testutil.SeedCards(t, db, 12)
	svc := NewDeckService(db)
	owner := uuid.New()

	if _, err := svc.CreateDeck(owner, "First", ids[:10]); err != nil {
		t.Fatalf("CreateDeck failed: %v", err)
	}
	if _, err := svc.CreateDeck(owner, "Second", ids[2:12]); err != nil {
		t.Fatalf("CreateDeck failed: %v", err)
	}

	decks, err := svc.GetDecksByUser(owner)
	if err != nil {
		t.Fatalf("GetDecksByUser failed: %v", err)
	}
	if len(decks) != 2 {
		t.Fatalf("expected 2 decks, got %d", len(decks))
	}
	for _, d := range decks {
		if len(d.CardLinks) != models.DeckSize {
			t.Errorf("deck %q has %d cards", d.Name, len(d.CardLinks))
		}
	}

	others, err := svc.GetDecksByUser(uuid.New())
	if err != nil {
		t.Fatalf("GetDecksByUser failed: %v", err)
	}
	if len(others) != 0 {
		t.Errorf("expected no decks for a stranger, got %d", len(others))
	}
}

func TestGetDeckByID(t *testing.T) {
	db := testutil.OpenDB(t)
	ids := testutil.SeedCards(t, db, 10)
	svc := NewDeckService(db)
	owner := uuid.New()

	created, err := svc.CreateDeck(owner, "Mine", ids)
	if err != nil {
		t.Fatalf("CreateDeck failed: %v", err)
	}

	deck, err := svc.GetDeckByID(created.ID, owner)
	if err != nil {
		t.Fatalf("GetDeckByID failed: %v", err)
	}
	if len(deck.CardLinks) != models.DeckSize {
		t.Errorf("expected %d cards, got %d", models.DeckSize, len(deck.CardLinks))
	}

	if _, err := svc.GetDeckByID(created.ID, uuid.New()); !errors.Is(err, ErrNotDeckOwner) {
		t.Errorf("stranger access: got %v, want ErrNotDeckOwner", err)
	}
	if _, err := svc.GetDeckByID(uuid.New(), owner); !errors.Is(err, ErrDeckNotFound) {
		t.Errorf("unknown id: got %v, want ErrDeckNotFound", err)
	}
}

func TestUpdateDeckName(t *testing.T) {
	db := testutil.OpenDB(t)
	ids := testutil.SeedCards(t, db, 10)
	svc := NewDeckService(db)
	owner := uuid.New()

	created, err := svc.CreateDeck(owner, "Old name", ids)
	if err != nil {
		t.Fatalf("CreateDeck failed: %v", err)
	}

	name := "New name"
	deck, err := svc.UpdateDeck(created.ID, owner, &dto.UpdateDeckRequest{Name: &name})
	if err != nil {
		t.Fatalf("UpdateDeck failed: %v", err)
	}
	if deck.Name != name {
		t.Errorf("name not updated: got %q", deck.Name)
	}
	if cardSet(ids, deck) == nil {
		t.Errorf("rename must not touch the card set")
	}
}

func TestUpdateDeckCards(t *testing.T) {
	db := testutil.OpenDB(t)
	ids := testutil.SeedCards(t, db, 20)
	svc := NewDeckService(db)
	owner := uuid.New()

	created, err := svc.CreateDeck(owner, "Rotating", ids[:10])
	if err != nil {
		t.Fatalf("CreateDeck failed: %v", err)
	}

	replacement := ids[10:20]
	deck, err := svc.UpdateDeck(created.ID, owner, &dto.UpdateDeckRequest{Cards: &replacement})
	if err != nil {
		t.Fatalf("UpdateDeck failed: %v", err)
	}
	if deck.Name != "Rotating" {
		t.Errorf("card replacement must not rename the deck, got %q", deck.Name)
	}
	if cardSet(replacement, deck) == nil {
		t.Errorf("card set was not replaced")
	}

	// Old links must be gone, not just superseded.
	var links int64
	db.Model(&models.DeckCard{}).Where("deck_id = ?", created.ID).Count(&links)
	if links != int64(models.DeckSize) {
		t.Errorf("expected %d links after replacement, got %d", models.DeckSize, links)
	}
}

func TestUpdateDeckValidationLeavesDeckUntouched(t *testing.T) {
	db := testutil.OpenDB(t)
	ids := testutil.SeedCards(t, db, 10)
	svc := NewDeckService(db)
	owner := uuid.New()

	created, err := svc.CreateDeck(owner, "Stable", ids)
	if err != nil {
		t.Fatalf("CreateDeck failed: %v", err)
	}

	name := "Should not apply"
	bad := []uint{1, 2, 3, 4, 5, 6, 7, 8, 9, 999}
	_, err = svc.UpdateDeck(created.ID, owner, &dto.UpdateDeckRequest{Name: &name, Cards: &bad})
	if !errors.Is(err, ErrUnknownCard) {
		t.Fatalf("got %v, want ErrUnknownCard", err)
	}

	deck, err := svc.GetDeckByID(created.ID, owner)
	if err != nil {
		t.Fatalf("GetDeckByID failed: %v", err)
	}
	if deck.Name != "Stable" {
		t.Errorf("failed update modified the name: %q", deck.Name)
	}
	if cardSet(ids, deck) == nil {
		t.Errorf("failed update modified the card set")
	}

	short := ids[:5]
	if _, err := svc.UpdateDeck(created.ID, owner, &dto.UpdateDeckRequest{Cards: &short}); !errors.Is(err, ErrWrongCardCount) {
		t.Errorf("got %v, want ErrWrongCardCount", err)
	}
}

func TestUpdateDeckNotFoundAndNotOwner(t *testing.T) {
	db := testutil.OpenDB(t)
	ids := testutil.SeedCards(t, db, 10)
	svc := NewDeckService(db)
	owner := uuid.New()

	created, err := svc.CreateDeck(owner, "Guarded", ids)
	if err != nil {
		t.Fatalf("CreateDeck failed: %v", err)
	}

	name := "Hijacked"
	if _, err := svc.UpdateDeck(created.ID, uuid.New(), &dto.UpdateDeckRequest{Name: &name}); !errors.Is(err, ErrNotDeckOwner) {
		t.Errorf("stranger update: got %v, want ErrNotDeckOwner", err)
	}
	if _, err := svc.UpdateDeck(uuid.New(), owner, &dto.UpdateDeckRequest{Name: &name}); !errors.Is(err, ErrDeckNotFound) {
		t.Errorf("unknown id: got %v, want ErrDeckNotFound", err)
	}

	deck, _ := svc.GetDeckByID(created.ID, owner)
	if deck.Name != "Guarded" {
		t.Errorf("rejected update modified the deck: %q", deck.Name)
	}
}

func TestDeleteDeck(t *testing.T) {
	db := testutil.OpenDB(t)
	ids := testutil.SeedCards(t, db, 10)
	svc := NewDeckService(db)
	owner := uuid.New()

	created, err := svc.CreateDeck(owner, "Doomed", ids)
	if err != nil {
		t.Fatalf("CreateDeck failed: %v", err)
	}

	if _, err := svc.DeleteDeck(created.ID, uuid.New()); !errors.Is(err, ErrNotDeckOwner) {
		t.Fatalf("stranger delete: got %v, want ErrNotDeckOwner", err)
	}

	removed, err := svc.DeleteDeck(created.ID, owner)
	if err != nil {
		t.Fatalf("DeleteDeck failed: %v", err)
	}
	if removed.ID != created.ID {
		t.Errorf("removed deck id mismatch")
	}

	if _, err := svc.GetDeckByID(created.ID, owner); !errors.Is(err, ErrDeckNotFound) {
		t.Errorf("deck still readable after delete: %v", err)
	}
	if _, err := svc.DeleteDeck(created.ID, owner); !errors.Is(err, ErrDeckNotFound) {
		t.Errorf("double delete: got %v, want ErrDeckNotFound", err)
	}

	// No orphaned join rows.
	var links int64
	db.Model(&models.DeckCard{}).Where("deck_id = ?", created.ID).Count(&links)
	if links != 0 {
		t.Errorf("expected no card links after delete, got %d", links)
	}

	// The catalog itself is untouched.
	var cards int64
	db.Model(&models.Card{}).Count(&cards)
	if cards != 10 {
		t.Errorf("deck deletion must not touch the catalog, got %d cards", cards)
	}
}

func TestDeckCardUniqueConstraint(t *testing.T) {
	db := testutil.OpenDB(t)
	testutil.SeedCards(t, db, 1)

	deck := models.Deck{ID: uuid.New(), Name: "Raw", UserID: uuid.New()}
	if err := db.Create(&deck).Error; err != nil {
		t.Fatalf("failed to create deck: %v", err)
	}

	link := models.DeckCard{ID: uuid.New(), DeckID: deck.ID, CardID: 1}
	if err := db.Omit("Card").Create(&link).Error; err != nil {
		t.Fatalf("failed to create link: %v", err)
	}

	dup := models.DeckCard{ID: uuid.New(), DeckID: deck.ID, CardID: 1}
	if err := db.Omit("Card").Create(&dup).Error; err == nil {
		t.Errorf("expected unique (deck_id, card_id) violation, got nil")
	}
}

package database

import (
	"strings"
	"testing"

	"github.com/pokedecks/tcg-backend/internal/models"
	"github.com/pokedecks/tcg-backend/internal/testutil"
)

func TestSeedCards(t *testing.T) {
	db := testutil.OpenDB(t)

	// testutil migrates but does not seed.
	if err := SeedCards(db); err != nil {
		t.Fatalf("SeedCards failed: %v", err)
	}

	var count int64
	if err := db.Model(&models.Card{}).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count == 0 {
		t.Fatalf("catalog is empty after seeding")
	}

	// Seeding again must not duplicate the catalog.
	if err := SeedCards(db); err != nil {
		t.Fatalf("second SeedCards failed: %v", err)
	}
	var again int64
	db.Model(&models.Card{}).Count(&again)
	if again != count {
		t.Errorf("reseeding changed the catalog: %d -> %d", count, again)
	}

	var pikachu models.Card
	if err := db.Where("name = ?", "Pikachu").First(&pikachu).Error; err != nil {
		t.Fatalf("Pikachu missing from the catalog: %v", err)
	}
	if pikachu.PokedexNumber != 25 || pikachu.Type != "Electric" {
		t.Errorf("unexpected Pikachu row: %+v", pikachu)
	}
	if !strings.Contains(pikachu.ImageURL, "/25.png") {
		t.Errorf("image URL not derived from the Pokédex number: %s", pikachu.ImageURL)
	}
}

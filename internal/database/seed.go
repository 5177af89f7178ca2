package database

import (
	"fmt"
	"log/slog"

	"github.com/pokedecks/tcg-backend/internal/models"
	"gorm.io/gorm"
)

func spriteURL(pokedexNumber int) string {
	return fmt.Sprintf("https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/other/official-artwork/%d.png", pokedexNumber)
}

var catalogCards = []models.Card{
	{PokedexNumber: 1, Name: "Bulbasaur", HP: 45, Attack: 49, Type: "Grass"},
	{PokedexNumber: 2, Name: "Ivysaur", HP: 60, Attack: 62, Type: "Grass"},
	{PokedexNumber: 3, Name: "Venusaur", HP: 80, Attack: 82, Type: "Grass"},
	{PokedexNumber: 4, Name: "Charmander", HP: 39, Attack: 52, Type: "Fire"},
	{PokedexNumber: 5, Name: "Charmeleon", HP: 58, Attack: 64, Type: "Fire"},
	{PokedexNumber: 6, Name: "Charizard", HP: 78, Attack: 84, Type: "Fire"},
	{PokedexNumber: 7, Name: "Squirtle", HP: 44, Attack: 48, Type: "Water"},
	{PokedexNumber: 8, Name: "Wartortle", HP: 59, Attack: 63, Type: "Water"},
	{PokedexNumber: 9, Name: "Blastoise", HP: 79, Attack: 83, Type: "Water"},
	{PokedexNumber: 25, Name: "Pikachu", HP: 35, Attack: 55, Type: "Electric"},
	{PokedexNumber: 26, Name: "Raichu", HP: 60, Attack: 90, Type: "Electric"},
	{PokedexNumber: 35, Name: "Clefairy", HP: 70, Attack: 45, Type: "Fairy"},
	{PokedexNumber: 39, Name: "Jigglypuff", HP: 115, Attack: 45, Type: "Fairy"},
	{PokedexNumber: 52, Name: "Meowth", HP: 40, Attack: 45, Type: "Normal"},
	{PokedexNumber: 54, Name: "Psyduck", HP: 50, Attack: 52, Type: "Water"},
	{PokedexNumber: 63, Name: "Abra", HP: 25, Attack: 20, Type: "Psychic"},
	{PokedexNumber: 65, Name: "Alakazam", HP: 55, Attack: 50, Type: "Psychic"},
	{PokedexNumber: 66, Name: "Machop", HP: 70, Attack: 80, Type: "Fighting"},
	{PokedexNumber: 68, Name: "Machamp", HP: 90, Attack: 130, Type: "Fighting"},
	{PokedexNumber: 74, Name: "Geodude", HP: 40, Attack: 80, Type: "Rock"},
	{PokedexNumber: 92, Name: "Gastly", HP: 30, Attack: 35, Type: "Ghost"},
	{PokedexNumber: 94, Name: "Gengar", HP: 60, Attack: 65, Type: "Ghost"},
	{PokedexNumber: 95, Name: "Onix", HP: 35, Attack: 45, Type: "Rock"},
	{PokedexNumber: 129, Name: "Magikarp", HP: 20, Attack: 10, Type: "Water"},
	{PokedexNumber: 130, Name: "Gyarados", HP: 95, Attack: 125, Type: "Water"},
	{PokedexNumber: 133, Name: "Eevee", HP: 55, Attack: 55, Type: "Normal"},
	{PokedexNumber: 143, Name: "Snorlax", HP: 160, Attack: 110, Type: "Normal"},
	{PokedexNumber: 147, Name: "Dratini", HP: 41, Attack: 64, Type: "Dragon"},
	{PokedexNumber: 149, Name: "Dragonite", HP: 91, Attack: 134, Type: "Dragon"},
	{PokedexNumber: 150, Name: "Mewtwo", HP: 106, Attack: 110, Type: "Psychic"},
}

// SeedCards inserts the bundled card catalog when the cards table is empty.
// Safe to call on every startup.
func SeedCards(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Card{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count cards: %w", err)
	}
	if count > 0 {
		return nil
	}

	cards := make([]models.Card, len(catalogCards))
	copy(cards, catalogCards)
	for i := range cards {
		cards[i].ImageURL = spriteURL(cards[i].PokedexNumber)
	}

	if err := db.CreateInBatches(cards, 50).Error; err != nil {
		return fmt.Errorf("failed to seed cards: %w", err)
	}

	slog.Info("card catalog seeded", "cards", len(cards))
	return nil
}

package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/pokedecks/tcg-backend/internal/config"
	"github.com/pokedecks/tcg-backend/internal/handlers"
	"github.com/pokedecks/tcg-backend/internal/middleware"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	cardHandler *handlers.CardHandler,
	deckHandler *handlers.DeckHandler,
	healthHandler *handlers.HealthHandler,
) {
	// General rate limiter: 60 req/min per IP
	app.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	app.Get("/health", healthHandler.Check)

	// Public catalog
	app.Get("/cards", cardHandler.ListCards)

	// Auth — public, with a stricter rate limit: 10 req/min per IP
	auth := app.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/sign-up", authHandler.SignUp)
	auth.Post("/sign-in", authHandler.SignIn)

	// Decks — bearer token required
	decks := app.Group("/decks", middleware.JWTProtected(cfg))
	decks.Post("/", deckHandler.CreateDeck)
	decks.Get("/mine", deckHandler.GetMyDecks)
	decks.Get("/:id", deckHandler.GetDeck)
	decks.Patch("/:id", deckHandler.UpdateDeck)
	decks.Delete("/:id", deckHandler.DeleteDeck)
}

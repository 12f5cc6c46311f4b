package main

import (
	"os"

	"github.com/kybermartin/python-editor/internal/config"
	"github.com/kybermartin/python-editor/internal/database"
	"github.com/kybermartin/python-editor/internal/services"
	"github.com/kybermartin/python-editor/pkg/logger"
)

// Seeds a demo user with a few scripts for local frontend development.
func main() {
	config.LoadConfig()

	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}
	logger.Init(env)

	database.Connect()
	database.Migrate()
	defer database.Close()

	demo := []struct {
		title string
		code  string
	}{
		{"Hello World", "print(\"Hello, world!\")\n"},
		{"Fibonacci", "a, b = 0, 1\nfor _ in range(10):\n    print(a)\n    a, b = b, a + b\n"},
		{"FizzBuzz", "for i in range(1, 16):\n    out = (\"Fizz\" if i % 3 == 0 else \"\") + (\"Buzz\" if i % 5 == 0 else \"\")\n    print(out or i)\n"},
	}

	for _, s := range demo {
		if err := services.SaveScript(database.DB, s.title, s.code, "demo"); err != nil {
			logger.Fatal().Err(err).Str("title", s.title).Msg("Failed to seed script")
		}
		logger.Info().Str("title", s.title).Msg("Seeded script")
	}

	logger.Info().Msg("Seeding complete")
}

package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Port        string `mapstructure:"PORT"`
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	FrontendURL string `mapstructure:"FRONTEND_URL"`

	// Judge0 (RapidAPI)
	Judge0APIKey string `mapstructure:"JUDGE0_API_KEY"`
}

var AppConfig *Config

func LoadConfig() {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	viper.SetDefault("PORT", "10000")
	viper.SetDefault("DATABASE_URL", "postgresql://localhost:5432/scripts?sslmode=disable")
	viper.SetDefault("FRONTEND_URL", "*")
	// Registering the key lets AutomaticEnv feed it into Unmarshal.
	viper.SetDefault("JUDGE0_API_KEY", "")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Unable to decode config: %v", err)
	}

	AppConfig.DatabaseURL = NormalizeDatabaseURL(AppConfig.DatabaseURL)
}

// NormalizeDatabaseURL rewrites the legacy postgres:// scheme that some
// hosting providers still hand out (Render, Heroku) to postgresql://.
func NormalizeDatabaseURL(dsn string) string {
	if strings.HasPrefix(dsn, "postgres://") {
		return "postgresql://" + strings.TrimPrefix(dsn, "postgres://")
	}
	return dsn
}

// AllowedOrigins parses FRONTEND_URL into a CORS allow-list. A value of
// "*" (the default) means any origin.
func (c *Config) AllowedOrigins() []string {
	if c.FrontendURL == "*" || c.FrontendURL == "" {
		return []string{"*"}
	}
	parts := strings.Split(c.FrontendURL, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if o := strings.TrimSpace(p); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

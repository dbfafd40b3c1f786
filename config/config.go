package config

import (
	"log"

	"github.com/caarlos0/env/v11"

	"github.com/joho/godotenv"
)

type Config struct {
	// Client side.
	APIBaseURL     string `env:"API_BASE_URL" envDefault:"http://localhost:8080"`
	AccessToken    string `env:"ACCESS_TOKEN"`
	RequestSource  string `env:"REQUEST_SOURCE" envDefault:"rentals-cli"`
	RequestTimeout int    `env:"REQUEST_TIMEOUT_SECONDS" envDefault:"30"`

	// Stub server.
	Port      int    `env:"PORT" envDefault:"8080"`
	JwtSecret string `env:"JWT_SECRET" envDefault:"dev-secret"`
}

func New() *Config {
	if loadErr := godotenv.Load(".env"); loadErr != nil {
		log.Printf("[Env]: unable to load .env file %v", loadErr)
	}

	var cfg Config

	if parseErr := env.Parse(&cfg); parseErr != nil {
		log.Printf("[Env]: failed to parse environment variables: %v", parseErr)
	}

	return &cfg
}

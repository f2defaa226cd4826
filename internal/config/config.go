package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
)

// Config holds everything the process reads from its environment.
type Config struct {
	DatabaseURL    string
	Port           string
	Env            string
	AllowedOrigins []string
}

var defaultOrigins = []string{
	"http://localhost:3000",
}

// Load reads .env.local (if present) and the process environment.
// CORS_CONFIG may point at a YAML file overriding the origin allow-list.
func Load() (*Config, error) {
	_ = godotenv.Load(".env.local")

	cfg := &Config{
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		Port:           getEnv("PORT", "4000"),
		Env:            getEnv("APP_ENV", "development"),
		AllowedOrigins: append([]string(nil), defaultOrigins...),
	}

	if path := os.Getenv("CORS_CONFIG"); path != "" {
		origins, err := loadOrigins(path)
		if err != nil {
			return nil, fmt.Errorf("load CORS config: %w", err)
		}
		cfg.AllowedOrigins = origins
	}

	return cfg, nil
}

// IsProduction controls the session cookie policy (Secure, SameSite=None).
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

type corsFile struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

func loadOrigins(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var f corsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	if len(f.AllowedOrigins) == 0 {
		return nil, fmt.Errorf("%s: no allowed_origins listed", path)
	}
	return f.AllowedOrigins, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

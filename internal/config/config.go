package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	StorageMemory = "memory"
	StorageFile   = "file"
	StorageSQLite = "sqlite"
)

type Config struct {
	HTTPAddr string `env:"HTTP_ADDR" envDefault:":8080"`

	StorageDriver    string `env:"STORAGE_DRIVER" envDefault:"file"`
	StoragePath      string `env:"STORAGE_PATH" envDefault:"data"`
	ContactsKey      string `env:"CONTACTS_KEY" envDefault:"carretel_contacts"`
	OpportunitiesKey string `env:"OPPORTUNITIES_KEY" envDefault:"carretel_opps"`

	GeminiAPIKey string `env:"API_KEY"`
	GeminiModel  string `env:"GEMINI_MODEL" envDefault:"gemini-3-flash-preview"`

	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173,*"`
	TrustProxy     bool     `env:"TRUST_PROXY" envDefault:"false"`

	LogLevel       string `env:"LOG_LEVEL" envDefault:"info"`
	LogDevelopment bool   `env:"LOG_DEVELOPMENT" envDefault:"false"`
}

// Load lê o .env (se existir) e depois as variáveis de ambiente.
func Load() (Config, error) {
	_ = godotenv.Load()
	return Parse()
}

// Parse lê só as variáveis de ambiente do processo.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.StorageDriver {
	case StorageMemory, StorageFile, StorageSQLite:
	default:
		return fmt.Errorf("STORAGE_DRIVER inválido: %q (use memory, file ou sqlite)", c.StorageDriver)
	}
	if c.StorageDriver != StorageMemory && strings.TrimSpace(c.StoragePath) == "" {
		return fmt.Errorf("STORAGE_PATH é obrigatório para o driver %s", c.StorageDriver)
	}
	if strings.TrimSpace(c.ContactsKey) == "" || strings.TrimSpace(c.OpportunitiesKey) == "" {
		return fmt.Errorf("CONTACTS_KEY e OPPORTUNITIES_KEY não podem ser vazios")
	}
	if c.ContactsKey == c.OpportunitiesKey {
		return fmt.Errorf("CONTACTS_KEY e OPPORTUNITIES_KEY precisam ser diferentes")
	}
	return nil
}

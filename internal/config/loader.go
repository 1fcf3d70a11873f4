package config

import (
	"fmt"
	"os"

	"github.com/heartmarshall/memorable-quantities/internal/domain"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Load reads configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (env-default tags and newConfig).
// The YAML file path is determined by CONFIG_PATH env (fallback "./config.yaml").
// If the file does not exist and CONFIG_PATH was not set explicitly,
// configuration is loaded from ENV + defaults only.
//
// Before anything is read, variables from a dotenv file (DOTENV_PATH, fallback
// "./.env") are added to the process environment. Variables that are already
// set are left untouched.
//
// Every returned error wraps domain.ErrConfiguration.
func Load() (*Config, error) {
	if err := loadDotEnv(); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrConfiguration, err)
	}

	cfg := newConfig()

	path := os.Getenv("CONFIG_PATH")
	explicitPath := path != ""
	if !explicitPath {
		path = "./config.yaml"
	}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("%w: read %s: %w", domain.ErrConfiguration, path, err)
		}
	} else if explicitPath {
		return nil, fmt.Errorf("%w: file %s: %w", domain.ErrConfiguration, path, err)
	} else {
		// No file, load from ENV + defaults only.
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("%w: read env: %w", domain.ErrConfiguration, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: validate: %w", domain.ErrConfiguration, err)
	}

	return &cfg, nil
}

func loadDotEnv() error {
	path := os.Getenv("DOTENV_PATH")
	explicitPath := path != ""
	if !explicitPath {
		path = ".env"
	}

	if _, err := os.Stat(path); err != nil {
		if explicitPath {
			return fmt.Errorf("dotenv file %s: %w", path, err)
		}
		return nil
	}

	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("dotenv %s: %w", path, err)
	}
	return nil
}

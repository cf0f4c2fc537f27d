package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// loadDotEnv exports the variables of a .env file into the process
// environment. A missing file is not an error and variables that are already
// set win over the file.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("error loading .env file: %w", err)
}

// parseEnv fills cfg from the environment following the env/envPrefix tags
// of [StructuredConfig]. Empty variables leave the field at its zero value so
// mergo can fall through to the next source.
func parseEnv(cfg any) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}
	return nil
}

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	// Optional HCL file replacing the built-in denomination catalog
	CatalogFile string

	// Display
	IconDir        string
	CurrencySymbol string

	// Write service logs to stderr
	Verbose bool
}

// Load reads the configuration from the environment. A .env file in the
// working directory is loaded first when present; real environment variables win.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		CatalogFile:    getEnv("CHANGE_CATALOG_FILE", ""),
		IconDir:        getEnv("CHANGE_ICON_DIR", "images"),
		CurrencySymbol: getEnv("CHANGE_CURRENCY_SYMBOL", "$"),
		Verbose:        getEnvBool("CHANGE_VERBOSE", false),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	if strings.TrimSpace(c.CurrencySymbol) == "" {
		errors = append(errors, "currency symbol cannot be empty")
	}

	if c.CatalogFile != "" {
		if info, err := os.Stat(c.CatalogFile); os.IsNotExist(err) {
			errors = append(errors, fmt.Sprintf("catalog file does not exist: %s", c.CatalogFile))
		} else if err == nil && info.IsDir() {
			errors = append(errors, fmt.Sprintf("catalog file is a directory: %s", c.CatalogFile))
		}
	}

	// A missing icon directory is not an error: icons are optional.
	if c.IconDir != "" {
		if info, err := os.Stat(c.IconDir); err == nil && !info.IsDir() {
			errors = append(errors, fmt.Sprintf("icon directory is a file: %s", c.IconDir))
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

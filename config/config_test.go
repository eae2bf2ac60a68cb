package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CHANGE_CATALOG_FILE", "")
	t.Setenv("CHANGE_ICON_DIR", "")
	t.Setenv("CHANGE_CURRENCY_SYMBOL", "")
	t.Setenv("CHANGE_VERBOSE", "")

	c := Load()
	assert.Equal(t, "", c.CatalogFile)
	assert.Equal(t, "images", c.IconDir)
	assert.Equal(t, "$", c.CurrencySymbol)
	assert.False(t, c.Verbose)
	assert.NoError(t, c.Validate())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("CHANGE_CATALOG_FILE", "/etc/change/catalog.hcl")
	t.Setenv("CHANGE_ICON_DIR", "/usr/share/change")
	t.Setenv("CHANGE_CURRENCY_SYMBOL", "€")
	t.Setenv("CHANGE_VERBOSE", "true")

	c := Load()
	assert.Equal(t, "/etc/change/catalog.hcl", c.CatalogFile)
	assert.Equal(t, "/usr/share/change", c.IconDir)
	assert.Equal(t, "€", c.CurrencySymbol)
	assert.True(t, c.Verbose)
}

func TestLoad_BadBoolFallsBack(t *testing.T) {
	t.Setenv("CHANGE_VERBOSE", "loud")
	assert.False(t, Load().Verbose)
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "catalog.hcl")
	require.NoError(t, os.WriteFile(file, []byte(""), 0o644))

	tests := []struct {
		name    string
		config  Config
		wantErr string
	}{
		{"Valid", Config{CatalogFile: file, IconDir: dir, CurrencySymbol: "$"}, ""},
		{"MissingIconDirIsFine", Config{IconDir: filepath.Join(dir, "nope"), CurrencySymbol: "$"}, ""},
		{"EmptySymbol", Config{CurrencySymbol: "  "}, "currency symbol cannot be empty"},
		{"MissingCatalog", Config{CatalogFile: filepath.Join(dir, "missing.hcl"), CurrencySymbol: "$"}, "catalog file does not exist"},
		{"CatalogIsDir", Config{CatalogFile: dir, CurrencySymbol: "$"}, "catalog file is a directory"},
		{"IconDirIsFile", Config{IconDir: file, CurrencySymbol: "$"}, "icon directory is a file"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	t.Run("CollectsAllProblems", func(t *testing.T) {
		err := (&Config{CatalogFile: dir, IconDir: file}).Validate()
		require.Error(t, err)
		assert.Equal(t, 4, len(strings.Split(err.Error(), "\n")))
	})
}

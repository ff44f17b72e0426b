package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, ":8000", cfg.Addr)
	assert.Equal(t, "https://gutendex.com/books/", cfg.ExternalAPIURL)
	assert.Equal(t, "http://localhost:8000", cfg.ProjectURL)
	assert.Equal(t, "local", cfg.Environment)
	assert.False(t, cfg.CacheDisabled)
	assert.True(t, cfg.ShowDocs())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("APP_ADDR", ":9000")
	t.Setenv("EXTERNAL_API_URL", "https://catalog.example.com/books/")
	t.Setenv("PROJECT_URL", "https://api.example.com/")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("CACHE_DISABLED", "true")

	cfg := Load()

	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, "https://catalog.example.com/books/", cfg.ExternalAPIURL)
	assert.Equal(t, "https://api.example.com", cfg.ProjectURL, "trailing slash trimmed")
	assert.False(t, cfg.ShowDocs(), "docs hidden outside local")
	assert.True(t, cfg.CacheDisabled)
}

package config

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestLoadDefaults(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "0123456789abcdef0123")

	cfg, err := Load(discard, filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.DB.Driver)
	assert.Equal(t, "./data/chama.db", cfg.DB.URL)
	assert.Equal(t, 24*time.Hour, cfg.Auth.JWTExpiry)
	assert.Equal(t, 10, cfg.RefCheck.MinLength)
	assert.Equal(t, 500*time.Millisecond, cfg.RefCheck.Debounce)
	assert.True(t, cfg.Loan.EnforceBalance)
	assert.Equal(t, 32, cfg.Live.Buffer)
	assert.Empty(t, cfg.RefCheck.Endpoint)
}

func TestLoadFromEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	contents := "AUTH_JWT_SECRET=from-dotenv-secret-value\n" +
		"DATABASE_DRIVER=postgres\n" +
		"DATABASE_URL=postgres://chama:hunter2@db:5432/chama?sslmode=disable\n" +
		"LOAN_ENFORCE_BALANCE=false\n" +
		"REFCHECK_DEBOUNCE=250ms\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	// godotenv never overrides variables that are already set.
	for _, key := range []string{"AUTH_JWT_SECRET", "DATABASE_DRIVER", "DATABASE_URL", "LOAN_ENFORCE_BALANCE", "REFCHECK_DEBOUNCE"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := Load(discard, path)
	require.NoError(t, err)
	assert.Equal(t, "postgres", cfg.DB.Driver)
	assert.False(t, cfg.Loan.EnforceBalance)
	assert.Equal(t, 250*time.Millisecond, cfg.RefCheck.Debounce)
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"missing secret", map[string]string{}},
		{"short secret", map[string]string{"AUTH_JWT_SECRET": "short"}},
		{"unknown driver", map[string]string{"AUTH_JWT_SECRET": "0123456789abcdef0123", "DATABASE_DRIVER": "mongo"}},
		{"bad log level", map[string]string{"AUTH_JWT_SECRET": "0123456789abcdef0123", "LOG_LEVEL": "loud"}},
		{"bad endpoint", map[string]string{"AUTH_JWT_SECRET": "0123456789abcdef0123", "REFCHECK_ENDPOINT": "not a url"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("AUTH_JWT_SECRET", "")
			os.Unsetenv("AUTH_JWT_SECRET")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load(discard, filepath.Join(t.TempDir(), "missing.env"))
			assert.Error(t, err)
		})
	}
}

func TestMasking(t *testing.T) {
	assert.Equal(t, "****", MaskSecret("abc"))
	assert.Equal(t, "se****et", MaskSecret("secretsecret"))

	assert.Equal(t, "./data/chama.db", MaskURL("./data/chama.db"))
	assert.Equal(t,
		"postgres://chama:%5BMASKED%5D@db:5432/chama?[MASKED]",
		MaskURL("postgres://chama:hunter2@db:5432/chama?sslmode=disable"),
	)
}

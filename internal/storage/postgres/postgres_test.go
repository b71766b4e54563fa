package postgres

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Denniskaninu/chama-smart-sync/internal/storage"
	"github.com/Denniskaninu/chama-smart-sync/internal/storage/storagetest"
)

func TestPostgresStore(t *testing.T) {
	url := os.Getenv("CHAMA_TEST_POSTGRES_URL")
	if url == "" {
		t.Skip("CHAMA_TEST_POSTGRES_URL not set")
	}

	storagetest.Run(t, func(t *testing.T) storage.Store {
		store, err := New(context.Background(), url)
		require.NoError(t, err)
		t.Cleanup(func() { store.Close() })
		return store
	})
}

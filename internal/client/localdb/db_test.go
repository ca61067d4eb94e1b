package localdb

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpen_AppliesMigrations(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "client.db")

	db, err := Open(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`INSERT INTO credentials (slot, token) VALUES (1, 'tok')`)
	require.NoError(t, err)
}

func TestOpen_Reopen(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "client.db")
	ctx := context.Background()

	db, err := Open(ctx, dsn)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO credentials (slot, token) VALUES (1, 'tok')`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	// migrations are idempotent and the data survives a restart
	db2, err := Open(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db2.Close() })

	var token string
	require.NoError(t, db2.QueryRow(`SELECT token FROM credentials WHERE slot = 1`).Scan(&token))
	require.Equal(t, "tok", token)
}

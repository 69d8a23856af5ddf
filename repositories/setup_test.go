package repositories

import (
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

// setupStores opens a Badger database and a Bluge writer in a temporary directory.
func setupStores(t *testing.T) (*badger.DB, *bluge.Writer, *slog.Logger) {
	t.Helper()
	dir := t.TempDir()
	db, err := badger.Open(badger.DefaultOptions(filepath.Join(dir, "badger")).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	writer, err := bluge.OpenWriter(bluge.DefaultConfig(filepath.Join(dir, "bluge")))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = writer.Close()
		_ = db.Close()
	})
	return db, writer, logs.GetLoggerFromLevel(slog.LevelDebug)
}

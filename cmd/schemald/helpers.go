// Shared helpers for schemald CLI commands.
package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/pressmark/schemald/internal/render"
	"github.com/pressmark/schemald/internal/sqlite"
	"github.com/pressmark/schemald/pkg/types"
)

// openStore resolves the data directory and opens the SQLite store. The
// caller must defer store.Close().
func openStore() (*sqlite.Store, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := types.Config{
		Backend: types.BackendSQLite,
		DataDir: dataDir,
	}

	store := sqlite.NewStore()
	if err := store.Open(cfg); err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	return store, nil
}

// newPipeline wires a render pipeline over an open store.
func newPipeline(store *sqlite.Store, log *zap.Logger) *render.Pipeline {
	return render.New(store, store, store, render.WithLogger(log))
}

// newLogger builds the CLI logger. Commands log to stderr so stdout stays
// clean for rendered output.
func newLogger() (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}

package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/pressmark/schemald/pkg/types"
)

// timeLayout is the storage format for timestamps.
const timeLayout = time.RFC3339

// dbFileName is the SQLite database file created inside DataDir.
const dbFileName = "schemald.db"

// Store implements types.ContentStore, types.SiteStore, and
// types.ConfigStore over a SQLite database.
type Store struct {
	mu     sync.RWMutex
	open   bool
	config types.Config
	db     *sql.DB
}

// Interface checks.
var (
	_ types.ContentStore = (*Store)(nil)
	_ types.SiteStore    = (*Store)(nil)
	_ types.ConfigStore  = (*Store)(nil)
)

// NewStore creates an unopened store. Call Open with a Config before use.
func NewStore() *Store {
	return &Store{}
}

// Open initializes the store with the given configuration. Creates DataDir
// if it does not exist and applies the schema. Returns ErrAlreadyOpen if
// called while open.
func (s *Store) Open(config types.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.open {
		return types.ErrAlreadyOpen
	}
	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, dbFileName))
	if err != nil {
		return err
	}
	for _, ddl := range allTables {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return fmt.Errorf("applying schema: %w", err)
		}
	}

	s.db = db
	s.config = config
	s.open = true
	return nil
}

// Close releases the database. Idempotent: closing a closed store succeeds.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return nil
	}
	s.open = false
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			return fmt.Errorf("closing database: %w", err)
		}
		s.db = nil
	}
	return nil
}

// guard returns ErrStoreClosed when the store is not open. Callers must
// hold at least a read lock.
func (s *Store) guard() error {
	if !s.open {
		return types.ErrStoreClosed
	}
	return nil
}

// newUUID generates a UUID v7 string for rows without a natural key.
func newUUID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// parseTime parses a stored timestamp, tolerating legacy date-only values.
func parseTime(raw string) time.Time {
	if t, err := time.Parse(timeLayout, raw); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t
	}
	return time.Time{}
}

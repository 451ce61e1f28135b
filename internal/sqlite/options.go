// Site option and schema config accessors.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pressmark/schemald/pkg/types"
)

// schemaOptionPrefix is where per-key schema configs live in the options
// table, e.g. "schemald_schema_article".
const schemaOptionPrefix = types.OptionPrefix + "schema_"

// Option returns a site option value, or "" when unset.
func (s *Store) Option(key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.guard(); err != nil {
		return "", err
	}

	var value string
	err := s.db.QueryRow(
		"SELECT option_value FROM options WHERE option_name = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading option %q: %w", key, err)
	}
	return value, nil
}

// SetOption creates or replaces a site option.
func (s *Store) SetOption(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.guard(); err != nil {
		return err
	}
	if key == "" {
		return types.ErrInvalidData
	}

	_, err := s.db.Exec(
		`INSERT INTO options (option_name, option_value) VALUES (?, ?)
		 ON CONFLICT(option_name) DO UPDATE SET option_value = excluded.option_value`,
		key, value)
	if err != nil {
		return fmt.Errorf("writing option %q: %w", key, err)
	}
	return nil
}

// SchemaConfig returns the decoded mapping config for a schema key, or
// (nil, nil) when none is saved. A JSON decode failure is also treated as
// nothing-to-render; the raw value stays in place for inspection.
func (s *Store) SchemaConfig(key string) (*types.SchemaConfig, error) {
	raw, err := s.Option(schemaOptionPrefix + key)
	if err != nil {
		return nil, err
	}
	cfg, err := types.DecodeSchemaConfig(raw)
	if err != nil {
		return nil, nil
	}
	return cfg, nil
}

// SetSchemaConfig persists the mapping config for a schema key as one JSON
// option value.
func (s *Store) SetSchemaConfig(key string, cfg *types.SchemaConfig) error {
	if key == "" || cfg == nil {
		return types.ErrInvalidData
	}
	raw, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding schema config %q: %w", key, err)
	}
	return s.SetOption(schemaOptionPrefix+key, string(raw))
}

// SchemaKeys returns every schema key with a saved config, in key order.
func (s *Store) SchemaKeys() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.guard(); err != nil {
		return nil, err
	}

	rows, err := s.db.Query(
		"SELECT option_name FROM options WHERE option_name LIKE ? ORDER BY option_name",
		schemaOptionPrefix+"%")
	if err != nil {
		return nil, fmt.Errorf("listing schema configs: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		keys = append(keys, strings.TrimPrefix(name, schemaOptionPrefix))
	}
	return keys, rows.Err()
}

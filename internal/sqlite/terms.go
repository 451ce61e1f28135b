// Taxonomy term accessors.
package sqlite

import (
	"fmt"

	"github.com/pressmark/schemald/pkg/types"
)

// TermNames returns the names of the post's terms in a taxonomy, in name
// order. A post with no terms in the taxonomy yields an empty slice.
func (s *Store) TermNames(postID int64, taxonomy string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.guard(); err != nil {
		return nil, err
	}

	rows, err := s.db.Query(
		`SELECT t.name FROM terms t
		 JOIN term_relationships r ON r.term_id = t.term_id
		 WHERE r.post_id = ? AND t.taxonomy = ?
		 ORDER BY t.name`, postID, taxonomy)
	if err != nil {
		return nil, fmt.Errorf("querying terms for taxonomy %q: %w", taxonomy, err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// TaxonomyExists reports whether any term exists in the taxonomy.
func (s *Store) TaxonomyExists(taxonomy string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.guard(); err != nil {
		return false, err
	}

	var count int
	err := s.db.QueryRow(
		"SELECT COUNT(*) FROM terms WHERE taxonomy = ?", taxonomy).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("counting terms in %q: %w", taxonomy, err)
	}
	return count > 0, nil
}

// AddTerm creates a term and returns its generated ID.
func (s *Store) AddTerm(term types.Term) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.guard(); err != nil {
		return "", err
	}
	if term.Taxonomy == "" || term.Name == "" {
		return "", types.ErrInvalidData
	}

	id := newUUID()
	_, err := s.db.Exec(
		"INSERT INTO terms (term_id, taxonomy, name, slug) VALUES (?, ?, ?, ?)",
		id, term.Taxonomy, term.Name, term.Slug)
	if err != nil {
		return "", fmt.Errorf("inserting term %q: %w", term.Name, err)
	}
	return id, nil
}

// AttachTerm links an existing term to a post. Attaching twice is a no-op.
func (s *Store) AttachTerm(postID int64, termID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.guard(); err != nil {
		return err
	}
	if postID <= 0 || termID == "" {
		return types.ErrInvalidData
	}

	_, err := s.db.Exec(
		"INSERT OR IGNORE INTO term_relationships (post_id, term_id) VALUES (?, ?)",
		postID, termID)
	if err != nil {
		return fmt.Errorf("attaching term %s to post %d: %w", termID, postID, err)
	}
	return nil
}

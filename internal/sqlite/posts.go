// Post and postmeta accessors.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/pressmark/schemald/pkg/types"
)

// GetPost returns the post with the given ID.
// Returns ErrInvalidID for non-positive IDs and ErrNotFound on a miss.
func (s *Store) GetPost(id int64) (*types.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.guard(); err != nil {
		return nil, err
	}
	if id <= 0 {
		return nil, types.ErrInvalidID
	}

	row := s.db.QueryRow(
		`SELECT post_id, post_type, post_title, post_excerpt, post_content,
		        post_date, post_modified, post_author, featured_image, permalink
		 FROM posts WHERE post_id = ?`, id)
	return hydratePost(row)
}

// SetPost creates or updates a post. A zero ID allocates the next row ID.
// Returns the actual ID used.
func (s *Store) SetPost(p *types.Post) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.guard(); err != nil {
		return 0, err
	}
	if p == nil || p.Type == "" {
		return 0, types.ErrInvalidData
	}

	if p.ID <= 0 {
		res, err := s.db.Exec(
			`INSERT INTO posts (post_type, post_title, post_excerpt, post_content,
			                    post_date, post_modified, post_author, featured_image, permalink)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			p.Type, p.Title, p.Excerpt, p.Content,
			p.Date.Format(timeLayout), p.Modified.Format(timeLayout),
			p.AuthorID, p.FeaturedImage, p.Permalink)
		if err != nil {
			return 0, fmt.Errorf("inserting post: %w", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return 0, fmt.Errorf("reading post id: %w", err)
		}
		p.ID = id
		return id, nil
	}

	_, err := s.db.Exec(
		`INSERT INTO posts (post_id, post_type, post_title, post_excerpt, post_content,
		                    post_date, post_modified, post_author, featured_image, permalink)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(post_id) DO UPDATE SET
		   post_type = excluded.post_type,
		   post_title = excluded.post_title,
		   post_excerpt = excluded.post_excerpt,
		   post_content = excluded.post_content,
		   post_date = excluded.post_date,
		   post_modified = excluded.post_modified,
		   post_author = excluded.post_author,
		   featured_image = excluded.featured_image,
		   permalink = excluded.permalink`,
		p.ID, p.Type, p.Title, p.Excerpt, p.Content,
		p.Date.Format(timeLayout), p.Modified.Format(timeLayout),
		p.AuthorID, p.FeaturedImage, p.Permalink)
	if err != nil {
		return 0, fmt.Errorf("upserting post %d: %w", p.ID, err)
	}
	return p.ID, nil
}

// PostMeta returns the metadata value for a key, or "" when unset.
func (s *Store) PostMeta(postID int64, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.guard(); err != nil {
		return "", err
	}

	var value string
	err := s.db.QueryRow(
		"SELECT meta_value FROM postmeta WHERE post_id = ? AND meta_key = ?",
		postID, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading postmeta %q: %w", key, err)
	}
	return value, nil
}

// SetPostMeta creates or replaces a metadata value on a post.
func (s *Store) SetPostMeta(postID int64, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.guard(); err != nil {
		return err
	}
	if postID <= 0 || key == "" {
		return types.ErrInvalidData
	}

	_, err := s.db.Exec(
		"DELETE FROM postmeta WHERE post_id = ? AND meta_key = ?", postID, key)
	if err != nil {
		return fmt.Errorf("clearing postmeta %q: %w", key, err)
	}
	_, err = s.db.Exec(
		"INSERT INTO postmeta (meta_id, post_id, meta_key, meta_value) VALUES (?, ?, ?, ?)",
		newUUID(), postID, key, value)
	if err != nil {
		return fmt.Errorf("writing postmeta %q: %w", key, err)
	}
	return nil
}

// PostsWithMeta returns the IDs of posts of the given type whose metadata
// key equals value, in ascending ID order.
func (s *Store) PostsWithMeta(postType, key, value string) ([]int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.guard(); err != nil {
		return nil, err
	}

	rows, err := s.db.Query(
		`SELECT p.post_id FROM posts p
		 JOIN postmeta m ON m.post_id = p.post_id
		 WHERE p.post_type = ? AND m.meta_key = ? AND m.meta_value = ?
		 ORDER BY p.post_id`, postType, key, value)
	if err != nil {
		return nil, fmt.Errorf("querying posts with meta %q: %w", key, err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// hydratePost scans a posts row into a types.Post.
func hydratePost(row *sql.Row) (*types.Post, error) {
	var p types.Post
	var date, modified string
	err := row.Scan(&p.ID, &p.Type, &p.Title, &p.Excerpt, &p.Content,
		&date, &modified, &p.AuthorID, &p.FeaturedImage, &p.Permalink)
	if err == sql.ErrNoRows {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning post: %w", err)
	}
	p.Date = parseTime(date)
	p.Modified = parseTime(modified)
	return &p, nil
}

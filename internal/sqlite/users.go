// User and usermeta accessors.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/pressmark/schemald/pkg/types"
)

// GetUser returns the user with the given ID, or ErrNotFound.
func (s *Store) GetUser(id int64) (*types.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.guard(); err != nil {
		return nil, err
	}
	if id <= 0 {
		return nil, types.ErrInvalidID
	}

	var u types.User
	err := s.db.QueryRow(
		"SELECT user_id, user_login, display_name, user_email, user_url FROM users WHERE user_id = ?",
		id).Scan(&u.ID, &u.Login, &u.DisplayName, &u.Email, &u.URL)
	if err == sql.ErrNoRows {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning user %d: %w", id, err)
	}
	return &u, nil
}

// SetUser creates or updates a user. A zero ID allocates the next row ID.
func (s *Store) SetUser(u *types.User) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.guard(); err != nil {
		return 0, err
	}
	if u == nil {
		return 0, types.ErrInvalidData
	}

	if u.ID <= 0 {
		res, err := s.db.Exec(
			"INSERT INTO users (user_login, display_name, user_email, user_url) VALUES (?, ?, ?, ?)",
			u.Login, u.DisplayName, u.Email, u.URL)
		if err != nil {
			return 0, fmt.Errorf("inserting user: %w", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return 0, fmt.Errorf("reading user id: %w", err)
		}
		u.ID = id
		return id, nil
	}

	_, err := s.db.Exec(
		`INSERT INTO users (user_id, user_login, display_name, user_email, user_url)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(user_id) DO UPDATE SET
		   user_login = excluded.user_login,
		   display_name = excluded.display_name,
		   user_email = excluded.user_email,
		   user_url = excluded.user_url`,
		u.ID, u.Login, u.DisplayName, u.Email, u.URL)
	if err != nil {
		return 0, fmt.Errorf("upserting user %d: %w", u.ID, err)
	}
	return u.ID, nil
}

// UserMeta returns a metadata value on a user, or "" when unset.
func (s *Store) UserMeta(userID int64, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.guard(); err != nil {
		return "", err
	}

	var value string
	err := s.db.QueryRow(
		"SELECT meta_value FROM usermeta WHERE user_id = ? AND meta_key = ?",
		userID, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading usermeta %q: %w", key, err)
	}
	return value, nil
}

// SetUserMeta creates or replaces a metadata value on a user.
func (s *Store) SetUserMeta(userID int64, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.guard(); err != nil {
		return err
	}
	if userID <= 0 || key == "" {
		return types.ErrInvalidData
	}

	_, err := s.db.Exec(
		"DELETE FROM usermeta WHERE user_id = ? AND meta_key = ?", userID, key)
	if err != nil {
		return fmt.Errorf("clearing usermeta %q: %w", key, err)
	}
	_, err = s.db.Exec(
		"INSERT INTO usermeta (meta_id, user_id, meta_key, meta_value) VALUES (?, ?, ?, ?)",
		newUUID(), userID, key, value)
	if err != nil {
		return fmt.Errorf("writing usermeta %q: %w", key, err)
	}
	return nil
}

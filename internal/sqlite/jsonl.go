// JSONL fixture loading. Seeds posts, users, terms, options, and schema
// configs from newline-delimited JSON files in a directory, which is how
// CLI demos and integration tests populate a store.
package sqlite

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pressmark/schemald/pkg/types"
)

// Seed file names recognized by LoadJSONL.
const (
	postsFile   = "posts.jsonl"
	usersFile   = "users.jsonl"
	optionsFile = "options.jsonl"
	schemasFile = "schemas.jsonl"
)

// postRecord is the JSONL form of a post plus its attached meta and terms.
type postRecord struct {
	PostID        int64             `json:"post_id"`
	PostType      string            `json:"post_type"`
	PostTitle     string            `json:"post_title"`
	PostExcerpt   string            `json:"post_excerpt"`
	PostContent   string            `json:"post_content"`
	PostDate      string            `json:"post_date"`
	PostModified  string            `json:"post_modified"`
	PostAuthor    int64             `json:"post_author"`
	FeaturedImage string            `json:"featured_image"`
	Permalink     string            `json:"permalink"`
	Meta          map[string]string `json:"meta,omitempty"`
	Terms         []types.Term      `json:"terms,omitempty"`
}

// userRecord is the JSONL form of a user plus its meta.
type userRecord struct {
	UserID      int64             `json:"user_id"`
	Login       string            `json:"user_login"`
	DisplayName string            `json:"display_name"`
	Email       string            `json:"user_email"`
	URL         string            `json:"user_url"`
	Meta        map[string]string `json:"meta,omitempty"`
}

// optionRecord is the JSONL form of one site option.
type optionRecord struct {
	Name  string `json:"option_name"`
	Value string `json:"option_value"`
}

// schemaRecord is the JSONL form of one schema mapping config.
type schemaRecord struct {
	Key    string              `json:"key"`
	Config *types.SchemaConfig `json:"config"`
}

// LoadJSONL seeds the store from the JSONL files present in dir. Missing
// files are skipped; malformed lines are skipped rather than aborting the
// load.
func (s *Store) LoadJSONL(dir string) error {
	if err := s.loadUsers(filepath.Join(dir, usersFile)); err != nil {
		return err
	}
	if err := s.loadPosts(filepath.Join(dir, postsFile)); err != nil {
		return err
	}
	if err := s.loadOptions(filepath.Join(dir, optionsFile)); err != nil {
		return err
	}
	return s.loadSchemas(filepath.Join(dir, schemasFile))
}

func (s *Store) loadPosts(path string) error {
	records, err := readJSONL(path)
	if err != nil {
		return err
	}
	for _, raw := range records {
		var rec postRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			continue
		}
		post := &types.Post{
			ID:            rec.PostID,
			Type:          rec.PostType,
			Title:         rec.PostTitle,
			Excerpt:       rec.PostExcerpt,
			Content:       rec.PostContent,
			Date:          parseSeedTime(rec.PostDate),
			Modified:      parseSeedTime(rec.PostModified),
			AuthorID:      rec.PostAuthor,
			FeaturedImage: rec.FeaturedImage,
			Permalink:     rec.Permalink,
		}
		id, err := s.SetPost(post)
		if err != nil {
			return fmt.Errorf("seeding post %d: %w", rec.PostID, err)
		}
		for key, value := range rec.Meta {
			if err := s.SetPostMeta(id, key, value); err != nil {
				return fmt.Errorf("seeding meta %q on post %d: %w", key, id, err)
			}
		}
		for _, term := range rec.Terms {
			termID, err := s.AddTerm(term)
			if err != nil {
				return fmt.Errorf("seeding term %q: %w", term.Name, err)
			}
			if err := s.AttachTerm(id, termID); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *Store) loadUsers(path string) error {
	records, err := readJSONL(path)
	if err != nil {
		return err
	}
	for _, raw := range records {
		var rec userRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			continue
		}
		user := &types.User{
			ID:          rec.UserID,
			Login:       rec.Login,
			DisplayName: rec.DisplayName,
			Email:       rec.Email,
			URL:         rec.URL,
		}
		id, err := s.SetUser(user)
		if err != nil {
			return fmt.Errorf("seeding user %d: %w", rec.UserID, err)
		}
		for key, value := range rec.Meta {
			if err := s.SetUserMeta(id, key, value); err != nil {
				return fmt.Errorf("seeding meta %q on user %d: %w", key, id, err)
			}
		}
	}
	return nil
}

func (s *Store) loadOptions(path string) error {
	records, err := readJSONL(path)
	if err != nil {
		return err
	}
	for _, raw := range records {
		var rec optionRecord
		if err := json.Unmarshal(raw, &rec); err != nil || rec.Name == "" {
			continue
		}
		if err := s.SetOption(rec.Name, rec.Value); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) loadSchemas(path string) error {
	records, err := readJSONL(path)
	if err != nil {
		return err
	}
	for _, raw := range records {
		var rec schemaRecord
		if err := json.Unmarshal(raw, &rec); err != nil || rec.Key == "" || rec.Config == nil {
			continue
		}
		if err := s.SetSchemaConfig(rec.Key, rec.Config); err != nil {
			return err
		}
	}
	return nil
}

// readJSONL reads a JSONL file and returns each non-empty, parseable line.
// A missing file yields no records and no error; malformed lines are
// skipped.
func readJSONL(path string) ([]json.RawMessage, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var records []json.RawMessage
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		if !json.Valid(line) {
			continue
		}
		cp := make([]byte, len(line))
		copy(cp, line)
		records = append(records, json.RawMessage(cp))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning %s: %w", path, err)
	}
	return records, nil
}

// parseSeedTime parses a fixture timestamp, accepting RFC 3339 or a bare
// date. Unparseable input yields the zero time.
func parseSeedTime(raw string) time.Time {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t
	}
	return time.Time{}
}

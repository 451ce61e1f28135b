// Package integration exercises the SQLite store and the render pipeline
// together, end to end, the way the CLI wires them.
package integration

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pressmark/schemald/internal/render"
	"github.com/pressmark/schemald/internal/sqlite"
	"github.com/pressmark/schemald/pkg/types"
)

// setupStore opens a store backed by an isolated temp directory. Each test
// gets its own database for isolation.
func setupStore(t *testing.T) (*sqlite.Store, string) {
	t.Helper()
	dir := t.TempDir()
	s := sqlite.NewStore()
	if err := s.Open(types.Config{Backend: types.BackendSQLite, DataDir: dir}); err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s, dir
}

// seedBlog populates the store with one author, one article post with a
// byline meta, and the site options the generators read. Returns the post ID.
func seedBlog(t *testing.T, s *sqlite.Store) int64 {
	t.Helper()
	userID, err := s.SetUser(&types.User{ID: 7, DisplayName: "J. Author", URL: "https://example.com/about"})
	if err != nil {
		t.Fatalf("SetUser: %v", err)
	}
	postID, err := s.SetPost(&types.Post{
		ID:        1,
		Type:      "post",
		Title:     "Hello World",
		Date:      time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC),
		Modified:  time.Date(2025, 1, 16, 9, 0, 0, 0, time.UTC),
		AuthorID:  userID,
		Permalink: "https://example.com/hello-world",
	})
	if err != nil {
		t.Fatalf("SetPost: %v", err)
	}
	if err := s.SetPostMeta(postID, "byline", "Jane Doe"); err != nil {
		t.Fatalf("SetPostMeta: %v", err)
	}
	mustSetOption(t, s, types.OptionSiteName, "My Blog")
	mustSetOption(t, s, types.OptionSiteURL, "https://example.com")
	return postID
}

func mustSetOption(t *testing.T, s *sqlite.Store, name, value string) {
	t.Helper()
	if err := s.SetOption(name, value); err != nil {
		t.Fatalf("SetOption(%q): %v", name, err)
	}
}

func mustSetSchema(t *testing.T, s *sqlite.Store, key string, cfg *types.SchemaConfig) {
	t.Helper()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("config %q invalid: %v", key, err)
	}
	if err := s.SetSchemaConfig(key, cfg); err != nil {
		t.Fatalf("SetSchemaConfig(%q): %v", key, err)
	}
}

// articleConfig is a complete post-scoped article mapping that passes
// required-field validation.
func articleConfig() *types.SchemaConfig {
	return &types.SchemaConfig{
		PostType: "post",
		MetaMap: map[string]any{
			"headline":  "post:post_title",
			"author":    "meta:byline",
			"publisher": "site:blogname",
		},
	}
}

func newPipeline(s *sqlite.Store, opts ...render.Option) *render.Pipeline {
	return render.New(s, s, s, opts...)
}

// writeSeedFile writes one JSONL seed file into dir.
func writeSeedFile(t *testing.T, dir, name string, lines []string) {
	t.Helper()
	content := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
}

package resolve

import (
	"reflect"
	"testing"
	"time"

	"github.com/pressmark/schemald/internal/storetest"
	"github.com/pressmark/schemald/pkg/types"
)

func testStore() (*storetest.Store, *types.Post) {
	s := storetest.New()
	post := &types.Post{
		ID:            1,
		Type:          "post",
		Title:         "Hello World",
		Content:       "<p>First paragraph.</p><p>Second one.</p>",
		Date:          time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
		Modified:      time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC),
		AuthorID:      3,
		FeaturedImage: "https://example.com/img.jpg",
		Permalink:     "https://example.com/hello-world",
	}
	s.AddPost(post, map[string]string{"price": "19.99", "subtitle": "A greeting"})
	s.AddUser(&types.User{ID: 3, DisplayName: "Jane Doe", Email: "jane@example.com"},
		map[string]string{"job_title": "Editor"})
	s.SetTerms(1, "category", "News", "Go")
	s.Options[types.OptionSiteName] = "My Blog"
	s.Options[types.OptionSiteURL] = "https://example.com"
	s.Options[types.OptionPrefix+"publisher_slogan"] = "All the news"
	return s, post
}

func TestResolvePostFields(t *testing.T) {
	s, post := testStore()
	r := New(s, s)

	tests := []struct {
		token string
		want  string
	}{
		{"post:post_title", "Hello World"},
		{"post:post_content", "First paragraph. Second one."},
		{"post:post_excerpt", "First paragraph. Second one."},
		{"post:post_date", "2026-03-14T09:30:00+00:00"},
		{"post:post_modified", "2026-03-15T10:00:00+00:00"},
		{"post:featured_image", "https://example.com/img.jpg"},
		{"post:post_author", "Jane Doe"},
		{"post:permalink", "https://example.com/hello-world"},
		{"post:nonexistent_field", ""},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			if got := r.String(tt.token, post); got != tt.want {
				t.Errorf("String(%q) = %q, want %q", tt.token, got, tt.want)
			}
		})
	}
}

func TestResolveExcerptPrefersHandWritten(t *testing.T) {
	s, post := testStore()
	post.Excerpt = "Hand-written excerpt."
	r := New(s, s)
	if got := r.String("post:post_excerpt", post); got != "Hand-written excerpt." {
		t.Errorf("excerpt = %q", got)
	}
}

func TestResolveExcerptTrimsLongContent(t *testing.T) {
	s, post := testStore()
	long := ""
	for i := 0; i < 80; i++ {
		long += "word "
	}
	post.Content = long
	r := New(s, s)
	got := r.String("post:post_excerpt", post)
	if len(got) == 0 || got[len(got)-3:] != "…" {
		t.Errorf("long content should be trimmed with ellipsis, got %q", got)
	}
}

func TestResolveSources(t *testing.T) {
	s, post := testStore()
	r := New(s, s)

	tests := []struct {
		name  string
		token string
		want  string
	}{
		{"meta hit", "meta:price", "19.99"},
		{"meta miss", "meta:absent", ""},
		{"user known field", "user:display_name", "Jane Doe"},
		{"user meta", "user:job_title", "Editor"},
		{"tax", "tax:category", "Go, News"},
		{"tax miss", "tax:genre", ""},
		{"site known", "site:site_name", "My Blog"},
		{"site generic fallback", "site:publisher_slogan", "All the news"},
		{"site miss", "site:unknown_key", ""},
		{"custom", "custom:Verbatim Text", "Verbatim Text"},
		{"custom empty", "custom:", ""},
		{"bare as meta probe", "subtitle", "A greeting"},
		{"bare as literal", "Just Text", "Just Text"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.String(tt.token, post); got != tt.want {
				t.Errorf("String(%q) = %q, want %q", tt.token, got, tt.want)
			}
		})
	}
}

func TestResolveTaxonomyAlias(t *testing.T) {
	s := storetest.New()
	post := &types.Post{ID: 5, Type: "course"}
	s.AddPost(post, nil)
	s.SetTerms(5, "course_tag", "Beginner")
	r := New(s, s)

	if got := r.String("tax:post_tag", post); got != "Beginner" {
		t.Errorf("alias substitution = %q, want Beginner", got)
	}
}

func TestResolveGlobalScope(t *testing.T) {
	s, _ := testStore()
	r := New(s, s)

	for _, token := range []string{"post:post_title", "meta:price", "user:display_name", "tax:category"} {
		if got := r.String(token, nil); got != "" {
			t.Errorf("String(%q, nil) = %q, want empty", token, got)
		}
	}
	if got := r.String("site:site_name", nil); got != "My Blog" {
		t.Errorf("site token should resolve without a post, got %q", got)
	}
	if got := r.String("custom:lit", nil); got != "lit" {
		t.Errorf("custom token should resolve without a post, got %q", got)
	}
}

func TestResolveArrayMerging(t *testing.T) {
	s, post := testStore()
	r := New(s, s)

	got := r.Resolve([]string{"meta:absent", "post:post_title"}, post)
	if got != "Hello World" {
		t.Errorf("single survivor should collapse to scalar, got %v", got)
	}

	got = r.Resolve([]string{"post:post_title", "meta:price"}, post)
	want := []string{"Hello World", "19.99"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("merged = %v, want %v", got, want)
	}

	got = r.Resolve([]string{"meta:absent", "meta:gone"}, post)
	if got != "" {
		t.Errorf("all-empty should resolve to empty, got %v", got)
	}
}

func TestResolveIdempotent(t *testing.T) {
	s, post := testStore()
	r := New(s, s)

	first := r.Resolve("post:post_excerpt", post)
	second := r.Resolve("post:post_excerpt", post)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("resolution not idempotent: %v vs %v", first, second)
	}
}

func TestStripTags(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"<p>a</p> <b>b</b>", "a b"},
		{"a <br/>b", "a b"},
		{"a < b", "a"},
	}
	for _, tt := range tests {
		if got := stripTags(tt.in); got != tt.want {
			t.Errorf("stripTags(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// Package resolve turns mapping tokens into values read from the content
// and site stores. Resolution is pure with respect to store state and never
// fails: unknown or malformed tokens degrade to literal or empty values so
// a misconfigured mapping cannot break a page render.
package resolve

import (
	"strings"

	"github.com/pressmark/schemald/pkg/types"
)

// w3cLayout is the ISO-8601 profile used for resolved post dates.
const w3cLayout = "2006-01-02T15:04:05-07:00"

// excerptWords is the word budget when an excerpt falls back to trimmed
// body content.
const excerptWords = 55

// taxonomyAliases substitutes content-type-specific taxonomies when the
// generic one holds no terms. The aliases are the taxonomy names common
// LMS and commerce plugins register for their course and product content
// types. First existing alias wins.
var taxonomyAliases = map[string][]string{
	"post_tag": {"course_tag", "product_tag"},
	"category": {"course_category", "product_cat"},
}

// siteOptionKeys maps the site: token's friendly names onto stored option
// names. Unrecognized keys fall back to a prefixed option lookup.
var siteOptionKeys = map[string]string{
	"site_name":        types.OptionSiteName,
	"site_description": types.OptionSiteDescription,
	"site_url":         types.OptionSiteURL,
	"logo_url":         types.OptionSiteLogo,
	"admin_email":      types.OptionAdminEmail,
}

// Resolver resolves mapping tokens against the stores.
type Resolver struct {
	content types.ContentStore
	site    types.SiteStore
}

// New creates a Resolver over the given stores.
func New(content types.ContentStore, site types.SiteStore) *Resolver {
	return &Resolver{content: content, site: site}
}

// Resolve resolves a raw mapping value: a token string or a list of token
// strings. List elements resolve independently and non-empty results merge:
// none yields "", exactly one yields that value, several yield a []string.
// post is nil in site-global scope, where content-bound sources resolve
// empty.
func (r *Resolver) Resolve(raw any, post *types.Post) any {
	tokens := rawTokens(raw)
	var values []string
	for _, tok := range tokens {
		v := r.resolveToken(types.ParseToken(tok), post)
		if strings.TrimSpace(v) == "" {
			continue
		}
		values = append(values, v)
	}
	switch len(values) {
	case 0:
		return ""
	case 1:
		return values[0]
	default:
		return values
	}
}

// String resolves a raw mapping value to a single string. Multi-valued
// results are comma-joined.
func (r *Resolver) String(raw any, post *types.Post) string {
	switch v := r.Resolve(raw, post).(type) {
	case string:
		return v
	case []string:
		return strings.Join(v, ", ")
	default:
		return ""
	}
}

// resolveToken dispatches one parsed token to its source.
func (r *Resolver) resolveToken(tok types.Token, post *types.Post) string {
	switch tok.Source {
	case types.SourcePost:
		return r.postField(tok.Arg, post)
	case types.SourceMeta:
		if post == nil {
			return ""
		}
		v, _ := r.content.PostMeta(post.ID, tok.Arg)
		return v
	case types.SourceUser:
		return r.userField(tok.Arg, post)
	case types.SourceTax:
		return r.taxonomyNames(tok.Arg, post)
	case types.SourceSite:
		return r.siteOption(tok.Arg)
	case types.SourceCustom:
		return tok.Arg
	default:
		// Bare string: probe postmeta first, then fall through to the
		// text itself.
		if post != nil && tok.Arg != "" {
			if v, _ := r.content.PostMeta(post.ID, tok.Arg); v != "" {
				return v
			}
		}
		return tok.Arg
	}
}

// postField resolves post: sub-fields.
func (r *Resolver) postField(field string, post *types.Post) string {
	if post == nil {
		return ""
	}
	switch field {
	case "post_title":
		return post.Title
	case "post_excerpt":
		if strings.TrimSpace(post.Excerpt) != "" {
			return post.Excerpt
		}
		return trimWords(stripTags(post.Content), excerptWords)
	case "post_content":
		return strings.TrimSpace(stripTags(post.Content))
	case "post_date":
		if post.Date.IsZero() {
			return ""
		}
		return post.Date.Format(w3cLayout)
	case "post_modified":
		if post.Modified.IsZero() {
			return ""
		}
		return post.Modified.Format(w3cLayout)
	case "featured_image":
		return post.FeaturedImage
	case "post_author":
		return r.authorDisplayName(post)
	case "permalink":
		return post.Permalink
	default:
		return ""
	}
}

// userField resolves user: keys against the post's author.
func (r *Resolver) userField(key string, post *types.Post) string {
	if post == nil || post.AuthorID <= 0 {
		return ""
	}
	user, err := r.content.GetUser(post.AuthorID)
	if err == nil {
		switch key {
		case "display_name":
			return user.DisplayName
		case "user_email":
			return user.Email
		case "user_url":
			return user.URL
		}
	}
	v, _ := r.content.UserMeta(post.AuthorID, key)
	return v
}

// taxonomyNames returns comma-joined term names, substituting an alias
// taxonomy when the requested one holds no terms at all.
func (r *Resolver) taxonomyNames(taxonomy string, post *types.Post) string {
	if post == nil {
		return ""
	}
	tax := taxonomy
	if exists, _ := r.content.TaxonomyExists(tax); !exists {
		for _, alias := range taxonomyAliases[taxonomy] {
			if exists, _ := r.content.TaxonomyExists(alias); exists {
				tax = alias
				break
			}
		}
	}
	names, err := r.content.TermNames(post.ID, tax)
	if err != nil || len(names) == 0 {
		return ""
	}
	return strings.Join(names, ", ")
}

// siteOption resolves site: keys, falling back to a prefixed generic
// option lookup for unrecognized keys.
func (r *Resolver) siteOption(key string) string {
	if option, ok := siteOptionKeys[key]; ok {
		v, _ := r.site.Option(option)
		return v
	}
	v, _ := r.site.Option(types.OptionPrefix + key)
	return v
}

// authorDisplayName returns the post author's display name, or "".
func (r *Resolver) authorDisplayName(post *types.Post) string {
	if post.AuthorID <= 0 {
		return ""
	}
	user, err := r.content.GetUser(post.AuthorID)
	if err != nil {
		return ""
	}
	return user.DisplayName
}

// rawTokens normalizes a mapping value to a token string slice.
func rawTokens(raw any) []string {
	switch v := raw.(type) {
	case string:
		return []string{v}
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, e := range v {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case nil:
		return nil
	default:
		return nil
	}
}

// stripTags removes markup tags from text, leaving the text content.
// Unclosed tags drop the trailing fragment.
func stripTags(s string) string {
	if !strings.ContainsRune(s, '<') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			if inTag {
				inTag = false
				b.WriteRune(' ')
			} else {
				b.WriteRune(r)
			}
		case !inTag:
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// trimWords returns at most n words of s, appending an ellipsis when
// truncation happens.
func trimWords(s string, n int) string {
	words := strings.Fields(s)
	if len(words) <= n {
		return strings.Join(words, " ")
	}
	return strings.Join(words[:n], " ") + "…"
}

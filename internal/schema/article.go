// Article-family generators: Article, BlogPosting, NewsArticle.
package schema

import (
	"strings"

	"github.com/pressmark/schemald/pkg/types"
)

func init() {
	Register(&articleGenerator{key: "article", schemaType: "Article"})
	Register(&articleGenerator{key: "blog", schemaType: "BlogPosting"})
	Register(&articleGenerator{key: "news", schemaType: "NewsArticle"})
}

// articleGenerator covers the three article-family types, which share
// every shaping rule and differ only in @type.
type articleGenerator struct {
	key        string
	schemaType string
}

func (g *articleGenerator) Key() string { return g.key }

func (g *articleGenerator) Type(*types.SchemaConfig) string { return g.schemaType }

func (g *articleGenerator) Generate(c *Context) map[string]any {
	props := make(map[string]any)
	for _, field := range c.fields() {
		v := c.value(field)
		if IsEmpty(v) {
			continue
		}
		switch field {
		case "publisher":
			props["publisher"] = wrapOrganization(c.str(field), c.siteLogo())
		case "author":
			props["author"] = g.authorObject(c)
		case "author_sameAs", "author_url":
			// Folded into the author object below.
		case "image":
			props["image"] = imageObject(c.str(field))
		default:
			props[field] = v
		}
	}

	// The author mapping may be absent while profile data still exists.
	if _, ok := props["author"]; !ok && c.Config.FieldEnabled("author") {
		if author := g.authorObject(c); author != nil {
			props["author"] = author
		}
	}
	return props
}

// authorObject builds the article author, falling back from the mapped
// value (custom field or profile field) to the post author's display name.
// sameAs appears only when the newline-separated URL list is non-empty.
func (g *articleGenerator) authorObject(c *Context) map[string]any {
	name := c.str("author")
	if strings.TrimSpace(name) == "" && c.Post != nil {
		name = c.Resolver.String("post:post_author", c.Post)
	}
	if strings.TrimSpace(name) == "" {
		return nil
	}

	author := wrapPerson(name)
	if url := c.str("author_url"); url != "" {
		author["url"] = url
	}
	if sameAs := c.lines("author_sameAs"); len(sameAs) > 0 {
		author["sameAs"] = sameAs
	}
	return author
}

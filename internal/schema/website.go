// WebSite generator.
package schema

import (
	"strings"

	"github.com/pressmark/schemald/pkg/types"
)

func init() {
	Register(&websiteGenerator{})
}

type websiteGenerator struct{}

func (g *websiteGenerator) Key() string { return "website" }

func (g *websiteGenerator) Type(*types.SchemaConfig) string { return "WebSite" }

func (g *websiteGenerator) Generate(c *Context) map[string]any {
	props := make(map[string]any)
	for _, field := range c.fields() {
		v := c.value(field)
		if IsEmpty(v) {
			continue
		}
		switch field {
		case "search_url":
			// Folded into potentialAction below.
		default:
			props[field] = v
		}
	}

	if action := g.searchAction(c); action != nil {
		props["potentialAction"] = action
	}
	return props
}

// searchAction builds a SearchAction from the search_url mapping, which
// should resolve to the site's search endpoint.
func (g *websiteGenerator) searchAction(c *Context) map[string]any {
	searchURL := c.str("search_url")
	if strings.TrimSpace(searchURL) == "" {
		return nil
	}
	if !strings.Contains(searchURL, "{search_term_string}") {
		searchURL = strings.TrimRight(searchURL, "/") + "/?s={search_term_string}"
	}
	return map[string]any{
		"@type": "SearchAction",
		"target": map[string]any{
			"@type":       "EntryPoint",
			"urlTemplate": searchURL,
		},
		"query-input": "required name=search_term_string",
	}
}

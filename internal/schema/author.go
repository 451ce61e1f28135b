// Author generator. Branches entirely on the configured authorType:
// Person and Organization carry disjoint field sets and the @type always
// follows the configuration, before any validation runs.
package schema

import (
	"strings"

	"github.com/pressmark/schemald/pkg/types"
)

func init() {
	Register(&authorGenerator{})
}

type authorGenerator struct{}

func (g *authorGenerator) Key() string { return "author" }

// Type returns the configured author entity kind, defaulting to Person.
func (g *authorGenerator) Type(cfg *types.SchemaConfig) string {
	if cfg != nil && cfg.AuthorType == types.AuthorOrganization {
		return types.AuthorOrganization
	}
	return types.AuthorPerson
}

// personFields are the properties emitted only for Person authors.
var personFields = map[string]bool{
	"givenName":  true,
	"familyName": true,
	"jobTitle":   true,
	"image":      true,
}

// organizationFields are the properties emitted only for Organization
// authors.
var organizationFields = map[string]bool{
	"logo":        true,
	"telephone":   true,
	"contactType": true,
	"sameAs":      true,
}

func (g *authorGenerator) Generate(c *Context) map[string]any {
	if g.Type(c.Config) == types.AuthorOrganization {
		return g.organization(c)
	}
	return g.person(c)
}

func (g *authorGenerator) person(c *Context) map[string]any {
	props := make(map[string]any)
	for _, field := range c.fields() {
		if organizationFields[field] {
			continue
		}
		v := c.value(field)
		if IsEmpty(v) {
			continue
		}
		// Person images stay plain URLs rather than ImageObjects.
		props[field] = v
	}
	return props
}

func (g *authorGenerator) organization(c *Context) map[string]any {
	props := make(map[string]any)
	for _, field := range c.fields() {
		if personFields[field] {
			continue
		}
		v := c.value(field)
		if IsEmpty(v) {
			continue
		}
		raw := c.str(field)
		switch field {
		case "logo":
			props["logo"] = imageObject(raw)
		case "sameAs":
			if urls := c.lines(field); len(urls) > 0 {
				props["sameAs"] = urls
			}
		case "telephone", "contactType":
			// Composed into contactPoint below.
		default:
			props[field] = v
		}
	}

	if cp := g.contactPoint(c); cp != nil {
		props["contactPoint"] = cp
	}
	return props
}

// contactPoint composes a ContactPoint from the telephone and contactType
// mappings. A phone number alone is enough; the type defaults to customer
// support.
func (g *authorGenerator) contactPoint(c *Context) map[string]any {
	telephone := c.str("telephone")
	if strings.TrimSpace(telephone) == "" {
		return nil
	}
	contactType := c.str("contactType")
	if strings.TrimSpace(contactType) == "" {
		contactType = "customer support"
	}
	return map[string]any{
		"@type":       "ContactPoint",
		"telephone":   telephone,
		"contactType": contactType,
	}
}

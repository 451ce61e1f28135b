// Shared JSON-LD shaping helpers used by several generators.
package schema

import (
	"strings"

	"github.com/spf13/cast"

	"github.com/pressmark/schemald/pkg/types"
)

// Address sub-field property names. These may only ever appear nested
// inside an address object, never at the top level of a schema.
var addressSubFields = []string{
	"streetAddress",
	"addressLocality",
	"addressRegion",
	"postalCode",
	"addressCountry",
}

// wrapPerson wraps a name in a Person object.
func wrapPerson(name string) map[string]any {
	return map[string]any{"@type": "Person", "name": name}
}

// wrapOrganization wraps a name in an Organization object, attaching a
// logo ImageObject when a logo URL is available.
func wrapOrganization(name, logoURL string) map[string]any {
	org := map[string]any{"@type": "Organization", "name": name}
	if strings.TrimSpace(logoURL) != "" {
		org["logo"] = imageObject(logoURL)
	}
	return org
}

// imageObject wraps a URL in an ImageObject.
func imageObject(url string) map[string]any {
	return map[string]any{"@type": "ImageObject", "url": url}
}

// siteLogo returns the configured site logo URL, or "".
func (c *Context) siteLogo() string {
	if c.Site == nil {
		return ""
	}
	logo, _ := c.Site.Option(types.OptionSiteLogo)
	return logo
}

// postalAddress composes a PostalAddress from the generator context's
// mapped address sub-fields. Returns nil unless at least one sub-field
// resolves non-empty. addressCountry is wrapped as a Country object.
func (c *Context) postalAddress() map[string]any {
	addr := map[string]any{"@type": "PostalAddress"}
	filled := false
	for _, field := range addressSubFields {
		v := c.str(field)
		if strings.TrimSpace(v) == "" {
			continue
		}
		filled = true
		if field == "addressCountry" {
			addr[field] = map[string]any{"@type": "Country", "name": v}
		} else {
			addr[field] = v
		}
	}
	if !filled {
		return nil
	}
	return addr
}

// stripTokenRemnants removes mapping-token prefixes that leak into a
// resolved value when an admin pastes a token where a value belongs.
func stripTokenRemnants(v string) string {
	v = strings.TrimPrefix(v, "meta:")
	v = strings.TrimPrefix(v, "tax:")
	return strings.TrimSpace(v)
}

// aggregateRating builds an AggregateRating only when both a positive
// parseable rating and a positive integer count are present.
func aggregateRating(ratingText, countText string) map[string]any {
	rating, err := cast.ToFloat64E(strings.TrimSpace(ratingText))
	if err != nil || rating <= 0 {
		return nil
	}
	count, err := cast.ToIntE(strings.TrimSpace(countText))
	if err != nil || count <= 0 {
		return nil
	}
	return map[string]any{
		"@type":       "AggregateRating",
		"ratingValue": trimFloat(rating),
		"reviewCount": count,
	}
}

// permalink returns the post's canonical URL, or "" in global scope.
func (c *Context) permalink() string {
	if c.Post == nil {
		return ""
	}
	return c.Post.Permalink
}

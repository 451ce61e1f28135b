// Organization-family generators: Organization, Corporation,
// LocalBusiness.
package schema

import (
	"strconv"
	"strings"

	"github.com/pressmark/schemald/pkg/types"
)

func init() {
	Register(&organizationGenerator{key: "organization", schemaType: "Organization"})
	Register(&organizationGenerator{key: "corporation", schemaType: "Corporation"})
	Register(&organizationGenerator{key: "localbusiness", schemaType: "LocalBusiness", local: true})
}

// organizationGenerator covers the organization family. LocalBusiness
// adds geo coordinates and an aggregate rating on top of the shared
// address composition.
type organizationGenerator struct {
	key        string
	schemaType string
	local      bool
}

func (g *organizationGenerator) Key() string { return g.key }

func (g *organizationGenerator) Type(*types.SchemaConfig) string { return g.schemaType }

func (g *organizationGenerator) Generate(c *Context) map[string]any {
	props := make(map[string]any)
	for _, field := range c.fields() {
		v := c.value(field)
		if IsEmpty(v) {
			continue
		}
		raw := c.str(field)
		switch field {
		case "streetAddress", "addressLocality", "addressRegion", "postalCode", "addressCountry":
			// Composed into the address object below; never top-level.
		case "latitude", "longitude", "ratingValue", "reviewCount":
			// LocalBusiness-only composites, handled below.
		case "logo":
			props["logo"] = imageObject(raw)
		case "sameAs":
			if urls := c.lines(field); len(urls) > 0 {
				props["sameAs"] = urls
			}
		default:
			props[field] = v
		}
	}

	if addr := c.postalAddress(); addr != nil {
		props["address"] = addr
	}

	if g.local {
		if geo := g.geo(c); geo != nil {
			props["geo"] = geo
		}
		if rating := aggregateRating(c.str("ratingValue"), c.str("reviewCount")); rating != nil {
			props["aggregateRating"] = rating
		}
	}
	return props
}

// geo builds GeoCoordinates only when both latitude and longitude parse
// and fall within valid ranges.
func (g *organizationGenerator) geo(c *Context) map[string]any {
	lat, latOK := parseCoordinate(c.str("latitude"), 90)
	lon, lonOK := parseCoordinate(c.str("longitude"), 180)
	if !latOK || !lonOK {
		return nil
	}
	return map[string]any{
		"@type":     "GeoCoordinates",
		"latitude":  lat,
		"longitude": lon,
	}
}

// parseCoordinate strips everything but digits, the decimal point, and a
// minus sign, rejects input with more than one decimal point, and
// validates the magnitude bound.
func parseCoordinate(raw string, bound float64) (float64, bool) {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	if cleaned == "" || strings.Count(cleaned, ".") > 1 {
		return 0, false
	}
	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	if value < -bound || value > bound {
		return 0, false
	}
	return value, true
}

// Course generator.
package schema

import (
	"strings"

	"github.com/pressmark/schemald/pkg/types"
)

func init() {
	Register(&courseGenerator{})
}

type courseGenerator struct{}

func (g *courseGenerator) Key() string { return "course" }

func (g *courseGenerator) Type(*types.SchemaConfig) string { return "Course" }

func (g *courseGenerator) Generate(c *Context) map[string]any {
	props := make(map[string]any)
	for _, field := range c.fields() {
		v := c.value(field)
		if IsEmpty(v) {
			continue
		}
		raw := c.str(field)
		switch field {
		case "provider":
			props["provider"] = wrapOrganization(raw, c.siteLogo())
		case "duration":
			if iso := NormalizeCourseDuration(raw); iso != "" {
				props["timeRequired"] = iso
			}
		case "offers":
			if offer := g.offer(c, raw); offer != nil {
				props["offers"] = offer
			}
		case "image":
			props["image"] = imageObject(raw)
		default:
			props[field] = v
		}
	}
	return props
}

// offer builds the course Offer. Free-text containing "free" prices at
// zero; anything else extracts the leading number.
func (g *courseGenerator) offer(c *Context, priceText string) map[string]any {
	var price float64
	if !strings.Contains(strings.ToLower(priceText), "free") {
		extracted, ok := ExtractPrice(priceText)
		if !ok {
			return nil
		}
		price = extracted
	}
	return map[string]any{
		"@type":         "Offer",
		"price":         trimFloat(price),
		"priceCurrency": DetectCurrency(priceText, "USD"),
		"category":      offerCategory(price),
	}
}

// offerCategory labels a course offer Free or Paid by price.
func offerCategory(price float64) string {
	if price == 0 {
		return "Free"
	}
	return "Paid"
}

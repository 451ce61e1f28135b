// Event generator.
package schema

import (
	"strings"

	"github.com/pressmark/schemald/pkg/types"
)

func init() {
	Register(&eventGenerator{})
}

type eventGenerator struct{}

func (g *eventGenerator) Key() string { return "event" }

func (g *eventGenerator) Type(*types.SchemaConfig) string { return "Event" }

func (g *eventGenerator) Generate(c *Context) map[string]any {
	props := make(map[string]any)
	for _, field := range c.fields() {
		v := c.value(field)
		if IsEmpty(v) {
			continue
		}
		raw := c.str(field)
		switch field {
		case "startDate":
			props["startDate"] = NormalizeDateTime(raw, c.now(), false)
		case "endDate":
			props["endDate"] = NormalizeDateTime(raw, c.now(), true)
		case "location":
			props["location"] = map[string]any{
				"@type":   "Place",
				"name":    raw,
				"address": raw,
			}
		case "performer":
			props["performer"] = PersonOrOrganization(raw)
		case "organizer":
			props["organizer"] = map[string]any{"@type": "Organization", "name": raw}
		case "eventStatus":
			props["eventStatus"] = EventStatusURL(raw)
		case "image":
			props["image"] = imageObject(raw)
		case "offers", "cost":
			// Handled below so cost only fills in when offers is unmapped.
		default:
			props[field] = v
		}
	}

	if offer := g.offer(c); offer != nil {
		props["offers"] = offer
	}
	return props
}

// offer builds the event Offer from the offers mapping, falling back to
// the cost mapping only when offers resolves empty.
func (g *eventGenerator) offer(c *Context) map[string]any {
	priceText := c.str("offers")
	if strings.TrimSpace(priceText) == "" {
		priceText = c.str("cost")
	}
	if strings.TrimSpace(priceText) == "" {
		return nil
	}

	price, ok := ExtractPrice(priceText)
	if !ok {
		price = 0
	}
	offer := map[string]any{
		"@type":         "Offer",
		"price":         trimFloat(price),
		"priceCurrency": DetectCurrency(priceText, "USD"),
		"availability":  "https://schema.org/InStock",
		"validFrom":     c.now().Format(w3cLayout),
	}
	if url := c.permalink(); url != "" {
		offer["url"] = url
	}
	return offer
}

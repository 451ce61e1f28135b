// Product generator.
package schema

import (
	"strings"

	"github.com/pressmark/schemald/pkg/types"
)

func init() {
	Register(&productGenerator{})
}

type productGenerator struct{}

func (g *productGenerator) Key() string { return "product" }

func (g *productGenerator) Type(*types.SchemaConfig) string { return "Product" }

// priceFields is the offer price precedence order: the first field that
// resolves to a usable number wins.
var priceFields = []string{"sale_price", "price", "regular_price", "offers"}

func (g *productGenerator) Generate(c *Context) map[string]any {
	props := make(map[string]any)
	for _, field := range c.fields() {
		v := c.value(field)
		if IsEmpty(v) {
			continue
		}
		raw := c.str(field)
		switch field {
		case "brand":
			props["brand"] = map[string]any{
				"@type": "Brand",
				"name":  stripTokenRemnants(raw),
			}
		case "image":
			props["image"] = imageObject(raw)
		case "sale_price", "price", "regular_price", "offers", "stock_status", "currency":
			// Folded into the offer below.
		case "ratingValue", "reviewCount":
			// Folded into aggregateRating below.
		default:
			props[field] = v
		}
	}

	if offer := g.offer(c); offer != nil {
		props["offers"] = offer
	}
	if rating := aggregateRating(c.str("ratingValue"), c.str("reviewCount")); rating != nil {
		props["aggregateRating"] = rating
	}
	return props
}

// offer builds the product Offer. Price precedence is sale price, then
// price, then regular price, then whatever the offers mapping resolves.
// priceValidUntil is always set a year out; a priceSpecification rides
// along when a regular (list) price is present.
func (g *productGenerator) offer(c *Context) map[string]any {
	var priceText string
	for _, field := range priceFields {
		if v := c.str(field); strings.TrimSpace(v) != "" {
			priceText = v
			break
		}
	}
	if priceText == "" {
		return nil
	}
	price, ok := ExtractPrice(priceText)
	if !ok {
		return nil
	}

	currencyHint := priceText + " " + c.str("currency")
	currency := DetectCurrency(currencyHint, "USD")

	offer := map[string]any{
		"@type":           "Offer",
		"price":           trimFloat(price),
		"priceCurrency":   currency,
		"availability":    AvailabilityURL(c.str("stock_status")),
		"priceValidUntil": c.now().AddDate(1, 0, 0).Format("2006-01-02"),
	}
	if url := c.permalink(); url != "" {
		offer["url"] = url
	}

	if regular, ok := ExtractPrice(c.str("regular_price")); ok {
		offer["priceSpecification"] = map[string]any{
			"@type":         "UnitPriceSpecification",
			"priceType":     "https://schema.org/ListPrice",
			"price":         trimFloat(regular),
			"priceCurrency": currency,
		}
	}
	return offer
}

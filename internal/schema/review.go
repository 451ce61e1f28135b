// Review generator.
package schema

import (
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cast"

	"github.com/pressmark/schemald/pkg/types"
)

func init() {
	Register(&reviewGenerator{})
}

type reviewGenerator struct{}

func (g *reviewGenerator) Key() string { return "review" }

func (g *reviewGenerator) Type(*types.SchemaConfig) string { return "Review" }

// ratingMetaKey is the postmeta key sibling reviews store their score
// under; the cross-post aggregate reads it.
const ratingMetaKey = "rating"

func (g *reviewGenerator) Generate(c *Context) map[string]any {
	props := make(map[string]any)
	for _, field := range c.fields() {
		v := c.value(field)
		if IsEmpty(v) {
			continue
		}
		raw := c.str(field)
		switch field {
		case "itemReviewed":
			props["itemReviewed"] = g.itemReviewed(c, raw)
		case "itemReviewed_type":
			// Folded into the itemReviewed object.
		case "reviewRating":
			if rating := RatingObject(raw); rating != nil {
				props["reviewRating"] = rating
			}
		case "author":
			props["author"] = wrapPerson(raw)
		default:
			props[field] = v
		}
	}
	return props
}

// itemReviewed shapes the reviewed item. When the mapping reads from
// postmeta, every other post of the same type sharing the identical value
// is folded into an aggregate rating on the item.
func (g *reviewGenerator) itemReviewed(c *Context, name string) map[string]any {
	itemType := c.str("itemReviewed_type")
	if strings.TrimSpace(itemType) == "" {
		itemType = "Thing"
	}
	item := map[string]any{"@type": itemType, "name": name}

	if agg := g.crossPostAggregate(c, name); agg != nil {
		item["aggregateRating"] = agg
	}
	return item
}

// crossPostAggregate computes the mean rating across the other posts of
// the same type whose itemReviewed metadata matches this one, rounded to
// one decimal, with the contributing review count. The post under render
// does not count toward its own aggregate.
func (g *reviewGenerator) crossPostAggregate(c *Context, itemName string) map[string]any {
	if c.Post == nil || c.Content == nil {
		return nil
	}
	tokens := c.Config.Tokens("itemReviewed")
	if len(tokens) == 0 {
		return nil
	}
	tok := types.ParseToken(tokens[0])
	if tok.Source != types.SourceMeta {
		return nil
	}

	ids, err := c.Content.PostsWithMeta(c.Post.Type, tok.Arg, itemName)
	if err != nil {
		return nil
	}

	var sum float64
	var count int
	for _, id := range ids {
		if id == c.Post.ID {
			continue
		}
		raw, err := c.Content.PostMeta(id, ratingMetaKey)
		if err != nil {
			continue
		}
		rating, err := cast.ToFloat64E(strings.TrimSpace(raw))
		if err != nil || rating <= 0 {
			continue
		}
		sum += rating
		count++
	}
	if count == 0 {
		return nil
	}

	mean := math.Round(sum/float64(count)*10) / 10
	return map[string]any{
		"@type":       "AggregateRating",
		"ratingValue": fmt.Sprintf("%.1f", mean),
		"reviewCount": count,
	}
}

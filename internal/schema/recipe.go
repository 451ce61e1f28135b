// Recipe generator.
package schema

import "github.com/pressmark/schemald/pkg/types"

func init() {
	Register(&recipeGenerator{})
}

type recipeGenerator struct{}

func (g *recipeGenerator) Key() string { return "recipe" }

func (g *recipeGenerator) Type(*types.SchemaConfig) string { return "Recipe" }

func (g *recipeGenerator) Generate(c *Context) map[string]any {
	props := make(map[string]any)
	for _, field := range c.fields() {
		v := c.value(field)
		if IsEmpty(v) {
			continue
		}
		raw := c.str(field)
		switch field {
		case "recipeIngredient":
			if lines := c.lines(field); len(lines) > 0 {
				props["recipeIngredient"] = lines
			}
		case "recipeInstructions":
			if steps := howToSteps(c.lines(field)); len(steps) > 0 {
				props["recipeInstructions"] = steps
			}
		case "prepTime", "cookTime", "totalTime":
			if iso := NormalizeTimeDuration(raw); iso != "" {
				props[field] = iso
			}
		case "author":
			props["author"] = wrapPerson(raw)
		case "image":
			props["image"] = imageObject(raw)
		default:
			props[field] = v
		}
	}
	return props
}

// howToSteps wraps instruction lines in ordered HowToStep objects with
// 1-based positions.
func howToSteps(lines []string) []any {
	steps := make([]any, 0, len(lines))
	for i, line := range lines {
		steps = append(steps, map[string]any{
			"@type":    "HowToStep",
			"position": i + 1,
			"text":     line,
		})
	}
	return steps
}

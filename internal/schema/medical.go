// MedicalCondition generator.
package schema

import "github.com/pressmark/schemald/pkg/types"

func init() {
	Register(&medicalGenerator{})
}

type medicalGenerator struct{}

func (g *medicalGenerator) Key() string { return "medical" }

func (g *medicalGenerator) Type(*types.SchemaConfig) string { return "MedicalCondition" }

// medicalListTypes fixes the nested @type for each list-valued medical
// property.
var medicalListTypes = map[string]string{
	"signOrSymptom":     "MedicalSignOrSymptom",
	"possibleTreatment": "MedicalTherapy",
	"riskFactor":        "MedicalRiskFactor",
	"primaryPrevention": "MedicalTherapy",
}

func (g *medicalGenerator) Generate(c *Context) map[string]any {
	props := make(map[string]any)
	for _, field := range c.fields() {
		v := c.value(field)
		if IsEmpty(v) {
			continue
		}
		if nestedType, ok := medicalListTypes[field]; ok {
			if items := namedItems(c.lines(field), nestedType); len(items) > 0 {
				props[field] = items
			}
			continue
		}
		props[field] = v
	}
	return props
}

// namedItems wraps each line in a typed name-only object.
func namedItems(lines []string, itemType string) []any {
	items := make([]any, 0, len(lines))
	for _, line := range lines {
		items = append(items, map[string]any{"@type": itemType, "name": line})
	}
	return items
}

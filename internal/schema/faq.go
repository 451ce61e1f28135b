// FAQPage generator.
package schema

import (
	"strings"

	"github.com/pressmark/schemald/pkg/types"
)

func init() {
	Register(&faqGenerator{})
}

type faqGenerator struct{}

func (g *faqGenerator) Key() string { return "faq" }

func (g *faqGenerator) Type(*types.SchemaConfig) string { return "FAQPage" }

func (g *faqGenerator) Generate(c *Context) map[string]any {
	props := make(map[string]any)
	for _, field := range c.fields() {
		v := c.value(field)
		if IsEmpty(v) {
			continue
		}
		switch field {
		case "mainEntity":
			if questions := faqQuestions(c.lines(field)); len(questions) > 0 {
				props["mainEntity"] = questions
			}
		default:
			props[field] = v
		}
	}
	return props
}

// faqQuestions parses "question | answer" lines into Question objects.
// Lines without a separator or with an empty side are skipped.
func faqQuestions(lines []string) []any {
	questions := make([]any, 0, len(lines))
	for _, line := range lines {
		question, answer, found := strings.Cut(line, "|")
		if !found {
			continue
		}
		question = strings.TrimSpace(question)
		answer = strings.TrimSpace(answer)
		if question == "" || answer == "" {
			continue
		}
		questions = append(questions, map[string]any{
			"@type": "Question",
			"name":  question,
			"acceptedAnswer": map[string]any{
				"@type": "Answer",
				"text":  answer,
			},
		})
	}
	return questions
}

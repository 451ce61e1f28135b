// JobPosting generator.
package schema

import (
	"sort"
	"strings"

	"github.com/pressmark/schemald/pkg/types"
)

func init() {
	Register(&jobPostingGenerator{})
}

type jobPostingGenerator struct{}

func (g *jobPostingGenerator) Key() string { return "jobposting" }

func (g *jobPostingGenerator) Type(*types.SchemaConfig) string { return "JobPosting" }

// jobLocationKeys maps mapping sub-keys to PostalAddress properties for
// the structured jobLocation form.
var jobLocationKeys = map[string]string{
	"street":          "streetAddress",
	"streetAddress":   "streetAddress",
	"city":            "addressLocality",
	"addressLocality": "addressLocality",
	"region":          "addressRegion",
	"addressRegion":   "addressRegion",
	"postalCode":      "postalCode",
	"zip":             "postalCode",
	"country":         "addressCountry",
	"addressCountry":  "addressCountry",
}

func (g *jobPostingGenerator) Generate(c *Context) map[string]any {
	props := make(map[string]any)
	for _, field := range c.fields() {
		if field == "jobLocation" {
			if loc := g.jobLocation(c); loc != nil {
				props["jobLocation"] = loc
			}
			continue
		}
		v := c.value(field)
		if IsEmpty(v) {
			continue
		}
		raw := c.str(field)
		switch field {
		case "datePosted":
			props["datePosted"] = NormalizeDateTime(raw, c.now(), false)
		case "validThrough":
			props["validThrough"] = NormalizeDateTime(raw, c.now(), true)
		case "baseSalary":
			if amount := MonetaryAmount(raw); amount != nil {
				props["baseSalary"] = amount
			}
		case "hiringOrganization":
			props["hiringOrganization"] = wrapOrganization(raw, c.siteLogo())
		case "employmentType":
			props["employmentType"] = strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(raw), " ", "_"))
		case "educationRequirements":
			props["educationRequirements"] = EducationCategory(raw)
		case "experienceRequirements":
			props["experienceRequirements"] = g.experience(raw)
		default:
			props[field] = v
		}
	}
	return props
}

// experience shapes free-text experience requirements: a recognizable
// duration becomes an OccupationalExperienceRequirements object, anything
// else stays cleaned text.
func (g *jobPostingGenerator) experience(raw string) any {
	if months, ok := ExperienceMonths(raw); ok {
		return map[string]any{
			"@type":              "OccupationalExperienceRequirements",
			"monthsOfExperience": months,
		}
	}
	return strings.TrimSpace(raw)
}

// jobLocation shapes the job location. A structured mapping (sub-key to
// token) fills PostalAddress fields; when no known sub-key resolves, or
// the mapping is a plain token, the flattened text becomes streetAddress.
func (g *jobPostingGenerator) jobLocation(c *Context) map[string]any {
	if !c.Config.FieldEnabled("jobLocation") {
		return nil
	}
	raw, ok := c.Config.MetaMap["jobLocation"]
	if !ok {
		return nil
	}

	addr := map[string]any{"@type": "PostalAddress"}
	filled := false
	if structured, isMap := raw.(map[string]any); isMap {
		for subKey, token := range structured {
			prop, known := jobLocationKeys[subKey]
			if !known {
				continue
			}
			if v := c.Resolver.String(token, c.Post); strings.TrimSpace(v) != "" {
				addr[prop] = v
				filled = true
			}
		}
		if !filled {
			// Fall back to the flattened resolved values, in key order.
			subKeys := make([]string, 0, len(structured))
			for subKey := range structured {
				subKeys = append(subKeys, subKey)
			}
			sort.Strings(subKeys)
			var parts []string
			for _, subKey := range subKeys {
				if v := c.Resolver.String(structured[subKey], c.Post); strings.TrimSpace(v) != "" {
					parts = append(parts, v)
				}
			}
			if len(parts) == 0 {
				return nil
			}
			addr["streetAddress"] = strings.Join(parts, ", ")
		}
	} else {
		v := c.str("jobLocation")
		if strings.TrimSpace(v) == "" {
			return nil
		}
		addr["streetAddress"] = v
	}

	return map[string]any{
		"@type":   "Place",
		"address": addr,
	}
}

// Required-field validation for assembled objects.
package schema

// requiredFields lists, per resolved @type, the properties an object must
// carry to be worth emitting. An entry with alternatives means any one of
// them satisfies the requirement. Types absent from the table have no
// requirements.
var requiredFields = map[string][][]string{
	"Article":     {{"headline", "name"}, {"author"}, {"publisher"}},
	"BlogPosting": {{"headline", "name"}, {"author"}, {"publisher"}},
	"NewsArticle": {{"headline", "name"}, {"author"}, {"publisher"}},
	"FAQPage":     {{"mainEntity"}},
	"Event":       {{"name"}, {"startDate"}},
	"JobPosting":  {{"title"}, {"datePosted"}, {"validThrough"}},
	"Product":     {{"name"}, {"offers"}},
	"Review":      {{"itemReviewed"}, {"reviewRating"}, {"author"}},
	"Course":      {{"name"}, {"provider"}},
	"Recipe":      {{"name"}},

	"MedicalCondition": {{"name"}},
}

// ShouldOutput reports whether an assembled object satisfies the required
// properties for its @type. Objects of types with no requirements pass as
// long as they are non-nil.
func ShouldOutput(obj map[string]any) bool {
	if obj == nil {
		return false
	}
	schemaType, _ := obj["@type"].(string)
	for _, alternatives := range requiredFields[schemaType] {
		if !hasAny(obj, alternatives) {
			return false
		}
	}
	return true
}

// MissingFields returns the unsatisfied requirement groups for an object,
// each rendered as its first alternative's name. Used for check reporting.
func MissingFields(obj map[string]any) []string {
	if obj == nil {
		return nil
	}
	schemaType, _ := obj["@type"].(string)
	var missing []string
	for _, alternatives := range requiredFields[schemaType] {
		if !hasAny(obj, alternatives) {
			missing = append(missing, alternatives[0])
		}
	}
	return missing
}

// hasAny reports whether the object carries a non-empty value under any of
// the given property names.
func hasAny(obj map[string]any, names []string) bool {
	for _, name := range names {
		if v, ok := obj[name]; ok && !IsEmpty(v) {
			return true
		}
	}
	return false
}

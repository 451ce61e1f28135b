// Named text-classification heuristics. Each is a pure function with an
// explicit keyword table so its behavior is documented and testable.
package schema

import (
	"regexp"
	"strings"
)

// organizationIndicators are the substrings that flag a name as an
// organization rather than a person.
var organizationIndicators = []string{
	"inc", "llc", "ltd", "corp", "company",
	"association", "foundation", "group",
}

// LooksLikeOrganization reports whether a free-text name reads as an
// organization, by case-insensitive indicator match.
func LooksLikeOrganization(name string) bool {
	lower := strings.ToLower(name)
	for _, ind := range organizationIndicators {
		if strings.Contains(lower, ind) {
			return true
		}
	}
	return false
}

// PersonOrOrganization wraps a name in a Person or Organization object
// using the indicator heuristic.
func PersonOrOrganization(name string) map[string]any {
	t := "Person"
	if LooksLikeOrganization(name) {
		t = "Organization"
	}
	return map[string]any{"@type": t, "name": name}
}

// eventStatuses maps normalized admin input to Schema.org event status
// URLs. Input may carry an "event" prefix ("EventCancelled").
var eventStatuses = map[string]string{
	"scheduled":   "https://schema.org/EventScheduled",
	"cancelled":   "https://schema.org/EventCancelled",
	"canceled":    "https://schema.org/EventCancelled",
	"postponed":   "https://schema.org/EventPostponed",
	"rescheduled": "https://schema.org/EventRescheduled",
	"movedonline": "https://schema.org/EventMovedOnline",
}

// EventStatusURL maps a free-text event status to its Schema.org URL.
// Already-URL input passes through; anything unrecognized defaults to
// EventScheduled.
func EventStatusURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		return raw
	}
	key := strings.ToLower(raw)
	key = strings.ReplaceAll(key, " ", "")
	key = strings.TrimPrefix(key, "event")
	if url, ok := eventStatuses[key]; ok {
		return url
	}
	return "https://schema.org/EventScheduled"
}

// stockStatuses maps store stock-status keywords to Schema.org item
// availability URLs.
var stockStatuses = map[string]string{
	"outofstock":  "https://schema.org/OutOfStock",
	"onbackorder": "https://schema.org/PreOrder",
}

// AvailabilityURL maps a stock-status keyword to its Schema.org URL,
// defaulting to InStock.
func AvailabilityURL(raw string) string {
	key := strings.ToLower(strings.TrimSpace(raw))
	key = strings.ReplaceAll(key, " ", "")
	if url, ok := stockStatuses[key]; ok {
		return url
	}
	return "https://schema.org/InStock"
}

// educationCategories maps keyword groups to the credential categories
// Google documents for JobPosting educationRequirements.
var educationCategories = []struct {
	keywords []string
	category string
}{
	{[]string{"high school", "highschool", "secondary"}, "high school"},
	{[]string{"associate"}, "associate degree"},
	{[]string{"bachelor", "undergraduate", "bs ", "ba "}, "bachelor degree"},
	{[]string{"postgraduate", "master", "phd", "doctorate", "graduate degree"}, "postgraduate degree"},
	{[]string{"certificate", "certification", "diploma"}, "professional certificate"},
	{[]string{"no requirement", "none required", "not required"}, "no requirements"},
}

// EducationCategory classifies free-text education requirements into a
// documented category, or returns the cleaned text when nothing matches.
func EducationCategory(raw string) string {
	cleaned := strings.TrimSpace(raw)
	lower := strings.ToLower(cleaned)
	for _, ec := range educationCategories {
		for _, kw := range ec.keywords {
			if strings.Contains(lower, kw) {
				return ec.category
			}
		}
	}
	return cleaned
}

var (
	yearsRe  = regexp.MustCompile(`(\d+)(?:\+)?\s*(?:years?|yrs?)`)
	monthsRe = regexp.MustCompile(`(\d+)(?:\+)?\s*months?`)
)

// ExperienceMonths extracts a months-of-experience figure from free text
// ("3 years", "18 months"). Returns (0, false) when no duration appears.
func ExperienceMonths(raw string) (int, bool) {
	lower := strings.ToLower(raw)
	if m := yearsRe.FindStringSubmatch(lower); m != nil {
		years := 0
		for _, r := range m[1] {
			years = years*10 + int(r-'0')
		}
		return years * 12, true
	}
	if m := monthsRe.FindStringSubmatch(lower); m != nil {
		months := 0
		for _, r := range m[1] {
			months = months*10 + int(r-'0')
		}
		return months, true
	}
	return 0, false
}

package schema

import "testing"

func TestPersonOrOrganization(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Jane Doe", "Person"},
		{"Acme Inc.", "Organization"},
		{"Widgets LLC", "Organization"},
		{"The Science Foundation", "Organization"},
		{"John Smith", "Person"},
	}
	for _, tc := range tests {
		got := PersonOrOrganization(tc.name)
		if got["@type"] != tc.want {
			t.Errorf("PersonOrOrganization(%q) @type = %v, want %q", tc.name, got["@type"], tc.want)
		}
		if got["name"] != tc.name {
			t.Errorf("PersonOrOrganization(%q) name = %v", tc.name, got["name"])
		}
	}
}

func TestEventStatusURL(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"Postponed", "https://schema.org/EventPostponed"},
		{"EventCancelled", "https://schema.org/EventCancelled"},
		{"canceled", "https://schema.org/EventCancelled"},
		{"moved online", "https://schema.org/EventMovedOnline"},
		{"https://schema.org/EventRescheduled", "https://schema.org/EventRescheduled"},
		{"banana", "https://schema.org/EventScheduled"},
		{"", "https://schema.org/EventScheduled"},
	}
	for _, tc := range tests {
		if got := EventStatusURL(tc.raw); got != tc.want {
			t.Errorf("EventStatusURL(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestAvailabilityURL(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"outofstock", "https://schema.org/OutOfStock"},
		{"onbackorder", "https://schema.org/PreOrder"},
		{"instock", "https://schema.org/InStock"},
		{"", "https://schema.org/InStock"},
	}
	for _, tc := range tests {
		if got := AvailabilityURL(tc.raw); got != tc.want {
			t.Errorf("AvailabilityURL(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestEducationCategory(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"Bachelor's degree in CS", "bachelor degree"},
		{"Master's or PhD preferred", "postgraduate degree"},
		{"High School diploma", "high school"},
		{"some odd requirement", "some odd requirement"},
	}
	for _, tc := range tests {
		if got := EducationCategory(tc.raw); got != tc.want {
			t.Errorf("EducationCategory(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestExperienceMonths(t *testing.T) {
	tests := []struct {
		raw    string
		months int
		found  bool
	}{
		{"3 years of Go", 36, true},
		{"5+ yrs", 60, true},
		{"18 months", 18, true},
		{"entry level", 0, false},
	}
	for _, tc := range tests {
		months, found := ExperienceMonths(tc.raw)
		if months != tc.months || found != tc.found {
			t.Errorf("ExperienceMonths(%q) = (%d, %v), want (%d, %v)", tc.raw, months, found, tc.months, tc.found)
		}
	}
}

// Date and duration normalization shared across generators.
package schema

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/spf13/cast"
)

// w3cLayout is the ISO-8601 profile emitted for normalized datetimes.
const w3cLayout = "2006-01-02T15:04:05-07:00"

// dateLayouts are the input formats tried, in order, before falling back
// to the bare-date pattern.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"January 2, 2006 15:04",
	"January 2, 2006",
	"Jan 2, 2006",
	"02/01/2006 15:04",
	"02/01/2006",
	"2006/01/02",
}

var bareDateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// NormalizeDateTime parses a human-entered date into ISO-8601. A bare
// YYYY-MM-DD gains a start-of-day or end-of-day time depending on endOfDay.
// Unparseable input degrades to now rather than failing the schema.
func NormalizeDateTime(raw string, now time.Time, endOfDay bool) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return now.Format(w3cLayout)
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(w3cLayout)
		}
	}
	if bareDateRe.MatchString(raw) {
		if endOfDay {
			return raw + "T23:59:59Z"
		}
		return raw + "T00:00:00Z"
	}
	return now.Format(w3cLayout)
}

// NormalizeDate parses a human-entered date into YYYY-MM-DD, degrading to
// today on unparseable input.
func NormalizeDate(raw string, now time.Time) string {
	raw = strings.TrimSpace(raw)
	if bareDateRe.MatchString(raw) {
		return raw
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return now.Format("2006-01-02")
}

var (
	isoDurationRe  = regexp.MustCompile(`^P`)
	numberInTextRe = regexp.MustCompile(`\d+(\.\d+)?`)
)

// Duration units bind to the number they follow, so unit words elsewhere
// in the input ("45 min behind schedule") cannot change the designator.
// Single-letter units count only when adjacent to the digits.
var (
	timeDurationRe   = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(hours?|hrs?|h|minutes?|mins?|m)\b`)
	periodDurationRe = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(months?|weeks?|wks?|days?)\b`)
)

// NormalizeTimeDuration converts "30 minutes" or "1 hour" style input to
// an ISO-8601 duration (PT30M, PT1H). Already-ISO values pass through.
// Input with no recognizable number yields "".
func NormalizeTimeDuration(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if isoDurationRe.MatchString(raw) {
		return raw
	}
	if m := timeDurationRe.FindStringSubmatch(raw); m != nil {
		if strings.HasPrefix(strings.ToLower(m[2]), "h") {
			return "PT" + m[1] + "H"
		}
		return "PT" + m[1] + "M"
	}
	num := numberInTextRe.FindString(raw)
	if num == "" {
		return ""
	}
	// Bare numbers read as minutes.
	return "PT" + num + "M"
}

// NormalizeCourseDuration converts human course lengths to ISO-8601,
// covering calendar units (days, weeks, months) as well as hours and
// minutes. Already-ISO values pass through.
func NormalizeCourseDuration(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if isoDurationRe.MatchString(raw) {
		return raw
	}
	if m := periodDurationRe.FindStringSubmatch(raw); m != nil {
		switch strings.ToLower(m[2])[0] {
		case 'm':
			return "P" + m[1] + "M"
		case 'w':
			return "P" + m[1] + "W"
		default:
			return "P" + m[1] + "D"
		}
	}
	return NormalizeTimeDuration(raw)
}

// RatingObject wraps a numeric rating value in a Schema.org Rating on the
// fixed 1..5 scale. Non-numeric input yields nil.
func RatingObject(raw string) map[string]any {
	value, err := cast.ToFloat64E(strings.TrimSpace(raw))
	if err != nil {
		return nil
	}
	return map[string]any{
		"@type":       "Rating",
		"ratingValue": trimFloat(value),
		"bestRating":  "5",
		"worstRating": "1",
	}
}

// trimFloat renders a float without a trailing ".0" so whole numbers stay
// whole in the output.
func trimFloat(f float64) string {
	s := fmt.Sprintf("%.2f", f)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	if s == "" {
		return "0"
	}
	return s
}

// Price, currency, and salary normalization.
package schema

import (
	"regexp"
	"strconv"
	"strings"
)

var priceNumberRe = regexp.MustCompile(`\d+(\.\d+)?`)

// ExtractPrice pulls the leading numeric substring out of a free-text
// price, tolerating thousands separators. Input with no number yields
// (0, false).
func ExtractPrice(raw string) (float64, bool) {
	cleaned := strings.ReplaceAll(raw, ",", "")
	match := priceNumberRe.FindString(cleaned)
	if match == "" {
		return 0, false
	}
	value, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

// ExtractNumbers pulls every numeric token out of free text, tolerating
// thousands separators. Used by range-aware fields like baseSalary.
func ExtractNumbers(raw string) []float64 {
	cleaned := strings.ReplaceAll(raw, ",", "")
	matches := priceNumberRe.FindAllString(cleaned, -1)
	out := make([]float64, 0, len(matches))
	for _, m := range matches {
		if value, err := strconv.ParseFloat(m, 64); err == nil {
			out = append(out, value)
		}
	}
	return out
}

// currencyIndicators maps symbols and codes to ISO currency codes, checked
// in order: a symbol or code match wins over the default.
var currencyIndicators = []struct {
	indicators []string
	code       string
}{
	{[]string{"$", "usd"}, "USD"},
	{[]string{"€", "eur"}, "EUR"},
	{[]string{"£", "gbp"}, "GBP"},
}

// salaryCurrencyIndicators extends the base set with the regional codes
// salaries use.
var salaryCurrencyIndicators = []struct {
	indicators []string
	code       string
}{
	{[]string{"$", "usd"}, "USD"},
	{[]string{"€", "eur"}, "EUR"},
	{[]string{"£", "gbp"}, "GBP"},
	{[]string{"₹", "inr"}, "INR"},
	{[]string{"pkr"}, "PKR"},
}

// DetectCurrency infers an ISO currency code from symbols or codes in the
// text, falling back to def.
func DetectCurrency(raw, def string) string {
	lower := strings.ToLower(raw)
	for _, c := range currencyIndicators {
		for _, ind := range c.indicators {
			if strings.Contains(lower, ind) {
				return c.code
			}
		}
	}
	return def
}

// DetectSalaryCurrency infers a salary currency, defaulting to PKR.
func DetectSalaryCurrency(raw string) string {
	lower := strings.ToLower(raw)
	for _, c := range salaryCurrencyIndicators {
		for _, ind := range c.indicators {
			if strings.Contains(lower, ind) {
				return c.code
			}
		}
	}
	return "PKR"
}

// salaryUnits maps pay-period keywords to QuantitativeValue unitText.
var salaryUnits = []struct {
	keywords []string
	unit     string
}{
	{[]string{"hour", "hr", "hourly"}, "HOUR"},
	{[]string{"day", "daily"}, "DAY"},
	{[]string{"week", "weekly"}, "WEEK"},
	{[]string{"month", "monthly"}, "MONTH"},
	{[]string{"year", "annual", "annum", "yearly"}, "YEAR"},
}

// DetectSalaryUnit infers the pay period from free text, defaulting to
// YEAR.
func DetectSalaryUnit(raw string) string {
	lower := strings.ToLower(raw)
	for _, u := range salaryUnits {
		for _, kw := range u.keywords {
			if strings.Contains(lower, kw) {
				return u.unit
			}
		}
	}
	return "YEAR"
}

// MonetaryAmount shapes a free-text salary into a Schema.org
// MonetaryAmount. One number becomes a single value; several become a
// min/max range. Text with no numbers yields nil.
func MonetaryAmount(raw string) map[string]any {
	numbers := ExtractNumbers(raw)
	if len(numbers) == 0 {
		return nil
	}

	value := map[string]any{
		"@type":    "QuantitativeValue",
		"unitText": DetectSalaryUnit(raw),
	}
	if len(numbers) == 1 {
		value["value"] = numbers[0]
	} else {
		min, max := numbers[0], numbers[0]
		for _, n := range numbers[1:] {
			if n < min {
				min = n
			}
			if n > max {
				max = n
			}
		}
		value["minValue"] = min
		value["maxValue"] = max
	}

	return map[string]any{
		"@type":    "MonetaryAmount",
		"currency": DetectSalaryCurrency(raw),
		"value":    value,
	}
}

// Package phone normalizes lead phone numbers so scoring and dedup see one
// canonical form.
package phone

import (
	"fmt"

	"github.com/nyaruka/phonenumbers"
)

// Normalize parses a phone number and returns it in E.164 format
// (+15551234567). countryCode is the ISO region used for numbers written
// without a country prefix; it defaults to US.
func Normalize(phone, countryCode string) (string, error) {
	if phone == "" {
		return "", fmt.Errorf("phone number cannot be empty")
	}
	if countryCode == "" {
		countryCode = "US"
	}

	parsed, err := phonenumbers.Parse(phone, countryCode)
	if err != nil {
		return "", fmt.Errorf("failed to parse phone number: %w", err)
	}
	if !phonenumbers.IsValidNumber(parsed) {
		return "", fmt.Errorf("invalid phone number")
	}

	return phonenumbers.Format(parsed, phonenumbers.E164), nil
}

// NormalizeOrKeep normalizes to E.164 when the input parses as a valid
// number and returns the input untouched otherwise. Lead ingestion uses this:
// a messy phone string should never block a lead from being created.
func NormalizeOrKeep(phone, countryCode string) string {
	normalized, err := Normalize(phone, countryCode)
	if err != nil {
		return phone
	}
	return normalized
}

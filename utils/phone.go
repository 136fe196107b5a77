package utils

import (
	"fmt"
	"strings"
)

type phoneRule struct {
	min int // national number digits, excluding the calling code
	max int
}

// phoneRules maps international calling codes to the accepted national
// number length. Codes not listed fall back to the total-length rule in
// ValidatePhone.
var phoneRules = map[string]phoneRule{
	"1":   {10, 10}, // US/Canada
	"7":   {10, 10}, // Russia/Kazakhstan
	"20":  {10, 10}, // Egypt
	"27":  {9, 9},   // South Africa
	"30":  {10, 10}, // Greece
	"31":  {9, 9},   // Netherlands
	"32":  {8, 9},   // Belgium
	"33":  {9, 9},   // France
	"34":  {9, 9},   // Spain
	"39":  {9, 10},  // Italy
	"41":  {9, 9},   // Switzerland
	"44":  {10, 10}, // United Kingdom
	"45":  {8, 8},   // Denmark
	"46":  {7, 10},  // Sweden
	"47":  {8, 8},   // Norway
	"48":  {9, 9},   // Poland
	"49":  {10, 11}, // Germany
	"52":  {10, 10}, // Mexico
	"55":  {10, 11}, // Brazil
	"61":  {9, 9},   // Australia
	"62":  {9, 12},  // Indonesia
	"63":  {10, 10}, // Philippines
	"64":  {8, 10},  // New Zealand
	"65":  {8, 8},   // Singapore
	"81":  {10, 10}, // Japan
	"82":  {9, 10},  // South Korea
	"86":  {11, 11}, // China
	"90":  {10, 10}, // Turkey
	"91":  {10, 10}, // India
	"971": {9, 9},   // UAE
	"972": {9, 9},   // Israel
}

const (
	fallbackMinDigits = 8
	fallbackMaxDigits = 15
)

// ValidatePhone checks an international phone number of the form
// "+<countrycode><nationalnumber>". Known calling codes are validated
// against their national number length; unknown codes only against the
// 8-15 total digit fallback.
func ValidatePhone(phone string) error {
	if !strings.HasPrefix(phone, "+") {
		return fmt.Errorf("phone number must start with +")
	}
	digits := phone[1:]
	if digits == "" {
		return fmt.Errorf("phone number is missing digits")
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return fmt.Errorf("phone number may only contain digits after +")
		}
	}

	// Calling codes are 1-3 digits; match the longest one first.
	for length := 3; length >= 1; length-- {
		if len(digits) < length {
			continue
		}
		rule, ok := phoneRules[digits[:length]]
		if !ok {
			continue
		}
		national := len(digits) - length
		if national < rule.min || national > rule.max {
			return fmt.Errorf("phone number has an invalid length for country code +%s", digits[:length])
		}
		return nil
	}

	if len(digits) < fallbackMinDigits || len(digits) > fallbackMaxDigits {
		return fmt.Errorf("phone number must have %d to %d digits", fallbackMinDigits, fallbackMaxDigits)
	}
	return nil
}

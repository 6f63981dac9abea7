package utils

import (
	"fmt"
	"regexp"
)

var clockRegex = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// ParseClock converts a zero-padded "HH:MM" string to minutes since
// midnight. Only the fixed-width form is accepted; "9:00" is rejected so
// that values stored in the database always compare correctly.
func ParseClock(value string) (int, error) {
	if !clockRegex.MatchString(value) {
		return 0, fmt.Errorf("time %q must be in HH:MM format", value)
	}

	hours := int(value[0]-'0')*10 + int(value[1]-'0')
	minutes := int(value[3]-'0')*10 + int(value[4]-'0')

	return hours*60 + minutes, nil
}

// FormatClock renders minutes since midnight as zero-padded "HH:MM".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// RangesOverlap reports whether the half-open ranges [s1,e1) and [s2,e2)
// intersect.
func RangesOverlap(s1, e1, s2, e2 int) bool {
	return s1 < e2 && s2 < e1
}

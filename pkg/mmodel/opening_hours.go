package mmodel

import (
	"fmt"
	"regexp"
	"strings"
)

// openingHoursPattern accepts one entry of a semicolon-separated list, like
// "Mo-Fr 08:00-18:00", "Sa 10:00-14:00" or a plain time range "08:00-18:00".
var openingHoursPattern = regexp.MustCompile(
	`^(((Mo|Tu|We|Th|Fr|Sa|Su)(-(Mo|Tu|We|Th|Fr|Sa|Su))?(,(Mo|Tu|We|Th|Fr|Sa|Su)(-(Mo|Tu|We|Th|Fr|Sa|Su))?)*\s+)?([01]?\d|2[0-3]):[0-5]\d-([01]?\d|2[0-3]):[0-5]\d|24/7|off)$`)

// ParseOpeningHours validates an opening-hours expression and returns its
// normalized form.
func ParseOpeningHours(s string) (string, error) {
	normalized := strings.TrimSpace(s)
	if normalized == "" {
		return "", fmt.Errorf("empty opening hours")
	}

	for _, entry := range strings.Split(normalized, ";") {
		entry = strings.TrimSpace(entry)
		if !openingHoursPattern.MatchString(entry) {
			return "", fmt.Errorf("invalid opening hours entry: %q", entry)
		}
	}

	return normalized, nil
}

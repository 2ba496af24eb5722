package services

import (
	"regexp"
	"strconv"
	"strings"
)

var timeWindowRe = regexp.MustCompile(`(?i)(\d{1,2})(?::(\d{2}))?\s*(am|pm)?`)

// timeWindowMinutes converts the leading time of a window like
// "10AM - 12PM" or "1PM - 4PM" to minutes since midnight, for sorting.
// Unparseable input sorts last.
func timeWindowMinutes(window string) int {
	m := timeWindowRe.FindStringSubmatch(window)
	if m == nil {
		return 9999
	}
	h, _ := strconv.Atoi(m[1])
	min := 0
	if m[2] != "" {
		min, _ = strconv.Atoi(m[2])
	}
	mer := strings.ToLower(m[3])
	if mer == "pm" && h < 12 {
		h += 12
	}
	if mer == "am" && h == 12 {
		h = 0
	}
	return h*60 + min
}

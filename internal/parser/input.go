package parser

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the only accepted explicit date format.
const DateLayout = "2006-01-02"

// ParseNumber parses a dialogue answer that must be an integer.
// No range is enforced: the dialogue deliberately accepts any integer
// for exercise numbers, hours and minutes.
func ParseNumber(input string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, fmt.Errorf("not a whole number: %q", input)
	}
	return n, nil
}

// ParseFlightDate parses the date answer of the entry dialogue.
// An empty answer, a lone "-" or the word "today" (any case) resolve
// to now's calendar date; anything else must match YYYY-MM-DD exactly.
func ParseFlightDate(input string, now time.Time) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" || input == "-" || strings.EqualFold(input, "today") {
		return now.Format(DateLayout), nil
	}

	t, err := time.Parse(DateLayout, input)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: use YYYY-MM-DD or \"-\"", input)
	}
	return t.Format(DateLayout), nil
}

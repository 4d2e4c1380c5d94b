package gmp

import (
	"strconv"
	"strings"
	"time"
)

const closingDateLayout = "2 Jan 2006"

// LastFragment returns the end of a date range such as "1-3 Sept". Input
// with no hyphen, or with more than one, is returned trimmed but otherwise
// unchanged.
func LastFragment(text string) string {
	parts := strings.Split(text, "-")
	if len(parts) == 2 {
		return strings.TrimSpace(parts[1])
	}
	return strings.TrimSpace(text)
}

// NormalizeDate parses a "<day> <month>" fragment in the given year. Only the
// first three characters of the month are used, so "Sept" and "September"
// both read as September. Anything that is not exactly two tokens, or does
// not parse, reports false.
func NormalizeDate(fragment string, year int) (time.Time, bool) {
	tokens := strings.Fields(fragment)
	if len(tokens) != 2 {
		return time.Time{}, false
	}

	day, month := tokens[0], tokens[1]
	if r := []rune(month); len(r) > 3 {
		month = string(r[:3])
	}

	t, err := time.Parse(closingDateLayout, day+" "+month+" "+strconv.Itoa(year))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ClosingDate resolves the closing column of a row, e.g. "15-20 October".
// Source dates carry no year, so a December closing date read in January
// lands in the wrong year.
func ClosingDate(text string, year int) (time.Time, bool) {
	return NormalizeDate(LastFragment(text), year)
}

// SameDay compares calendar dates, ignoring time of day and location.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// Package dateutils provides the date parsing and formatting helpers used by
// the statement parser and the rule engine.
package dateutils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Date format constants used throughout the application.
const (
	// DateLayoutStatement matches dates as printed on statement lines,
	// e.g. "12 Mar 2024". Single digit days parse too.
	DateLayoutStatement = "2 Jan 2006"
	// DateLayoutStatementNoYear matches year-less statement dates, e.g. "12 Mar".
	DateLayoutStatementNoYear = "2 Jan"
	// DateLayoutPeriod matches statement period dates, e.g. "15/03/2024".
	DateLayoutPeriod = "02/01/2006"
	// DateLayoutOutput is the format written to the CSV output (DD/MM/YYYY).
	DateLayoutOutput = "02/01/2006"
	// DateLayoutISO is the format rule date conditions use (YYYY-MM-DD).
	DateLayoutISO = "2006-01-02"
)

// CommonFormats is a list of formats to try when parsing free-form dates,
// most specific first.
var CommonFormats = []string{
	DateLayoutStatement,
	DateLayoutISO,
	DateLayoutPeriod,
	"2006-01-02 15:04:05",
	"02.01.2006",
	"2 January 2006",
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// CleanDateString removes unwanted characters and normalizes a date string.
func CleanDateString(dateStr string) string {
	return whitespaceRe.ReplaceAllString(strings.TrimSpace(dateStr), " ")
}

// ParseDate attempts to parse a date string using multiple common formats.
// Returns the parsed time and the detected format.
func ParseDate(dateStr string) (time.Time, string, error) {
	dateStr = CleanDateString(dateStr)

	for _, format := range CommonFormats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return t, format, nil
		}
	}

	return time.Time{}, "", fmt.Errorf("unable to parse date: %s", dateStr)
}

// ParseStatementDate parses a date as it appears on a statement line. The
// returned bool reports whether the date carried a year; year-less dates
// come back with the zero year and need year inference by the caller.
// Month abbreviations are accepted in any case ("DEC", "dec", "Dec").
func ParseStatementDate(dateStr string) (time.Time, bool, error) {
	dateStr = normalizeMonthCase(CleanDateString(dateStr))

	if t, err := time.Parse(DateLayoutStatement, dateStr); err == nil {
		return t, true, nil
	}
	if t, err := time.Parse(DateLayoutStatementNoYear, dateStr); err == nil {
		return t, false, nil
	}

	return time.Time{}, false, fmt.Errorf("unable to parse statement date: %s", dateStr)
}

// normalizeMonthCase rewrites the month token to the capitalization
// time.Parse expects, so "12 DEC 2024" parses like "12 Dec 2024".
func normalizeMonthCase(dateStr string) string {
	fields := strings.Fields(dateStr)
	if len(fields) < 2 {
		return dateStr
	}
	month := strings.ToLower(fields[1])
	fields[1] = strings.ToUpper(month[:1]) + month[1:]
	return strings.Join(fields, " ")
}

// ParseConditionDate parses a rule condition date, which must be YYYY-MM-DD.
func ParseConditionDate(dateStr string) (time.Time, error) {
	return time.Parse(DateLayoutISO, strings.TrimSpace(dateStr))
}

// ParsePeriodDate parses a statement period boundary (DD/MM/YYYY).
func ParsePeriodDate(dateStr string) (time.Time, error) {
	return time.Parse(DateLayoutPeriod, strings.TrimSpace(dateStr))
}

// ParseOutputDate parses a date in the CSV output format (DD/MM/YYYY).
func ParseOutputDate(dateStr string) (time.Time, error) {
	return time.Parse(DateLayoutOutput, strings.TrimSpace(dateStr))
}

// ToOutputFormat formats a date the way the CSV output expects (DD/MM/YYYY).
func ToOutputFormat(date time.Time) string {
	if date.IsZero() {
		return ""
	}
	return date.Format(DateLayoutOutput)
}

// CompareDates compares the calendar dates of two times, ignoring the time
// of day, and returns:
//
//	-1 if date1 is before date2
//	 0 if date1 is equal to date2
//	 1 if date1 is after date2
func CompareDates(date1, date2 time.Time) int {
	date1 = time.Date(date1.Year(), date1.Month(), date1.Day(), 0, 0, 0, 0, time.UTC)
	date2 = time.Date(date2.Year(), date2.Month(), date2.Day(), 0, 0, 0, 0, time.UTC)

	if date1.Before(date2) {
		return -1
	} else if date1.After(date2) {
		return 1
	}
	return 0
}

// WithYear returns the same calendar day with the year replaced.
func WithYear(date time.Time, year int) time.Time {
	return time.Date(year, date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

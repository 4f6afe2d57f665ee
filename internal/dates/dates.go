// Package dates normalizes free-form syllabus date tokens to ISO-8601.
package dates

import (
	"regexp"
	"sort"
	"strings"
	"time"
)

var (
	isoRe     = regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b`)
	yearRe    = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)
	ordinalRe = regexp.MustCompile(`(\d{1,2})(?:st|nd|rd|th)\b`)
	septRe    = regexp.MustCompile(`(?i)\bSept\b`)
	wsRunRe   = regexp.MustCompile(`\s+`)

	monthRe = regexp.MustCompile(`(?i)\b(?:Jan(?:uary)?|Feb(?:ruary)?|Mar(?:ch)?|Apr(?:il)?|May|Jun(?:e)?|Jul(?:y)?|Aug(?:ust)?|Sep(?:t(?:ember)?)?|Oct(?:ober)?|Nov(?:ember)?|Dec(?:ember)?)\.?\s+\d{1,2}(?:st|nd|rd|th)?(?:,?\s+\d{4})?`)
)

var layouts = []string{
	"January 2, 2006",
	"January 2 2006",
	"Jan 2, 2006",
	"Jan 2 2006",
	"January 2",
	"Jan 2",
}

// Normalize converts a date token to YYYY-MM-DD. Returns "" when the token
// cannot be resolved to a full calendar date; it never fails.
func Normalize(token string) string {
	t := strings.TrimSpace(token)
	if len(t) == 10 && isoRe.MatchString(t) {
		if _, err := time.Parse("2006-01-02", t); err != nil {
			return ""
		}
		return t
	}
	t = ordinalRe.ReplaceAllString(t, "$1")
	t = septRe.ReplaceAllString(t, "Sep")
	t = strings.ReplaceAll(t, ".", "")
	t = wsRunRe.ReplaceAllString(t, " ")
	for _, layout := range layouts {
		d, err := time.Parse(layout, t)
		if err != nil {
			continue
		}
		// a month and day alone cannot make an ISO date
		if d.Year() == 0 {
			return ""
		}
		return d.Format("2006-01-02")
	}
	return ""
}

// Extract finds every ISO and month-name date in text, inferring a missing
// year from the first 4-digit year found anywhere in the string. Results are
// deduplicated and sorted ascending.
func Extract(text string) []string {
	seen := map[string]bool{}
	var out []string
	add := func(iso string) {
		if iso != "" && !seen[iso] {
			seen[iso] = true
			out = append(out, iso)
		}
	}

	for _, m := range isoRe.FindAllString(text, -1) {
		add(Normalize(m))
	}

	year := yearRe.FindString(text)
	for _, m := range monthRe.FindAllString(text, -1) {
		if year != "" && !yearRe.MatchString(m) {
			m = m + ", " + year
		}
		add(Normalize(m))
	}

	sort.Strings(out)
	return out
}

// FirstIndex reports the byte offset of the first date-looking token in s,
// or -1 when there is none.
func FirstIndex(s string) int {
	idx := -1
	if loc := isoRe.FindStringIndex(s); loc != nil {
		idx = loc[0]
	}
	if loc := monthRe.FindStringIndex(s); loc != nil && (idx == -1 || loc[0] < idx) {
		idx = loc[0]
	}
	return idx
}

package textclean

import (
	"regexp"
	"strings"
)

var (
	trailingWSRe  = regexp.MustCompile(`[ \t]+\n`)
	hyphenBreakRe = regexp.MustCompile(`-\n`)
	blankRunRe    = regexp.MustCompile(`\n{4,}`) // three or more blank lines
)

// Clean repairs common PDF-extraction artifacts: hyphenation split across a
// line break, carriage returns, trailing whitespace and runs of blank lines.
// Idempotent.
func Clean(raw string) string {
	s := strings.ReplaceAll(raw, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = trailingWSRe.ReplaceAllString(s, "\n")
	s = hyphenBreakRe.ReplaceAllString(s, "")
	// de-hyphenation can leave a dangling space before a break
	s = trailingWSRe.ReplaceAllString(s, "\n")
	s = blankRunRe.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

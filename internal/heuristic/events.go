package heuristic

import (
	"strings"
	"unicode/utf8"

	"github.com/MalithGihan/syllabus-service/internal/dates"
	"github.com/MalithGihan/syllabus-service/pkg/types"
)

const (
	maxEvents     = 20
	maxSummaryLen = 400
	maxTitleLen   = 120
	summaryLines  = 5
)

var eventKeywords = []string{
	"exam", "midterm", "final", "quiz", "assignment", "project", "due",
}

// ExtractEvents scans cleaned text for deadline-carrying lines and emits one
// event per (line, date) pair, capped at 20. The summary is built from the
// first five non-empty lines.
func ExtractEvents(text string) (string, []types.Event) {
	var lines []string
	for _, ln := range strings.Split(text, "\n") {
		if ln = strings.TrimSpace(ln); ln != "" {
			lines = append(lines, ln)
		}
	}

	head := lines
	if len(head) > summaryLines {
		head = head[:summaryLines]
	}
	summary := truncate(strings.Join(head, " "), maxSummaryLen)

	var events []types.Event
	for _, line := range lines {
		if len(events) >= maxEvents {
			break
		}
		if !containsAny(strings.ToLower(line), eventKeywords) {
			continue
		}
		ds := dates.Extract(line)
		if len(ds) == 0 {
			continue
		}
		title := line
		if idx := dates.FirstIndex(line); idx > 0 {
			if t := strings.Trim(strings.TrimSpace(line[:idx]), "-–—:,("); t != "" {
				title = strings.TrimSpace(t)
			}
		}
		title = truncate(title, maxTitleLen)
		for _, d := range ds {
			if len(events) >= maxEvents {
				break
			}
			events = append(events, types.Event{Title: title, Date: d})
		}
	}
	return summary, events
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	// back up to a rune boundary
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return strings.TrimSpace(s[:n])
}

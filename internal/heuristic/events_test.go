package heuristic

import (
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/MalithGihan/syllabus-service/pkg/types"
)

func TestExtractEvents(t *testing.T) {
	text := strings.Join([]string{
		"CS 301: Algorithms",
		"Fall 2025, Section A",
		"Instructor: Dr. Example",
		"",
		"Assignment 1 due September 23rd, 2025",
		"Lecture on September 9, 2025 covers sorting",
		"Midterm Oct 3 and Final Dec 12, 2025",
		"Assignments are due weekly",
	}, "\n")

	summary, events := ExtractEvents(text)

	assert.True(t, strings.HasPrefix(summary, "CS 301: Algorithms Fall 2025"))
	assert.Equal(t, []types.Event{
		{Title: "Assignment 1 due", Date: "2025-09-23"},
		{Title: "Midterm", Date: "2025-10-03"},
		{Title: "Midterm", Date: "2025-12-12"},
	}, events)
}

func TestExtractEventsLineWithLeadingDate(t *testing.T) {
	_, events := ExtractEvents("2025-10-03: Midterm exam")
	assert.Equal(t, []types.Event{
		{Title: "2025-10-03: Midterm exam", Date: "2025-10-03"},
	}, events)
}

func TestExtractEventsTitleTruncated(t *testing.T) {
	line := "Project " + strings.Repeat("milestone ", 20) + "due December 1, 2025"
	_, events := ExtractEvents(line)
	assert.Len(t, events, 1)
	assert.LessOrEqual(t, len(events[0].Title), 120)
}

func TestExtractEventsMultibyteTitleTruncation(t *testing.T) {
	// 3-byte runes offset by one byte so the 120-byte cut lands mid-rune
	line := "A" + strings.Repeat("€", 50) + " assignment due December 1, 2025"
	_, events := ExtractEvents(line)
	assert.Len(t, events, 1)
	assert.True(t, utf8.ValidString(events[0].Title))
	assert.LessOrEqual(t, len(events[0].Title), 120)
}

func TestExtractEventsMultibyteSummaryTruncation(t *testing.T) {
	summary, _ := ExtractEvents("A" + strings.Repeat("é", 300))
	assert.True(t, utf8.ValidString(summary))
	assert.LessOrEqual(t, len(summary), 400)
}

func TestExtractEventsCap(t *testing.T) {
	var lines []string
	for i := 1; i <= 25; i++ {
		lines = append(lines, fmt.Sprintf("Assignment %d due 2025-10-%02d", i, (i%28)+1))
	}
	_, events := ExtractEvents(strings.Join(lines, "\n"))
	assert.Len(t, events, 20)
}

func TestExtractEventsSummaryTruncated(t *testing.T) {
	long := strings.Repeat("course description ", 40)
	summary, _ := ExtractEvents(long)
	assert.LessOrEqual(t, len(summary), 400)
}

func TestExtractEventsEmpty(t *testing.T) {
	summary, events := ExtractEvents("")
	assert.Empty(t, summary)
	assert.Empty(t, events)
}

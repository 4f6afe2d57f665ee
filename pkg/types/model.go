package types

// Event is a single dated deliverable pulled from a syllabus.
type Event struct {
	Title string `json:"title"`
	Date  string `json:"date"` // YYYY-MM-DD, empty when unknown
}

// Assessment is one graded category and its percentage of the final grade.
type Assessment struct {
	Name   string  `json:"name"`
	Weight float64 `json:"weight"`
}

// ParseResult is the summary produced for one uploaded document.
type ParseResult struct {
	Summary     string       `json:"summary"`
	Events      []Event      `json:"events"`
	Evaluations []Assessment `json:"evaluations"`
}

// RawEvent and RawEvaluation mirror the structured-extraction service's
// output before post-processing. A date field may carry several dates and a
// weight may arrive as a number or a string.
type RawEvent struct {
	Title string `json:"title"`
	Date  string `json:"date"`
}

type RawEvaluation struct {
	Name   string `json:"name"`
	Weight any    `json:"weight"`
}

type SyllabusExtraction struct {
	Summary     string          `json:"summary"`
	Events      []RawEvent      `json:"events"`
	Evaluations []RawEvaluation `json:"evaluations"`
}

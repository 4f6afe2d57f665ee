package textclean

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "joins hyphenated line break",
			in:   "assign-\nment due",
			want: "assignment due",
		},
		{
			name: "normalizes carriage returns",
			in:   "week 1\r\nweek 2\rweek 3",
			want: "week 1\nweek 2\nweek 3",
		},
		{
			name: "strips trailing whitespace before breaks",
			in:   "Grading  \t\nPolicy",
			want: "Grading\nPolicy",
		},
		{
			name: "collapses runs of blank lines",
			in:   "intro\n\n\n\n\nschedule",
			want: "intro\n\nschedule",
		},
		{
			name: "keeps a single blank line",
			in:   "intro\n\nschedule",
			want: "intro\n\nschedule",
		},
		{
			name: "keeps two blank lines",
			in:   "intro\n\n\nschedule",
			want: "intro\n\n\nschedule",
		},
		{
			name: "trims the document",
			in:   "  \n\nCourse Outline\n  ",
			want: "Course Outline",
		},
		{
			name: "empty input",
			in:   "   \n\t\n",
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Clean(tt.in))
		})
	}
}

func TestCleanIdempotent(t *testing.T) {
	inputs := []string{
		"Week 1  \r\nIntro-\nduction\n\n\n\nEnd  ",
		"Syllabus-\n\n\nPart 2",
		"already clean\n\ntext",
		"dangling -\n\nbreak",
	}
	for _, in := range inputs {
		once := Clean(in)
		assert.Equal(t, once, Clean(once), "input %q", in)
	}
}

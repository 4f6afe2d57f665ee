package heuristic

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MalithGihan/syllabus-service/pkg/types"
)

func TestExtractEvaluations(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  []types.Assessment
	}{
		{
			name: "weights already summing to 100",
			lines: []string{
				"Assignments  40%",
				"Midterm exam  25%",
				"Final exam  35%",
			},
			want: []types.Assessment{
				{Name: "Assignments", Weight: 40},
				{Name: "Midterm exam", Weight: 25},
				{Name: "Final exam", Weight: 35},
			},
		},
		{
			name: "policy line with a percentage is excluded",
			lines: []string{
				"Policy: late submissions lose 10% per day",
				"Assignments  40%",
				"Final exam  60%",
			},
			want: []types.Assessment{
				{Name: "Assignments", Weight: 40},
				{Name: "Final exam", Weight: 60},
			},
		},
		{
			name:  "allow-list keyword final without heading context",
			lines: []string{"Final Examination — 40%"},
			want:  []types.Assessment{{Name: "Final Examination", Weight: 100}},
		},
		{
			name: "numeric line without assessment keyword is skipped",
			lines: []string{
				"Room capacity is limited to 80%",
				"Quizzes  50%",
				"Homework  50%",
			},
			want: []types.Assessment{
				{Name: "Quizzes", Weight: 50},
				{Name: "Homework", Weight: 50},
			},
		},
		{
			name: "rescales to 100",
			lines: []string{
				"Midterm  20%",
				"Final exam  30%",
			},
			want: []types.Assessment{
				{Name: "Midterm", Weight: 40},
				{Name: "Final exam", Weight: 60},
			},
		},
		{
			name: "dedupe keeps max weight case-insensitively",
			lines: []string{
				"Quizzes  10%",
				"Homework  30%",
				"QUIZZES  15%",
			},
			want: []types.Assessment{
				{Name: "Quizzes", Weight: 33.33},
				{Name: "Homework", Weight: 66.67},
			},
		},
		{
			name:  "item count prefix is stripped",
			lines: []string{"3 Assignments 45%", "Final exam 55%"},
			want: []types.Assessment{
				{Name: "Assignments", Weight: 45},
				{Name: "Final exam", Weight: 55},
			},
		},
		{
			name:  "colon separator",
			lines: []string{"Participation: 10%", "Project: 90%"},
			want: []types.Assessment{
				{Name: "Participation", Weight: 10},
				{Name: "Project", Weight: 90},
			},
		},
		{
			name:  "weight above 100 is rejected",
			lines: []string{"Final exam 150%", "Homework  100%"},
			want:  []types.Assessment{{Name: "Homework", Weight: 100}},
		},
		{
			name:  "bare number without percent marker is rejected",
			lines: []string{"Assignments 30", "Lab reports 100%"},
			want:  []types.Assessment{{Name: "Lab reports", Weight: 100}},
		},
		{
			name:  "nothing usable",
			lines: []string{"Welcome to the course", "Office: room 204"},
			want:  nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractEvaluations(tt.lines))
		})
	}
}

func TestExtractEvaluationsCap(t *testing.T) {
	var lines []string
	for i := 1; i <= 12; i++ {
		lines = append(lines, fmt.Sprintf("Lab %d report  5%%", i))
	}
	got := ExtractEvaluations(lines)
	assert.Len(t, got, 10)
}

func TestNormalizeWeightsSum(t *testing.T) {
	sets := [][]float64{
		{40, 25, 35},
		{20, 30},
		{1, 1, 1},
		{1, 2, 4},
		{10, 10, 10, 10, 10, 10, 10},
		{33.5, 66.5, 12},
		{0, 50},
	}
	for _, ws := range sets {
		var evals []types.Assessment
		for i, w := range ws {
			evals = append(evals, types.Assessment{Name: fmt.Sprintf("cat %d", i), Weight: w})
		}
		got := NormalizeWeights(evals)
		var sum float64
		for _, e := range got {
			sum += e.Weight
		}
		require.InDelta(t, 100, sum, 0.05, "weights %v", ws)
	}
}

func TestNormalizeWeightsZeroSum(t *testing.T) {
	evals := []types.Assessment{{Name: "tba", Weight: 0}}
	assert.Equal(t, evals, NormalizeWeights(evals))
}

// Package heuristic extracts graded events and assessment weightings from
// syllabus text with keyword and regex rules. It is the fallback used when no
// structured-extraction service is configured or the call fails.
package heuristic

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/MalithGihan/syllabus-service/pkg/types"
)

const (
	maxEvaluations = 10
	maxNameWords   = 8
	minNameLen     = 3
)

var (
	percentRe     = regexp.MustCompile(`(\d{1,3}(?:\.\d+)?)\s?%`)
	wsRunRe       = regexp.MustCompile(`\s+`)
	separatorRe   = regexp.MustCompile("\\s{2,}|\t|\\s[-\u2013\u2014]\\s|:\\s")
	countPrefixRe = regexp.MustCompile(`^\d+\s+`)
)

// denyTerms mark administrative or policy lines that mention percentages
// without being graded categories.
var denyTerms = []string{
	"policy", "penalt", "late", "plagiarism", "integrity", "attendance",
	"passing", "appeal", "less than", "greater than", "<", ">",
}

// allowTerms must appear for a line to count as an assessment category.
var allowTerms = []string{
	"assignment", "midterm", "final", "exam", "quiz", "project", "lab",
	"participation", "presentation", "report", "homework", "tutorial",
}

// ExtractEvaluations scans lines for assessment categories paired with
// percentage weights and returns them normalized to sum to 100. An empty
// result is a valid outcome, not a failure.
func ExtractEvaluations(lines []string) []types.Assessment {
	var out []types.Assessment
	index := map[string]int{} // lowercased name -> position in out

	for _, raw := range lines {
		collapsed := strings.TrimSpace(wsRunRe.ReplaceAllString(raw, " "))
		if collapsed == "" {
			continue
		}
		m := percentRe.FindStringSubmatchIndex(collapsed)
		if m == nil {
			continue
		}
		weight, err := strconv.ParseFloat(collapsed[m[2]:m[3]], 64)
		if err != nil || weight < 0 || weight > 100 {
			continue
		}
		low := strings.ToLower(collapsed)
		if containsAny(low, denyTerms) || !containsAny(low, allowTerms) {
			continue
		}
		name := deriveName(strings.TrimSpace(raw), collapsed, m[0])
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		if i, ok := index[key]; ok {
			if weight > out[i].Weight {
				out[i].Weight = weight
			}
			continue
		}
		index[key] = len(out)
		out = append(out, types.Assessment{Name: name, Weight: weight})
	}

	if len(out) == 0 {
		return nil
	}
	out = NormalizeWeights(out)
	if len(out) > maxEvaluations {
		out = out[:maxEvaluations]
	}
	return out
}

// deriveName takes the text before the first separator on the raw line, or
// before the percentage run when the line has no separator.
func deriveName(raw, collapsed string, pctIdx int) string {
	var name string
	if loc := separatorRe.FindStringIndex(raw); loc != nil {
		name = raw[:loc[0]]
	} else if pctIdx > 0 {
		name = collapsed[:pctIdx]
	} else {
		return ""
	}
	// a separator can come after the weight ("Midterm 30%  week 6")
	if m := percentRe.FindStringIndex(name); m != nil {
		name = name[:m[0]]
	}
	name = strings.TrimSpace(wsRunRe.ReplaceAllString(name, " "))
	name = countPrefixRe.ReplaceAllString(name, "")
	name = strings.Trim(name, " -\u2013\u2014:.,")
	words := strings.Fields(name)
	if len(words) > maxNameWords {
		words = words[:maxNameWords]
	}
	name = strings.Join(words, " ")
	if len(name) < minNameLen {
		return ""
	}
	return name
}

// NormalizeWeights rescales a weight set to total 100, rounding each entry
// to two decimals and folding any residual into the largest entry.
func NormalizeWeights(evals []types.Assessment) []types.Assessment {
	var sum float64
	for _, e := range evals {
		sum += e.Weight
	}
	if sum <= 0 {
		return evals
	}
	var total float64
	for i := range evals {
		evals[i].Weight = round2(evals[i].Weight * 100 / sum)
		total += evals[i].Weight
	}
	if diff := 100 - total; math.Abs(diff) >= 0.05 {
		largest := 0
		for i := range evals {
			if evals[i].Weight > evals[largest].Weight {
				largest = i
			}
		}
		evals[largest].Weight = round2(evals[largest].Weight + diff)
	}
	return evals
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

func containsAny(s string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}

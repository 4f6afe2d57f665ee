// Package parse orchestrates the extract → clean → structure pipeline. It
// always yields a ParseResult: every failure path degrades to a best-effort
// result instead of propagating.
package parse

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/MalithGihan/syllabus-service/internal/config"
	"github.com/MalithGihan/syllabus-service/internal/dates"
	"github.com/MalithGihan/syllabus-service/internal/heuristic"
	"github.com/MalithGihan/syllabus-service/internal/logger"
	"github.com/MalithGihan/syllabus-service/internal/pdftext"
	"github.com/MalithGihan/syllabus-service/internal/textclean"
	"github.com/MalithGihan/syllabus-service/pkg/types"
)

const (
	noTextSummary      = "No text extracted."
	placeholderSummary = "Summary unavailable."

	maxEvents      = 20
	maxEvaluations = 10
	weightSaneMax  = 200 // loose bound for un-normalized model output
)

const systemPrompt = `You extract structured information from university course syllabi.
Return ONLY valid JSON with exactly these keys:
{"summary": string, "events": [{"title": string, "date": "YYYY-MM-DD"}], "evaluations": [{"name": string, "weight": number}]}
Rules:
- Events are dated deadlines only (assignments, exams, quizzes, project milestones). Skip undated items.
- When one deliverable has multiple dates, emit one event per date.
- Evaluations are graded categories only; exclude policies, penalties and other administrative content.
- When a syllabus lists separate undergraduate and graduate weight columns, use the undergraduate column.
- Weights are percentages and should sum to roughly 100.
- "summary" is a 1-3 sentence overview of the course.`

// Extractor is the structured-extraction service. Implementations must
// either return a decoded extraction or an error; the Parser handles every
// error by falling back to heuristics.
type Extractor interface {
	ExtractStructured(ctx context.Context, system, document string) (*types.SyllabusExtraction, error)
}

// TextExtractor turns PDF bytes into plain text; "" means nothing usable.
type TextExtractor func(data []byte, maxPages int) string

type Parser struct {
	cfg config.Config

	// Text is the PDF-to-text collaborator, replaceable in tests.
	Text TextExtractor
	llm  Extractor
}

// New builds a Parser. A nil extractor selects the heuristic path.
func New(cfg config.Config, llm Extractor) *Parser {
	return &Parser{cfg: cfg, Text: pdftext.Extract, llm: llm}
}

// Parse produces a ParseResult for raw PDF bytes. maxPages <= 0 uses the
// configured default.
func (p *Parser) Parse(ctx context.Context, data []byte, maxPages int) types.ParseResult {
	if maxPages <= 0 {
		maxPages = p.cfg.MaxPages
	}
	raw := p.Text(data, maxPages)
	if strings.TrimSpace(raw) == "" {
		return types.ParseResult{
			Summary:     noTextSummary,
			Events:      []types.Event{},
			Evaluations: []types.Assessment{},
		}
	}
	text := textclean.Clean(raw)

	if p.llm == nil {
		return p.heuristicResult(text)
	}

	doc := text
	if len(doc) > p.cfg.MaxChars {
		doc = doc[:p.cfg.MaxChars]
	}
	ext, err := p.llm.ExtractStructured(ctx, systemPrompt, doc)
	if err != nil {
		logger.Warn("structured extraction failed, using heuristics", zap.Error(err))
		res := p.heuristicResult(text)
		res.Summary = fmt.Sprintf("[fallback: %v] %s", err, res.Summary)
		return res
	}
	return p.postProcess(ext, text)
}

func (p *Parser) heuristicResult(text string) types.ParseResult {
	summary, events := heuristic.ExtractEvents(text)
	evals := heuristic.ExtractEvaluations(strings.Split(text, "\n"))
	if events == nil {
		events = []types.Event{}
	}
	if evals == nil {
		evals = []types.Assessment{}
	}
	return types.ParseResult{Summary: summary, Events: events, Evaluations: evals}
}

// postProcess cleans up the model output: per-date event expansion, weight
// sanity bounds, heuristic substitution for empty lists and a rescale when
// the weight total drifts outside [98, 102].
func (p *Parser) postProcess(ext *types.SyllabusExtraction, text string) types.ParseResult {
	events := make([]types.Event, 0, len(ext.Events))
	for _, re := range ext.Events {
		title := strings.TrimSpace(re.Title)
		if title == "" {
			continue
		}
		for _, d := range dates.Extract(re.Date) {
			events = append(events, types.Event{Title: title, Date: d})
		}
	}
	if len(events) == 0 {
		_, events = heuristic.ExtractEvents(text)
		if events == nil {
			events = []types.Event{}
		}
	}
	if len(events) > maxEvents {
		events = events[:maxEvents]
	}

	evals := make([]types.Assessment, 0, len(ext.Evaluations))
	for _, rv := range ext.Evaluations {
		name := strings.TrimSpace(rv.Name)
		if name == "" {
			continue
		}
		w, ok := parseWeight(rv.Weight)
		if !ok || w < 0 || w > weightSaneMax {
			continue
		}
		evals = append(evals, types.Assessment{Name: name, Weight: w})
	}
	if len(evals) == 0 {
		evals = heuristic.ExtractEvaluations(strings.Split(text, "\n"))
		if evals == nil {
			evals = []types.Assessment{}
		}
	} else {
		var total float64
		for _, e := range evals {
			total += e.Weight
		}
		if total < 98 || total > 102 {
			evals = heuristic.NormalizeWeights(evals)
		}
	}
	if len(evals) > maxEvaluations {
		evals = evals[:maxEvaluations]
	}

	summary := strings.TrimSpace(ext.Summary)
	if summary == "" {
		summary = placeholderSummary
	}
	return types.ParseResult{Summary: summary, Events: events, Evaluations: evals}
}

func parseWeight(v any) (float64, bool) {
	switch w := v.(type) {
	case float64:
		return w, true
	case json.Number:
		f, err := w.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(w), "%"), 64)
		return f, err == nil
	}
	return 0, false
}

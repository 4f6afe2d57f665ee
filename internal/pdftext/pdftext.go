package pdftext

import (
	"bytes"
	"strings"

	"github.com/ledongthuc/pdf"
	"go.uber.org/zap"

	"github.com/MalithGihan/syllabus-service/internal/logger"
)

// Extract pulls the text layer out of a PDF, up to maxPages pages (all pages
// when maxPages <= 0). Pages are joined by a blank line. Returns "" when
// nothing can be extracted; it never fails.
func Extract(data []byte, maxPages int) (text string) {
	// the pdf reader panics on some malformed files
	defer func() {
		if r := recover(); r != nil {
			logger.Warn("pdf reader panicked", zap.Any("cause", r))
			text = ""
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		logger.Warn("pdf open failed", zap.Error(err))
		return ""
	}

	limit := r.NumPage()
	if maxPages > 0 && maxPages < limit {
		limit = maxPages
	}

	var parts []string
	for i := 1; i <= limit; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		s, err := p.GetPlainText(nil)
		if err != nil {
			continue
		}
		if s = strings.TrimSpace(s); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.TrimSpace(strings.Join(parts, "\n\n"))
}

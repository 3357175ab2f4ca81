// Package doctext converts uploaded document bytes into plain text. The
// extractor is total: every failure path degrades to a descriptive
// placeholder string so downstream stages always have input to work with.
package doctext

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

const (
	MediaTypePDF  = "application/pdf"
	MediaTypeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MediaTypeDoc  = "application/msword"
)

const (
	placeholderPDF  = "Could not extract text from PDF"
	placeholderWord = "Could not extract text from Word document"
)

type Extractor struct {
	logger *slog.Logger
}

func New(logger *slog.Logger) *Extractor {
	return &Extractor{logger: logger}
}

func (e *Extractor) Extract(ctx context.Context, data []byte, mediaType string) (text string) {
	// Malformed documents can panic deep inside the decoders; extraction
	// must still return a string.
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("extraction_panic", "media_type", mediaType, "panic", fmt.Sprint(r))
			text = fmt.Sprintf("Error extracting text: %v", r)
		}
	}()

	switch mediaType {
	case MediaTypePDF:
		return e.extractPDF(ctx, data)
	case MediaTypeDocx, MediaTypeDoc:
		return e.extractWord(data)
	default:
		return fmt.Sprintf("Unsupported file type: %s. Please use PDF or Word documents.", mediaType)
	}
}

func (e *Extractor) extractPDF(ctx context.Context, data []byte) string {
	text, err := pdfPlainText(data)
	if err != nil {
		e.logger.Warn("pdf_extraction_failed", "error", err)
	}
	if strings.TrimSpace(text) != "" {
		return text
	}

	// Primary engine came back blank; try the content-stream decoder as a
	// best-effort second opinion before giving up.
	fallback, err := pdfContentStreamText(ctx, data)
	if err != nil {
		e.logger.Warn("pdf_fallback_extraction_failed", "error", err)
	}
	if strings.TrimSpace(fallback) != "" {
		return fallback
	}
	return placeholderPDF
}

func (e *Extractor) extractWord(data []byte) string {
	text, err := docxParagraphText(data)
	if err != nil {
		e.logger.Warn("docx_extraction_failed", "error", err)
		return fmt.Sprintf("Error extracting text: %v", err)
	}
	if strings.TrimSpace(text) == "" {
		return placeholderWord
	}
	return text
}

package anthropic

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/axrail/quotation-processor/internal/core/domain"
	"github.com/axrail/quotation-processor/internal/infrastructure/resilience"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// minContentLength is the threshold below which upstream text is treated as
// a failed extraction and the fixed sample document is substituted.
const minContentLength = 100

const defaultMaxTokens = 2000

// Extractor implements ports.FieldExtractor. Every run returns a complete
// record: degraded input is substituted, failed calls and malformed replies
// fall back to the canned record, and the outcome reports which path ran.
type Extractor struct {
	client    *Client
	guard     *resilience.Guard
	schema    *jsonschema.Schema
	logger    *slog.Logger
	maxTokens int
}

func NewExtractor(client *Client, guard *resilience.Guard, logger *slog.Logger, maxTokens int) (*Extractor, error) {
	schema, err := compileReplySchema()
	if err != nil {
		return nil, fmt.Errorf("compile reply schema: %w", err)
	}
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}
	return &Extractor{
		client:    client,
		guard:     guard,
		schema:    schema,
		logger:    logger,
		maxTokens: maxTokens,
	}, nil
}

func (e *Extractor) Extract(ctx context.Context, text string) (domain.QuotationFields, domain.ExtractionOutcome) {
	outcome := domain.OutcomeFull
	if len(strings.TrimSpace(text)) < minContentLength {
		e.logger.Warn("substituting_sample_text", "text_length", len(strings.TrimSpace(text)))
		text = sampleQuotationText
		outcome = domain.OutcomeDegradedInput
	}

	prompt := buildExtractionPrompt(text)
	reply, err := e.guard.Execute(ctx, func(callCtx context.Context) (string, error) {
		return e.client.Invoke(callCtx, prompt, e.maxTokens)
	})
	if err != nil {
		e.logger.Error("model_invocation_failed", "error", err, "circuit_open", resilience.IsCircuitOpen(err))
		return FallbackQuotation(), domain.OutcomeFallbackRecord
	}

	fields, err := e.decodeReply(reply)
	if err != nil {
		e.logger.Warn("model_reply_rejected", "error", err)
		return FallbackQuotation(), domain.OutcomeFallbackRecord
	}
	return fields, outcome
}

// decodeReply locates the JSON object span in the free-form reply, validates
// its shape, and decodes it into quotation fields.
func (e *Extractor) decodeReply(reply string) (domain.QuotationFields, error) {
	raw, ok := jsonObjectSpan(reply)
	if !ok {
		return domain.QuotationFields{}, fmt.Errorf("no JSON object in reply")
	}

	var doc any
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return domain.QuotationFields{}, fmt.Errorf("parse reply JSON: %w", err)
	}
	if err := e.schema.Validate(doc); err != nil {
		return domain.QuotationFields{}, fmt.Errorf("reply shape: %w", err)
	}

	var fields domain.QuotationFields
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return domain.QuotationFields{}, fmt.Errorf("decode quotation fields: %w", err)
	}
	return fields, nil
}

// jsonObjectSpan returns the byte span between the first '{' and the last
// '}' of the reply.
func jsonObjectSpan(raw string) (string, bool) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return "", false
	}
	return raw[start : end+1], true
}

// Package extract wraps the Anthropic Messages API behind the typed
// extraction surface the worker consumes: prompt rendering, strict-JSON
// parsing, retry with backoff for transient upstream failures, and a
// circuit breaker that sheds load while the upstream model is unhealthy.
package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"os"
	"strings"
	"text/template"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/sony/gobreaker"

	"github.com/tuitionlab/assignflow/pkg/config"
	"github.com/tuitionlab/assignflow/pkg/models"
)

// messagesAPI is the slice of the Anthropic client the extractor uses.
// Tests substitute a fake; production wires *anthropic.MessageService.
type messagesAPI interface {
	New(ctx context.Context, params anthropic.MessageNewParams, opts ...option.RequestOption) (*anthropic.Message, error)
}

// Extractor turns raw post text into canonical extraction records via the
// configured Anthropic model. Safe for concurrent use; breaker state is
// shared across all callers in the process.
type Extractor struct {
	api       messagesAPI
	cfg       *config.LLMConfig
	breaker   *gobreaker.CircuitBreaker
	extractor *template.Template
	splitter  *template.Template
	logger    *slog.Logger
}

// NewExtractor builds an extractor from config. The API key is read from
// the configured environment variable.
func NewExtractor(cfg *config.LLMConfig, logger *slog.Logger) (*Extractor, error) {
	apiKey := os.Getenv(cfg.APIKeyEnv)
	if apiKey == "" {
		return nil, fmt.Errorf("extraction API key not set (env %s)", cfg.APIKeyEnv)
	}

	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	client := anthropic.NewClient(opts...)

	return newExtractor(&client.Messages, cfg, logger)
}

func newExtractor(api messagesAPI, cfg *config.LLMConfig, logger *slog.Logger) (*Extractor, error) {
	extractTmpl, err := template.New("extraction").Parse(extractionPromptTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse extraction prompt: %w", err)
	}
	splitTmpl, err := template.New("compilation").Parse(compilationPromptTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse compilation prompt: %w", err)
	}

	return &Extractor{
		api:       api,
		cfg:       cfg,
		breaker:   newBreaker(cfg),
		extractor: extractTmpl,
		splitter:  splitTmpl,
		logger:    logger.With("component", "extractor", "model", cfg.Model),
	}, nil
}

// newBreaker configures the per-model circuit breaker: a rolling window of
// call outcomes trips it once the failure ratio is exceeded, and a limited
// number of probes is admitted after the open timeout.
func newBreaker(cfg *config.LLMConfig) *gobreaker.CircuitBreaker {
	b := cfg.Breaker
	if b == nil {
		b = config.DefaultBreakerConfig()
	}
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "extract:" + cfg.Model,
		MaxRequests: uint32(b.HalfOpenRequests),
		Interval:    b.Window,
		Timeout:     b.OpenTimeout,
		ReadyToTrip: func(c gobreaker.Counts) bool {
			return c.Requests >= uint32(b.MinRequests) &&
				float64(c.TotalFailures)/float64(c.Requests) >= b.FailureRatio
		},
	})
}

// BreakerState exposes the current breaker state for health reporting.
func (e *Extractor) BreakerState() string {
	return e.breaker.State().String()
}

// Extract runs one extraction call and returns the parsed canonical record
// plus the responding model id. Errors carry a taxonomy code retrievable
// via Code.
func (e *Extractor) Extract(ctx context.Context, rawText string, hints *models.AgencyHints) (*models.CanonicalExtraction, string, error) {
	prompt, err := e.renderPrompt(e.extractor, rawText, hints)
	if err != nil {
		return nil, "", &Error{Code: models.ErrLLMPermanent, Err: err}
	}

	text, modelID, err := e.callWithRetry(ctx, prompt)
	if err != nil {
		return nil, modelID, err
	}

	var out models.CanonicalExtraction
	if err := parseStrictJSON(text, &out); err != nil {
		return nil, modelID, &Error{Code: models.ErrLLMSchemaInvalid, Err: err}
	}
	return &out, modelID, nil
}

// CheckCompilation asks the model whether rawText is a compilation of
// independent assignments and, if so, to split it into ordered segments.
func (e *Extractor) CheckCompilation(ctx context.Context, rawText string) (*models.CompilationSplit, error) {
	prompt, err := e.renderPrompt(e.splitter, rawText, nil)
	if err != nil {
		return nil, &Error{Code: models.ErrLLMPermanent, Err: err}
	}

	text, _, err := e.callWithRetry(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var split models.CompilationSplit
	if err := parseStrictJSON(text, &split); err != nil {
		return nil, &Error{Code: models.ErrLLMSchemaInvalid, Err: err}
	}
	if split.IsCompilation && len(split.Segments) < 2 {
		return nil, &Error{Code: models.ErrLLMSchemaInvalid,
			Err: fmt.Errorf("compilation verdict with %d segments", len(split.Segments))}
	}
	return &split, nil
}

type promptData struct {
	RawText string
	Hints   *models.AgencyHints
}

func (e *Extractor) renderPrompt(tmpl *template.Template, rawText string, hints *models.AgencyHints) (string, error) {
	var sb strings.Builder
	if err := tmpl.Execute(&sb, promptData{RawText: rawText, Hints: hints}); err != nil {
		return "", fmt.Errorf("failed to render %s prompt: %w", tmpl.Name(), err)
	}
	return sb.String(), nil
}

// callWithRetry issues the API call through the breaker, retrying transient
// failures with exponential backoff plus jitter. Breaker rejections return
// immediately so the worker can requeue without burning attempts.
func (e *Extractor) callWithRetry(ctx context.Context, prompt string) (text, modelID string, err error) {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(e.cfg.Model),
		MaxTokens: int64(e.cfg.MaxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	}

	var lastErr *Error
	for attempt := 0; attempt <= e.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(e.backoff(attempt)):
			case <-ctx.Done():
				return "", modelID, &Error{Code: models.ErrTimeout, Err: ctx.Err()}
			}
		}

		result, callErr := e.breaker.Execute(func() (interface{}, error) {
			callCtx, cancel := context.WithTimeout(ctx, e.cfg.RequestTimeout)
			defer cancel()
			return e.api.New(callCtx, params)
		})
		if callErr == nil {
			message := result.(*anthropic.Message)
			text, err := textContent(message)
			if err != nil {
				return "", string(message.Model), &Error{Code: models.ErrLLMSchemaInvalid, Err: err}
			}
			return text, string(message.Model), nil
		}

		lastErr = classify(callErr)
		if !retryable(lastErr) {
			return "", modelID, lastErr
		}
		e.logger.WarnContext(ctx, "Transient extraction failure",
			"attempt", attempt+1, "error", callErr)
	}

	return "", modelID, lastErr
}

// backoff computes initial * 2^(attempt-1) plus uniform jitter.
func (e *Extractor) backoff(attempt int) time.Duration {
	d := time.Duration(float64(e.cfg.InitialBackoff) * math.Pow(2, float64(attempt-1)))
	if e.cfg.BackoffJitter > 0 {
		d += time.Duration(rand.Int63n(int64(e.cfg.BackoffJitter)))
	}
	return d
}

func textContent(message *anthropic.Message) (string, error) {
	if len(message.Content) == 0 {
		return "", fmt.Errorf("response has no content blocks")
	}
	block := message.Content[0]
	if block.Type != "text" {
		return "", fmt.Errorf("response is not a text block (type=%s)", block.Type)
	}
	return block.Text, nil
}

// parseStrictJSON decodes one JSON object into dst, rejecting unknown
// fields and trailing content. Markdown fences around the object are
// tolerated; anything else is a schema violation.
func parseStrictJSON(text string, dst any) error {
	dec := json.NewDecoder(strings.NewReader(stripFences(text)))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("response is not valid canonical JSON: %w", err)
	}
	if dec.More() {
		return fmt.Errorf("response has trailing content after JSON object")
	}
	return nil
}

func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

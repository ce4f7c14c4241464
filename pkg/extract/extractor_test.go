package extract

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuitionlab/assignflow/pkg/config"
	"github.com/tuitionlab/assignflow/pkg/models"
)

type fakeResult struct {
	message *anthropic.Message
	err     error
}

// fakeMessages replays a scripted sequence of API results; the last entry
// repeats once the script is exhausted.
type fakeMessages struct {
	mu      sync.Mutex
	results []fakeResult
	calls   int
}

func (f *fakeMessages) New(_ context.Context, _ anthropic.MessageNewParams, _ ...option.RequestOption) (*anthropic.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	idx := f.calls
	if idx >= len(f.results) {
		idx = len(f.results) - 1
	}
	f.calls++
	r := f.results[idx]
	return r.message, r.err
}

func (f *fakeMessages) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func textMessage(model, text string) *anthropic.Message {
	return &anthropic.Message{
		Model:   anthropic.Model(model),
		Content: []anthropic.ContentBlockUnion{{Type: "text", Text: text}},
	}
}

func apiError(status int) error {
	return &anthropic.Error{
		StatusCode: status,
		Request:    &http.Request{Method: http.MethodPost, URL: &url.URL{Path: "/v1/messages"}},
	}
}

func testLLMConfig() *config.LLMConfig {
	return &config.LLMConfig{
		Model:          "claude-sonnet-4-5",
		APIKeyEnv:      "ANTHROPIC_API_KEY",
		MaxTokens:      1024,
		RequestTimeout: time.Second,
		MaxRetries:     2,
		InitialBackoff: time.Millisecond,
		BackoffJitter:  0,
		Breaker: &config.BreakerConfig{
			Window:           time.Minute,
			MinRequests:      3,
			FailureRatio:     0.6,
			OpenTimeout:      50 * time.Millisecond,
			HalfOpenRequests: 1,
		},
	}
}

func newTestExtractor(t *testing.T, api messagesAPI, cfg *config.LLMConfig) *Extractor {
	t.Helper()
	if cfg == nil {
		cfg = testLLMConfig()
	}
	e, err := newExtractor(api, cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	return e
}

func TestExtractHappyPath(t *testing.T) {
	// Fenced JSON must be tolerated and stripped.
	body := "```json\n" + `{
		"assignment_code": "TT4821",
		"academic_display_text": "Sec 3 A Math @ Tampines",
		"subjects": ["A Math"],
		"level": "Secondary",
		"specific_levels": ["Sec 3"],
		"postal_code": ["520123"],
		"rate_raw_text": "$40/hr",
		"rate_min": 40,
		"rate_max": 40
	}` + "\n```"
	api := &fakeMessages{results: []fakeResult{{message: textMessage("claude-sonnet-4-5", body)}}}
	e := newTestExtractor(t, api, nil)

	got, modelID, err := e.Extract(context.Background(), "Sec 3 A Math, Tampines 520123, $40/hr", nil)
	require.NoError(t, err)
	assert.Equal(t, "claude-sonnet-4-5", modelID)
	assert.Equal(t, "TT4821", got.AssignmentCode)
	assert.Equal(t, "Sec 3 A Math @ Tampines", got.AcademicDisplayText)
	assert.Equal(t, []string{"A Math"}, got.Subjects)
	require.NotNil(t, got.RateMin)
	assert.Equal(t, 40.0, *got.RateMin)
	assert.Empty(t, got.Validate())
	assert.Equal(t, 1, api.callCount())
}

func TestExtractRetriesTransient(t *testing.T) {
	api := &fakeMessages{results: []fakeResult{
		{err: apiError(500)},
		{err: apiError(429)},
		{message: textMessage("claude-sonnet-4-5", `{"academic_display_text": "P5 English @ Yishun"}`)},
	}}
	e := newTestExtractor(t, api, nil)

	got, _, err := e.Extract(context.Background(), "P5 English, Yishun", nil)
	require.NoError(t, err)
	assert.Equal(t, "P5 English @ Yishun", got.AcademicDisplayText)
	assert.Equal(t, 3, api.callCount())
}

func TestExtractPermanentClientErrorNoRetry(t *testing.T) {
	api := &fakeMessages{results: []fakeResult{{err: apiError(400)}}}
	e := newTestExtractor(t, api, nil)

	_, _, err := e.Extract(context.Background(), "whatever", nil)
	require.Error(t, err)
	assert.Equal(t, models.ErrLLMPermanent, Code(err))
	assert.Equal(t, 1, api.callCount())
}

func TestExtractTransientExhaustsRetries(t *testing.T) {
	api := &fakeMessages{results: []fakeResult{{err: apiError(503)}}}
	e := newTestExtractor(t, api, nil)

	_, _, err := e.Extract(context.Background(), "whatever", nil)
	require.Error(t, err)
	assert.Equal(t, models.ErrLLMTransient, Code(err))
	// MaxRetries=2 means three attempts total.
	assert.Equal(t, 3, api.callCount())
}

func TestExtractSchemaInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", "Sure! Here is the extraction you asked for."},
		{"unknown field", `{"academic_display_text": "x", "confidence": 0.9}`},
		{"trailing content", `{"academic_display_text": "x"} trailing`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &fakeMessages{results: []fakeResult{{message: textMessage("m", tt.body)}}}
			e := newTestExtractor(t, api, nil)

			_, _, err := e.Extract(context.Background(), "raw", nil)
			require.Error(t, err)
			assert.Equal(t, models.ErrLLMSchemaInvalid, Code(err))
			assert.Equal(t, 1, api.callCount())
		})
	}
}

func TestExtractTimeout(t *testing.T) {
	api := &fakeMessages{results: []fakeResult{{err: context.DeadlineExceeded}}}
	e := newTestExtractor(t, api, nil)

	_, _, err := e.Extract(context.Background(), "raw", nil)
	require.Error(t, err)
	assert.Equal(t, models.ErrTimeout, Code(err))
}

func TestBreakerOpensAndRecovers(t *testing.T) {
	api := &fakeMessages{results: []fakeResult{{err: apiError(500)}}}
	cfg := testLLMConfig()
	e := newTestExtractor(t, api, cfg)

	// One Extract burns all three attempts; with min_requests=3 and every
	// call failing, the window trips the breaker.
	_, _, err := e.Extract(context.Background(), "raw", nil)
	require.Error(t, err)
	assert.Equal(t, models.ErrLLMTransient, Code(err))
	assert.Equal(t, 3, api.callCount())
	assert.Equal(t, "open", e.BreakerState())

	// While open, no upstream call is made and circuit_open returns
	// immediately.
	_, _, err = e.Extract(context.Background(), "raw", nil)
	require.Error(t, err)
	assert.Equal(t, models.ErrCircuitOpen, Code(err))
	assert.Equal(t, 3, api.callCount())

	// After the open timeout a half-open probe is admitted; success closes
	// the breaker.
	time.Sleep(cfg.Breaker.OpenTimeout + 10*time.Millisecond)
	api.mu.Lock()
	api.results = []fakeResult{{message: textMessage("m", `{"academic_display_text": "recovered"}`)}}
	api.calls = 0
	api.mu.Unlock()

	got, _, err := e.Extract(context.Background(), "raw", nil)
	require.NoError(t, err)
	assert.Equal(t, "recovered", got.AcademicDisplayText)
	assert.Equal(t, "closed", e.BreakerState())
}

func TestCheckCompilation(t *testing.T) {
	t.Run("confirmed split", func(t *testing.T) {
		api := &fakeMessages{results: []fakeResult{{message: textMessage("m",
			`{"is_compilation": true, "segments": ["Assignment 1: Sec 3 Math, Tampines", "Assignment 2: P5 Science, Yishun"]}`)}}}
		e := newTestExtractor(t, api, nil)

		split, err := e.CheckCompilation(context.Background(), "Assignment 1: ... Assignment 2: ...")
		require.NoError(t, err)
		assert.True(t, split.IsCompilation)
		require.Len(t, split.Segments, 2)
		assert.Contains(t, split.Segments[0], "Assignment 1")
	})

	t.Run("not a compilation", func(t *testing.T) {
		api := &fakeMessages{results: []fakeResult{{message: textMessage("m", `{"is_compilation": false}`)}}}
		e := newTestExtractor(t, api, nil)

		split, err := e.CheckCompilation(context.Background(), "Sec 3 Math, $40/hr")
		require.NoError(t, err)
		assert.False(t, split.IsCompilation)
	})

	t.Run("confirmed but unsplittable is schema invalid", func(t *testing.T) {
		api := &fakeMessages{results: []fakeResult{{message: textMessage("m",
			`{"is_compilation": true, "segments": ["only one"]}`)}}}
		e := newTestExtractor(t, api, nil)

		_, err := e.CheckCompilation(context.Background(), "raw")
		require.Error(t, err)
		assert.Equal(t, models.ErrLLMSchemaInvalid, Code(err))
	})
}

func TestMarkerCountHeuristic(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{
			name: "numbered list",
			text: "1) Sec 3 Math, Tampines, $40/hr\n2) P5 Science, Yishun, $35/hr",
			want: true,
		},
		{
			name: "assignment headers",
			text: "Assignment 1: Sec 3 Math\nsome details\nAssignment 2: JC1 Econs",
			want: true,
		},
		{
			name: "agency code lines",
			text: "TT4821 Sec 2 English, Bedok\nTT4822 P6 Math, Punggol",
			want: true,
		},
		{
			name: "single post",
			text: "Sec 3 A Math @ Tampines 520123, $40/hr, Mon 7-9pm. MOE tutor preferred.",
			want: false,
		},
		{
			name: "single post with one code",
			text: "TT4821 Sec 3 A Math @ Tampines, start next week",
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DefaultCompilationHeuristic(tt.text))
		})
	}
}

func TestStripFences(t *testing.T) {
	assert.Equal(t, `{"a":1}`, stripFences("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripFences("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripFences(`{"a":1}`))
}

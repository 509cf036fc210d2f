// File path: internal/assist/responder.go
package assist

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/friendlynotebook/vuai/internal/cache"
	"github.com/friendlynotebook/vuai/internal/common"
	"github.com/friendlynotebook/vuai/internal/kb"
	"github.com/friendlynotebook/vuai/internal/llm"
)

const (
	// DefaultComposeTimeout bounds one composer round trip.
	DefaultComposeTimeout = 10 * time.Second
	// DefaultResultLimit caps how many knowledge entries feed the prompt.
	DefaultResultLimit = 5

	// Response sources, persisted with every transcript.
	SourceCache     = "cache"
	SourceGenerated = "generated"
	SourceFallback  = "fallback"
)

// Request is one assistance question.
type Request struct {
	Query  string
	Role   kb.Role
	UserID string
}

// Response is the answer handed back to the caller. Respond never returns
// an error for composer trouble: the fallback path absorbs it, and Source
// tells the caller which path produced the text.
type Response struct {
	Text             string `json:"response"`
	Source           string `json:"source"`
	ResponseTimeMs   int64  `json:"response_time_ms"`
	KnowledgeResults int    `json:"knowledge_results"`
}

// SearchService is the slice of the searcher the responder needs.
type SearchService interface {
	Search(ctx context.Context, query string, role kb.Role, limit int) ([]kb.ScoredEntry, error)
}

// TranscriptWriter persists question/answer exchanges. Optional.
type TranscriptWriter interface {
	AppendHistory(ctx context.Context, record kb.ChatRecord) error
}

// Responder answers role-scoped questions: cache first, then knowledge
// search feeding the composer, with canned role fallbacks when the
// composer is unreachable.
type Responder struct {
	cache          *cache.ResponseCache
	searcher       SearchService
	provider       llm.Provider
	transcripts    TranscriptWriter
	composeTimeout time.Duration
	resultLimit    int
	metrics        *Metrics
	now            func() time.Time
}

// Option adjusts responder construction.
type Option func(*Responder)

// WithComposeTimeout overrides the composer deadline.
func WithComposeTimeout(d time.Duration) Option {
	return func(r *Responder) {
		if d > 0 {
			r.composeTimeout = d
		}
	}
}

// WithResultLimit overrides how many entries feed the prompt.
func WithResultLimit(limit int) Option {
	return func(r *Responder) {
		if limit > 0 {
			r.resultLimit = limit
		}
	}
}

// WithTranscripts enables best-effort transcript persistence.
func WithTranscripts(w TranscriptWriter) Option {
	return func(r *Responder) { r.transcripts = w }
}

// WithClock injects a time source for tests.
func WithClock(now func() time.Time) Option {
	return func(r *Responder) {
		if now != nil {
			r.now = now
		}
	}
}

func New(responseCache *cache.ResponseCache, searcher SearchService, provider llm.Provider, opts ...Option) *Responder {
	r := &Responder{
		cache:          responseCache,
		searcher:       searcher,
		provider:       provider,
		composeTimeout: DefaultComposeTimeout,
		resultLimit:    DefaultResultLimit,
		metrics:        NewMetrics(),
		now:            time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// Metrics exposes the responder's counters.
func (r *Responder) Metrics() *Metrics { return r.metrics }

// Respond answers the request. The only errors it returns are validation
// failures on the request itself; composer and store trouble degrade to
// fallback text or an empty knowledge context instead.
func (r *Responder) Respond(ctx context.Context, req Request) (Response, error) {
	logger := common.Logger()
	query := strings.TrimSpace(req.Query)
	if query == "" {
		return Response{}, errors.New("query required")
	}
	if _, ok := kb.Profiles[req.Role]; !ok {
		return Response{}, fmt.Errorf("unknown role %q", req.Role)
	}
	start := r.now()

	key := r.cache.Key(req.Role.String(), query)
	if text, ok := r.cache.Get(key); ok {
		resp := Response{Text: text, Source: SourceCache, ResponseTimeMs: r.elapsedMs(start)}
		r.finish(ctx, req, resp)
		return resp, nil
	}

	entries, err := r.searcher.Search(ctx, query, req.Role, r.resultLimit)
	if err != nil {
		// Knowledge is an enrichment, not a prerequisite: compose with an
		// empty context rather than failing the request.
		logger.Warn("assist: knowledge search failed; composing without context",
			"role", req.Role, "error", err)
		entries = nil
	}
	relevant := positiveScored(entries)

	messages := buildMessages(req.Role, query, relevant)
	composeCtx, cancel := context.WithTimeout(ctx, r.composeTimeout)
	defer cancel()
	text, composeErr := r.provider.Chat(composeCtx, messages)
	if composeErr == nil && strings.TrimSpace(text) == "" {
		composeErr = fmt.Errorf("%w: empty completion", kb.ErrComposeUnavailable)
	}
	if composeErr != nil {
		composeErr = classifyComposeError(composeCtx, composeErr)
		logger.Error("assist: compose failed; serving fallback",
			"role", req.Role, "provider", r.provider.Name(), "error", composeErr)
		resp := Response{
			Text:             kb.FallbackFor(req.Role),
			Source:           SourceFallback,
			ResponseTimeMs:   r.elapsedMs(start),
			KnowledgeResults: len(relevant),
		}
		r.finish(ctx, req, resp)
		return resp, nil
	}

	// Fallback text is never cached; only composed answers are worth
	// replaying for five minutes.
	r.cache.Set(key, text)
	resp := Response{
		Text:             text,
		Source:           SourceGenerated,
		ResponseTimeMs:   r.elapsedMs(start),
		KnowledgeResults: len(relevant),
	}
	r.finish(ctx, req, resp)
	return resp, nil
}

func (r *Responder) elapsedMs(start time.Time) int64 {
	elapsed := r.now().Sub(start).Milliseconds()
	if elapsed < 0 {
		return 0
	}
	return elapsed
}

func (r *Responder) finish(ctx context.Context, req Request, resp Response) {
	r.metrics.Record(req.Role, resp)
	if r.transcripts == nil {
		return
	}
	record := kb.ChatRecord{
		ID:        uuid.NewString(),
		UserID:    req.UserID,
		Role:      req.Role,
		Message:   req.Query,
		Response:  resp.Text,
		Source:    resp.Source,
		Timestamp: r.now().UTC(),
	}
	if err := r.transcripts.AppendHistory(ctx, record); err != nil {
		common.Logger().Warn("assist: transcript persist failed", "error", err)
	}
}

func positiveScored(entries []kb.ScoredEntry) []kb.ScoredEntry {
	out := entries[:0:0]
	for _, entry := range entries {
		if entry.RelevanceScore > 0 {
			out = append(out, entry)
		}
	}
	return out
}

func buildMessages(role kb.Role, query string, entries []kb.ScoredEntry) []llm.Message {
	messages := []llm.Message{{Role: "system", Content: kb.Profiles[role].SystemPrompt}}
	if len(entries) > 0 {
		var sb strings.Builder
		sb.WriteString("Relevant Knowledge:\n")
		for _, entry := range entries {
			sb.WriteString("- ")
			sb.WriteString(entry.Topic)
			sb.WriteString(": ")
			sb.WriteString(entry.Content)
			sb.WriteString("\n")
		}
		messages = append(messages, llm.Message{Role: "system", Content: sb.String()})
	}
	messages = append(messages, llm.Message{Role: "user", Content: query})
	return messages
}

func classifyComposeError(ctx context.Context, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", kb.ErrComposeTimeout, err)
	}
	if errors.Is(err, kb.ErrComposeUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %v", kb.ErrComposeUnavailable, err)
}

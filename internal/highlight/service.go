// Package highlight runs the markup pipeline for callers that render code
// blocks, memoizing results by source text and tracing each stage.
package highlight

import (
	"context"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/zjrosen/codeblock/internal/cachemanager"
	"github.com/zjrosen/codeblock/internal/log"
	"github.com/zjrosen/codeblock/internal/markup"
	"github.com/zjrosen/codeblock/internal/tracing"
)

// Block is a code block as supplied by a caller.
type Block struct {
	// Source is the raw text, not yet dedented.
	Source string

	// Language is a display label only. It never changes tokenization.
	Language string

	ShowLineNumbers bool
}

// Document is a highlighted block ready for a renderer.
type Document struct {
	Block  Block
	Result markup.Result
}

// Lines returns the line records to render.
func (d Document) Lines() []markup.Line {
	return d.Result.Lines
}

// CopyText returns what a copy action yields: the dedented, unescaped source.
func (d Document) CopyText() string {
	return d.Result.Source
}

// Options configures a Service.
type Options struct {
	CacheEnabled bool
	CacheTTL     time.Duration
	Tracer       trace.Tracer
}

// DefaultOptions enables the cache with the default expiration.
func DefaultOptions() Options {
	return Options{
		CacheEnabled: true,
		CacheTTL:     cachemanager.DefaultExpiration,
	}
}

// entry is a memoized result together with the raw source it was computed
// from, so a hit can be checked against the caller's source.
type entry struct {
	source string
	result markup.Result
}

// Service highlights blocks. It is safe for concurrent use.
type Service struct {
	results *cachemanager.ReadThroughCache[string, entry, string]
	entries cachemanager.CacheManager[string, entry]
	key     func(source string) string
	ttl     time.Duration
	tracer  trace.Tracer
}

// NewService creates a service.
func NewService(opts Options) *Service {
	s := &Service{
		key:    CacheKey,
		ttl:    opts.CacheTTL,
		tracer: opts.Tracer,
	}
	if s.ttl <= 0 {
		s.ttl = cachemanager.DefaultExpiration
	}
	if s.tracer == nil {
		s.tracer = noop.NewTracerProvider().Tracer("noop")
	}

	s.entries = cachemanager.NewInMemoryCacheManager[string, entry](
		"highlight", s.ttl, cachemanager.DefaultCleanupInterval)
	s.results = cachemanager.NewReadThroughCache[string, entry, string](
		s.entries, s.compute, !opts.CacheEnabled)
	return s
}

// Highlight runs the pipeline for block. Results are shared between calls
// with the same source, so callers must not mutate them.
func (s *Service) Highlight(ctx context.Context, block Block) (Document, error) {
	if err := ctx.Err(); err != nil {
		return Document{}, err
	}

	ctx, span := s.tracer.Start(ctx, tracing.SpanHighlight, trace.WithAttributes(
		attribute.Int(tracing.AttrSourceBytes, len(block.Source)),
		attribute.String(tracing.AttrLanguage, block.Language),
	))
	defer span.End()

	key := s.key(block.Source)
	e, hit, err := s.results.Load(ctx, key, block.Source, s.ttl)
	if err != nil {
		return Document{}, fmt.Errorf("highlighting block: %w", err)
	}
	if hit && e.source != block.Source {
		log.Warn(log.CatCache, "cache key collision, recomputing", "key", key)
		if e, err = s.compute(ctx, block.Source); err != nil {
			return Document{}, fmt.Errorf("highlighting block: %w", err)
		}
		s.entries.Set(ctx, key, e, s.ttl)
		hit = false
	}
	span.SetAttributes(
		attribute.Bool(tracing.AttrCacheHit, hit),
		attribute.Int(tracing.AttrSourceLines, len(e.result.Lines)),
	)

	return Document{Block: block, Result: e.result}, nil
}

// Invalidate drops every memoized result.
func (s *Service) Invalidate(ctx context.Context) error {
	return s.entries.Flush(ctx)
}

// compute runs each stage under its own span. It only executes on a cache miss.
func (s *Service) compute(ctx context.Context, source string) (entry, error) {
	_, span := s.tracer.Start(ctx, tracing.SpanDedent)
	text := markup.Dedent(source)
	span.End()

	_, span = s.tracer.Start(ctx, tracing.SpanScan)
	tokens := markup.Scan(text)
	span.SetAttributes(attribute.Int(tracing.AttrTokenCount, len(tokens)))
	span.End()

	_, span = s.tracer.Start(ctx, tracing.SpanSplit)
	lines := markup.SplitLines(tokens)
	span.SetAttributes(attribute.Int(tracing.AttrSourceLines, len(lines)))
	span.End()

	log.Debug(log.CatCache, "highlighted block", "bytes", len(source), "tokens", len(tokens), "lines", len(lines))

	return entry{
		source: source,
		result: markup.Result{Source: text, Tokens: tokens, Lines: lines},
	}, nil
}

// CacheKey derives the memoization key for a source text. Hits are checked
// against the stored source, so a collision costs a recompute and nothing else.
func CacheKey(source string) string {
	return fmt.Sprintf("%016x:%d", xxhash.Sum64String(source), len(source))
}

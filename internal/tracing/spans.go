package tracing

// Span names for the highlight pipeline.
const (
	SpanHighlight = "highlight"
	SpanDedent    = "highlight.dedent"
	SpanScan      = "highlight.scan"
	SpanSplit     = "highlight.split"
	SpanRender    = "render"
	SpanCopy      = "copy"
)

// Span attribute keys.
const (
	AttrSourceBytes = "source.bytes"
	AttrSourceLines = "source.lines"
	AttrTokenCount  = "tokens.count"
	AttrLanguage    = "block.language"
	AttrCacheHit    = "cache.hit"
	AttrRenderer    = "render.format"
)

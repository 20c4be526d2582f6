package models

import "context"

// Span is one detected PII occurrence: a half-open character range
// [Start, End) into the analyzed text, tagged with an entity type and a
// confidence score in [0, 1]. Offsets count Unicode code points, not
// bytes, matching the annotation service. Spans are immutable once
// created.
type Span struct {
	EntityType string  `json:"entity"`
	Start      int     `json:"start"`
	End        int     `json:"end"`
	Score      float64 `json:"score"`
}

// Length returns the number of characters the span covers.
func (s Span) Length() int {
	return s.End - s.Start
}

// Overlaps reports whether the two half-open ranges share any character.
func (s Span) Overlaps(other Span) bool {
	return !(s.End <= other.Start || s.Start >= other.End)
}

// ModelEntity is one labeled span produced by the external NLP annotation
// service, e.g. a PERSON or GPE entity. Start and End are code point
// offsets, as reported by the service.
type ModelEntity struct {
	Label string
	Start int
	End   int
	Text  string
}

// AnalyzeRequest is the body of a POST /analyze request. Threshold is
// optional; when omitted the configured default applies.
type AnalyzeRequest struct {
	Text      string   `json:"text"`
	Threshold *float64 `json:"threshold" validate:"omitempty,gte=0,lte=1"`
}

type AnalyzeResponse struct {
	Entities []Span `json:"entities"`
}

// Annotator is the seam to the external NLP collaborator. It is called
// exactly once per analysis request and its result is shared read-only
// across all model-entity recognizers.
type Annotator interface {
	Annotate(ctx context.Context, text string) ([]ModelEntity, error)
}

// Analyzer runs the full recognition pipeline over a text.
type Analyzer interface {
	Analyze(ctx context.Context, text string, threshold float64) ([]Span, error)
}

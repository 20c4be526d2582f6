package analyzer

import (
	"context"

	"github.com/piiscope/piiscope/pkg/models"
)

var _ models.Analyzer = &Engine{}

// Engine is the analysis pipeline façade: it obtains model entities from
// the NLP annotator once per request, fans the registry out over the text,
// applies the confidence threshold, and resolves overlapping spans.
// The engine is stateless across requests.
type Engine struct {
	registry  *Registry
	annotator models.Annotator
}

func NewEngine(registry *Registry, annotator models.Annotator) *Engine {
	return &Engine{
		registry:  registry,
		annotator: annotator,
	}
}

func (e *Engine) Analyze(
	ctx context.Context,
	text string,
	threshold float64,
) ([]models.Span, error) {
	// An unavailable annotator degrades to pattern-only detection, never
	// a request failure.
	entities, err := e.annotator.Annotate(ctx, text)
	if err != nil {
		log.Warnf("annotator unavailable, continuing with pattern recognizers only: %v", err)
		entities = nil
	}

	spans := e.registry.Recognize(text, entities)

	filtered := make([]models.Span, 0, len(spans))
	for _, s := range spans {
		if s.Score >= threshold {
			filtered = append(filtered, s)
		}
	}

	return ResolveOverlaps(filtered), nil
}

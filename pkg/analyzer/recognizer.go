package analyzer

import (
	"regexp"
	"unicode/utf8"

	"github.com/piiscope/piiscope/internal"
	"github.com/piiscope/piiscope/pkg/models"
)

var log = internal.GetLogger()

// Recognizer scans input text, optionally aided by the model entities
// produced by the NLP annotator for the same request, and yields zero or
// more spans. Implementations must be pure functions of their inputs so
// the registry can invoke them concurrently.
type Recognizer interface {
	// Name identifies the recognizer in logs.
	Name() string
	// EntityTypes lists the entity tags this recognizer may emit. Used for
	// registry bookkeeping; not enforced at runtime.
	EntityTypes() []string
	Recognize(text string, entities []models.ModelEntity) []models.Span
}

// PatternRecognizer emits a span with a fixed base score for every
// non-overlapping match of a single compiled regular expression.
type PatternRecognizer struct {
	name       string
	entityType string
	re         *regexp.Regexp
	score      float64

	// contextWords is informational metadata carried over from the original
	// recognizer catalogue. It has no effect on matching.
	contextWords []string

	// digitBounded rejects matches directly adjacent to another digit.
	// Substitutes for the lookarounds the source patterns used, which RE2
	// does not support.
	digitBounded bool
}

func NewPatternRecognizer(
	name string,
	entityType string,
	expr string,
	score float64,
	contextWords ...string,
) *PatternRecognizer {
	return &PatternRecognizer{
		name:         name,
		entityType:   entityType,
		re:           regexp.MustCompile(expr),
		score:        score,
		contextWords: contextWords,
	}
}

// NewDigitBoundedPatternRecognizer is a PatternRecognizer that additionally
// requires matches not to touch a neighboring digit. Used for numeric IDs
// like Aadhaar, where a 12-digit group inside a longer digit run must not
// match.
func NewDigitBoundedPatternRecognizer(
	name string,
	entityType string,
	expr string,
	score float64,
	contextWords ...string,
) *PatternRecognizer {
	r := NewPatternRecognizer(name, entityType, expr, score, contextWords...)
	r.digitBounded = true
	return r
}

func (p *PatternRecognizer) Name() string {
	return p.name
}

func (p *PatternRecognizer) EntityTypes() []string {
	return []string{p.entityType}
}

// ContextWords returns the recognizer's context-keyword metadata.
func (p *PatternRecognizer) ContextWords() []string {
	return p.contextWords
}

func (p *PatternRecognizer) Recognize(text string, _ []models.ModelEntity) []models.Span {
	indexes := p.re.FindAllStringIndex(text, -1)
	spans := make([]models.Span, 0, len(indexes))
	conv := newRuneIndexer(text)
	for _, idx := range indexes {
		if p.digitBounded && touchesDigit(text, idx[0], idx[1]) {
			continue
		}
		spans = append(spans, models.Span{
			EntityType: p.entityType,
			Start:      conv.runeIndex(idx[0]),
			End:        conv.runeIndex(idx[1]),
			Score:      p.score,
		})
	}
	return spans
}

// runeIndexer translates the byte offsets regexp reports into rune
// offsets, the coordinate space spans use throughout. Model entities
// arrive from the annotator already rune-indexed, so regex spans must
// match or the overlap resolver would compare misaligned ranges.
// Queries must be made in ascending order.
type runeIndexer struct {
	text    string
	byteOff int
	runeOff int
}

func newRuneIndexer(text string) *runeIndexer {
	return &runeIndexer{text: text}
}

func (r *runeIndexer) runeIndex(byteOff int) int {
	for r.byteOff < byteOff {
		_, size := utf8.DecodeRuneInString(r.text[r.byteOff:])
		r.byteOff += size
		r.runeOff++
	}
	return r.runeOff
}

func touchesDigit(text string, start, end int) bool {
	if start > 0 && isDigit(text[start-1]) {
		return true
	}
	if end < len(text) && isDigit(text[end]) {
		return true
	}
	return false
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

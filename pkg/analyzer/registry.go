package analyzer

import (
	"sync"

	"github.com/piiscope/piiscope/pkg/models"
)

// Registry is an ordered, immutable collection of recognizers. It is
// assembled once at startup via RegistryBuilder and safe for concurrent
// use thereafter.
type Registry struct {
	recognizers []Recognizer
}

// RegistryBuilder assembles a Registry from the predefined baseline,
// an explicit disabled-entity table, and appended custom recognizers.
// The disable table is resolved once, at Build time.
type RegistryBuilder struct {
	disabled map[string]struct{}
	custom   []Recognizer
}

func NewRegistryBuilder() *RegistryBuilder {
	return &RegistryBuilder{disabled: make(map[string]struct{})}
}

// Disable excludes predefined recognizers that may emit any of the given
// entity tags. It does not apply to custom recognizers.
func (b *RegistryBuilder) Disable(entityTypes ...string) *RegistryBuilder {
	for _, t := range entityTypes {
		b.disabled[t] = struct{}{}
	}
	return b
}

// Add appends a custom recognizer. Custom recognizers run after the
// remaining predefined ones.
func (b *RegistryBuilder) Add(recognizers ...Recognizer) *RegistryBuilder {
	b.custom = append(b.custom, recognizers...)
	return b
}

func (b *RegistryBuilder) Build() *Registry {
	var recognizers []Recognizer
	for _, r := range predefinedRecognizers() {
		if b.isDisabled(r) {
			log.Debugf("registry: predefined recognizer %s disabled", r.Name())
			continue
		}
		recognizers = append(recognizers, r)
	}
	recognizers = append(recognizers, b.custom...)
	return &Registry{recognizers: recognizers}
}

func (b *RegistryBuilder) isDisabled(r Recognizer) bool {
	for _, t := range r.EntityTypes() {
		if _, ok := b.disabled[t]; ok {
			return true
		}
	}
	return false
}

// NewDefaultRegistry builds the production registry: the predefined
// baseline minus the disabled entity tags, plus the full custom
// recognizer catalogue.
func NewDefaultRegistry(disabledEntities []string) *Registry {
	return NewRegistryBuilder().
		Disable(disabledEntities...).
		Add(customRecognizers()...).
		Build()
}

// Recognizers returns the registry's recognizers in invocation order.
func (reg *Registry) Recognizers() []Recognizer {
	return reg.recognizers
}

// Recognize fans the request out to every recognizer and concatenates
// their spans in registry order. Recognizers are pure, so they run
// concurrently; a panicking recognizer is logged and skipped rather than
// failing the whole analysis.
func (reg *Registry) Recognize(text string, entities []models.ModelEntity) []models.Span {
	results := make([][]models.Span, len(reg.recognizers))

	var wg sync.WaitGroup
	for i, r := range reg.recognizers {
		wg.Add(1)
		go func(i int, r Recognizer) {
			defer wg.Done()
			defer func() {
				if p := recover(); p != nil {
					log.Errorf("registry: recognizer %s panicked: %v", r.Name(), p)
				}
			}()
			results[i] = r.Recognize(text, entities)
		}(i, r)
	}
	wg.Wait()

	var spans []models.Span
	for _, res := range results {
		spans = append(spans, res...)
	}
	return spans
}

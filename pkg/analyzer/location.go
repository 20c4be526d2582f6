package analyzer

import "github.com/piiscope/piiscope/pkg/models"

// ModelLocationRecognizer turns model entities labeled as geopolitical
// (GPE) or generic locations (LOC) into LOCATION spans, unfiltered.
type ModelLocationRecognizer struct{}

func NewModelLocationRecognizer() *ModelLocationRecognizer {
	return &ModelLocationRecognizer{}
}

func (m *ModelLocationRecognizer) Name() string {
	return "model_location"
}

func (m *ModelLocationRecognizer) EntityTypes() []string {
	return []string{"LOCATION"}
}

func (m *ModelLocationRecognizer) Recognize(_ string, entities []models.ModelEntity) []models.Span {
	var spans []models.Span
	for _, ent := range entities {
		if ent.Label != "GPE" && ent.Label != "LOC" {
			continue
		}
		spans = append(spans, models.Span{
			EntityType: "LOCATION",
			Start:      ent.Start,
			End:        ent.End,
			Score:      0.85,
		})
	}
	return spans
}

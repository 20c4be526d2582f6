package analyzer

import (
	"regexp"
	"strings"

	"github.com/piiscope/piiscope/pkg/models"
)

// contextNamePattern matches "name:" or "full name:" followed by a run of
// alphabetic words. Only the name itself is captured, not the keyword
// prefix.
var contextNamePattern = regexp.MustCompile(
	`(?i)\b(?:name|full name)\s*:\s*([a-zA-Z]+(?:\s[a-zA-Z]+)*)`,
)

// ContextNameRecognizer detects person names anchored on a literal
// "Name:" / "Full Name:" context. Matches score 1.0 since the context
// keyword leaves little ambiguity.
type ContextNameRecognizer struct{}

func NewContextNameRecognizer() *ContextNameRecognizer {
	return &ContextNameRecognizer{}
}

func (c *ContextNameRecognizer) Name() string {
	return "context_name"
}

func (c *ContextNameRecognizer) EntityTypes() []string {
	return []string{"PERSON"}
}

func (c *ContextNameRecognizer) Recognize(text string, _ []models.ModelEntity) []models.Span {
	matches := contextNamePattern.FindAllStringSubmatchIndex(text, -1)
	spans := make([]models.Span, 0, len(matches))
	conv := newRuneIndexer(text)
	for _, m := range matches {
		// m[2], m[3] are the byte bounds of the captured name group.
		spans = append(spans, models.Span{
			EntityType: "PERSON",
			Start:      conv.runeIndex(m[2]),
			End:        conv.runeIndex(m[3]),
			Score:      1.0,
		})
	}
	return spans
}

// personDenyList holds surface strings the NLP model regularly mislabels
// as person names: identity-document keywords and generic nouns. Checked
// by exact equality after lower-casing, never by substring.
var personDenyList = map[string]struct{}{
	"aadhaar": {}, "uidai": {}, "aadhar": {},
	"pan": {}, "card": {}, "pancard": {},
	"vote": {}, "voter": {}, "id": {}, "epic": {},
	"license": {}, "driving": {}, "dl": {},
	"credit": {}, "debit": {}, "visa": {}, "mastercard": {},
	"phone": {}, "mobile": {}, "number": {},
	"passport": {}, "email": {}, "address": {},
	"india": {}, "state": {}, "govt": {}, "government": {},
	"name": {}, "is": {}, "proof": {},
}

// ModelPersonRecognizer turns model entities labeled PERSON into spans,
// skipping entities whose surface text is on the deny list.
type ModelPersonRecognizer struct{}

func NewModelPersonRecognizer() *ModelPersonRecognizer {
	return &ModelPersonRecognizer{}
}

func (m *ModelPersonRecognizer) Name() string {
	return "model_person"
}

func (m *ModelPersonRecognizer) EntityTypes() []string {
	return []string{"PERSON"}
}

func (m *ModelPersonRecognizer) Recognize(_ string, entities []models.ModelEntity) []models.Span {
	var spans []models.Span
	for _, ent := range entities {
		if ent.Label != "PERSON" {
			continue
		}
		if _, denied := personDenyList[strings.ToLower(ent.Text)]; denied {
			continue
		}
		spans = append(spans, models.Span{
			EntityType: "PERSON",
			Start:      ent.Start,
			End:        ent.End,
			Score:      0.9,
		})
	}
	return spans
}

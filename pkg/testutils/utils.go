package testutils

import (
	"github.com/brianvoe/gofakeit/v6"

	"github.com/piiscope/piiscope/config"
	"github.com/piiscope/piiscope/pkg/models"
)

// NewTestConfig returns a config with production defaults, suitable for
// constructing registries and app state in tests without touching the
// filesystem or environment.
func NewTestConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host: "localhost",
			Port: 8000,
		},
		Log: config.LogConfig{
			Level: "warn",
		},
		NLP: config.NLPConfig{
			TimeoutSeconds: 10,
			RetryMax:       3,
		},
		Analyzer: config.AnalyzerConfig{
			DefaultThreshold: 0.6,
			DisabledEntities: []string{
				"UK_NHS",
				"US_DRIVER_LICENSE",
				"CREDIT_CARD",
				"DATE_TIME",
			},
		},
	}
}

var spanEntityTypes = []string{
	"PERSON",
	"LOCATION",
	"PHONE_NUMBER",
	"AADHAAR_NUMBER",
	"PAN_NUMBER",
	"PINCODE",
}

// GenerateRandomSpans returns n spans with random ranges and scores,
// deterministically seeded. Ranges may overlap arbitrarily, which is the
// point: they exercise the overlap resolver.
func GenerateRandomSpans(n int, seed int64) []models.Span {
	faker := gofakeit.New(seed)
	spans := make([]models.Span, n)
	for i := range spans {
		start := faker.Number(0, 200)
		length := faker.Number(1, 30)
		spans[i] = models.Span{
			EntityType: spanEntityTypes[faker.Number(0, len(spanEntityTypes)-1)],
			Start:      start,
			End:        start + length,
			Score:      faker.Float64Range(0, 1),
		}
	}
	return spans
}

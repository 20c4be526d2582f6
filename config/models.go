package config

// Config holds the configuration of the application
// Use config.LoadConfig to create a new instance
type Config struct {
	NLP      NLPConfig      `mapstructure:"nlp"`
	Analyzer AnalyzerConfig `mapstructure:"analyzer"`
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
	Auth     AuthConfig     `mapstructure:"auth"`
}

// NLPConfig configures the external NLP annotation service. An empty
// ServerURL disables model-entity recognizers; pattern recognizers are
// unaffected.
type NLPConfig struct {
	ServerURL      string `mapstructure:"server_url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	RetryMax       int    `mapstructure:"retry_max"`
}

// AnalyzerConfig configures the recognizer registry and the default
// confidence threshold applied when a request does not provide one.
type AnalyzerConfig struct {
	DefaultThreshold float64  `mapstructure:"default_threshold"`
	DisabledEntities []string `mapstructure:"disabled_entities"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type AuthConfig struct {
	// Secret is loaded from ENV not config file.
	Secret   string `mapstructure:"secret"`
	Required bool   `mapstructure:"required"`
}

package models

import "github.com/piiscope/piiscope/config"

// AppState is a struct that holds the process-wide state of the application,
// including the config, the analyzer engine, and the NLP annotator. All
// fields are initialized once at startup and read-only thereafter.
type AppState struct {
	Analyzer  Analyzer
	Annotator Annotator
	Config    *config.Config
}

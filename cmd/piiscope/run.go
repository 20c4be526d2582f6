package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/piiscope/piiscope/config"
	"github.com/piiscope/piiscope/pkg/analyzer"
	"github.com/piiscope/piiscope/pkg/auth"
	"github.com/piiscope/piiscope/pkg/models"
	"github.com/piiscope/piiscope/pkg/nlp"
	"github.com/piiscope/piiscope/pkg/server"
)

const ShutdownTimeout = 10 * time.Second

// run is the entrypoint for the piiscope server
func run() {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		log.Fatalf("Error configuring piiscope: %s", err)
	}

	handleCLIOptions(cfg)

	log.Infof("Starting piiscope server version %s", config.VersionString)

	config.SetLogLevel(cfg)
	appState := NewAppState(cfg)

	srv := server.Create(appState)
	setupSignalHandler(srv)

	log.Infof("Listening on: %s", srv.Addr)
	err = srv.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}

// NewAppState creates an AppState struct from the config file / ENV and
// builds the recognizer registry and NLP annotator. Construction happens
// once, at process start; the resulting state is read-only.
func NewAppState(cfg *config.Config) *models.AppState {
	annotator := newAnnotator(cfg)
	registry := analyzer.NewDefaultRegistry(cfg.Analyzer.DisabledEntities)

	return &models.AppState{
		Analyzer:  analyzer.NewEngine(registry, annotator),
		Annotator: annotator,
		Config:    cfg,
	}
}

func newAnnotator(cfg *config.Config) models.Annotator {
	if cfg.NLP.ServerURL == "" {
		log.Warn("nlp.server_url not set; running with pattern recognizers only")
		return nlp.NoopAnnotator{}
	}
	log.Info("Using NLP server: ", cfg.NLP.ServerURL)
	return nlp.NewClient(cfg)
}

// handleCLIOptions handles CLI options that don't require the server to run
func handleCLIOptions(cfg *config.Config) {
	if showVersion {
		fmt.Println(config.VersionString)
		os.Exit(0)
	}
	if generateKey {
		fmt.Println(auth.GenerateJWT(cfg))
		os.Exit(0)
	}
	if dumpConfig {
		dumped, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			log.Fatalf("Error dumping config: %s", err)
		}
		fmt.Println(string(dumped))
		os.Exit(0)
	}
}

// setupSignalHandler sets up a signal handler to gracefully shut the
// server down on termination
func setupSignalHandler(srv *http.Server) {
	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signalCh
		log.Info("Shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Errorf("Error shutting down server: %v", err)
		}
	}()
}

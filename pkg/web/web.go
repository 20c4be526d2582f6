package web

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/piiscope/piiscope/internal"
)

var log = internal.GetLogger()

//go:embed static/*
var StaticFS embed.FS

// IndexHandler serves the analysis UI.
func IndexHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := StaticFS.ReadFile("static/index.html")
		if err != nil {
			log.Errorf("error reading index page: %v", err)
			http.Error(w, "page not found", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(page)
	}
}

// StaticHandler serves the embedded static assets under /static/.
func StaticHandler() http.Handler {
	sub, err := fs.Sub(StaticFS, "static")
	if err != nil {
		log.Fatalf("error mounting static assets: %v", err)
	}
	return http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
}

package apihandlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/piiscope/piiscope/pkg/models"
	"github.com/piiscope/piiscope/pkg/server/handlertools"
)

var validate = validator.New()

// AnalyzeHandler returns a handler for POST requests to /analyze.
//
// The request body carries the text to scan and an optional confidence
// threshold; when the threshold is omitted the configured default applies.
// The response lists the resolved, non-overlapping entity spans in
// resolver output order.
func AnalyzeHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var request models.AnalyzeRequest
		if err := handlertools.DecodeJSON(r, &request); err != nil {
			handlertools.RenderError(w, err, http.StatusBadRequest)
			return
		}
		if err := validate.Struct(request); err != nil {
			handlertools.RenderError(w, err, http.StatusBadRequest)
			return
		}

		threshold := appState.Config.Analyzer.DefaultThreshold
		if request.Threshold != nil {
			threshold = *request.Threshold
		}

		spans, err := appState.Analyzer.Analyze(r.Context(), request.Text, threshold)
		if err != nil {
			handlertools.RenderError(w, err, http.StatusInternalServerError)
			return
		}
		if spans == nil {
			spans = []models.Span{}
		}

		if err := handlertools.EncodeJSON(w, models.AnalyzeResponse{Entities: spans}); err != nil {
			handlertools.RenderError(w, err, http.StatusInternalServerError)
			return
		}
	}
}

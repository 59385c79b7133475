package http

import (
	"io"
	"log/slog"
	"net/http"
)

// maxUploadBytes bounds the multipart form held in memory per request.
const maxUploadBytes = 10 << 20 // 10MB

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeDetail(w, http.StatusBadRequest, "expected a multipart file upload")
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		writeDetail(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer file.Close()

	imageData, err := io.ReadAll(file)
	if err != nil {
		writeDetail(w, http.StatusBadRequest, "failed to read uploaded file")
		return
	}

	result, err := s.analyzer.Analyze(r.Context(), imageData)
	if err != nil {
		slog.ErrorContext(r.Context(), "Receipt analysis failed", "error", err)
		writeDetail(w, http.StatusInternalServerError, "Analysis failed: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, result)
}

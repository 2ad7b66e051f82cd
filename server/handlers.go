package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"naver-keyword-analyzer/models"
	"naver-keyword-analyzer/services"
	"naver-keyword-analyzer/storage"
	"naver-keyword-analyzer/utils"
)

type handler struct {
	pipeline *services.Pipeline
	writers  []storage.ReportWriter
	history  storage.ReportFetcher
	logger   *utils.Logger
}

type analyzeRequest struct {
	Keywords []string `json:"keywords"`
}

type analyzeResponse struct {
	Rows []*models.ReportRow `json:"rows"`
}

func (h *handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// analyze runs the pipeline for the requested keywords, persists the rows
// through the configured writers, and returns them.
func (h *handler) analyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.Keywords) == 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload: keywords required"})
		return
	}

	rows := h.pipeline.Run(r.Context(), req.Keywords)

	for _, wr := range h.writers {
		if err := wr.WriteReport(rows); err != nil {
			h.logger.Error("[server] persist failed: %v", err)
		}
	}

	writeJSON(w, http.StatusOK, analyzeResponse{Rows: rows})
}

// reports returns the most recently persisted rows.
func (h *handler) reports(w http.ResponseWriter, r *http.Request) {
	limit := 100
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	rows := []*models.ReportRow{}
	if h.history != nil {
		fetched, err := h.history.FetchRecent(limit)
		if err != nil {
			h.logger.Error("[server] fetch reports: %v", err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "could not read report history"})
			return
		}
		if fetched != nil {
			rows = fetched
		}
	}

	writeJSON(w, http.StatusOK, analyzeResponse{Rows: rows})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

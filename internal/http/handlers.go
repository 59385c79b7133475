package http

import (
	"log/slog"
	"net/http"
	"time"

	"baniya/internal/catalog"
)

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	// "/api/" is a subtree pattern; anything not matched by a more
	// specific route lands here.
	if r.URL.Path != "/api/" {
		writeDetail(w, http.StatusNotFound, "Not Found")
		return
	}
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Baniya.ai API"})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (s *Server) handleSalesPredictions(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	platform := r.URL.Query().Get("platform")
	writeJSON(w, http.StatusOK, catalog.Predictions(platform))
}

func (s *Server) handleFundGet(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	user := s.userParam(r)
	fund, err := s.fund.GetFund(r.Context(), user)
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to read fund", "user", user, "error", err)
		writeDetail(w, http.StatusInternalServerError, "failed to read fund")
		return
	}
	writeJSON(w, http.StatusOK, fund)
}

func (s *Server) handleFundAdd(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	amount, ok := parseAmount(r.URL.Query().Get("amount"))
	if !ok {
		writeDetail(w, http.StatusUnprocessableEntity, "amount must be a positive number")
		return
	}

	user := s.userParam(r)
	fund, err := s.fund.AddFund(r.Context(), user, amount)
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to add to fund",
			"user", user, "amount", amount, "error", err)
		writeDetail(w, http.StatusInternalServerError, "failed to update fund")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"new_total": fund.TotalSaved,
	})
}

func (s *Server) handleFundHistory(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	user := s.userParam(r)
	deposits, err := s.fund.ListDeposits(r.Context(), user)
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to list deposits", "user", user, "error", err)
		writeDetail(w, http.StatusInternalServerError, "failed to read deposit history")
		return
	}
	writeJSON(w, http.StatusOK, deposits)
}

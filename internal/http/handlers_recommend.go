package http

import (
	"encoding/json"
	"net/http"

	"baniya/internal/catalog"
	"baniya/internal/core"
)

// spendingProfileRequest uses pointers to tell a missing field apart from
// an explicit zero: all five spend amounts are required.
type spendingProfileRequest struct {
	Grocery   *int `json:"grocery"`
	Dining    *int `json:"dining"`
	Travel    *int `json:"travel"`
	Shopping  *int `json:"shopping"`
	Utilities *int `json:"utilities"`
}

func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	var req spendingProfileRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if req.Grocery == nil || req.Dining == nil || req.Travel == nil || req.Shopping == nil || req.Utilities == nil {
		writeDetail(w, http.StatusUnprocessableEntity, "grocery, dining, travel, shopping and utilities are all required")
		return
	}

	profile := core.SpendingProfile{
		Grocery:   *req.Grocery,
		Dining:    *req.Dining,
		Travel:    *req.Travel,
		Shopping:  *req.Shopping,
		Utilities: *req.Utilities,
	}
	if err := profile.Validate(); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, core.Recommend(profile, catalog.Cards()))
}

package history

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	auth "Aerostat/internal/auth"
	airship "Aerostat/internal/calc/airship"
	repo "Aerostat/internal/repo"
)

// Handler evaluates airships for authenticated users and keeps their
// evaluation history in the repository.
type Handler struct {
	Repo repo.Repository
}

// Calc evaluates one airship input and records the outcome against the
// calling user. A failed save does not fail the evaluation.
func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input airship.Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := airship.Evaluate(input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if userID := auth.UserID(r.Context()); userID != 0 {
		rec := repo.EvaluationRecord{
			LengthM:      input.LengthM,
			DiameterM:    input.DiameterM,
			AltitudeM:    input.AltitudeM,
			Option:       string(input.Option),
			NetPayloadKg: res.NetPayloadKg,
		}
		if err := h.Repo.SaveEvaluation(r.Context(), userID, rec); err != nil {
			log.Printf("SaveEvaluation error: %v", err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

// List returns the user's most recent evaluations, newest first.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())
	if userID == 0 {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	limit := 0
	if s := r.URL.Query().Get("limit"); s != "" {
		limit, _ = strconv.Atoi(s)
	}

	records, err := h.Repo.ListEvaluations(r.Context(), userID, limit)
	if err != nil {
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	if records == nil {
		records = []repo.EvaluationRecord{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(records)
}

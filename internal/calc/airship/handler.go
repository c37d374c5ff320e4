package airship

import (
	"encoding/json"
	"net/http"
)

type Handler struct{}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := Evaluate(input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

type CompareInput struct {
	LengthM   float64 `json:"length_m"`
	DiameterM float64 `json:"diameter_m"`
	AltitudeM float64 `json:"altitude_m"`
}

type CompareResult struct {
	Results []Result `json:"results"`
}

// Compare evaluates the hull against all five construction options.
func (h *Handler) Compare(w http.ResponseWriter, r *http.Request) {
	var input CompareInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	results, err := EvaluateAll(input.LengthM, input.DiameterM, input.AltitudeM)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(CompareResult{Results: results})
}

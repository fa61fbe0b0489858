package handlers

import (
	"net/http"

	"zakat-engine/internal/models"
	"zakat-engine/internal/services/nisab"
	"zakat-engine/internal/services/prices"
)

// handleListMethodologies serves the educational methodology content: names,
// policies and scholarly citations for every supported rule set.
func (s *Server) handleListMethodologies(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.registry.All())
}

// nisabResponse pairs the current quote with the thresholds it implies under
// each methodology.
type nisabResponse struct {
	Quote      prices.Quote         `json:"quote"`
	Thresholds []models.NisabResult `json:"thresholds"`
}

// handleCurrentNisab computes the current nisab thresholds for every
// methodology from the latest metal-price quote.
func (s *Server) handleCurrentNisab(w http.ResponseWriter, r *http.Request) {
	quote := s.prices.Current(r.Context())

	thresholds := make([]models.NisabResult, 0)
	for _, m := range s.registry.All() {
		if m.ID == models.MethodologyCustom {
			// Custom has no computable nisab without a user override.
			continue
		}
		result, err := nisab.Calculate(quote.GoldPerGram, quote.SilverPerGram, m, nil)
		if err != nil {
			writeError(w, err)
			return
		}
		thresholds = append(thresholds, result)
	}

	writeJSON(w, http.StatusOK, nisabResponse{Quote: quote, Thresholds: thresholds})
}

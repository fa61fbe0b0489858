// Package handlers provides HTTP handlers for the zakat calculation engine.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"zakat-engine/internal/methodology"
	"zakat-engine/internal/models"
	"zakat-engine/internal/services/calculator"
	"zakat-engine/internal/services/prices"
	"zakat-engine/internal/store"
	"zakat-engine/internal/utils"
)

// Server wires the calculation engine, methodology registry, price provider
// and store behind HTTP routes.
type Server struct {
	calculator *calculator.Service
	registry   *methodology.Registry
	prices     *prices.Provider
	store      store.Store
	router     *mux.Router
}

// NewServer creates the HTTP server and registers all routes.
func NewServer(calc *calculator.Service, registry *methodology.Registry, priceProvider *prices.Provider, st store.Store) *Server {
	s := &Server{
		calculator: calc,
		registry:   registry,
		prices:     priceProvider,
		store:      st,
	}

	r := mux.NewRouter()
	r.HandleFunc("/api/health", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/api/methodologies", s.handleListMethodologies).Methods(http.MethodGet)
	r.HandleFunc("/api/nisab", s.handleCurrentNisab).Methods(http.MethodGet)
	r.HandleFunc("/api/calculations", s.handleCreateCalculation).Methods(http.MethodPost)
	r.HandleFunc("/api/calculations", s.handleListCalculations).Methods(http.MethodGet)
	r.HandleFunc("/api/calculations/{id}", s.handleGetCalculation).Methods(http.MethodGet)
	r.HandleFunc("/api/calculations/{id}/payments", s.handleAddPayment).Methods(http.MethodPost)
	r.HandleFunc("/api/calculations/{id}/payments", s.handlePaymentProgress).Methods(http.MethodGet)
	s.router = r

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// errorResponse is the JSON envelope for failed requests.
type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		utils.GetLogger().Warn("failed to encode response", zap.Error(err))
	}
}

// writeError maps engine errors to HTTP statuses: structural request errors
// are 400s, a missing snapshot is 404, everything else is 500.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, models.ErrSnapshotNotFound):
		status = http.StatusNotFound
	case errors.Is(err, models.ErrUnknownMethodology),
		errors.Is(err, models.ErrInvalidGoldPrice),
		errors.Is(err, models.ErrInvalidSilverPrice),
		errors.Is(err, models.ErrInvalidCurrency),
		errors.Is(err, models.ErrMissingCustomNisab),
		errors.Is(err, models.ErrInvalidCustomNisab),
		errors.Is(err, models.ErrInvalidPaymentAmount):
		status = http.StatusBadRequest
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "zakat-engine",
	})
}

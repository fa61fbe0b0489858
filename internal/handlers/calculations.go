package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"zakat-engine/internal/models"
	"zakat-engine/internal/utils"
)

// CalculationPayload is the request body for POST /api/calculations. Assets
// and liabilities arrive inline; in the full system they come from the
// asset-management subsystem, already decrypted.
type CalculationPayload struct {
	CalculationDate    *time.Time               `json:"calculation_date,omitempty"`
	MethodologyID      models.MethodologyID     `json:"methodology_id"`
	Currency           string                   `json:"currency"`
	GoldPricePerGram   *decimal.Decimal         `json:"gold_price_per_gram,omitempty"`
	SilverPricePerGram *decimal.Decimal         `json:"silver_price_per_gram,omitempty"`
	IncludeAssetIDs    []string                 `json:"include_asset_ids"`
	CustomNisab        *decimal.Decimal         `json:"custom_nisab,omitempty"`
	Assets             []models.AssetRecord     `json:"assets"`
	Liabilities        []models.LiabilityRecord `json:"liabilities"`
}

// handleCreateCalculation runs a calculation and persists the snapshot.
// Prices omitted from the payload are filled from the price provider.
func (s *Server) handleCreateCalculation(w http.ResponseWriter, r *http.Request) {
	logger := utils.GetLogger()

	var payload CalculationPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	req := models.CalculationRequest{
		MethodologyID:   payload.MethodologyID,
		Currency:        payload.Currency,
		IncludeAssetIDs: payload.IncludeAssetIDs,
		CustomNisab:     payload.CustomNisab,
	}

	if payload.CalculationDate != nil {
		req.CalculationDate = *payload.CalculationDate
	} else {
		req.CalculationDate = time.Now().UTC()
	}

	if payload.GoldPricePerGram != nil && payload.SilverPricePerGram != nil {
		req.GoldPricePerGram = *payload.GoldPricePerGram
		req.SilverPricePerGram = *payload.SilverPricePerGram
	} else {
		quote := s.prices.Current(r.Context())
		req.GoldPricePerGram = quote.GoldPerGram
		req.SilverPricePerGram = quote.SilverPerGram
	}

	result, err := s.calculator.Calculate(req, payload.Assets, payload.Liabilities)
	if err != nil {
		logger.Warn("calculation failed",
			zap.String("methodology", string(payload.MethodologyID)),
			zap.Error(err),
		)
		writeError(w, err)
		return
	}

	snapshot := models.CalculationSnapshot{
		ID:        uuid.New().String(),
		CreatedAt: time.Now().UTC(),
		Result:    *result,
	}

	if err := s.store.SaveCalculation(r.Context(), snapshot); err != nil {
		logger.Error("failed to persist calculation", zap.Error(err))
		writeError(w, err)
		return
	}

	logger.Info("calculation complete",
		zap.String("id", snapshot.ID),
		zap.String("methodology", string(result.MethodologyID)),
		zap.Bool("meets_nisab", result.MeetsNisab),
		zap.String("total_zakat_due", result.TotalZakatDue.String()),
	)

	writeJSON(w, http.StatusCreated, snapshot)
}

func (s *Server) handleListCalculations(w http.ResponseWriter, r *http.Request) {
	snapshots, err := s.store.ListCalculations(r.Context(), 50)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snapshots)
}

func (s *Server) handleGetCalculation(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	snapshot, err := s.store.GetCalculation(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snapshot)
}

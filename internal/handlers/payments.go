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

// PaymentPayload is the request body for recording a payment against a
// calculation snapshot.
type PaymentPayload struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
	PaidAt   *time.Time      `json:"paid_at,omitempty"`
	Note     string          `json:"note,omitempty"`
}

func (s *Server) handleAddPayment(w http.ResponseWriter, r *http.Request) {
	calculationID := mux.Vars(r)["id"]

	var payload PaymentPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	if !payload.Amount.IsPositive() {
		writeError(w, models.ErrInvalidPaymentAmount)
		return
	}

	payment := models.Payment{
		ID:            uuid.New().String(),
		CalculationID: calculationID,
		Amount:        payload.Amount,
		Currency:      payload.Currency,
		Note:          payload.Note,
	}
	if payload.PaidAt != nil {
		payment.PaidAt = *payload.PaidAt
	} else {
		payment.PaidAt = time.Now().UTC()
	}

	if err := s.store.AddPayment(r.Context(), payment); err != nil {
		writeError(w, err)
		return
	}

	utils.GetLogger().Info("payment recorded",
		zap.String("calculation_id", calculationID),
		zap.String("amount", payment.Amount.String()),
	)

	writeJSON(w, http.StatusCreated, payment)
}

func (s *Server) handlePaymentProgress(w http.ResponseWriter, r *http.Request) {
	calculationID := mux.Vars(r)["id"]

	progress, err := s.store.PaymentProgress(r.Context(), calculationID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, progress)
}

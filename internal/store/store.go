// Package store persists calculation snapshots and payment history. It is an
// external collaborator of the calculation engine: the engine never reads or
// writes storage.
package store

import (
	"context"

	"zakat-engine/internal/models"
)

// Store is the persistence interface for calculation history and payments.
type Store interface {
	SaveCalculation(ctx context.Context, snapshot models.CalculationSnapshot) error
	GetCalculation(ctx context.Context, id string) (*models.CalculationSnapshot, error)
	ListCalculations(ctx context.Context, limit int) ([]models.CalculationSnapshot, error)
	AddPayment(ctx context.Context, payment models.Payment) error
	PaymentProgress(ctx context.Context, calculationID string) (*models.PaymentProgress, error)
	Close() error
}

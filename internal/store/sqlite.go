package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"

	"zakat-engine/internal/models"
)

// SQLiteStore persists snapshots and payments in an embedded SQLite database.
// Monetary columns are stored as decimal strings, never floats.
type SQLiteStore struct {
	db *sql.DB
}

// Open opens (creating if needed) the SQLite database at path and applies the
// schema.
func Open(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	if err := migrate(db); err != nil {
		return nil, err
	}

	return &SQLiteStore{db: db}, nil
}

func migrate(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS calculations (
		id TEXT PRIMARY KEY,
		created_at DATETIME NOT NULL,
		calculation_date DATETIME NOT NULL,
		methodology TEXT NOT NULL,
		currency TEXT NOT NULL,
		meets_nisab INTEGER NOT NULL,
		total_zakat_due TEXT NOT NULL,
		result_json TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS payments (
		id TEXT PRIMARY KEY,
		calculation_id TEXT NOT NULL REFERENCES calculations(id),
		amount TEXT NOT NULL,
		currency TEXT NOT NULL,
		paid_at DATETIME NOT NULL,
		note TEXT NOT NULL DEFAULT ''
	);

	CREATE INDEX IF NOT EXISTS idx_payments_calculation ON payments(calculation_id);
	`

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}

// SaveCalculation stores one snapshot. The full result is kept as JSON; a few
// summary columns are duplicated for listing without deserialization.
func (s *SQLiteStore) SaveCalculation(ctx context.Context, snapshot models.CalculationSnapshot) error {
	resultJSON, err := json.Marshal(snapshot.Result)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO calculations (id, created_at, calculation_date, methodology, currency, meets_nisab, total_zakat_due, result_json)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		snapshot.ID,
		snapshot.CreatedAt.UTC(),
		snapshot.Result.CalculationDate.UTC(),
		string(snapshot.Result.MethodologyID),
		snapshot.Result.Currency,
		boolToInt(snapshot.Result.MeetsNisab),
		snapshot.Result.TotalZakatDue.String(),
		string(resultJSON),
	)
	if err != nil {
		return fmt.Errorf("insert calculation: %w", err)
	}
	return nil
}

// GetCalculation loads one snapshot by id.
func (s *SQLiteStore) GetCalculation(ctx context.Context, id string) (*models.CalculationSnapshot, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, created_at, result_json FROM calculations WHERE id = ?`, id)

	var snapshot models.CalculationSnapshot
	var resultJSON string
	if err := row.Scan(&snapshot.ID, &snapshot.CreatedAt, &resultJSON); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("scan calculation: %w", err)
	}

	if err := json.Unmarshal([]byte(resultJSON), &snapshot.Result); err != nil {
		return nil, fmt.Errorf("unmarshal result: %w", err)
	}
	return &snapshot, nil
}

// ListCalculations returns the most recent snapshots, newest first.
func (s *SQLiteStore) ListCalculations(ctx context.Context, limit int) ([]models.CalculationSnapshot, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, created_at, result_json FROM calculations ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query calculations: %w", err)
	}
	defer rows.Close()

	snapshots := make([]models.CalculationSnapshot, 0)
	for rows.Next() {
		var snapshot models.CalculationSnapshot
		var resultJSON string
		if err := rows.Scan(&snapshot.ID, &snapshot.CreatedAt, &resultJSON); err != nil {
			return nil, fmt.Errorf("scan calculation: %w", err)
		}
		if err := json.Unmarshal([]byte(resultJSON), &snapshot.Result); err != nil {
			return nil, fmt.Errorf("unmarshal result: %w", err)
		}
		snapshots = append(snapshots, snapshot)
	}
	return snapshots, rows.Err()
}

// AddPayment records a payment against an existing snapshot.
func (s *SQLiteStore) AddPayment(ctx context.Context, payment models.Payment) error {
	if !payment.Amount.IsPositive() {
		return models.ErrInvalidPaymentAmount
	}

	if _, err := s.GetCalculation(ctx, payment.CalculationID); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO payments (id, calculation_id, amount, currency, paid_at, note)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		payment.ID,
		payment.CalculationID,
		payment.Amount.String(),
		payment.Currency,
		payment.PaidAt.UTC(),
		payment.Note,
	)
	if err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

// PaymentProgress reports paid-versus-due for one snapshot. Remaining is
// floored at zero; overpayment does not go negative.
func (s *SQLiteStore) PaymentProgress(ctx context.Context, calculationID string) (*models.PaymentProgress, error) {
	snapshot, err := s.GetCalculation(ctx, calculationID)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, calculation_id, amount, currency, paid_at, note
		 FROM payments WHERE calculation_id = ? ORDER BY paid_at ASC`, calculationID)
	if err != nil {
		return nil, fmt.Errorf("query payments: %w", err)
	}
	defer rows.Close()

	progress := &models.PaymentProgress{
		CalculationID: calculationID,
		TotalDue:      snapshot.Result.TotalZakatDue,
		TotalPaid:     decimal.Zero,
		Payments:      make([]models.Payment, 0),
	}

	for rows.Next() {
		var p models.Payment
		var amount string
		var paidAt time.Time
		if err := rows.Scan(&p.ID, &p.CalculationID, &amount, &p.Currency, &paidAt, &p.Note); err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		p.Amount, err = decimal.NewFromString(amount)
		if err != nil {
			return nil, fmt.Errorf("parse payment amount: %w", err)
		}
		p.PaidAt = paidAt
		progress.TotalPaid = progress.TotalPaid.Add(p.Amount)
		progress.Payments = append(progress.Payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	progress.Remaining = progress.TotalDue.Sub(progress.TotalPaid)
	if progress.Remaining.IsNegative() {
		progress.Remaining = decimal.Zero
	}
	return progress, nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

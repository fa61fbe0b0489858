package models

import (
	"errors"
)

// Structural request errors. These fail a calculation immediately; a single
// odd record among many is instead excluded with a recorded warning.
var (
	ErrUnknownMethodology      = errors.New("unknown methodology identifier")
	ErrInvalidGoldPrice        = errors.New("gold price per gram must be positive")
	ErrInvalidSilverPrice      = errors.New("silver price per gram must be positive")
	ErrInvalidCurrency         = errors.New("currency must be a 3-letter ISO 4217 code")
	ErrMissingCustomNisab      = errors.New("custom methodology requires a custom nisab value")
	ErrInvalidCustomNisab      = errors.New("custom nisab must be positive")
	ErrEmptyAssetID            = errors.New("asset id cannot be empty")
	ErrNegativeAssetValue      = errors.New("asset value cannot be negative")
	ErrEmptyLiabilityID        = errors.New("liability id cannot be empty")
	ErrNegativeLiabilityAmount = errors.New("liability amount cannot be negative")
	ErrInvalidPaymentAmount    = errors.New("payment amount must be positive")
	ErrSnapshotNotFound        = errors.New("calculation snapshot not found")
)

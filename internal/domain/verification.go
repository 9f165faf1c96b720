// Package domain holds the core types for transaction verification.
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionStatus is the provider's authoritative status for a transaction.
type TransactionStatus string

// Statuses reported by Paystack for a verified transaction.
const (
	StatusSuccess    TransactionStatus = "success"
	StatusFailed     TransactionStatus = "failed"
	StatusAbandoned  TransactionStatus = "abandoned"
	StatusPending    TransactionStatus = "pending"
	StatusOngoing    TransactionStatus = "ongoing"
	StatusProcessing TransactionStatus = "processing"
	StatusQueued     TransactionStatus = "queued"
	StatusReversed   TransactionStatus = "reversed"
)

// Tone classifies a status for display purposes.
type Tone int

const (
	// ToneAffirmative marks a completed, successful transaction.
	ToneAffirmative Tone = iota

	// ToneWarning marks an in-flight or abandoned transaction.
	ToneWarning

	// ToneNegative marks a failed or reversed transaction.
	ToneNegative
)

// Tone returns the display classification for the status. Unrecognized
// statuses are treated as warnings rather than failures so that new
// provider states never render as hard errors.
func (s TransactionStatus) Tone() Tone {
	switch s {
	case StatusSuccess:
		return ToneAffirmative
	case StatusFailed, StatusReversed:
		return ToneNegative
	default:
		return ToneWarning
	}
}

// VerificationResult is the normalized outcome of one verification request.
// It is created by the provider client, immutable once produced, and
// discarded after display.
type VerificationResult struct {
	// Reference is the transaction reference that was verified.
	Reference string

	// Status is the provider's current status for the transaction.
	Status TransactionStatus

	// AmountMinor is the transaction amount in the currency's minor units
	// (e.g., kobo for NGN, cents for USD).
	AmountMinor int64

	// Currency is the ISO 4217 currency code.
	Currency string

	// PaidAt is when the transaction was paid. Zero if never paid.
	PaidAt time.Time

	// Channel is the payment channel (card, bank, ussd, ...).
	Channel string

	// GatewayResponse is the processor's human-readable response line.
	GatewayResponse string

	// Message is the provider's top-level message for the request.
	Message string
}

// Amount returns the transaction amount in major units.
func (r *VerificationResult) Amount() decimal.Decimal {
	return decimal.NewFromInt(r.AmountMinor).Shift(-2)
}

// FormatAmount renders the amount with two decimal places and the currency
// code, e.g. "50.00 NGN" for 5000 minor units of NGN.
func (r *VerificationResult) FormatAmount() string {
	return r.Amount().StringFixed(2) + " " + r.Currency
}

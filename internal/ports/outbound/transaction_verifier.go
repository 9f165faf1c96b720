package outbound

import (
	"context"

	"github.com/lagoslabs/txverify/internal/domain"
)

// TransactionVerifier queries a payment provider for the authoritative
// current status of a transaction.
type TransactionVerifier interface {
	// Name returns the provider name (e.g., "paystack").
	Name() string

	// VerifyTransaction fetches the current status of the transaction
	// identified by reference. It issues exactly one outbound request;
	// callers own any retry policy.
	VerifyTransaction(ctx context.Context, reference string) (*domain.VerificationResult, error)
}

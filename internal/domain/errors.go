package domain

import "fmt"

// The verification error taxonomy. Every failed verification attempt maps
// to exactly one of these; the presenter renders a distinct diagnostic for
// each kind.

// InvalidInputError is a syntactically invalid user entry, caught before
// any network call is made.
type InvalidInputError struct {
	// Reason names what was wrong with the entry, safe to echo back to
	// the terminal (never contains the secret).
	Reason string
}

func (e *InvalidInputError) Error() string {
	return "invalid input: " + e.Reason
}

// ProviderError is a well-formed rejection from the payment provider: the
// request reached the API and the API declined it (unknown reference,
// invalid key, failed verification).
type ProviderError struct {
	// StatusCode is the HTTP status of the response. 200 when the provider
	// returned a body with its success flag set to false.
	StatusCode int

	// Message is the provider's human-readable message.
	Message string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider error (HTTP %d): %s", e.StatusCode, e.Message)
}

// Unauthorized reports whether the provider rejected the credential itself.
func (e *ProviderError) Unauthorized() bool {
	return e.StatusCode == 401
}

// TransportError is a network-level failure: DNS, connect, TLS, or timeout.
// The request may never have reached the provider.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ParseError is a response from the provider that could not be decoded
// into the expected shape.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unparseable response: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

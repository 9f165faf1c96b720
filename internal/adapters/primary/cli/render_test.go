package cli

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/lagoslabs/txverify/internal/domain"
)

func TestMain(m *testing.M) {
	// Rendered output is asserted as plain text.
	color.NoColor = true
	os.Exit(m.Run())
}

func TestRenderer_RenderResult(t *testing.T) {
	var out bytes.Buffer
	r := NewRenderer(&out)

	r.RenderResult(&domain.VerificationResult{
		Reference:       "ref_123",
		Status:          domain.StatusSuccess,
		AmountMinor:     5000,
		Currency:        "NGN",
		PaidAt:          time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
		Channel:         "card",
		GatewayResponse: "Successful",
		Message:         "Verification successful",
	})

	got := out.String()
	for _, want := range []string{
		"ref_123",
		"success",
		"50.00 NGN",
		"2024-01-15 10:30:00 UTC",
		"card",
		"Successful",
		"Verification successful",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestRenderer_RenderResult_UnpaidTransaction(t *testing.T) {
	var out bytes.Buffer
	r := NewRenderer(&out)

	r.RenderResult(&domain.VerificationResult{
		Reference:   "ref_123",
		Status:      domain.StatusAbandoned,
		AmountMinor: 120000,
		Currency:    "NGN",
	})

	got := out.String()
	if !strings.Contains(got, "abandoned") {
		t.Errorf("output missing status:\n%s", got)
	}
	if !strings.Contains(got, "Paid At:") || !strings.Contains(got, "-") {
		t.Errorf("unpaid transaction should render a dash for Paid At:\n%s", got)
	}
}

func TestRenderer_RenderResult_NilResult(t *testing.T) {
	var out bytes.Buffer
	NewRenderer(&out).RenderResult(nil)
	if out.Len() != 0 {
		t.Errorf("nil result produced output: %q", out.String())
	}
}

func TestRenderer_RenderError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		want     string
		excluded string
	}{
		{
			name: "provider failure surfaces message verbatim",
			err:  &domain.ProviderError{StatusCode: 200, Message: "Transaction reference not found"},
			want: "Verification failed: Transaction reference not found",
		},
		{
			name:     "transport failure is distinct from provider failure",
			err:      &domain.TransportError{Err: errors.New("dial tcp: i/o timeout")},
			want:     "Network error",
			excluded: "Verification failed",
		},
		{
			name: "parse failure names the unexpected response",
			err:  &domain.ParseError{Err: errors.New("decoding envelope: unexpected EOF")},
			want: "Unexpected response",
		},
		{
			name: "invalid input names the reason",
			err:  &domain.InvalidInputError{Reason: "reference must not be empty"},
			want: "Invalid input: reference must not be empty",
		},
		{
			name: "unknown error still renders",
			err:  errors.New("boom"),
			want: "Error: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			NewRenderer(&out).RenderError(tt.err)

			got := out.String()
			if !strings.Contains(got, tt.want) {
				t.Errorf("output = %q, want it to contain %q", got, tt.want)
			}
			if tt.excluded != "" && strings.Contains(got, tt.excluded) {
				t.Errorf("output = %q, must not contain %q", got, tt.excluded)
			}
		})
	}
}

func TestRenderer_RenderError_NilError(t *testing.T) {
	var out bytes.Buffer
	NewRenderer(&out).RenderError(nil)
	if out.Len() != 0 {
		t.Errorf("nil error produced output: %q", out.String())
	}
}

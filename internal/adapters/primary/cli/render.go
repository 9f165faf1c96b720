package cli

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	"github.com/lagoslabs/txverify/internal/domain"
)

var (
	affirmative = color.New(color.FgGreen, color.Bold)
	warning     = color.New(color.FgYellow, color.Bold)
	negative    = color.New(color.FgRed, color.Bold)

	diagProvider  = color.New(color.FgRed)
	diagTransport = color.New(color.FgYellow)
	diagParse     = color.New(color.FgMagenta)
	diagInput     = color.New(color.FgYellow)
)

// Renderer writes verification results and diagnostics to the terminal.
// It never panics regardless of which outcome variant it receives.
type Renderer struct {
	out io.Writer
}

// NewRenderer creates a Renderer writing to out.
func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

// RenderResult prints the verification result as an aligned key/value
// table with the status color-coded by its tone.
func (r *Renderer) RenderResult(result *domain.VerificationResult) {
	if result == nil {
		return
	}

	fmt.Fprintln(r.out)
	tw := tabwriter.NewWriter(r.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Reference:\t%s\n", result.Reference)
	fmt.Fprintf(tw, "Status:\t%s\n", toneColor(result.Status.Tone()).Sprint(string(result.Status)))
	fmt.Fprintf(tw, "Amount:\t%s\n", result.FormatAmount())
	fmt.Fprintf(tw, "Paid At:\t%s\n", formatPaidAt(result.PaidAt))
	fmt.Fprintf(tw, "Channel:\t%s\n", orDash(result.Channel))
	fmt.Fprintf(tw, "Gateway Response:\t%s\n", orDash(result.GatewayResponse))
	fmt.Fprintf(tw, "Message:\t%s\n", orDash(result.Message))
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(r.out, "rendering result: %v\n", err)
	}
	fmt.Fprintln(r.out)
}

// RenderError prints a one-line diagnostic distinguishing the four error
// kinds of the verification taxonomy.
func (r *Renderer) RenderError(err error) {
	if err == nil {
		return
	}

	var (
		invalidErr   *domain.InvalidInputError
		providerErr  *domain.ProviderError
		transportErr *domain.TransportError
		parseErr     *domain.ParseError
	)

	switch {
	case errors.As(err, &invalidErr):
		fmt.Fprintln(r.out, diagInput.Sprintf("Invalid input: %s.", invalidErr.Reason))
	case errors.As(err, &providerErr):
		fmt.Fprintln(r.out, diagProvider.Sprintf("Verification failed: %s", providerErr.Message))
	case errors.As(err, &transportErr):
		fmt.Fprintln(r.out, diagTransport.Sprintf("Network error: could not reach the payment provider (%v).", transportErr.Err))
	case errors.As(err, &parseErr):
		fmt.Fprintln(r.out, diagParse.Sprintf("Unexpected response: the provider sent something this tool could not read (%v).", parseErr.Err))
	default:
		fmt.Fprintln(r.out, diagProvider.Sprintf("Error: %v", err))
	}
}

// RenderExhausted prints the fatal retry-limit message.
func (r *Renderer) RenderExhausted(maxAttempts int) {
	fmt.Fprintln(r.out, negative.Sprintf("Aborting after %d failed attempts.", maxAttempts))
}

func toneColor(tone domain.Tone) *color.Color {
	switch tone {
	case domain.ToneAffirmative:
		return affirmative
	case domain.ToneNegative:
		return negative
	default:
		return warning
	}
}

func formatPaidAt(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.UTC().Format("2006-01-02 15:04:05 MST")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

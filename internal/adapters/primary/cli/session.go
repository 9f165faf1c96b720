package cli

import (
	"context"
	"errors"
	"log/slog"

	"github.com/lagoslabs/txverify/internal/domain"
	"github.com/lagoslabs/txverify/internal/ports/outbound"
)

// Process exit codes.
const (
	// ExitOK is returned on a successful verification display or an
	// explicit user quit.
	ExitOK = 0

	// ExitFailure is returned on retry-limit exhaustion, interruption,
	// or unrecoverable wiring failure.
	ExitFailure = 1
)

// DefaultMaxAttempts bounds consecutive failed attempts before the
// session gives up.
const DefaultMaxAttempts = 3

// VerifierFactory builds a TransactionVerifier for a collected secret.
type VerifierFactory func(secret string) (outbound.TransactionVerifier, error)

// SessionConfig holds configuration for a verification session.
type SessionConfig struct {
	// MaxAttempts is the failed-attempt budget. Defaults to
	// DefaultMaxAttempts.
	MaxAttempts int

	// Secret optionally pre-supplies the credential (e.g. from the
	// environment), skipping the secret prompt.
	Secret string

	// Logger is the structured logger for the session. The secret is
	// never logged.
	Logger *slog.Logger
}

// Session drives the bounded prompt → verify → display loop.
type Session struct {
	config      SessionConfig
	prompter    *Prompter
	renderer    *Renderer
	newVerifier VerifierFactory
	logger      *slog.Logger
}

// NewSession creates a Session from collected dependencies.
func NewSession(config SessionConfig, prompter *Prompter, renderer *Renderer, newVerifier VerifierFactory) (*Session, error) {
	if prompter == nil || renderer == nil || newVerifier == nil {
		return nil, errors.New("prompter, renderer, and verifier factory are required")
	}
	if config.MaxAttempts <= 0 {
		config.MaxAttempts = DefaultMaxAttempts
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}

	return &Session{
		config:      config,
		prompter:    prompter,
		renderer:    renderer,
		newVerifier: newVerifier,
		logger:      config.Logger.With("component", "session"),
	}, nil
}

// Run executes the session loop and returns the process exit code.
//
// Every failed attempt — invalid input, provider rejection, transport
// fault, or unparseable response — consumes one unit of the attempt
// budget. The run ends on the first successful display (ExitOK), the quit
// token (ExitOK), budget exhaustion (ExitFailure), or context
// cancellation (ExitFailure).
func (s *Session) Run(ctx context.Context) int {
	secret := s.config.Secret

	for attempt := 0; attempt < s.config.MaxAttempts; attempt++ {
		if ctx.Err() != nil {
			return ExitFailure
		}

		if secret == "" {
			collected, err := s.prompter.PromptSecret()
			if errors.Is(err, ErrQuit) {
				return ExitOK
			}
			if err != nil {
				if isInvalidInput(err) {
					s.renderer.RenderError(err)
					continue
				}
				s.logger.Error("secret prompt failed", "error", err)
				return ExitFailure
			}
			secret = collected
		}

		reference, err := s.prompter.PromptReference()
		if errors.Is(err, ErrQuit) {
			return ExitOK
		}
		if err != nil {
			if isInvalidInput(err) {
				s.renderer.RenderError(err)
				continue
			}
			s.logger.Error("reference prompt failed", "error", err)
			return ExitFailure
		}

		verifier, err := s.newVerifier(secret)
		if err != nil {
			s.logger.Error("creating verifier failed", "error", err)
			return ExitFailure
		}

		result, err := verifier.VerifyTransaction(ctx, reference)
		if err != nil {
			if ctx.Err() != nil {
				return ExitFailure
			}
			s.logger.Debug("verification attempt failed",
				"provider", verifier.Name(),
				"reference", reference,
				"error", err,
			)
			s.renderer.RenderError(err)

			// A rejected credential can never succeed on re-entry of the
			// same value; discard it and re-prompt.
			var providerErr *domain.ProviderError
			if errors.As(err, &providerErr) && providerErr.Unauthorized() {
				secret = ""
			}
			continue
		}

		s.renderer.RenderResult(result)
		return ExitOK
	}

	s.renderer.RenderExhausted(s.config.MaxAttempts)
	return ExitFailure
}

func isInvalidInput(err error) bool {
	var invalidErr *domain.InvalidInputError
	return errors.As(err, &invalidErr)
}

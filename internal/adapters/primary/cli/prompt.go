// Package cli implements the interactive terminal adapter: input
// collection, the verification session loop, and result rendering.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/lagoslabs/txverify/internal/domain"
	"golang.org/x/term"
)

// QuitToken aborts the session immediately when entered at any prompt.
// Matched case-insensitively.
const QuitToken = "q"

// ErrQuit is returned when the user enters the quit token.
var ErrQuit = errors.New("user requested quit")

// referencePattern is the provider's accepted character set for
// transaction references.
var referencePattern = regexp.MustCompile(`^[A-Za-z0-9._=-]+$`)

// referenceInput is validated before any network call is made.
type referenceInput struct {
	Reference string `validate:"required,max=100,txref"`
}

// SecretReader acquires a sensitive value without it appearing in any
// echo, log, or error message.
type SecretReader func() (string, error)

// Prompter collects the secret credential and transaction reference from
// the terminal, validating each entry syntactically.
type Prompter struct {
	source     io.Reader
	in         *bufio.Reader
	out        io.Writer
	readSecret SecretReader
	validate   *validator.Validate
}

// NewPrompter creates a Prompter reading entries from in and writing
// prompts to out. readSecret overrides how the masked credential is
// acquired; when nil, a terminal source is read with echo disabled and
// any other source is read line by line through the prompter's own
// buffered reader, so a piped secret never buffers ahead of the
// reference line that follows it.
func NewPrompter(in io.Reader, out io.Writer, readSecret SecretReader) *Prompter {
	v := validator.New()

	// Registration only fails for a blank tag or nil func.
	_ = v.RegisterValidation("txref", func(fl validator.FieldLevel) bool {
		return referencePattern.MatchString(fl.Field().String())
	})

	return &Prompter{
		source:     in,
		in:         bufio.NewReader(in),
		out:        out,
		readSecret: readSecret,
		validate:   v,
	}
}

// PromptSecret asks for the secret key without echoing it. Returns ErrQuit
// when the quit token is entered, or *domain.InvalidInputError when the
// entry is empty.
func (p *Prompter) PromptSecret() (string, error) {
	fmt.Fprint(p.out, "Enter your Paystack secret key (or q to quit): ")
	secret, err := p.readSecretLine()
	if err != nil {
		return "", fmt.Errorf("reading secret: %w", err)
	}

	secret = strings.TrimSpace(secret)
	if strings.EqualFold(secret, QuitToken) {
		return "", ErrQuit
	}
	if secret == "" {
		return "", &domain.InvalidInputError{Reason: "secret key must not be empty"}
	}
	return secret, nil
}

func (p *Prompter) readSecretLine() (string, error) {
	if p.readSecret != nil {
		return p.readSecret()
	}

	if f, ok := p.source.(*os.File); ok {
		fd := int(f.Fd())
		if term.IsTerminal(fd) {
			raw, err := term.ReadPassword(fd)
			fmt.Fprintln(p.out)
			if err != nil {
				return "", err
			}
			return string(raw), nil
		}
	}

	// Non-terminal source: read through the shared buffered reader so the
	// secret line cannot consume the lines that follow it.
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// PromptReference asks for a transaction reference. Returns ErrQuit when
// the quit token is entered, or *domain.InvalidInputError when the entry
// fails syntactic validation.
func (p *Prompter) PromptReference() (string, error) {
	fmt.Fprint(p.out, "Enter transaction reference (or q to quit): ")
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("reading reference: %w", err)
	}

	reference := strings.TrimSpace(line)
	if strings.EqualFold(reference, QuitToken) {
		return "", ErrQuit
	}

	if err := p.validate.Struct(referenceInput{Reference: reference}); err != nil {
		return "", &domain.InvalidInputError{Reason: describeReferenceError(err)}
	}
	return reference, nil
}

func describeReferenceError(err error) string {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		switch fieldErrs[0].Tag() {
		case "required":
			return "reference must not be empty"
		case "max":
			return "reference must be at most 100 characters"
		case "txref":
			return "reference may only contain letters, digits, and . _ = -"
		}
	}
	return "reference is not valid"
}

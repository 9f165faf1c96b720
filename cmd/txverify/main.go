// Package main provides a CLI for verifying Paystack transactions.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/lagoslabs/txverify/internal/adapters/outbound/paystack"
	"github.com/lagoslabs/txverify/internal/adapters/primary/cli"
	"github.com/lagoslabs/txverify/internal/pkg/env"
	"github.com/lagoslabs/txverify/internal/ports/outbound"
)

// Build-time variables - can be set via ldflags, otherwise populated from Go's build info.
var (
	GitCommit string
	BuildTime string
)

func init() {
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			switch setting.Key {
			case "vcs.revision":
				if GitCommit == "" {
					GitCommit = setting.Value
				}
			case "vcs.time":
				if BuildTime == "" {
					BuildTime = setting.Value
				}
			}
		}
	}
}

func main() {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	timeout := flag.Duration("timeout", 15*time.Second, "HTTP timeout for the verification request")
	baseURL := flag.String("base-url", env.BaseURL(), "Paystack API base URL override")
	showVersion := flag.Bool("version", false, "Show version information and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("txverify\n")
		fmt.Printf("  Commit:     %s\n", GitCommit)
		fmt.Printf("  Build Time: %s\n", BuildTime)
		os.Exit(0)
	}

	// Diagnostics go to stderr; stdout carries the prompts and the table.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: env.LogLevel(slog.LevelWarn),
	}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// A prompt read blocks past context cancellation, so interruption
	// exits directly rather than waiting for the session loop.
	go func() {
		<-ctx.Done()
		fmt.Fprintln(os.Stderr)
		os.Exit(cli.ExitFailure)
	}()

	os.Exit(run(ctx, logger, *timeout, *baseURL))
}

func run(ctx context.Context, logger *slog.Logger, timeout time.Duration, baseURL string) int {
	newVerifier := func(secret string) (outbound.TransactionVerifier, error) {
		return paystack.NewClient(paystack.ClientConfig{
			SecretKey: secret,
			BaseURL:   baseURL,
			Timeout:   timeout,
			Logger:    logger,
		})
	}

	prompter := cli.NewPrompter(os.Stdin, os.Stdout, nil)
	renderer := cli.NewRenderer(os.Stdout)

	session, err := cli.NewSession(cli.SessionConfig{
		Secret: env.SecretKey(),
		Logger: logger,
	}, prompter, renderer, newVerifier)
	if err != nil {
		logger.Error("creating session failed", "error", err)
		return cli.ExitFailure
	}

	return session.Run(ctx)
}

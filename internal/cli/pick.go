package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/pick/internal/config"
	"github.com/roach88/pick/internal/engine"
	"github.com/roach88/pick/internal/ui"
)

// runPick executes one pick invocation end to end: resolve and load
// the config document, run the engine against the interactive console,
// and persist the mutated category when a choice was accepted.
func runPick(opts *RootOptions, category string, cmd *cobra.Command) error {
	logLevel := slog.LevelInfo
	if opts.Verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))

	path, err := ResolveConfigPath(opts.Config)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to locate config", err)
	}

	slog.Debug("loading config", "path", path)
	doc, err := config.Load(path)
	if err != nil {
		return reportError(opts, cmd, WrapExitError(ExitCommandError, "failed to read config", err))
	}

	// In JSON mode the prompt dialogue moves to stderr so stdout
	// carries exactly one JSON object.
	promptOut := io.Writer(cmd.OutOrStdout())
	if opts.Format == "json" {
		promptOut = cmd.ErrOrStderr()
	}
	console := ui.NewConsole(cmd.InOrStdin(), promptOut, opts.Verbose)

	eng := engine.New(console)
	result, err := eng.Pick(doc, category)
	if err != nil {
		if engine.IsConfigError(err) {
			return reportError(opts, cmd, WrapExitError(ExitCommandError, "invalid configuration", err))
		}
		return reportError(opts, cmd, WrapExitError(ExitFailure, "pick failed", err))
	}

	if result.Outcome == engine.OutcomePicked {
		if err := config.Save(path, doc); err != nil {
			return reportError(opts, cmd, WrapExitError(ExitCommandError, "failed to save config", err))
		}
		slog.Debug("config saved", "path", path, "token", result.Token)
	}

	return reportResult(opts, cmd, category, result)
}

// reportResult prints the final outcome and maps it to an exit code.
// Only an accepted pick exits 0; aborted and exhausted runs exit 1 so
// scripts can tell "picked something" from "picked nothing".
func reportResult(opts *RootOptions, cmd *cobra.Command, category string, result engine.Result) error {
	if opts.Format == "json" {
		resp := PickResponse{
			Status:   "ok",
			Outcome:  result.Outcome.String(),
			Category: category,
			Pick:     result.Pick,
			Token:    result.Token,
		}
		if err := resp.WriteJSON(cmd.OutOrStdout()); err != nil {
			return WrapExitError(ExitCommandError, "failed to write result", err)
		}
	}

	switch result.Outcome {
	case engine.OutcomePicked:
		return nil
	case engine.OutcomeAborted:
		if opts.Format == "text" {
			fmt.Fprintln(cmd.OutOrStdout(), "Aborted; nothing saved.")
		}
		return NewExitError(ExitFailure, "pick aborted")
	case engine.OutcomeExhausted:
		if opts.Format == "text" {
			fmt.Fprintln(cmd.OutOrStdout(), "No choices remain.")
		}
		return NewExitError(ExitFailure, "no eligible choices remain")
	default:
		return NewExitError(ExitFailure, fmt.Sprintf("unknown outcome %d", result.Outcome))
	}
}

// reportError emits the error in the requested format before handing
// it back for exit-code mapping.
func reportError(opts *RootOptions, cmd *cobra.Command, err *ExitError) error {
	if opts.Format == "json" {
		resp := PickResponse{Status: "error", Error: err.Error()}
		_ = resp.WriteJSON(cmd.OutOrStdout())
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), err.Error())
	}
	return err
}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	cmd := NewRootCommand()
	if err := cmd.Execute(); err != nil {
		// RunE paths already printed their message; cobra-level errors
		// (bad flags, wrong arg count) have not.
		var exitErr *ExitError
		if !errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return ExitCommandError
		}
		return exitErr.Code
	}
	return ExitSuccess
}

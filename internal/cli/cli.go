// Package cli implements the ish command: one fuzzy comparison per run.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/Neumenon/ish/ish"
)

// Version is the ish command version.
const Version = "0.1.0"

// Exit codes.
const (
	ExitEqual    = 0
	ExitNotEqual = 1
	ExitUsage    = 2
)

var errUsage = errors.New("usage")

// Run executes the command in args (without the program name) and returns
// the process exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		printUsage(stderr)
		return ExitUsage
	}

	cmd := args[0]
	cfg, rest, err := ParseConfig(args[1:])
	if err != nil {
		fmt.Fprintf(stderr, "ish: %v\n", err)
		return ExitUsage
	}
	logger := newLogger(stderr, cfg.Verbose)

	var equal bool
	switch cmd {
	case "bool":
		equal, err = cmdBool(logger, cfg, rest)
	case "float":
		equal, err = cmdFloat(logger, cfg, rest)
	case "words":
		cmdWords(stdout)
		return ExitEqual
	case "version", "--version":
		fmt.Fprintf(stdout, "ish %s\n", Version)
		return ExitEqual
	case "help", "-h", "--help":
		printUsage(stdout)
		return ExitEqual
	default:
		fmt.Fprintf(stderr, "unknown command: %s\n", cmd)
		printUsage(stderr)
		return ExitUsage
	}

	if err != nil {
		if errors.Is(err, errUsage) {
			printUsage(stderr)
		}
		fmt.Fprintf(stderr, "ish %s: %v\n", cmd, err)
		return ExitUsage
	}

	fmt.Fprintln(stdout, equal)
	if !equal {
		return ExitNotEqual
	}
	return ExitEqual
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, `Usage:
  ish bool <true|false> <candidate> [--text]   Compare a fuzzy boolean
  ish float <value> <candidate> [--fudge=x]    Compare a fuzzy float
  ish words                                    Print the vocabulary
  ish version                                  Print version info

Flags:
  --fudge=x   Float tolerance (default $ISH_FUDGE or 1e-7)
  --text      Compare a bool candidate as text even if it looks like an integer
  --verbose   Log comparison details to stderr

Prints true or false. Exit status is 0 when equal, 1 when not, 2 on error.
`)
}

// ============================================================
// Commands
// ============================================================

func cmdBool(logger *slog.Logger, cfg Config, args []string) (bool, error) {
	if len(args) != 2 {
		return false, fmt.Errorf("%w: want 2 arguments, got %d", errUsage, len(args))
	}
	intent, err := parseIntent(args[0])
	if err != nil {
		return false, err
	}
	b := ish.FromBool(intent)
	candidate := args[1]

	if !cfg.Text {
		if n, err := strconv.ParseInt(strings.TrimSpace(candidate), 10, 64); err == nil {
			eq := b.EqualInt64(n)
			logger.Debug("compared integer", slog.String("wrapper", b.String()), slog.Int64("candidate", n), slog.Bool("equal", eq))
			return eq, nil
		}
	}

	eq := b.EqualString(candidate)
	logger.Debug("compared text",
		slog.String("wrapper", b.String()),
		slog.String("candidate", candidate),
		slog.Bool("truthy", ish.IsTruthy(candidate)),
		slog.Bool("falsy", ish.IsFalsy(candidate)),
		slog.Bool("equal", eq),
	)
	if !ish.IsTruthy(candidate) && !ish.IsFalsy(candidate) {
		logger.Warn("candidate is not in either vocabulary", slog.String("candidate", candidate))
	}
	return eq, nil
}

// parseIntent accepts any vocabulary word as well as strconv.ParseBool forms.
func parseIntent(s string) (bool, error) {
	switch {
	case ish.IsTruthy(s):
		return true, nil
	case ish.IsFalsy(s):
		return false, nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("invalid intent %q: %w", s, err)
	}
	return b, nil
}

func cmdFloat(logger *slog.Logger, cfg Config, args []string) (bool, error) {
	if len(args) != 2 {
		return false, fmt.Errorf("%w: want 2 arguments, got %d", errUsage, len(args))
	}
	m, err := ish.NewMarker(cfg.Fudge)
	if err != nil {
		return false, err
	}
	value, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return false, fmt.Errorf("invalid value: %w", err)
	}
	candidate, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return false, fmt.Errorf("invalid candidate: %w", err)
	}

	f := m.Float(value)
	eq := f.Equal(candidate)
	logger.Debug("compared float", slog.String("wrapper", f.String()), slog.Float64("candidate", candidate), slog.Bool("equal", eq))
	return eq, nil
}

func cmdWords(w io.Writer) {
	fmt.Fprintf(w, "true-ish:  %s\n", strings.Join(ish.TrueWords(), " "))
	fmt.Fprintf(w, "false-ish: %s\n", strings.Join(ish.FalseWords(), " "))
}

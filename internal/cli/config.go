package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds CLI settings. Environment values are read first; flags
// override them.
type Config struct {
	Fudge   float64 `env:"ISH_FUDGE" envDefault:"1e-7"`
	Verbose bool    `env:"ISH_VERBOSE"`

	// Text forces bool candidates to be compared as text. Flag only.
	Text bool
}

// ParseConfig loads Config from the environment, then applies flags found in
// args. It returns the remaining positional arguments.
func ParseConfig(args []string) (Config, []string, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, nil, fmt.Errorf("parse env: %w", err)
	}

	var rest []string
	for _, arg := range args {
		switch {
		case arg == "--verbose" || arg == "-v":
			cfg.Verbose = true
		case arg == "--text":
			cfg.Text = true
		case strings.HasPrefix(arg, "--fudge="):
			f, err := strconv.ParseFloat(strings.TrimPrefix(arg, "--fudge="), 64)
			if err != nil {
				return Config{}, nil, fmt.Errorf("invalid --fudge value: %w", err)
			}
			cfg.Fudge = f
		case strings.HasPrefix(arg, "--"):
			return Config{}, nil, fmt.Errorf("unknown flag: %s", arg)
		default:
			rest = append(rest, arg)
		}
	}
	return cfg, rest, nil
}

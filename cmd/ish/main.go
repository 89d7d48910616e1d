// ish - fuzzy equality from the command line
//
// Usage:
//
//	ish bool <true|false> <candidate> [--text]   Compare a fuzzy boolean
//	ish float <value> <candidate> [--fudge=x]    Compare a fuzzy float
//	ish words                                    Print the vocabulary
//	ish version                                  Print version info
//
// The default float tolerance comes from $ISH_FUDGE (1e-7 if unset).
package main

import (
	"os"

	"github.com/Neumenon/ish/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:], os.Stdout, os.Stderr))
}

package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/vango-dev/trackable/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		configureColors(os.Stderr)
		fmt.Fprint(os.Stderr, errors.FormatError(err))
		os.Exit(1)
	}
}

// configureColors turns off ANSI colors when f is not a terminal.
func configureColors(f *os.File) {
	if !term.IsTerminal(int(f.Fd())) {
		errors.DisableColors()
	}
}

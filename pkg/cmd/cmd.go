package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// DieWithUsage is a utility that assumes usage of the flag library. It prints
// a usage line, the flag arguments, and then exits.
func DieWithUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s\n", os.Args[0])
	flag.PrintDefaults()
	os.Exit(1)
}

// SetupLogging points the global zerolog logger at stderr with a console
// writer. Debug events are only emitted when verbose is set.
func SetupLogging(verbose bool) {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Str("cmd", flag.CommandLine.Name()).Logger()
}

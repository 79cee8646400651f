// cmd/primer/main.go
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	stlog "log" // Use standard log for FATAL errors before logger is ready
	"log/slog"
	"os"

	"github.com/bethropolis/primer/internal/app"
	"github.com/bethropolis/primer/internal/config"
	"github.com/bethropolis/primer/internal/input"
	"github.com/bethropolis/primer/internal/logger"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run returns the process exit status so deferred cleanup happens before exit.
// Demos read stdin and write stdout and stderr; usage and errors go to stderr.
func run(argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	// --- Argument & Flag Parsing ---
	flags := config.NewFlags(flag.ContinueOnError)
	fs := flags.FlagSet()
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: %s [flags] <demo> [args...]\n\nFlags:\n", config.AppName)
		fs.PrintDefaults()
	}
	rest, err := flags.ParseFlags(argv)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		return 2
	}

	if *flags.Version {
		fmt.Fprintf(stdout, "%s %s\n", config.AppName, config.Version)
		return 0
	}

	// --- Configuration ---
	cfg, unknownKeys, err := config.Load(*flags.ConfigFilePath, flags)
	if err != nil {
		stlog.Printf("Failed to load configuration: %v", err)
		return 1
	}

	// --- Logger Initialization ---
	logOut, closeLog, err := logger.OpenOutput(cfg.Logger.LogFilePath)
	if err != nil {
		stlog.Printf("%v", err)
		return 1
	}
	defer closeLog()
	logger.Init(cfg.Logger, logOut)
	slog.SetDefault(logger.Get())

	logger.Infof("Starting %s %s", config.AppName, config.Version)
	logger.DebugTagf("config", "Log level: %s, log file: %q", cfg.Logger.LogLevel, cfg.Logger.LogFilePath)
	if len(unknownKeys) > 0 {
		logger.Warnf("Config file: Unrecognized keys: %v", unknownKeys)
	}

	// --- Create and Run App ---
	primer, err := app.NewApp(cfg, app.Streams{In: stdin, Out: stdout, Err: stderr})
	if err != nil {
		logger.Errorf("Error initializing application: %v", err)
		fmt.Fprintf(stderr, "%s: %v\n", config.AppName, err)
		return 1
	}

	if *flags.List {
		if err := primer.List(stdout); err != nil {
			return 1
		}
		return 0
	}
	if len(rest) == 0 {
		fmt.Fprintf(stderr, "Usage: %s [flags] <demo> [args...]\n\nDemos:\n", config.AppName)
		_ = primer.List(stderr)
		return 2
	}

	if err := primer.Run(rest[0], rest[1:]); err != nil {
		var invalid *input.InvalidIntegerError
		if errors.As(err, &invalid) {
			fmt.Fprintln(stderr, invalid.Error())
		} else {
			fmt.Fprintf(stderr, "%s: %v\n", config.AppName, err)
		}
		return 1
	}

	logger.Infof("%s finished.", config.AppName)
	return 0
}

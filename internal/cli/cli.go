package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

// ExitError is an error that also carries the process exit code it
// should produce.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Config holds the fully validated configuration for one sceneimport run.
type Config struct {
	Root         string
	ResourceRoot string
	LogLevel     string
	LogFormat    string
	Out          string
}

// Parse processes command-line arguments into a Config. It returns
// shouldExit=true (with a nil error) when help was requested or no root
// scene was given; callers should treat that as a clean exit.
func Parse(args []string, output io.Writer) (*Config, bool, error) {
	flagSet := flag.NewFlagSet("sceneimport", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
sceneimport - fetches, merges, and URL-rewrites a scene document graph.

Usage:
  sceneimport -root ROOT [options]

Options:
`)
		flagSet.PrintDefaults()
	}

	rootFlag := flagSet.String("root", "", "Root scene URL or path (required).")
	resourceRootFlag := flagSet.String("resource-root", "", "Base URL a relative -root resolves against.")
	logFormatFlag := flagSet.String("log-format", "json", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	outFlag := flagSet.String("out", "", "Path to write the merged document. Default: stdout.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	if *rootFlag == "" {
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	return &Config{
		Root:         *rootFlag,
		ResourceRoot: *resourceRootFlag,
		LogLevel:     logLevel,
		LogFormat:    logFormat,
		Out:          *outFlag,
	}, false, nil
}

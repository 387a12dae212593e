package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vk/sceneimport/internal/cli"
	"github.com/vk/sceneimport/internal/ctxlog"
	"github.com/vk/sceneimport/internal/platform"
	"github.com/vk/sceneimport/internal/scene"
	"github.com/vk/sceneimport/internal/sceneurl"
)

// main is the entrypoint for the sceneimport CLI.
func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the CLI's logic for easier testing and error handling.
func run(outW io.Writer, args []string) (err error) {
	config, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger := newLogger(config.LogLevel, config.LogFormat, os.Stderr)
	ctx := ctxlog.WithLogger(context.Background(), logger)

	// Turn any unexpected panic into a clean exit message instead of a
	// stack trace reaching the user.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("sceneimport: application startup panicked: %v", r)
		}
	}()

	// The local platform is rooted at the filesystem root: -resource-root
	// only supplies the base a relative -root resolves against, via
	// ordinary RFC 3986 URL resolution. With no -resource-root, a relative
	// -root stays relative and is read relative to "/".
	plat := platform.New("/")
	s := scene.New(sceneurl.New(config.Root), sceneurl.New(config.ResourceRoot))
	defer s.Close()

	root, err := scene.Import(ctx, s, plat)
	if err != nil {
		return fmt.Errorf("sceneimport: %w", err)
	}

	dest := outW
	if config.Out != "" {
		f, createErr := os.Create(config.Out)
		if createErr != nil {
			return fmt.Errorf("sceneimport: opening output file: %w", createErr)
		}
		defer f.Close()
		dest = f
	}

	enc := yaml.NewEncoder(dest)
	defer enc.Close()
	if err := enc.Encode(root); err != nil {
		return fmt.Errorf("sceneimport: encoding merged document: %w", err)
	}
	return nil
}

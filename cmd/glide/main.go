// Command glide loads a scene of guided paths and samples, renders or
// simulates them.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"honnef.co/go/glide"
	"honnef.co/go/glide/internal/cli"
	"honnef.co/go/glide/internal/ctxlog"
	"honnef.co/go/glide/internal/scene"
)

func main() {
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run executes the command, writing results to outW and logs to logW.
func run(outW, logW io.Writer, args []string) error {
	cfg, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger := cfg.NewLogger(logW)
	glide.SetLogger(logger)
	defer glide.SetLogger(nil)
	ctx := ctxlog.WithLogger(context.Background(), logger)

	s, err := scene.Load(ctx, cfg.ScenePath)
	if err != nil {
		return err
	}
	paths := s.Paths
	if cfg.PathName != "" {
		p, ok := s.Lookup(cfg.PathName)
		if !ok {
			return &cli.ExitError{Code: 2, Message: fmt.Sprintf("no path named %q in %s", cfg.PathName, cfg.ScenePath)}
		}
		paths = []*scene.Path{p}
	}
	logger.Debug("Scene ready.", "paths", len(paths))

	w := outW
	if cfg.Output != "" {
		f, err := os.Create(cfg.Output)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	} else if cfg.Format == cli.FormatPNG && isTerminal(outW) {
		return &cli.ExitError{Code: 2, Message: "refusing to write PNG data to a terminal; use -o"}
	}

	if err := write(w, cfg, paths); err != nil {
		return err
	}
	if f, ok := w.(*os.File); ok && f != outW {
		return f.Close()
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"honnef.co/go/glide"
)

// ExitError is an error that carries a process exit code.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

// Output formats.
const (
	FormatSamples = "samples"
	FormatSVG     = "svg"
	FormatPNG     = "png"
	FormatAt      = "at"
	FormatFollow  = "follow"
)

// Config is the validated configuration of a run.
type Config struct {
	ScenePath string
	// PathName selects a single path. All paths are used if it is empty.
	PathName string
	Format   string
	// Output is the file to write to. Standard output is used if it is
	// empty.
	Output string
	Plane  glide.Plane

	// At is the fraction queried by FormatAt.
	At float64
	// Ticks and DT control the simulation of FormatFollow.
	Ticks int
	DT    float64

	Width  int
	Height int

	LogFormat string
	LogLevel  slog.Level
}

// Parse processes command-line arguments. It returns the configuration, whether
// the program should exit without doing anything, or an error. Usage errors
// are reported as *ExitError with code 2.
func Parse(args []string, output io.Writer) (*Config, bool, error) {
	flagSet := flag.NewFlagSet("glide", flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = func() {
		fmt.Fprint(output, `
glide - build and sample guided paths.

Usage:
  glide [options] SCENE

Arguments:
  SCENE
    Path to an .hcl file defining one or more paths.

Options:
`)
		flagSet.PrintDefaults()
	}

	pathFlag := flagSet.String("path", "", "Name of the path to use. All paths are used if empty.")
	formatFlag := flagSet.String("format", FormatSamples, "Output format. Options: 'samples', 'svg', 'png', 'at', 'follow'.")
	outFlag := flagSet.String("o", "", "Output file. Defaults to standard output.")
	planeFlag := flagSet.String("plane", "xy", "Plane to project onto for 'svg' and 'png'. Options: 'xy', 'xz', 'yz'.")
	atFlag := flagSet.Float64("t", 0.5, "Fraction of the path's length to query with -format=at.")
	ticksFlag := flagSet.Int("ticks", 10, "Number of ticks to simulate with -format=follow.")
	dtFlag := flagSet.Float64("dt", 1.0/60, "Duration of one tick with -format=follow.")
	widthFlag := flagSet.Int("width", 512, "Image width for -format=png.")
	heightFlag := flagSet.Int("height", 512, "Image height for -format=png.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	if flagSet.NArg() == 0 {
		flagSet.Usage()
		return nil, true, nil
	}
	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: "expected exactly one scene file"}
	}

	cfg := &Config{
		ScenePath: flagSet.Arg(0),
		PathName:  *pathFlag,
		Format:    strings.ToLower(*formatFlag),
		Output:    *outFlag,
		At:        *atFlag,
		Ticks:     *ticksFlag,
		DT:        *dtFlag,
		Width:     *widthFlag,
		Height:    *heightFlag,
		LogFormat: strings.ToLower(*logFormatFlag),
	}

	switch cfg.Format {
	case FormatSamples, FormatSVG, FormatPNG, FormatAt, FormatFollow:
	default:
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("invalid format %q", *formatFlag)}
	}

	switch strings.ToLower(*planeFlag) {
	case "xy":
		cfg.Plane = glide.PlaneXY
	case "xz":
		cfg.Plane = glide.PlaneXZ
	case "yz":
		cfg.Plane = glide.PlaneYZ
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid plane: must be 'xy', 'xz' or 'yz'"}
	}

	if cfg.Ticks < 0 {
		return nil, false, &ExitError{Code: 2, Message: "invalid ticks: must not be negative"}
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, false, &ExitError{Code: 2, Message: "invalid image size: width and height must be positive"}
	}

	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}
	if err := cfg.LogLevel.UnmarshalText([]byte(*logLevelFlag)); err != nil {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	return cfg, false, nil
}

// NewLogger returns a logger writing to w as configured.
func (cfg *Config) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

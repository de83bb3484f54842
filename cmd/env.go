package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"terminalist/internal/alternatives"
	"terminalist/internal/config"
	"terminalist/internal/installer"
	"terminalist/internal/logger"
	"terminalist/internal/report"
)

// Env is everything a single run of terminalist needs from the outside world.
// It is built once in main and passed to the management CLI or the interception.
type Env struct {
	Registry *alternatives.Registry
	Config   *config.Config
	// SelfPath is the canonical path of the management executable.
	SelfPath  string
	Stdout    io.Writer
	Stderr    io.Writer
	LookupEnv func(string) (string, bool)

	// writable replaces the interception directory write check when set.
	writable func(dir string) bool
}

// ExitError carries a deliberate exit status out of a command.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewEnv loads configuration and the registry for the process invoked as argv0.
func NewEnv(argv0 string) (*Env, error) {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return nil, err
	}

	_, noColor := os.LookupEnv(report.NoColorEnv)
	logger.Init(os.Stderr, cfg.Debug, noColor)

	reg, err := alternatives.Load(cfg.Catalogs...)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	selfPath, err := installer.SelfPath(argv0)
	if err != nil {
		return nil, err
	}
	logger.Debug("[DEBUG] Invoked as %s, executable at %s\n", filepath.Base(argv0), selfPath)

	return &Env{
		Registry:  reg,
		Config:    cfg,
		SelfPath:  selfPath,
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
		LookupEnv: os.LookupEnv,
	}, nil
}

// IsManagementName reports whether the executable was invoked under its own name
// rather than as an interception.
func IsManagementName(name string) bool {
	name = strings.TrimSuffix(name, ".exe")
	return name == report.ManagementName
}

func (e *Env) noColor() bool {
	return report.ColorDisabled(e.LookupEnv)
}

func (e *Env) interceptor() *installer.Interceptor {
	ic := installer.New(e.SelfPath)
	if e.writable != nil {
		ic.Writable = e.writable
	}
	return ic
}

func (e *Env) renderer() *report.Renderer {
	r := report.New(e.Stdout, report.NewPalette(e.noColor()))
	r.SkipOperands = e.Config.SkipOperands
	return r
}

// printUpdateCommand prints the command that replaces this executable with the latest release.
func (e *Env) printUpdateCommand() {
	_, _ = fmt.Fprintf(e.Stdout, "To update %s, run:\n", report.ManagementName)
	_, _ = fmt.Fprintf(e.Stdout, "curl -L -o %s %s\n", e.SelfPath, e.Config.SourceURL)
}

// exitCode maps a command error to the process exit status.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return 2
}

// Package owl drives the bundled Java OWL toolkit. Ontology semantics live
// in the toolkit; this package only stages documents, builds command lines
// and parses results.
package owl

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"

	"github.com/ontoforge/ontoforge/internal/core/ports"
	"go.trai.ch/zerr"
)

// toolEnvVar names the environment variable that overrides the toolkit
// executable path.
const toolEnvVar = "ONTOFORGE_OWLTOOL"

// defaultTool is the toolkit launcher looked up on PATH when no override is
// set.
const defaultTool = "ontoforge-owltool"

// Runner executes toolkit subcommands as subprocesses and streams their
// output to the logger.
type Runner struct {
	tool   string
	logger ports.Logger
}

// NewRunner creates a runner for the configured toolkit executable.
func NewRunner(logger ports.Logger) *Runner {
	tool := os.Getenv(toolEnvVar)
	if tool == "" {
		tool = defaultTool
	}
	return &Runner{tool: tool, logger: logger}
}

// Run executes one toolkit subcommand, streaming stdout and stderr to the
// logger.
func (r *Runner) Run(ctx context.Context, args ...string) error {
	cmd := exec.CommandContext(ctx, r.tool, args...) //nolint:gosec // fixed toolkit executable
	cmd.Stdout = &logWriter{logger: r.logger, level: "info"}
	cmd.Stderr = &logWriter{logger: r.logger, level: "error"}
	return r.finish(cmd, args)
}

// RunCapture executes one toolkit subcommand and returns its stdout. Stderr
// is streamed to the logger.
func (r *Runner) RunCapture(ctx context.Context, args ...string) (string, error) {
	var out bytes.Buffer
	cmd := exec.CommandContext(ctx, r.tool, args...) //nolint:gosec // fixed toolkit executable
	cmd.Stdout = &out
	cmd.Stderr = &logWriter{logger: r.logger, level: "error"}
	if err := r.finish(cmd, args); err != nil {
		return "", err
	}
	return out.String(), nil
}

func (r *Runner) finish(cmd *exec.Cmd, args []string) error {
	if err := cmd.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		subcommand := ""
		if len(args) > 0 {
			subcommand = args[0]
		}
		wrapped := zerr.With(zerr.Wrap(err, "ontology toolkit command failed"), "subcommand", subcommand)
		return zerr.With(wrapped, "exit_code", exitCode)
	}
	return nil
}

// logWriter forwards subprocess output lines to the logger.
type logWriter struct {
	logger ports.Logger
	level  string
}

func (w *logWriter) Write(p []byte) (int, error) {
	lines := strings.Split(strings.TrimSuffix(string(p), "\n"), "\n")
	for _, line := range lines {
		if line == "" {
			continue
		}
		if w.level == "info" {
			w.logger.Info(line)
		} else {
			w.logger.Warn(line)
		}
	}
	return len(p), nil
}

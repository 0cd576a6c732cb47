// Package exec wraps os/exec behind an interface so callers can be tested
// without spawning processes.
package exec

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"sort"
)

// Result holds the captured output of a finished command.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Options configures a single command invocation.
type Options struct {
	Dir string
	// Env is overlaid on the current process environment for this command only.
	// Later entries win, so overlay keys replace inherited values.
	Env map[string]string
}

// CommandRunner runs external commands.
type CommandRunner interface {
	// Run returns a Result whenever the process started, including non-zero exits.
	// The error is reserved for failures to start or wait (missing binary, cancelled ctx).
	Run(ctx context.Context, name string, args []string, opts Options) (Result, error)
}

// OSRunner is the CommandRunner backed by os/exec.
type OSRunner struct{}

// NewOSRunner returns an OSRunner.
func NewOSRunner() *OSRunner {
	return &OSRunner{}
}

// Run executes name with args and captures stdout and stderr.
func (r *OSRunner) Run(ctx context.Context, name string, args []string, opts Options) (Result, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if opts.Dir != "" {
		cmd.Dir = opts.Dir
	}
	if len(opts.Env) > 0 {
		cmd.Env = append(cmd.Environ(), EnvList(opts.Env)...)
	}

	err := cmd.Run()
	res := Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
			return res, nil
		}
		return res, err
	}
	return res, nil
}

// EnvList renders an overlay as KEY=VALUE pairs sorted by key.
func EnvList(env map[string]string) []string {
	keys := make([]string, 0, len(env))
	for k := range env {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, k+"="+env[k])
	}
	return out
}

package repo

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/bartekus/portreview/internal/exec"
)

// ErrCloneFailed is returned when git clone does not complete successfully.
var ErrCloneFailed = errors.New("clone failed")

// Acquirer produces the repository handle for a review.
type Acquirer struct {
	Runner exec.CommandRunner
	// ScratchHome stands in for the invoker's home directory during clone so
	// personal git config and credential helpers are never consulted.
	ScratchHome string
	// BaseDir is where targets are cloned or opened. Empty means the working directory.
	BaseDir string
	Log     zerolog.Logger
}

// Acquire opens target.Dir when skipClone is set, otherwise clones target.URL into it.
// Both paths are fatal on error; nothing is retried.
func (a *Acquirer) Acquire(ctx context.Context, target Target, skipClone bool) (*Repository, error) {
	dir := a.path(target)

	if skipClone {
		a.Log.Info().Str("dir", dir).Msg("Opening existing repository")
		return Open(dir)
	}

	a.Log.Info().Msgf("Cloning %s to %s", target.URL, dir)
	if err := a.clone(ctx, target.URL, dir); err != nil {
		return nil, err
	}
	return Open(dir)
}

func (a *Acquirer) path(target Target) string {
	if a.BaseDir == "" {
		return target.Dir
	}
	return filepath.Join(a.BaseDir, target.Dir)
}

func (a *Acquirer) clone(ctx context.Context, url, dir string) error {
	if err := os.MkdirAll(a.ScratchHome, 0o700); err != nil {
		return fmt.Errorf("preparing scratch home %s: %w", a.ScratchHome, err)
	}

	res, err := a.Runner.Run(ctx, "git", []string{"clone", "--", url, dir}, exec.Options{
		Env: IsolatedEnv(a.ScratchHome),
	})
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrCloneFailed, url, err)
	}
	if res.ExitCode != 0 {
		msg := strings.TrimSpace(res.Stderr)
		if msg == "" {
			msg = fmt.Sprintf("git exited with code %d", res.ExitCode)
		}
		return fmt.Errorf("%w: %s: %s", ErrCloneFailed, url, msg)
	}

	a.Log.Debug().Str("url", url).Str("dir", dir).Msg("clone complete")
	return nil
}

// IsolatedEnv is the environment overlay applied to git during clone.
func IsolatedEnv(scratchHome string) map[string]string {
	return map[string]string{
		"HOME":                scratchHome,
		"XDG_CONFIG_HOME":     filepath.Join(scratchHome, ".config"),
		"GIT_CONFIG_NOSYSTEM": "1",
		"GIT_CONFIG_GLOBAL":   os.DevNull,
		"GIT_TERMINAL_PROMPT": "0",
	}
}

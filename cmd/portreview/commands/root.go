// SPDX-License-Identifier: AGPL-3.0-or-later

/*
portreview - reviews Catppuccin ports for leftover template content.
It clones or opens a port repository, runs a fixed set of compliance
contracts against it, and exits non-zero when any contract fails.

This program is free software licensed under the terms of the GNU AGPL v3 or later.

See https://www.gnu.org/licenses/ for license details.

*/

package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/bartekus/portreview/cmd/portreview/internal/clierr"
	"github.com/bartekus/portreview/internal/catalog"
	"github.com/bartekus/portreview/internal/config"
	"github.com/bartekus/portreview/internal/exec"
	"github.com/bartekus/portreview/internal/logging"
)

// Options carries the collaborators commands need. Zero values are replaced by production defaults.
type Options struct {
	Runner exec.CommandRunner
	// BaseDir is where review targets are cloned or opened; empty means the working directory.
	BaseDir string
}

// env is the state shared by subcommands once the root has started up.
type env struct {
	opts  Options
	cfg   config.Config
	log   zerolog.Logger
	ports *catalog.Ports
}

// NewRootCmd constructs the portreview root Cobra command.
func NewRootCmd() *cobra.Command {
	return NewRootCmdWith(Options{})
}

// NewRootCmdWith constructs the root command with injected collaborators.
func NewRootCmdWith(opts Options) *cobra.Command {
	if opts.Runner == nil {
		opts.Runner = exec.NewOSRunner()
	}
	e := &env{opts: opts, cfg: config.Load()}

	cmd := &cobra.Command{
		Use:           "portreview",
		Short:         "Review Catppuccin ports for template compliance",
		Long:          "portreview checks that a port repository no longer carries the Catppuccin template's placeholder files and text.",
		Version:       e.cfg.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return clierr.Newf(clierr.ExitUsage, "unknown command %q for %q", args[0], cmd.CommandPath())
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Usage()
			return clierr.New(clierr.ExitUsage, "a subcommand is required")
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return e.start(cmd)
		},
	}

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return clierr.Wrap(clierr.ExitUsage, c.CommandPath(), err)
	})

	cmd.AddCommand(newReviewCmd(e))

	return cmd
}

func (e *env) start(cmd *cobra.Command) error {
	log, err := logging.New(cmd.ErrOrStderr(), e.cfg.LogLevel)
	e.log = log
	if err != nil {
		e.log.Warn().Err(err).Msg("PORTREVIEW_LOG ignored")
	}

	ports, err := catalog.Load()
	if err != nil {
		return clierr.Wrap(clierr.ExitFailed, "loading port catalog", err)
	}
	e.ports = ports
	e.log.Debug().Int("ports", len(ports.Ports)).Msg("port catalog loaded")
	return nil
}

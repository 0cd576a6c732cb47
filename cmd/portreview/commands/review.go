package commands

import (
	"github.com/spf13/cobra"

	"github.com/bartekus/portreview/cmd/portreview/internal/clierr"
	"github.com/bartekus/portreview/internal/contract"
	"github.com/bartekus/portreview/internal/repo"
	"github.com/bartekus/portreview/internal/runner"
)

func newReviewCmd(e *env) *cobra.Command {
	var skipClone bool

	cmd := &cobra.Command{
		Use:   "review <url>",
		Short: "Runs a review on a port",
		Long: `Clone the port at <url> into ./<last path segment> and run every contract against it.
With --skip-clone the existing directory is reviewed instead.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.ExactArgs(1)(cmd, args); err != nil {
				return clierr.Wrap(clierr.ExitUsage, cmd.CommandPath(), err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.review(cmd, args[0], skipClone)
		},
	}

	cmd.Flags().BoolVarP(&skipClone, "skip-clone", "s", false, "review the existing local directory instead of cloning")

	return cmd
}

func (e *env) review(cmd *cobra.Command, url string, skipClone bool) error {
	ctx := cmd.Context()

	target, err := repo.NewTarget(url)
	if err != nil {
		return clierr.Wrap(clierr.ExitUsage, "review", err)
	}

	if port, ok := e.ports.Lookup(url); ok {
		e.log.Info().Str("key", port.Key).Msgf("Reviewing known port %s", port.Name)
	}

	acq := &repo.Acquirer{
		Runner:      e.opts.Runner,
		ScratchHome: e.cfg.ScratchHome,
		BaseDir:     e.opts.BaseDir,
		Log:         e.log,
	}
	handle, err := acq.Acquire(ctx, target, skipClone)
	if err != nil {
		return clierr.Wrap(clierr.ExitAcquire, "acquiring repository", err)
	}

	sum, err := runner.New(contract.Default(), e.log).Run(ctx, handle)
	e.log.Info().
		Int("contracts", len(sum.Entries)).
		Int("warned", len(sum.Warned)).
		Int("failed", len(sum.Failed)).
		Msg("Review finished")
	if err != nil {
		return clierr.Wrap(clierr.ExitFailed, target.Dir, err)
	}
	return nil
}

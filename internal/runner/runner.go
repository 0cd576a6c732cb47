package runner

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/bartekus/portreview/internal/contract"
)

// Runner executes contracts against a single repository.
type Runner struct {
	contracts []contract.Contract
	log       zerolog.Logger
}

// New creates a runner for contracts, run in the given order.
func New(contracts []contract.Contract, log zerolog.Logger) *Runner {
	return &Runner{
		contracts: contracts,
		log:       log,
	}
}

// Run tests every contract against repo.
// It continues past failures and returns an error if ANY contract failed.
// A cancelled context stops the run before the next contract.
func (r *Runner) Run(ctx context.Context, repo contract.Repository) (Summary, error) {
	var sum Summary

	for _, c := range r.contracts {
		if err := ctx.Err(); err != nil {
			return sum, err
		}

		name := c.Name()
		r.log.Info().Msgf("Testing contract '%s'", name)

		res := c.Test(ctx, repo)
		sum.Entries = append(sum.Entries, Entry{Contract: name, Result: res})

		switch res.Outcome {
		case contract.OutcomePass:
			r.log.Info().Msgf("Contract '%s' passed", name)
		case contract.OutcomeWarn:
			sum.Warned = append(sum.Warned, name)
			r.log.Warn().Msgf("Contract '%s' warned: %s", name, res.Message)
		default:
			sum.Failed = append(sum.Failed, name)
			r.log.Error().Msgf("Contract '%s' failed:\n%s", name, res.Message)
		}
	}

	if !sum.Passed() {
		return sum, fmt.Errorf("review failed: %s", strings.Join(sum.Failed, ", "))
	}
	return sum, nil
}

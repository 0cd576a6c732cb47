// SPDX-License-Identifier: AGPL-3.0-or-later

// Package contract defines the template-compliance checks run against a port.
package contract

import "context"

// Outcome is the verdict of a single contract.
type Outcome string

const (
	OutcomePass Outcome = "pass"
	OutcomeWarn Outcome = "warn"
	OutcomeFail Outcome = "fail"
)

// Result is what a contract reports. Message is empty for a pass.
type Result struct {
	Outcome Outcome
	Message string
}

// Pass reports a satisfied contract.
func Pass() Result { return Result{Outcome: OutcomePass} }

// Warn reports a problem that does not fail the review.
func Warn(msg string) Result { return Result{Outcome: OutcomeWarn, Message: msg} }

// Fail reports a violated contract.
func Fail(msg string) Result { return Result{Outcome: OutcomeFail, Message: msg} }

// Repository is the read-only view a contract inspects.
type Repository interface {
	// TrackedFiles lists index paths, slash separated.
	TrackedFiles() ([]string, error)
	// IsTracked reports whether path has an index entry.
	IsTracked(path string) (bool, error)
	// ReadFile reads a file relative to the working directory.
	ReadFile(name string) ([]byte, error)
}

// Contract is a named, read-only predicate over a repository.
type Contract interface {
	Name() string
	Test(ctx context.Context, repo Repository) Result
}

// Default returns the contracts in the order a review runs them.
func Default() []Contract {
	return []Contract{
		NewNoGitKeep(),
		NewReadme(),
		NewAssets(),
		NewLicense(),
	}
}

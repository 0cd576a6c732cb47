package runner

import "github.com/bartekus/portreview/internal/contract"

// Entry is the outcome of one contract within a run.
type Entry struct {
	Contract string
	Result   contract.Result
}

// Summary collects the outcomes of a run in execution order.
type Summary struct {
	Entries []Entry
	Failed  []string // names of failed contracts
	Warned  []string // names of contracts that warned
}

// Passed reports whether no contract failed. Warnings do not count.
func (s Summary) Passed() bool { return len(s.Failed) == 0 }

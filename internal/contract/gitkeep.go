package contract

import (
	"context"
	"fmt"
	"strings"
)

type NoGitKeep struct {
	name string
}

func NewNoGitKeep() Contract {
	return &NoGitKeep{name: "No .gitkeep files"}
}

func (c *NoGitKeep) Name() string { return c.name }

// Test fails on the first index path containing ".gitkeep".
func (c *NoGitKeep) Test(ctx context.Context, repo Repository) Result {
	files, err := repo.TrackedFiles()
	if err != nil {
		return Fail(fmt.Sprintf("could not read index: %v", err))
	}

	for _, p := range files {
		if strings.Contains(p, ".gitkeep") {
			return Fail(fmt.Sprintf("path at %s", p))
		}
	}
	return Pass()
}

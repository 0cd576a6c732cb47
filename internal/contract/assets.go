package contract

import (
	"context"
	"fmt"
)

// requiredAssets are checked in this order; the first missing one is reported.
var requiredAssets = []string{
	"assets/mocha.webp",
	"assets/latte.webp",
	"assets/macchiato.webp",
	"assets/frappe.webp",
}

type Assets struct {
	name string
}

func NewAssets() Contract {
	return &Assets{name: "Assets are correct"}
}

func (c *Assets) Name() string { return c.name }

func (c *Assets) Test(ctx context.Context, repo Repository) Result {
	for _, p := range requiredAssets {
		tracked, err := repo.IsTracked(p)
		if err != nil || !tracked {
			return Fail(fmt.Sprintf("path '%s' is not valid", p))
		}
	}
	return Pass()
}

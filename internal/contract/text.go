package contract

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"
)

// readmePlaceholders are template strings a finished port must have replaced.
var readmePlaceholders = []string{
	"https://github.com/catppuccin/template/stargazers",
	"https://github.com/catppuccin/template/issues",
	"https://github.com/catppuccin/template/contributors",
	"https://raw.githubusercontent.com/catppuccin/catppuccin/main/assets/previews/latte.webp",
	"https://raw.githubusercontent.com/catppuccin/catppuccin/main/assets/previews/frappe.webp",
	"https://raw.githubusercontent.com/catppuccin/catppuccin/main/assets/previews/macchiato.webp",
	"https://raw.githubusercontent.com/catppuccin/catppuccin/main/assets/previews/mocha.webp",
	"- [Human](https://github.com/catppuccin)",
}

// ReadmePlaceholders returns a copy of the placeholder list in check order.
func ReadmePlaceholders() []string {
	return append([]string(nil), readmePlaceholders...)
}

const licenseCopyright = "Copyright (c) 2021 Catppuccin"

type Readme struct {
	name string
}

func NewReadme() Contract {
	return &Readme{name: "README is correct"}
}

func (c *Readme) Name() string { return c.name }

func (c *Readme) Test(ctx context.Context, repo Repository) Result {
	readme, res, ok := readText(repo, "README.md")
	if !ok {
		return res
	}
	for _, s := range readmePlaceholders {
		if strings.Contains(readme, s) {
			return Fail(fmt.Sprintf("README contains '%s'", s))
		}
	}
	return Pass()
}

type License struct {
	name string
}

func NewLicense() Contract {
	return &License{name: "LICENSE is correct"}
}

func (c *License) Name() string { return c.name }

// Test only warns on a wrong header; a missing LICENSE is a failure.
func (c *License) Test(ctx context.Context, repo Repository) Result {
	license, res, ok := readText(repo, "LICENSE")
	if !ok {
		return res
	}
	if !strings.Contains(license, licenseCopyright) {
		return Warn(fmt.Sprintf("LICENSE header is wrong, expected %s", licenseCopyright))
	}
	return Pass()
}

// readText loads name as UTF-8. When it cannot, ok is false and res is the failure to report.
func readText(repo Repository, name string) (text string, res Result, ok bool) {
	data, err := repo.ReadFile(name)
	if err != nil {
		return "", Fail(fmt.Sprintf("could not read %s: %v", name, err)), false
	}
	if !utf8.Valid(data) {
		return "", Fail(fmt.Sprintf("%s is not valid UTF-8", name)), false
	}
	return string(data), Result{}, true
}

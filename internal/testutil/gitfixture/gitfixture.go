// Package gitfixture builds throwaway git repositories for tests without
// shelling out to git.
package gitfixture

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// CleanReadme is a README with none of the template placeholders left in.
const CleanReadme = `<h3 align="center">Catppuccin for Example</h3>

## Previews

![mocha](assets/mocha.webp)

## 💝 Thanks to

- [Someone](https://github.com/someone)
`

// CleanLicense carries the expected copyright line.
const CleanLicense = `MIT License

Copyright (c) 2021 Catppuccin

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files.
`

// CompliantFiles returns the file set of a port that passes every contract.
func CompliantFiles() map[string]string {
	return map[string]string{
		"README.md":             CleanReadme,
		"LICENSE":               CleanLicense,
		"assets/mocha.webp":     "mocha",
		"assets/latte.webp":     "latte",
		"assets/macchiato.webp": "macchiato",
		"assets/frappe.webp":    "frappe",
	}
}

// New initialises a repository in dir, writes files and commits them all.
func New(t *testing.T, dir string, files map[string]string) *git.Repository {
	t.Helper()

	r, err := git.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("git init %s: %v", dir, err)
	}
	wt, err := r.Worktree()
	if err != nil {
		t.Fatalf("worktree: %v", err)
	}

	// Deterministic add order keeps failures reproducible.
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		Write(t, dir, name, files[name])
		if _, err := wt.Add(name); err != nil {
			t.Fatalf("git add %s: %v", name, err)
		}
	}

	_, err = wt.Commit("Initial commit", &git.CommitOptions{
		AllowEmptyCommits: true,
		Author: &object.Signature{
			Name:  "Test User",
			Email: "test@example.com",
			When:  time.Unix(1700000000, 0).UTC(),
		},
	})
	if err != nil {
		t.Fatalf("git commit: %v", err)
	}
	return r
}

// Write creates name under dir without staging it.
func Write(t *testing.T, dir, name, content string) {
	t.Helper()
	full := filepath.Join(dir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", name, err)
	}
	if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

// Package repo acquires the repository under review and exposes a read-only
// handle over its working directory and index.
package repo

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyTarget is returned when no directory name can be derived from a URL.
var ErrEmptyTarget = errors.New("cannot derive a directory name from url")

// Target is the repository URL under review and the local directory it maps to.
type Target struct {
	URL string
	Dir string
}

// NewTarget derives the local directory from the last "/" segment of url.
// "https://github.com/catppuccin/nvim" maps to "nvim"; a URL without any "/"
// maps to itself.
func NewTarget(url string) (Target, error) {
	dir := url
	if i := strings.LastIndex(url, "/"); i >= 0 {
		dir = url[i+1:]
	}
	if dir == "" || dir == "." || dir == ".." {
		return Target{}, fmt.Errorf("%w: %q", ErrEmptyTarget, url)
	}
	return Target{URL: url, Dir: dir}, nil
}

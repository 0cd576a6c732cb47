package repo

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/format/index"
)

// ErrNotRepository is returned when a directory cannot be opened as a git repository.
var ErrNotRepository = errors.New("not a git repository")

// Repository is a checked-out working copy. It only offers read access.
type Repository struct {
	dir  string
	repo *git.Repository

	mu           sync.Mutex
	trackedCache []string
}

// Open opens the repository rooted at dir. Parent directories are not searched.
func Open(dir string) (*Repository, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", dir, err)
	}
	r, err := git.PlainOpen(abs)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrNotRepository, abs, err)
	}
	return &Repository{dir: abs, repo: r}, nil
}

// Dir returns the absolute working directory.
func (r *Repository) Dir() string { return r.dir }

// TrackedFiles returns every path recorded in the index, in index order.
// The result is cached for the lifetime of the handle.
func (r *Repository) TrackedFiles() ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.trackedCache != nil {
		return r.trackedCache, nil
	}

	idx, err := r.repo.Storer.Index()
	if err != nil {
		return nil, fmt.Errorf("reading index: %w", err)
	}

	files := make([]string, 0, len(idx.Entries))
	for _, e := range idx.Entries {
		files = append(files, e.Name)
	}
	r.trackedCache = files
	return r.trackedCache, nil
}

// IsTracked reports whether path (slash separated, relative to the root) has an index entry.
func (r *Repository) IsTracked(path string) (bool, error) {
	idx, err := r.repo.Storer.Index()
	if err != nil {
		return false, fmt.Errorf("reading index: %w", err)
	}
	if _, err := idx.Entry(filepath.ToSlash(path)); err != nil {
		if errors.Is(err, index.ErrEntryNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// ReadFile reads name relative to the working directory.
func (r *Repository) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(filepath.Join(r.dir, filepath.FromSlash(name)))
}

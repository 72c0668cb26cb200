// Package jsonfile is the file-backed store driver. Each collection lives in
// a single JSON file holding a flat array of records; every mutation reads
// the whole file, modifies the slice in memory, and writes the whole file
// back. The write is not crash-atomic: on disk the semantics are last writer
// wins for the entire collection.
package jsonfile

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/aussiebroadwan/recipebook/internal/recipes/store"
)

const (
	usersFile   = "users.json"
	recipesFile = "recipes.json"
)

// Store keeps both collections under one directory. The mutex serializes
// access within this process; concurrent processes sharing the directory
// still race, exactly like the backing model this driver implements.
type Store struct {
	mu  sync.Mutex
	dir string
}

func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, err
	}
	return &Store{dir: dir}, nil
}

func (s *Store) Close() error { return nil }

// Ping verifies the data directory is still accessible.
func (s *Store) Ping(ctx context.Context) error {
	_, err := os.Stat(s.dir)
	return err
}

func (s *Store) Users() store.Users     { return &usersRepo{s: s} }
func (s *Store) Recipes() store.Recipes { return &recipesRepo{s: s} }

// load reads an entire collection file into out. A missing file is an empty
// collection, not an error.
func (s *Store) load(name string, out any) error {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return json.Unmarshal(data, out)
}

// save writes an entire collection file in place.
func (s *Store) save(name string, in any) error {
	data, err := json.MarshalIndent(in, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.dir, name), data, 0600)
}

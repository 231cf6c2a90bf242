package contact

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

type FileRepository struct {
	path string
	mu   sync.Mutex
}

func NewFileRepository(path string) (*FileRepository, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure dir: %w", err)
	}
	// Touch file if not exists
	f, err := os.OpenFile(path, os.O_CREATE, 0o644)
	if err != nil {
		return nil, fmt.Errorf("touch file: %w", err)
	}
	_ = f.Close()
	return &FileRepository{path: path}, nil
}

func (r *FileRepository) LoadAll() ([]Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loadUnlocked()
}

func (r *FileRepository) Upsert(c Contact) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cs, _ := r.loadUnlocked()
	updated := false
	for i, old := range cs {
		if old.UserID == c.UserID {
			cs[i] = c
			updated = true
			break
		}
	}
	if !updated {
		cs = append(cs, c)
	}
	return r.saveUnlocked(cs)
}

func (r *FileRepository) loadUnlocked() ([]Contact, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	defer func() { _ = f.Close() }()
	var cs []Contact
	if err := json.NewDecoder(f).Decode(&cs); err != nil {
		// empty or malformed -> start fresh
		return []Contact{}, nil
	}
	return cs, nil
}

func (r *FileRepository) saveUnlocked(cs []Contact) error {
	f, err := os.OpenFile(r.path, os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(cs)
}

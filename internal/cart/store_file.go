package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FileStore keeps one JSON file per owner under a base directory. The
// payload is a bare JSON array of lines, the same layout browser clients
// persist, with no schema version field.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(owner string) string {
	// Owner ids are uuid-based but sanitize anyway before using them as a
	// file name.
	safe := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		}
		return '_'
	}, owner)
	return filepath.Join(s.dir, safe+".json")
}

func (s *FileStore) Load(ctx context.Context, owner string) ([]Line, error) {
	raw, err := os.ReadFile(s.path(owner))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var lines []Line
	if err := json.Unmarshal(raw, &lines); err != nil {
		return nil, fmt.Errorf("corrupt cart payload: %w", err)
	}
	return lines, nil
}

func (s *FileStore) Save(ctx context.Context, owner string, lines []Line) error {
	if lines == nil {
		lines = []Line{}
	}
	raw, err := json.Marshal(lines)
	if err != nil {
		return err
	}

	// Write-then-rename so a crashed write cannot leave a truncated slot.
	tmp := s.path(owner) + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path(owner))
}

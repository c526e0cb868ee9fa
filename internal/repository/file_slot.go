package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
)

var unsafeKeyChars = regexp.MustCompile(`[^A-Za-z0-9._-]`)

// FileSlotRepo implements SlotRepo with one JSON file per key inside dir.
// Replace writes a temp file in the same directory, syncs it and renames it
// over the target, so a crash leaves either the old or the new file.
type FileSlotRepo struct {
	dir string
}

// NewFileSlotRepo creates a FileSlotRepo rooted at dir.
func NewFileSlotRepo(dir string) *FileSlotRepo {
	return &FileSlotRepo{dir: dir}
}

// Path returns the file backing key.
func (r *FileSlotRepo) Path(key string) string {
	return filepath.Join(r.dir, unsafeKeyChars.ReplaceAllString(key, "_")+".json")
}

func (r *FileSlotRepo) Read(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(r.Path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrSlotNotFound
		}
		return nil, fmt.Errorf("reading slot %q: %w", key, err)
	}
	return data, nil
}

func (r *FileSlotRepo) Replace(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(r.dir, 0755); err != nil {
		return fmt.Errorf("creating slot directory: %w", err)
	}

	target := r.Path(key)
	tmp, err := os.CreateTemp(r.dir, filepath.Base(target)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, target); err != nil {
		return fmt.Errorf("replacing slot %q: %w", key, err)
	}
	committed = true
	return nil
}

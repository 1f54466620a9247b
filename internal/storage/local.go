package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Local keeps one file per key under BaseDir.
type Local struct {
	BaseDir string
}

func NewLocal(baseDir string) *Local {
	return &Local{BaseDir: baseDir}
}

func (l *Local) Get(ctx context.Context, key string) ([]byte, error) {
	_ = ctx

	p, err := l.path(key)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(p)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", key, err)
	}
	return b, nil
}

func (l *Local) Set(ctx context.Context, key string, value []byte) error {
	_ = ctx

	p, err := l.path(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(l.BaseDir, 0o755); err != nil {
		return err
	}

	// write to a sibling temp file first so readers never see half a value
	f, err := os.CreateTemp(l.BaseDir, ".tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	if _, err := f.Write(value); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, p); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

func (l *Local) Delete(ctx context.Context, key string) error {
	_ = ctx

	p, err := l.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func (l *Local) path(key string) (string, error) {
	name := filepath.Base(key)
	if name == "." || name == string(filepath.Separator) || name != key || strings.HasPrefix(name, ".") {
		return "", fmt.Errorf("storage: invalid key %q", key)
	}
	return filepath.Join(l.BaseDir, name+".json"), nil
}

func (l *Local) String() string { return fmt.Sprintf("local(%s)", l.BaseDir) }

package tx

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	apperrors "symptrack/internal/platform/errors"
)

// Manager wraps transactional boundaries for multi-adapter operations.
type Manager interface {
	Within(ctx context.Context, fn func(context.Context) error) error
}

type NoopManager struct{}

func (NoopManager) Within(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

type journalKey struct{}

type fileJournal struct {
	mu    sync.Mutex
	paths []string
}

func (j *fileJournal) track(path string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.paths = append(j.paths, path)
}

func (j *fileJournal) rollback() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	var errs []error
	for i := len(j.paths) - 1; i >= 0; i-- {
		if err := os.Remove(j.paths[i]); err != nil && !errors.Is(err, os.ErrNotExist) {
			errs = append(errs, err)
		}
	}
	j.paths = nil
	return errors.Join(errs...)
}

// FileManager removes every file written through WriteFile inside Within
// when the callback fails, so an aborted export leaves nothing behind.
type FileManager struct{}

func (FileManager) Within(ctx context.Context, fn func(context.Context) error) error {
	journal := &fileJournal{}
	if err := fn(context.WithValue(ctx, journalKey{}, journal)); err != nil {
		if rbErr := journal.rollback(); rbErr != nil {
			return errors.Join(err, fmt.Errorf("rollback: %w", rbErr))
		}
		return err
	}
	return nil
}

// WriteFile streams content into a temporary sibling of path and renames it
// into place. Readers never observe a half-written file. When ctx carries a
// FileManager boundary the final path is registered for rollback.
func WriteFile(ctx context.Context, path string, write func(io.Writer) error) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return apperrors.WrapIO("create", path, err)
	}
	tmpPath := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpPath) }

	if err := write(tmp); err != nil {
		_ = tmp.Close()
		cleanup()
		return err
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return apperrors.WrapIO("write", path, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		cleanup()
		return apperrors.WrapIO("write", path, err)
	}
	if journal, ok := ctx.Value(journalKey{}).(*fileJournal); ok {
		journal.track(path)
	}
	return nil
}

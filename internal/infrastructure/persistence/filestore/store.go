// Package filestore persists the student collection as a single structured
// text file. The whole collection is read at once and written back in full.
package filestore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/alem-hub/gradebook/internal/domain/shared"
	"github.com/alem-hub/gradebook/internal/domain/student"
	"github.com/alem-hub/gradebook/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// FILE STORE
// ══════════════════════════════════════════════════════════════════════════════

// Store implements student.Store on top of a local file.
type Store struct {
	path  string
	codec codec
	log   *logger.Logger
}

// Option customizes a Store.
type Option func(*Store)

// WithLogger sets the logger used for load/save events.
func WithLogger(l *logger.Logger) Option {
	return func(s *Store) { s.log = l }
}

// New creates a Store for the file at path.
func New(path string, opts ...Option) *Store {
	s := &Store{
		path:  path,
		codec: codecForPath(path),
		log:   logger.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(logger.Component("filestore"), logger.Path(path))
	return s
}

// Load reads and parses the file. Failures never panic: the caller always
// gets a non-nil collection, empty when err is set.
func (s *Store) Load(ctx context.Context) (student.Collection, error) {
	start := time.Now()

	if err := ctx.Err(); err != nil {
		return student.Collection{}, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.log.Warn("data file does not exist")
			return student.Collection{}, shared.WrapError("store", "Load", shared.ErrNotFound,
				fmt.Sprintf("file %s does not exist", s.path), err)
		}
		return student.Collection{}, fmt.Errorf("filestore: read %s: %w", s.path, err)
	}

	docs, err := s.codec.decode(data)
	if err != nil {
		s.log.Warn("cannot decode data file", logger.Err(err))
		return student.Collection{}, shared.WrapError("store", "Load", shared.ErrInvalidFormat,
			fmt.Sprintf("cannot decode %s file %s", s.codec.name(), s.path), err)
	}

	collection, err := toCollection(docs)
	if err != nil {
		s.log.Warn("data file failed validation", logger.Err(err))
		return student.Collection{}, shared.WrapError("store", "Load", shared.ErrInvalidFormat,
			fmt.Sprintf("invalid content in %s", s.path), err)
	}

	s.log.Info("records loaded",
		logger.RecordCount(len(collection)),
		logger.Latency(time.Since(start)),
	)
	return collection, nil
}

// Save serializes the whole collection and replaces the file. The data is
// written to a temporary file in the same directory and renamed over the
// target, so an interrupted write leaves the previous content intact.
// An existing file keeps its permissions, and a symlinked path keeps the
// link: the file it points to is replaced instead.
func (s *Store) Save(ctx context.Context, records student.Collection) error {
	start := time.Now()

	if err := ctx.Err(); err != nil {
		return err
	}

	out := make([]*student.Record, 0, len(records))
	for _, r := range records {
		out = append(out, r.Clone())
	}

	data, err := s.codec.encode(out)
	if err != nil {
		return fmt.Errorf("filestore: encode: %w", err)
	}

	if err := writeFileAtomic(s.path, data); err != nil {
		s.log.Error("failed to save records", logger.Err(err))
		return fmt.Errorf("filestore: write %s: %w", s.path, err)
	}

	s.log.Info("records saved",
		logger.RecordCount(len(records)),
		logger.Latency(time.Since(start)),
	)
	return nil
}

// defaultPerm applies when the data file does not exist yet.
const defaultPerm os.FileMode = 0o644

// resolveTarget follows symlinks at path and returns the file to replace
// and the permissions to give it.
func resolveTarget(path string) (string, os.FileMode, error) {
	target, err := filepath.EvalSymlinks(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return path, defaultPerm, nil
		}
		return "", 0, err
	}

	info, err := os.Stat(target)
	if err != nil {
		return "", 0, err
	}
	return target, info.Mode().Perm(), nil
}

func writeFileAtomic(path string, data []byte) error {
	path, perm, err := resolveTarget(path)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	cleanup := func() { _ = os.Remove(tmpName) }

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		cleanup()
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		cleanup()
		return err
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return err
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		cleanup()
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		cleanup()
		return err
	}
	return nil
}

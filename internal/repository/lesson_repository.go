package repository

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"github.com/saar-edu/aulas-dadas/internal/model"
	"github.com/spf13/afero"
)

// LessonRepository writes the generated lessons table to its destinations.
type LessonRepository struct {
	fs    afero.Fs
	paths []string
}

// NewLessonRepository creates a new LessonRepository writing to every path in paths.
func NewLessonRepository(fsys afero.Fs, paths []string) *LessonRepository {
	return &LessonRepository{fs: fsys, paths: paths}
}

// Paths returns the destinations in write order.
func (r *LessonRepository) Paths() []string {
	return r.paths
}

// Encode renders records as CSV with a header row.
func Encode(records []model.LessonRecord) ([]byte, error) {
	var buf bytes.Buffer
	if err := gocsv.Marshal(records, &buf); err != nil {
		return nil, fmt.Errorf("encode lessons: %w", err)
	}
	return buf.Bytes(), nil
}

// Save encodes records once and writes the same bytes to every destination.
func (r *LessonRepository) Save(ctx context.Context, records []model.LessonRecord) error {
	data, err := Encode(records)
	if err != nil {
		return err
	}

	for _, path := range r.paths {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := r.writeFile(path, data); err != nil {
			return err
		}
	}
	return nil
}

// writeFile replaces path via a temp file in the same directory, so a failed
// write never leaves a truncated destination behind.
func (r *LessonRepository) writeFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := r.fs.MkdirAll(dir, 0o755); err != nil {
		return &WriteError{Path: path, Err: err}
	}

	tmp, err := afero.TempFile(r.fs, dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	tmpName := tmp.Name()

	fail := func(err error) error {
		_ = r.fs.Remove(tmpName)
		return &WriteError{Path: path, Err: err}
	}

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fail(err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fail(err)
	}
	if err := tmp.Close(); err != nil {
		return fail(err)
	}
	if err := r.fs.Chmod(tmpName, 0o644); err != nil {
		return fail(err)
	}
	if err := r.fs.Rename(tmpName, path); err != nil {
		return fail(err)
	}
	return nil
}

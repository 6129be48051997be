// Package store persists inventory snapshots in a shared xlsx workbook.
package store

import (
	"context"

	"github.com/go-logr/logr"

	"github.com/go-tangra/go-tangra-pcspecs/internal/snapshot"
)

// Store appends snapshots to the workbook at a fixed path.
type Store struct {
	path  string
	sheet string
	theme Theme
	lock  bool
	log   logr.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithSheet names the worksheet created for a new workbook.
func WithSheet(name string) Option {
	return func(s *Store) { s.sheet = name }
}

// WithTheme sets the header and border styling.
func WithTheme(t Theme) Option {
	return func(s *Store) { s.theme = t }
}

// WithLocking controls whether AppendSnapshot holds the lock file. Without
// it concurrent runs can overwrite each other's rows.
func WithLocking(enabled bool) Option {
	return func(s *Store) { s.lock = enabled }
}

// WithLogger sets the logger.
func WithLogger(log logr.Logger) Option {
	return func(s *Store) { s.log = log }
}

// New returns a Store for the workbook at path. Locking is on by default.
func New(path string, opts ...Option) *Store {
	s := &Store{
		path:  path,
		sheet: DefaultSheet,
		theme: DefaultTheme(),
		lock:  true,
		log:   logr.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.WithName("store")
	return s
}

// Path returns the workbook location.
func (s *Store) Path() string {
	return s.path
}

// LockPath returns the sidecar file locked during AppendSnapshot.
func (s *Store) LockPath() string {
	return s.path + ".lock"
}

// AppendSnapshot loads the workbook, appends the record and its disk
// entries, and saves it, holding the lock file for the whole cycle.
func (s *Store) AppendSnapshot(ctx context.Context, rec snapshot.Record, entries []snapshot.DiskEntry) error {
	if s.lock {
		l, err := acquireLock(ctx, s.LockPath())
		if err != nil {
			return persistErr("lock", err)
		}
		defer func() {
			if err := l.release(); err != nil {
				s.log.Error(err, "release lock", "path", s.LockPath())
			}
		}()
	}

	t, err := OpenOrCreate(s.path, s.sheet, s.theme)
	if err != nil {
		return err
	}
	defer t.Close()

	before := t.Len()
	if err := t.Append(rec, entries); err != nil {
		return err
	}
	if err := t.Save(s.path); err != nil {
		return err
	}

	s.log.V(1).Info("appended snapshot", "path", s.path, "sheet", t.Sheet(),
		"rows_before", before, "rows_after", t.Len(), "disks", len(entries))
	return nil
}

// Package runner drives one inventory pass: probe the host, build the
// snapshot, reconcile disks and append the result to the workbook.
package runner

import (
	"context"
	"fmt"

	"github.com/go-logr/logr"

	"github.com/go-tangra/go-tangra-pcspecs/internal/collector"
	"github.com/go-tangra/go-tangra-pcspecs/internal/snapshot"
)

// Appender persists one snapshot.
type Appender interface {
	AppendSnapshot(ctx context.Context, rec snapshot.Record, entries []snapshot.DiskEntry) error
	Path() string
}

// Run performs a single pass. Nothing is written unless every probe call
// succeeded.
func Run(ctx context.Context, log logr.Logger, probe collector.Probe, out Appender, fullName string) error {
	rec, err := snapshot.Build(ctx, log, fullName, probe)
	if err != nil {
		return fmt.Errorf("build snapshot: %w", err)
	}

	entries, err := snapshot.Disks(ctx, log, probe)
	if err != nil {
		return fmt.Errorf("collect disks: %w", err)
	}

	if err := out.AppendSnapshot(ctx, rec, entries); err != nil {
		return fmt.Errorf("write inventory: %w", err)
	}

	log.Info("System information has been successfully written", "path", out.Path(), "disks", len(entries))
	return nil
}

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/go-tangra/go-tangra-pcspecs/internal/collector"
	"github.com/go-tangra/go-tangra-pcspecs/internal/config"
	"github.com/go-tangra/go-tangra-pcspecs/internal/snapshot"
)

// probeReport is what the probe subcommand prints.
type probeReport struct {
	Record snapshot.Record      `json:"record"`
	Disks  []snapshot.DiskEntry `json:"disks"`
}

func newProbeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "probe",
		Short: "Print this machine's snapshot as JSON without writing the workbook",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			name, _ := cmd.Flags().GetString("name")
			probe := newProbe(logr.Discard(), cfg.CommandTimeout)
			return writeProbeReport(cmd.Context(), probe, name, cmd.OutOrStdout())
		},
	}
}

func writeProbeReport(ctx context.Context, probe collector.Probe, name string, w io.Writer) error {
	rec, err := snapshot.Build(ctx, logr.Discard(), name, probe)
	if err != nil {
		return fmt.Errorf("build snapshot: %w", err)
	}
	disks, err := snapshot.Disks(ctx, logr.Discard(), probe)
	if err != nil {
		return fmt.Errorf("collect disks: %w", err)
	}
	if disks == nil {
		disks = []snapshot.DiskEntry{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(probeReport{Record: rec, Disks: disks}); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return nil
}

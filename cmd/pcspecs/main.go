package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-logr/logr"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/go-tangra/go-tangra-pcspecs/internal/collector"
	"github.com/go-tangra/go-tangra-pcspecs/internal/config"
	"github.com/go-tangra/go-tangra-pcspecs/internal/logging"
	"github.com/go-tangra/go-tangra-pcspecs/internal/runner"
	"github.com/go-tangra/go-tangra-pcspecs/internal/store"
)

var (
	version    = "dev"
	commitHash = "unknown"
	buildDate  = "unknown"
)

var cfgFile string

// newProbe builds the hardware probe for a run.
var newProbe = func(log logr.Logger, timeout time.Duration) collector.Probe {
	return collector.NewHost(log, collector.NewCommandExecutor(timeout))
}

var rootCmd = newRootCmd(os.Stdin)

func newRootCmd(stdin io.Reader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pcspecs",
		Short: "pcspecs - append this machine's hardware inventory to a shared workbook",
		Long: `pcspecs asks for the operator's full name, probes the local machine
(OS, CPU, memory, disks, GPU) and appends one snapshot to an xlsx
workbook that other machines append to as well.

Failures are logged; the process still exits 0 so unattended rollouts
keep going.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSnapshot(cmd, stdin)
		},
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./pcspecs.yaml or ./configs/pcspecs.yaml)")
	cmd.Flags().String("output", "", "workbook path (default system_info.xlsx)")
	cmd.Flags().String("log-file", "", "log file path (default system_info.log)")
	cmd.Flags().String("log-level", "", "log level: debug, info, warn, error")
	cmd.PersistentFlags().String("name", "", "operator full name; skips the interactive prompt")

	cmd.AddCommand(newProbeCmd())
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "pcspecs %s (commit: %s, built: %s)\n", version, commitHash, buildDate)
		},
	})
	return cmd
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runSnapshot(cmd *cobra.Command, stdin io.Reader) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// CLI flag overrides.
	if v, _ := cmd.Flags().GetString("output"); v != "" {
		cfg.Output = v
	}
	if v, _ := cmd.Flags().GetString("log-file"); v != "" {
		cfg.LogFile = v
	}
	if v, _ := cmd.Flags().GetString("log-level"); v != "" {
		cfg.LogLevel = v
	}

	log, closeLog, err := logging.New(logging.Options{
		File:    cfg.LogFile,
		Level:   cfg.LogLevel,
		Console: cmd.OutOrStdout(),
	})
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer func() { _ = closeLog() }()

	log = log.WithValues("run_id", uuid.NewString())
	log.Info("Script started", "version", version)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fullName, _ := cmd.Flags().GetString("name")
	if !cmd.Flags().Changed("name") {
		if fullName, err = runner.PromptFullName(stdin, cmd.OutOrStdout()); err != nil {
			log.Error(err, "An error occurred")
			return nil
		}
	}

	theme := store.DefaultTheme()
	theme.HeaderFill = cfg.HeaderFill

	probe := newProbe(log, cfg.CommandTimeout)
	out := store.New(cfg.Output,
		store.WithSheet(cfg.SheetName),
		store.WithTheme(theme),
		store.WithLocking(cfg.Lock),
		store.WithLogger(log),
	)

	if err := runner.Run(ctx, log, probe, out, fullName); err != nil {
		log.Error(err, "An error occurred")
		return nil
	}

	log.Info("Script finished successfully")
	return nil
}

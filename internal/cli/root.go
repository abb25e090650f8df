// Package cli wires configuration, logging and the pipeline into cobra commands
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/randytsao24/citydistance/internal/buildinfo"
	"github.com/randytsao24/citydistance/internal/config"
	"github.com/randytsao24/citydistance/internal/location"
	"github.com/randytsao24/citydistance/internal/logger"
	"github.com/randytsao24/citydistance/internal/pipeline"
)

// Execute runs the root command and exits non-zero on failure
func Execute() {
	cmd := newRootCmd(config.Load())
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// app is the state shared by subcommands once flags are parsed
type app struct {
	cfg    *config.Config
	logger *zap.Logger
	dir    *location.Directory
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	a := &app{cfg: cfg}

	cmd := &cobra.Command{
		Use:          "citydistance",
		Short:        "Great-circle distances between cities in a fixed directory",
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return a.init()
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	cmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug|info|warn|error")
	cmd.PersistentFlags().StringVar(&cfg.DirectoryFile, "directory", cfg.DirectoryFile, "YAML file replacing the built-in city directory")
	cmd.PersistentFlags().StringVar(&cfg.OutputFormat, "format", cfg.OutputFormat, "output format: text|json|yaml")

	cmd.AddCommand(
		distanceCmd(a),
		nearestCmd(a),
		placesCmd(a),
		versionCmd(),
	)
	return cmd
}

func (a *app) init() error {
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	l, err := logger.New(a.cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	a.logger = l

	if a.cfg.DirectoryFile == "" {
		a.dir = location.DefaultDirectory()
	} else {
		dir, err := location.LoadDirectory(a.cfg.DirectoryFile)
		if err != nil {
			return err
		}
		a.dir = dir
	}

	a.logger.Debug("directory ready",
		zap.String("source", a.directorySource()),
		zap.Int("places", a.dir.Len()),
		zap.Int("mapped", len(a.dir.Mapped())),
	)
	return nil
}

func (a *app) directorySource() string {
	if a.cfg.DirectoryFile == "" {
		return "builtin"
	}
	return a.cfg.DirectoryFile
}

func (a *app) newService() (*pipeline.Service, error) {
	opts, err := a.cfg.ServiceOptions()
	if err != nil {
		return nil, err
	}
	opts.Logger = a.logger
	return pipeline.NewService(a.dir, opts)
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		// Skip directory and logger setup.
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error { return nil },
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), buildinfo.String())
			return err
		},
	}
}

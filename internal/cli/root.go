package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"dishlist/backend/internal/config"
	"dishlist/backend/internal/logging"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath string
}

// load reads the configuration and builds the logger for a command.
func (o *RootOptions) load() (*config.Config, *logrus.Logger, error) {
	cfg, found, err := config.LoadConfig(o.ConfigPath)
	if err != nil {
		return nil, nil, err
	}
	log := logging.New(cfg.LogLevel, cfg.LogFormat)
	if !found {
		log.Debug("No .env file found, using environment variables and defaults")
	}
	return cfg, log, nil
}

// NewRootCommand creates the root command for the dishlist server.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "dishlist",
		Short: "Dishlist restaurant catalog API",
		Long:  "Serves the restaurant catalog with friend-scoped visibility and manages its database.",
	}

	// Global flags
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config-path", ".", "directory containing the .env file")

	// Add subcommands
	cmd.AddCommand(NewServeCommand(opts))
	cmd.AddCommand(NewMigrateCommand(opts))
	cmd.AddCommand(NewTokenCommand(opts))

	return cmd
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"dishlist/backend/internal/database"
)

// NewMigrateCommand creates the migrate command.
func NewMigrateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		Long: `Create or update the database schema.

Also converts restaurants still carrying the legacy is_private flag to the
privacy_level column and drops the old column.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := rootOpts.load()
			if err != nil {
				return err
			}
			db, err := database.Connect(cfg.DatabaseURL, log)
			if err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			if err := database.Migrate(db, log); err != nil {
				return fmt.Errorf("failed to migrate database: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Database schema is up to date")
			return nil
		},
	}
}

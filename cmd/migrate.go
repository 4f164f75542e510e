package cmd

import (
	"fmt"

	"menu-manager/feature/menus/models"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateCmd creates or updates the menu schema.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the menu database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap(true)
		if err != nil {
			return err
		}

		rt.logger.Info("Migrating menu schema", zap.Int("tables", len(models.All())))
		if err := models.Migrate(rt.db); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		rt.logger.Info("Menu schema is up to date")
		return nil
	},
}

func init() {
	RootCmd.AddCommand(migrateCmd)
}

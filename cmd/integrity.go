package cmd

import (
	"context"

	"menu-manager/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var fixFlag bool

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Perform integrity checks on the menu database and storage",
	Long:  `Checks that the menu tables match their models and that the media bucket exists.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), true, true)
	},
}

// schemaCmd represents the integrity schema command
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Check the menu database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), true, false)
	},
}

// storageCmd represents the integrity storage command
var storageCmd = &cobra.Command{
	Use:   "storage",
	Short: "Check and fix the media bucket",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), false, true)
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(schemaCmd, storageCmd)

	storageCmd.Flags().BoolVar(&fixFlag, "fix", false, "Create the missing bucket")
}

func runIntegrityChecks(ctx context.Context, runSchema, runStorage bool) error {
	rt, err := bootstrap(false)
	if err != nil {
		return err
	}
	logg := rt.logger
	svc := integrity.NewService(rt.store, rt.cfg.Storage.Bucket, rt.cfg.Storage.Region, logg, rt.db)

	if runSchema {
		logg.Info("Checking menu schema integrity...")
		report, err := svc.CheckSchema()
		if err != nil {
			logg.Error("Schema check failed", zap.Error(err))
		} else if report.Matched {
			logg.Info("Menu schema matches the models.")
		} else {
			logg.Warn("Menu schema mismatches found")
			for table, tblReport := range report.Tables {
				if tblReport.Status == "ok" {
					continue
				}
				if tblReport.Status == "missing" {
					logg.Warn("Missing Table", zap.String("table", table))
				}
				if len(tblReport.MissingColumns) > 0 {
					logg.Warn("Missing Columns", zap.String("table", table), zap.Strings("columns", tblReport.MissingColumns))
				}
				if len(tblReport.TypeMismatches) > 0 {
					logg.Warn("Type Mismatches", zap.String("table", table), zap.Strings("mismatches", tblReport.TypeMismatches))
				}
			}
			for _, e := range report.Errors {
				logg.Error("Inspection Error", zap.String("error", e))
			}
		}
	}

	if runStorage {
		logg.Info("Checking media bucket...")
		missing, err := svc.CheckStorage(ctx)
		if err != nil {
			logg.Error("Storage check failed", zap.Error(err))
			return nil
		}

		if len(missing) == 0 {
			logg.Info("Media bucket is present.")
			return nil
		}
		logg.Warn("Missing buckets detected", zap.Strings("missing", missing))

		if !fixFlag {
			logg.Info("Run 'integrity storage --fix' to create the missing bucket.")
			return nil
		}
		logg.Info("Creating missing buckets...")
		if err := svc.FixStorage(ctx, missing); err != nil {
			return err
		}
		logg.Info("Storage fixed successfully.")
	}

	return nil
}

package cmd

import (
	"context"

	"quotes-lake/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var fixFlag bool

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Perform integrity checks on the lake and the database",
	Long:  `Checks that the object store matches the bucket/space layout and that the database schema matches the models.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), true, true, true)
	},
}

// storageCmd represents the integrity storage command
var storageCmd = &cobra.Command{
	Use:   "storage",
	Short: "Check and fix the bucket/space structure",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), true, false, false)
	},
}

// databaseCmd represents the integrity database command
var databaseCmd = &cobra.Command{
	Use:   "database",
	Short: "Check the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), false, true, false)
	},
}

// runsCmd represents the integrity runs command
var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Reconcile pipeline runs with their backup objects",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), false, false, true)
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(storageCmd, databaseCmd, runsCmd)

	storageCmd.Flags().BoolVar(&fixFlag, "fix", false, "Create missing buckets and folders")
}

func runIntegrityChecks(ctx context.Context, runStorage, runDatabase, runRuns bool) error {
	rt, err := bootstrap()
	if err != nil {
		return err
	}
	logg := rt.logger

	if runDatabase || runRuns {
		if err := rt.connectDatabase(ctx, false, false); err != nil {
			return err
		}
	}
	svc := integrity.NewService(rt.store, rt.db, rt.runsTarget(), logg)

	if runStorage {
		logg.Info("Checking storage structure...")
		report, err := svc.CheckStorage(ctx)
		if err != nil {
			return err
		}

		if report.Status == "ok" {
			logg.Info("Storage structure is intact.")
		} else {
			logg.Warn("Missing storage structure detected",
				zap.Strings("buckets", report.MissingBuckets),
				zap.Strings("folders", report.MissingFolders))

			if fixFlag {
				logg.Info("Fixing storage structure...")
				fixed, err := svc.FixStorage(ctx)
				if err != nil {
					return err
				}
				logg.Info("Storage structure fixed.", zap.Strings("fixed", fixed.Fixed))
			} else {
				logg.Info("Run 'integrity storage --fix' to create them.")
			}
		}
	}

	if (runDatabase || runRuns) && !svc.HasDatabase() {
		logg.Warn("Database checks skipped, no database connection")
		return nil
	}

	if runDatabase {
		if err := checkDatabase(svc, logg); err != nil {
			return err
		}
	}

	if runRuns {
		logg.Info("Reconciling pipeline runs with backups...")
		report, err := svc.CheckRuns(ctx)
		if err != nil {
			return err
		}
		if report.Status == "ok" {
			logg.Info("Run backups are in sync.", zap.Int("runs", report.Runs))
			return nil
		}
		for _, id := range report.MissingBackups {
			logg.Warn("Missing Backup", zap.String("run_id", id))
		}
		for _, key := range report.Orphans {
			logg.Warn("Orphan Backup", zap.String("object", key))
		}
	}
	return nil
}

func checkDatabase(svc *integrity.Service, logg *zap.Logger) error {
	logg.Info("Checking database schema integrity...")
	report, err := svc.CheckDatabase()
	if err != nil {
		return err
	}
	if report.Matched {
		logg.Info("Database schema matches expected definition.", zap.String("dialect", report.Dialect))
		return nil
	}

	logg.Warn("Database schema mismatches found", zap.String("dialect", report.Dialect))
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
	return nil
}

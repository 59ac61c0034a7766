package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"loadscreen-export/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var fixFlag bool

type checkSet struct {
	archive, output, records, database, storage bool
}

var allChecks = checkSet{archive: true, output: true, records: true, database: true, storage: true}

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check [outdir]",
	Short: "Perform integrity checks on the archive, output and records",
	Long: `Checks that the game archive holds the item document and loading screen assets,
that the output directories exist, that every record still has its image, and,
when configured, that the records table and the storage bucket are complete.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if jsonOutput {
			return saveIntegrityReport(cmd.Context(), args)
		}
		return runIntegrityChecks(cmd.Context(), args, allChecks)
	},
}

var checkArchiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Check the game archive",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), nil, checkSet{archive: true})
	},
}

var checkOutputCmd = &cobra.Command{
	Use:   "output [outdir]",
	Short: "Check and fix the output directories",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), args, checkSet{output: true})
	},
}

var checkRecordsCmd = &cobra.Command{
	Use:   "records [outdir]",
	Short: "Check that every record still has its image",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), args, checkSet{records: true})
	},
}

var checkDatabaseCmd = &cobra.Command{
	Use:   "database",
	Short: "Check the records table schema",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), nil, checkSet{database: true})
	},
}

var checkStorageCmd = &cobra.Command{
	Use:   "storage [outdir]",
	Short: "Check and fix the published objects",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), args, checkSet{storage: true})
	},
}

func init() {
	RootCmd.AddCommand(checkCmd)
	checkCmd.AddCommand(checkArchiveCmd, checkOutputCmd, checkRecordsCmd, checkDatabaseCmd, checkStorageCmd)

	checkCmd.Flags().BoolVar(&jsonOutput, "json", false, "Save the full report as JSON")
	checkOutputCmd.Flags().BoolVar(&fixFlag, "fix", false, "Create missing directories")
	checkStorageCmd.Flags().BoolVar(&fixFlag, "fix", false, "Upload missing objects")
}

func newIntegrityService(args []string) (*integrity.Service, *app, error) {
	a, err := newApp(args, appOptions{})
	if err != nil {
		return nil, nil, err
	}
	return integrity.NewService(a.integrityOptions()), a, nil
}

func saveIntegrityReport(ctx context.Context, args []string) error {
	svc, a, err := newIntegrityService(args)
	if err != nil {
		return err
	}
	defer a.logger.Sync()

	filename := fmt.Sprintf("integrity_%d.json", time.Now().Unix())
	data, err := json.MarshalIndent(svc.Report(ctx), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to save JSON file: %w", err)
	}
	a.logger.Info("Integrity report saved", zap.String("file", filename))
	return nil
}

func runIntegrityChecks(ctx context.Context, args []string, run checkSet) error {
	svc, a, err := newIntegrityService(args)
	if err != nil {
		return err
	}
	logg := a.logger
	defer logg.Sync()

	only := run != allChecks
	failed := false

	if run.archive {
		logg.Info("Checking game archive...")
		report, err := svc.CheckArchive(ctx)
		switch {
		case err != nil:
			logg.Error("Archive check failed", zap.Error(err))
			failed = true
		case report.Status == "ok":
			logg.Info("Archive is intact.", zap.Int("assets", report.Assets))
		default:
			logg.Warn("Archive problems detected", zap.Strings("errors", report.Errors))
			failed = true
		}
	}

	if run.output {
		logg.Info("Checking output directories...")
		missing, err := svc.CheckOutput()
		if err != nil {
			return fmt.Errorf("output check failed: %w", err)
		}

		if len(missing) == 0 {
			logg.Info("Output directories are present.")
		} else {
			logg.Warn("Missing directories detected", zap.Strings("missing", missing))

			if only && fixFlag {
				logg.Info("Creating missing directories...")
				if err := svc.FixOutput(missing); err != nil {
					return fmt.Errorf("failed to fix output: %w", err)
				}
				logg.Info("Output directories created.")
			} else if only {
				logg.Info("Run with --fix to create missing directories.")
			}
		}
	}

	if run.records {
		logg.Info("Checking records...")
		report, err := svc.CheckRecords(ctx)
		if err != nil {
			return fmt.Errorf("records check failed: %w", err)
		}
		if report.Status == "ok" {
			logg.Info("Records are consistent.", zap.Int("records", report.Total))
		} else {
			if len(report.MissingImages) > 0 {
				logg.Warn("Records without image", zap.Strings("images", report.MissingImages))
			}
			if len(report.Duplicates) > 0 {
				logg.Warn("Duplicate records", zap.Strings("paths", report.Duplicates))
			}
			failed = true
		}
	}

	if run.database {
		if a.db == nil {
			if only {
				return fmt.Errorf("records driver %q does not use a database", a.cfg.Records.Driver)
			}
		} else {
			logg.Info("Checking records table schema...")
			report, err := svc.CheckDatabase()
			if err != nil {
				logg.Error("Schema check failed", zap.Error(err))
				failed = true
			} else if report.Matched {
				logg.Info("Schema matches expected definition.", zap.String("driver", report.Driver))
			} else {
				logg.Warn("Schema mismatches found", zap.String("driver", report.Driver))
				for table, tblReport := range report.Tables {
					if tblReport.Status != "ok" {
						if len(tblReport.MissingColumns) > 0 {
							logg.Warn("Missing Columns", zap.String("table", table), zap.Strings("columns", tblReport.MissingColumns))
						}
						if len(tblReport.TypeMismatches) > 0 {
							logg.Warn("Type Mismatches", zap.String("table", table), zap.Strings("mismatches", tblReport.TypeMismatches))
						}
					}
				}
				for _, e := range report.Errors {
					logg.Error("Inspection Error", zap.String("error", e))
				}
				failed = true
			}
		}
	}

	if run.storage {
		if a.storage == nil {
			if only {
				return fmt.Errorf("storage publishing is disabled")
			}
		} else {
			logg.Info("Checking published objects...")
			missing, err := svc.CheckStorage(ctx)
			if err != nil {
				return fmt.Errorf("storage check failed: %w", err)
			}

			if len(missing) == 0 {
				logg.Info("All records are published.")
			} else {
				logg.Warn("Unpublished files detected", zap.Strings("missing", missing))

				if only && fixFlag {
					logg.Info("Publishing missing files...")
					if err := svc.FixStorage(ctx, missing); err != nil {
						return fmt.Errorf("failed to fix storage: %w", err)
					}
					logg.Info("Missing files published.")
				} else if only {
					logg.Info("Run with --fix to publish missing files.")
				} else {
					failed = true
				}
			}
		}
	}

	if failed {
		return fmt.Errorf("integrity check found problems")
	}
	return nil
}

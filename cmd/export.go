package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"loadscreen-export/core/archive"
	"loadscreen-export/core/reconcile"
	"loadscreen-export/feature/loadingscreen"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	dryRun     bool
	noProgress bool
	watch      bool
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export [outdir]",
	Short: "Export new and changed loading screens",
	Long: `Reads the loading screen items from the game archive, compares them with the
stored records and exports every loading screen whose texture is new or changed.

Images are written to <outdir>/out, records to <outdir>/loadingscreens-db.json
and the public list to <outdir>/loadingscreens.json.

Examples:
  # Export into ./site
  export -d "C:/Program Files (x86)/Steam/steamapps/common/dota 2 beta" ./site

  # Show what would be exported
  export -d ~/dota ./site --dry-run

  # Export again whenever the game archive changes
  export -d ~/dota ./site --watch`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func init() {
	RootCmd.AddCommand(exportCmd)
	addExportFlags(exportCmd)
}

func addExportFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Plan only, write nothing")
	cmd.Flags().BoolVar(&noProgress, "no-progress", false, "Hide the progress bar")
	cmd.Flags().BoolVar(&watch, "watch", false, "Export again when the game archive changes")
}

func runExport(cmd *cobra.Command, args []string) error {
	a, err := newApp(args, appOptions{requireArchive: true})
	if err != nil {
		return err
	}
	defer a.logger.Sync()

	ctx := cmd.Context()
	err = exportOnce(ctx, a)
	if !watch {
		return err
	}
	if err != nil {
		a.logger.Error("Export failed", zap.Error(err))
	}

	pkgPath := archive.PackagePath(a.cfg.Archive.Path)
	changes, err := archive.Watch(ctx, pkgPath, 2*time.Second)
	if err != nil {
		return err
	}
	a.logger.Info("Watching for archive changes", zap.String("path", pkgPath))
	for range changes {
		a.logger.Info("Archive changed, exporting")
		if err := exportOnce(ctx, a); err != nil {
			a.logger.Error("Export failed", zap.Error(err))
		}
	}
	return nil
}

func exportOnce(ctx context.Context, a *app) error {
	var bar *progressbar.ProgressBar
	ro := loadingscreen.RunOptions{
		DryRun: dryRun,
		OnPlan: func(plan *reconcile.Plan) {
			if noProgress || dryRun || len(plan.Work) == 0 {
				return
			}
			bar = progressbar.NewOptions(len(plan.Work),
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionSetDescription("Exporting loading screens"),
				progressbar.OptionSetWidth(40),
				progressbar.OptionShowCount(),
				progressbar.OptionShowIts(),
				progressbar.OptionSetItsString("img/s"),
				progressbar.OptionThrottle(65*time.Millisecond),
				progressbar.OptionShowElapsedTimeOnFinish(),
				progressbar.OptionOnCompletion(func() {
					fmt.Fprintln(os.Stderr)
				}),
			)
		},
		OnProgress: func(reconcile.Progress) {
			if bar != nil {
				_ = bar.Add(1)
			}
		},
	}

	report, err := a.service.Run(ctx, ro)
	if bar != nil {
		_ = bar.Finish()
	}
	if report != nil {
		printReport(report)
	}
	if errors.Is(err, loadingscreen.ErrPartialExport) {
		for _, f := range report.Failed {
			a.logger.Warn("Loading screen not exported", zap.Int("id", f.ID), zap.String("name", f.Name), zap.String("error", f.Error))
		}
	}
	return err
}

func printReport(r *loadingscreen.Report) {
	title := "Export Report"
	if r.DryRun {
		title = "Export Plan"
	}
	fmt.Printf("\n=== %s ===\n", title)
	fmt.Printf("Run: %s\n", r.RunID)
	fmt.Printf("Items: %d\n", r.Summary.TotalItems)
	if r.DryRun {
		fmt.Printf("To Export: %d\n", r.Summary.Export)
	} else {
		fmt.Printf("Exported: %d\n", len(r.Exported))
		fmt.Printf("Failed: %d\n", len(r.Failed))
	}
	fmt.Printf("Skipped: %d\n", r.Summary.Skip)
	fmt.Printf("Not Found: %d\n", r.Summary.NotFound)
	fmt.Printf("Ambiguous: %d\n", r.Summary.Ambiguous)
	fmt.Printf("Records: %d\n", r.Records)
	fmt.Printf("Execution Time: %s\n", r.Duration.Round(time.Millisecond))
}

package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"loadscreen-export/core/reconcile"

	"github.com/spf13/cobra"
)

var jsonOutput bool

// planCmd represents the plan command
var planCmd = &cobra.Command{
	Use:   "plan [outdir]",
	Short: "Show how every loading screen item would be handled",
	Long:  `Classifies every loading screen item as export, skip or not_found against the stored records. Nothing is written.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(args, appOptions{requireArchive: true})
		if err != nil {
			return err
		}
		defer a.logger.Sync()

		plan, err := a.service.Plan(cmd.Context(), true)
		if err != nil {
			return err
		}
		if jsonOutput {
			return writeJSON(plan)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tSTATUS\tENTRY")
		for _, r := range plan.Results {
			entry := "-"
			if r.Status != reconcile.StatusNotFound {
				entry = r.Entry.FullPath()
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", r.Item.ID, r.Item.Name, r.Status, entry)
		}
		if err := w.Flush(); err != nil {
			return err
		}

		fmt.Printf("\n%d items: %d to export, %d skipped, %d not found, %d ambiguous\n",
			plan.Summary.TotalItems, plan.Summary.Export, plan.Summary.Skip,
			plan.Summary.NotFound, plan.Summary.Ambiguous)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(planCmd)
	planCmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the plan as JSON")
}

func writeJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

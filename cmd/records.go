package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// recordsCmd represents the records command
var recordsCmd = &cobra.Command{
	Use:   "records [outdir]",
	Short: "List the stored export records",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(args, appOptions{})
		if err != nil {
			return err
		}
		defer a.logger.Sync()

		recs, err := a.service.Records(cmd.Context())
		if err != nil {
			return err
		}
		if jsonOutput {
			return writeJSON(recs)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tIMAGE\tCRC32\tSIZE\tPATH")
		for _, r := range recs {
			fmt.Fprintf(w, "%d\t%s\t%s\t%08x\t%d\t%s\n", r.ID, r.Name, r.ImageLink, r.Crc32, r.Size, r.FullPath)
		}
		if err := w.Flush(); err != nil {
			return err
		}
		fmt.Printf("\n%d loading screens in db\n", len(recs))
		return nil
	},
}

// recordsBasicCmd prints the public document.
var recordsBasicCmd = &cobra.Command{
	Use:   "basic [outdir]",
	Short: "Print the public loading screen document",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(args, appOptions{})
		if err != nil {
			return err
		}
		defer a.logger.Sync()

		doc, err := a.service.Document(cmd.Context())
		if err != nil {
			return err
		}
		return writeJSON(doc)
	},
}

// recordsPullCmd restores the records from the bucket.
var recordsPullCmd = &cobra.Command{
	Use:   "pull [outdir]",
	Short: "Restore an empty record store from the published records",
	Long:  `Downloads the published record file from the storage bucket into an empty record store, so a fresh machine does not export everything again.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(args, appOptions{})
		if err != nil {
			return err
		}
		defer a.logger.Sync()

		n, err := a.service.PullRecords(cmd.Context())
		if err != nil {
			return err
		}
		a.logger.Info("Records restored", zap.Int("records", n))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(recordsCmd)
	recordsCmd.AddCommand(recordsBasicCmd, recordsPullCmd)
	recordsCmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the records as JSON")
}

package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var rawItems bool

// itemsCmd represents the items command
var itemsCmd = &cobra.Command{
	Use:   "items",
	Short: "List the loading screen items of the game archive",
	Long:  `Parses the item document of the game archive and lists every loading screen item. Use --raw to see names and paths before normalization.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(nil, appOptions{requireArchive: true})
		if err != nil {
			return err
		}
		defer a.logger.Sync()

		list, err := a.service.Items(cmd.Context(), rawItems)
		if err != nil {
			return err
		}
		if jsonOutput {
			return writeJSON(list)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tPATH")
		for _, it := range list {
			fmt.Fprintf(w, "%d\t%s\t%s\n", it.ID, it.Name, it.Path)
		}
		if err := w.Flush(); err != nil {
			return err
		}
		fmt.Printf("\n%d loading screens\n", len(list))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(itemsCmd)
	itemsCmd.Flags().BoolVar(&rawItems, "raw", false, "Skip name normalization")
	itemsCmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the items as JSON")
}

package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/clydeger/a340-controller/internal/sensing"
	"github.com/spf13/cobra"
)

var sensorsCmd = &cobra.Command{
	Use:   "sensors",
	Short: "List the conditioned sensor channels the control core consumes",
	Run: func(cmd *cobra.Command, args []string) {
		channels := sensing.DefaultChannels()

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "SLUG\tDESCRIPTION\tUNIT\tRANGE")
		fmt.Fprintln(w, "----\t-----------\t----\t-----")

		for _, c := range channels {
			fmt.Fprintf(w, "%s\t%s\t%s\t%g..%g\n", c.Slug, c.Description, c.Unit, c.Min, c.Max)
		}
		w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(sensorsCmd)
}

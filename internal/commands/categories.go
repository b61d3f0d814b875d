package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/spliit/internal/categories"
)

func newCategoriesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the expense categories and their IDs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, c := range categories.All() {
				fmt.Fprintf(tw, "%d\t%s\t%s\n", c.ID, c.Grouping, c.Name)
			}
			return tw.Flush()
		},
	}
}

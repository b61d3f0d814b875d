package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/spliit/internal/export"
	"github.com/cleared-dev/spliit/internal/model"
	"github.com/cleared-dev/spliit/internal/spliit"
)

func newExpensesCommand(opts *globalOptions) *cobra.Command {
	var list spliit.ListOptions
	var asCSV bool

	cmd := &cobra.Command{
		Use:   "expenses",
		Short: "List the group's expenses in server order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.client(cmd)
			if err != nil {
				return err
			}
			expenses, err := c.Expenses(cmd.Context(), list)
			if err != nil {
				return err
			}

			if asCSV {
				return export.WriteExpenses(cmd.OutOrStdout(), expenses)
			}
			return printExpenses(cmd.OutOrStdout(), expenses)
		},
	}

	cmd.Flags().IntVar(&list.Limit, "limit", 0, "maximum number of expenses (0 = all)")
	cmd.Flags().IntVar(&list.MaxPages, "max-pages", 0, "maximum pages to fetch (0 = configured max_pages)")
	cmd.Flags().BoolVar(&asCSV, "csv", false, "write CSV instead of a table")

	return cmd
}

func printExpenses(w io.Writer, expenses []model.Expense) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tTITLE\tCATEGORY\tAMOUNT\tPAID BY\tPAID FOR")
	for _, e := range expenses {
		date := ""
		if !e.ExpenseDate.IsZero() {
			date = e.ExpenseDate.UTC().Format("2006-01-02")
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			date, e.Title, e.Category, e.Amount, e.PaidBy.Name, e.PaidForSummary())
	}
	return tw.Flush()
}

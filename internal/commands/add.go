package commands

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/spliit/internal/categories"
	"github.com/cleared-dev/spliit/internal/model"
	"github.com/cleared-dev/spliit/internal/spliit"
)

type addOptions struct {
	title    string
	paidBy   string
	paidFor  []string
	amount   string
	category string
	dryRun   bool
}

func newAddCommand(opts *globalOptions) *cobra.Command {
	var add addOptions

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an expense dated now",
		Example: `  spliit add --title Dinner --paid-by John --for John --for Jane --amount 50.00 --category "Food and Drink/Dining Out"
  spliit add --title Rent --paid-by Jane --for John:2 --for Jane:1 --amount 1200`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(cmd, opts, add)
		},
	}

	cmd.Flags().StringVar(&add.title, "title", "", "expense title (required)")
	cmd.Flags().StringVar(&add.paidBy, "paid-by", "", "name of the participant who paid (required)")
	cmd.Flags().StringArrayVar(&add.paidFor, "for", nil, "payee as NAME or NAME:SHARES, repeatable (default: everyone, one share each)")
	cmd.Flags().StringVar(&add.amount, "amount", "", "total amount in major units, e.g. 12.50 (required)")
	cmd.Flags().StringVar(&add.category, "category", "", "category ID, NAME or GROUPING/NAME (default Uncategorized/General)")
	cmd.Flags().BoolVar(&add.dryRun, "dry-run", false, "print the request body instead of sending it")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("paid-by")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func runAdd(cmd *cobra.Command, opts *globalOptions, add addOptions) error {
	amount, err := model.ParseCents(add.amount)
	if err != nil {
		return err
	}
	category, err := categories.Parse(add.category)
	if err != nil {
		return err
	}

	c, err := opts.client(cmd)
	if err != nil {
		return err
	}
	byName, err := c.Participants(cmd.Context())
	if err != nil {
		return fmt.Errorf("fetching participants: %w", err)
	}

	payer, err := lookupParticipant(byName, add.paidBy)
	if err != nil {
		return err
	}
	shares, err := resolveShares(byName, add.paidFor)
	if err != nil {
		return err
	}

	params := spliit.AddExpenseParams{
		Title:    add.title,
		PaidBy:   payer,
		PaidFor:  shares,
		Amount:   amount,
		Category: category.ID,
	}
	if err := params.Validate(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if add.dryRun {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(spliit.FormatExpensePayload(c.GroupID(), params, time.Now()))
	}

	if _, err := c.AddExpense(cmd.Context(), params); err != nil {
		return err
	}
	fmt.Fprintf(out, "Added %q: %s paid by %s, %s\n", params.Title, amount, add.paidBy, category)
	return nil
}

// lookupParticipant accepts a display name or, failing that, a participant ID.
func lookupParticipant(byName map[string]string, nameOrID string) (string, error) {
	if id, ok := byName[nameOrID]; ok {
		return id, nil
	}
	for _, id := range byName {
		if id == nameOrID {
			return id, nil
		}
	}
	return "", fmt.Errorf("unknown participant %q (known: %s)", nameOrID, strings.Join(sortedNames(byName), ", "))
}

// resolveShares turns NAME[:SHARES] entries into shares. No entries means every
// participant with one share.
func resolveShares(byName map[string]string, entries []string) ([]model.Share, error) {
	if len(entries) == 0 {
		names := sortedNames(byName)
		out := make([]model.Share, len(names))
		for i, name := range names {
			out[i] = model.Share{ParticipantID: byName[name], Shares: 1}
		}
		return out, nil
	}

	out := make([]model.Share, 0, len(entries))
	for _, entry := range entries {
		name, weight := entry, 1
		if i := strings.LastIndex(entry, ":"); i >= 0 {
			n, err := strconv.Atoi(entry[i+1:])
			if err != nil {
				return nil, fmt.Errorf("parsing shares in %q: %w", entry, err)
			}
			name, weight = entry[:i], n
		}
		id, err := lookupParticipant(byName, name)
		if err != nil {
			return nil, err
		}
		out = append(out, model.Share{ParticipantID: id, Shares: weight})
	}
	return out, nil
}

func sortedNames(byName map[string]string) []string {
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

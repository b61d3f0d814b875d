package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newGroupCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "group",
		Short: "Show the group and its participants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.client(cmd)
			if err != nil {
				return err
			}
			g, err := c.GetGroup(cmd.Context())
			if err != nil {
				return fmt.Errorf("fetching group: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%s)\n", g.Name, g.Currency)
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			for _, p := range g.Participants {
				fmt.Fprintf(tw, "  %s\t%s\n", p.Name, p.ID)
			}
			return tw.Flush()
		},
	}
}

func newParticipantsCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "participants",
		Short: "List participant names and IDs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.client(cmd)
			if err != nil {
				return err
			}
			byName, err := c.Participants(cmd.Context())
			if err != nil {
				return fmt.Errorf("fetching participants: %w", err)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, name := range sortedNames(byName) {
				fmt.Fprintf(tw, "%s\t%s\n", name, byName[name])
			}
			return tw.Flush()
		},
	}
}

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/scrapscramble/scrapscramble-go/internal/game/sets"
)

func newCardsCommand() *cobra.Command {
	var set string

	cmd := &cobra.Command{
		Use:   "cards",
		Short: "List every card, grouped by set",
		RunE: func(cmd *cobra.Command, _ []string) error {
			names := sets.Names()
			if set != "" {
				if len(sets.InSet(set)) == 0 {
					return fmt.Errorf("unknown set %q", set)
				}
				names = []string{set}
			}
			for _, name := range names {
				renderSet(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&set, "set", "", "only list this set")
	return cmd
}

func renderSet(w io.Writer, set string) {
	fmt.Fprintln(w, bold(set))
	for _, e := range sets.InSet(set) {
		line := e.New().UIString()
		if e.Token {
			line += " " + cyan("(token)")
		}
		fmt.Fprintln(w, "  "+line)
	}
}

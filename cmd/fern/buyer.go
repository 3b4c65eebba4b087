package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var buyerCmd = &cobra.Command{
	Use:   "buyer <id>",
	Short: "List products matched against one buyer",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid buyer id %q: %w", args[0], err)
		}
		asJSON, _ := cmd.Flags().GetBool("json")

		results := engine.finder.MatchesForBuyer(cmd.Context(), id)
		return printMatches(results, asJSON)
	},
}

func init() {
	buyerCmd.Flags().Bool("json", false, "output results as JSON")

	rootCmd.AddCommand(buyerCmd)
}

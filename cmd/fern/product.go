package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var productCmd = &cobra.Command{
	Use:   "product <id>",
	Short: "List buyers matched against one product",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid product id %q: %w", args[0], err)
		}
		asJSON, _ := cmd.Flags().GetBool("json")

		results := engine.finder.MatchesForProduct(cmd.Context(), id)
		return printMatches(results, asJSON)
	},
}

func init() {
	productCmd.Flags().Bool("json", false, "output results as JSON")

	rootCmd.AddCommand(productCmd)
}

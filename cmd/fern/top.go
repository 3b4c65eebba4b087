package main

import (
	"github.com/spf13/cobra"
)

var topCmd = &cobra.Command{
	Use:   "top",
	Short: "List the best matches across the whole catalog",
	Long: `Top scores every product against every buyer, keeps only strong matches
and prints the highest-scoring pairings with their sale predictions.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		asJSON, _ := cmd.Flags().GetBool("json")

		results := engine.finder.TopMatches(cmd.Context(), limit)
		return printMatches(results, asJSON)
	},
}

func init() {
	topCmd.Flags().Int("limit", 0, "maximum number of matches (default from config)")
	topCmd.Flags().Bool("json", false, "output results as JSON")

	rootCmd.AddCommand(topCmd)
}

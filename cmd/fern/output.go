package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/Ramsey-B/fern/pkg/models"
)

// printMatches renders match results either as JSON or as an aligned table
// with the prediction and scoring reasons inline.
func printMatches(results []models.MatchResult, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	if len(results) == 0 {
		fmt.Println("no matches found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SCORE\tPRODUCT\tBUYER\tPROBABILITY\tTIMEFRAME\tVALUE")
	for _, m := range results {
		fmt.Fprintf(w, "%d\t%s (#%d)\t%s (#%d)\t%d%%\t%s\t%.2f\n",
			m.Score,
			m.ProductName, m.ProductID,
			m.BuyerName, m.BuyerID,
			m.Prediction.Probability,
			m.Prediction.EstimatedTimeframe,
			m.Prediction.PotentialValue,
		)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println()
	for _, m := range results {
		fmt.Printf("#%d -> #%d: %s\n", m.ProductID, m.BuyerID, strings.Join(m.Reasons, "; "))
	}
	return nil
}

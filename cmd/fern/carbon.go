package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Ramsey-B/fern/pkg/carbon"
)

var carbonCmd = &cobra.Command{
	Use:   "carbon",
	Short: "Estimate CO2 avoided by valorizing stock",
	Long: `Carbon estimates the emissions avoided when dormant stock is reused,
recycled, donated or resold instead of being produced new. Transport can be
given as a distance in kilometers or derived from two known city names.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		material, _ := cmd.Flags().GetString("material")
		quantity, _ := cmd.Flags().GetFloat64("quantity")
		method, _ := cmd.Flags().GetString("method")
		distance, _ := cmd.Flags().GetFloat64("distance")
		from, _ := cmd.Flags().GetString("from")
		to, _ := cmd.Flags().GetString("to")
		asJSON, _ := cmd.Flags().GetBool("json")

		if quantity <= 0 {
			return fmt.Errorf("quantity must be positive, got %f", quantity)
		}

		var savings carbon.Savings
		if from != "" || to != "" {
			if from == "" || to == "" {
				return fmt.Errorf("--from and --to must be given together")
			}
			savings = engine.calculator.EstimateBetween(carbon.Material(material), quantity, carbon.Method(method), from, to)
		} else {
			savings = engine.calculator.Estimate(carbon.Material(material), quantity, carbon.Method(method), distance)
		}

		if asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(savings)
		}

		fmt.Printf("production footprint: %.1f kg CO2e\n", savings.Production)
		fmt.Printf("transport emissions:  %.1f kg CO2e\n", savings.Transport)
		fmt.Printf("net saved:            %.1f kg CO2e\n", savings.NetSaved)
		fmt.Printf("equivalent to %d trees for a year, %d km by car, or %.1f Paris-London flights\n",
			savings.Equivalences.Trees,
			savings.Equivalences.CarKilometers,
			savings.Equivalences.Flights,
		)
		return nil
	},
}

func init() {
	carbonCmd.Flags().String("material", "metal", "material type (metal, plastic, electronic, textile, paper, wood)")
	carbonCmd.Flags().Float64("quantity", 0, "stock quantity in kilograms")
	carbonCmd.Flags().String("method", "reuse", "valorization method (reuse, recycling, donation, resale)")
	carbonCmd.Flags().Float64("distance", 0, "transport distance in kilometers")
	carbonCmd.Flags().String("from", "", "origin city (alternative to --distance)")
	carbonCmd.Flags().String("to", "", "destination city (alternative to --distance)")
	carbonCmd.Flags().Bool("json", false, "output results as JSON")

	rootCmd.AddCommand(carbonCmd)
}

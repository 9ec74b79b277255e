package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Per-assessment consumption summary",
	Long:  `Displays every assessment alongside its total recorded consumption.`,
	RunE:  runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	st, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer st.Close()

	svc := newService(cfg, st)
	assessments, err := svc.List()
	if err != nil {
		return err
	}

	if len(assessments) == 0 {
		fmt.Println("No assessments found")
		return nil
	}

	fmt.Println("------------------------------------------------------------------------------------------")
	fmt.Printf("%-36s  %-24s  %6s  %8s  %10s\n", "ID", "Address", "Rating", "Readings", "Total kWh")
	fmt.Println("------------------------------------------------------------------------------------------")

	var grandTotal float64
	for _, a := range assessments {
		var total float64
		for _, reading := range a.UsageHistory {
			total += reading.Consumption
		}
		grandTotal += total

		address := a.Address
		if len(address) > 24 {
			address = address[:21] + "..."
		}
		fmt.Printf("%-36s  %-24s  %6.1f  %8d  %10.2f\n",
			a.ID, address, a.EfficiencyRating, len(a.UsageHistory), total)
	}

	fmt.Println("------------------------------------------------------------------------------------------")
	fmt.Printf("Grand total: %.2f kWh across %d assessments\n", grandTotal, len(assessments))
	return nil
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var totalCmd = &cobra.Command{
	Use:   "total [id]",
	Short: "Show total consumption for an assessment",
	Long:  `Sums the consumption over all usage readings recorded against an assessment.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTotal,
}

func init() {
	rootCmd.AddCommand(totalCmd)
}

func runTotal(cmd *cobra.Command, args []string) error {
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
	total, err := svc.TotalConsumption(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("Total consumption: %.2f kWh\n", total)
	return nil
}

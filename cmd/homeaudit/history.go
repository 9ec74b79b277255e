package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history [id]",
	Short: "Show an assessment's usage history",
	Long:  `Displays all usage readings recorded against an assessment, in recorded order.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
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
	readings, err := svc.UsageHistory(args[0])
	if err != nil {
		return err
	}

	if len(readings) == 0 {
		fmt.Println("No usage readings recorded")
		return nil
	}

	fmt.Println("----------------------------------------")
	fmt.Printf("%-20s  %10s\n", "Timestamp", "kWh")
	fmt.Println("----------------------------------------")

	var total float64
	for _, reading := range readings {
		fmt.Printf("%-20s  %10.2f\n", reading.Timestamp.Format("2006-01-02 15:04:05"), reading.Consumption)
		total += reading.Consumption
	}

	fmt.Println("----------------------------------------")
	fmt.Printf("Total: %.2f kWh (%d readings)\n", total, len(readings))
	return nil
}

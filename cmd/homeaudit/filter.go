package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var filterMinRating float64

var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "List assessments meeting an efficiency threshold",
	Long:  `Displays the assessments whose efficiency rating meets or exceeds the given threshold.`,
	RunE:  runFilter,
}

func init() {
	filterCmd.Flags().Float64Var(&filterMinRating, "min-rating", 0, "Minimum efficiency rating, must be > 0 (required)")
	filterCmd.MarkFlagRequired("min-rating")
	rootCmd.AddCommand(filterCmd)
}

func runFilter(cmd *cobra.Command, args []string) error {
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
	assessments, err := svc.HighEfficiency(filterMinRating)
	if err != nil {
		return err
	}

	if len(assessments) == 0 {
		fmt.Printf("No assessments with rating >= %.1f\n", filterMinRating)
		return nil
	}

	printAssessmentTable(assessments)
	fmt.Printf("%d assessments with rating >= %.1f\n", len(assessments), filterMinRating)
	return nil
}

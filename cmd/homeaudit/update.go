package main

import (
	"fmt"

	"github.com/jgoulah/homeaudit/pkg/models"
	"github.com/spf13/cobra"
)

var (
	updateAddress         string
	updateRating          float64
	updateRecommendations string
	updateSavings         float64
)

var updateCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Update an existing assessment",
	Long: `Replaces the caller-supplied fields of an assessment. The id, owner,
creation time, and usage history are preserved.`,
	Args: cobra.ExactArgs(1),
	RunE: runUpdate,
}

func init() {
	updateCmd.Flags().StringVar(&updateAddress, "address", "", "Property address (required)")
	updateCmd.Flags().Float64Var(&updateRating, "rating", 0, "Efficiency rating, must be > 0 (required)")
	updateCmd.Flags().StringVar(&updateRecommendations, "recommendations", "", "Improvement recommendations")
	updateCmd.Flags().Float64Var(&updateSavings, "savings", 0, "Estimated annual cost savings in dollars, must be > 0 (required)")
	rootCmd.AddCommand(updateCmd)
}

func runUpdate(cmd *cobra.Command, args []string) error {
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
	assessment, err := svc.Update(args[0], models.AssessmentPayload{
		Address:          updateAddress,
		EfficiencyRating: updateRating,
		Recommendations:  updateRecommendations,
		CostSavings:      updateSavings,
	})
	if err != nil {
		return err
	}

	fmt.Println("Updated assessment:")
	printAssessment(assessment)
	return nil
}

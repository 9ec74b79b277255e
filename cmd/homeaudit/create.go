package main

import (
	"fmt"

	"github.com/jgoulah/homeaudit/pkg/models"
	"github.com/spf13/cobra"
)

var (
	createAddress         string
	createRating          float64
	createRecommendations string
	createSavings         float64
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new energy assessment",
	Long:  `Creates a new energy assessment record for a property and prints the assigned id.`,
	RunE:  runCreate,
}

func init() {
	createCmd.Flags().StringVar(&createAddress, "address", "", "Property address (required)")
	createCmd.Flags().Float64Var(&createRating, "rating", 0, "Efficiency rating, must be > 0 (required)")
	createCmd.Flags().StringVar(&createRecommendations, "recommendations", "", "Improvement recommendations")
	createCmd.Flags().Float64Var(&createSavings, "savings", 0, "Estimated annual cost savings in dollars, must be > 0 (required)")
	rootCmd.AddCommand(createCmd)
}

func runCreate(cmd *cobra.Command, args []string) error {
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
	assessment, err := svc.Create(models.AssessmentPayload{
		Address:          createAddress,
		EfficiencyRating: createRating,
		Recommendations:  createRecommendations,
		CostSavings:      createSavings,
	})
	if err != nil {
		return err
	}

	fmt.Println("Created assessment:")
	printAssessment(assessment)
	return nil
}

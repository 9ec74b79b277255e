package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored assessments",
	Long:  `Displays all stored energy assessments from the database.`,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
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

	printAssessmentTable(assessments)
	fmt.Printf("%d assessments\n", len(assessments))
	return nil
}

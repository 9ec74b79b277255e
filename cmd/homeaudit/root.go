package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jgoulah/homeaudit/internal/config"
	"github.com/jgoulah/homeaudit/internal/service"
	"github.com/jgoulah/homeaudit/internal/store"
	"github.com/jgoulah/homeaudit/pkg/models"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	dbPath  string
)

var rootCmd = &cobra.Command{
	Use:   "homeaudit",
	Short: "Manage home energy assessment records",
	Long: `HomeAudit is a CLI tool to track energy efficiency assessments for properties.
Each assessment carries an efficiency rating, estimated cost savings, and an
append-only history of usage readings, stored in a local SQLite database.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "database file (default is ./assessments.db)")
}

// getConfigPath returns the config file path
func getConfigPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	return config.DefaultConfigPath()
}

// loadConfig loads the configuration file
func loadConfig() (*config.Config, error) {
	return config.Load(getConfigPath())
}

// getDBPath returns the database file path
func getDBPath(cfg *config.Config) string {
	if dbPath != "" {
		return dbPath
	}
	return cfg.GetDatabase()
}

// openStore opens the SQLite record store
func openStore(cfg *config.Config) (*store.DB, error) {
	path := getDBPath(cfg)

	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	return store.New(path)
}

// newService wires the service layer onto a record store using the
// configured owner identity
func newService(cfg *config.Config, st store.RecordStore) *service.Service {
	return service.New(st, nil, nil, service.StaticIdentity(cfg.GetOwner()))
}

// printAssessment displays one assessment in full
func printAssessment(a models.Assessment) {
	fmt.Printf("ID:              %s\n", a.ID)
	fmt.Printf("Owner:           %s\n", a.Owner)
	fmt.Printf("Address:         %s\n", a.Address)
	fmt.Printf("Assessed:        %s\n", a.AssessmentDate.Format("2006-01-02 15:04:05"))
	fmt.Printf("Rating:          %.1f\n", a.EfficiencyRating)
	fmt.Printf("Savings:         $%.2f/yr\n", a.CostSavings)
	if a.Recommendations != "" {
		fmt.Printf("Recommendations: %s\n", a.Recommendations)
	}
	fmt.Printf("Created:         %s\n", a.CreatedAt.Format("2006-01-02 15:04:05"))
	if a.UpdatedAt != nil {
		fmt.Printf("Updated:         %s\n", a.UpdatedAt.Format("2006-01-02 15:04:05"))
	}
	fmt.Printf("Usage readings:  %d\n", len(a.UsageHistory))
}

// printAssessmentTable displays assessments in a compact table
func printAssessmentTable(assessments []models.Assessment) {
	fmt.Println("--------------------------------------------------------------------------------")
	fmt.Printf("%-36s  %-24s  %6s  %8s\n", "ID", "Address", "Rating", "Savings")
	fmt.Println("--------------------------------------------------------------------------------")
	for _, a := range assessments {
		address := a.Address
		if len(address) > 24 {
			address = address[:21] + "..."
		}
		fmt.Printf("%-36s  %-24s  %6.1f  %8.2f\n", a.ID, address, a.EfficiencyRating, a.CostSavings)
	}
	fmt.Println("--------------------------------------------------------------------------------")
}

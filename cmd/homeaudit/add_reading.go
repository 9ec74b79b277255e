package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var (
	readingTime string
	readingKWh  float64
)

var addReadingCmd = &cobra.Command{
	Use:   "add-reading [id]",
	Short: "Record a usage reading against an assessment",
	Long: `Appends a consumption reading to an assessment's usage history.
Readings are kept in the order they were recorded.`,
	Args: cobra.ExactArgs(1),
	RunE: runAddReading,
}

func init() {
	addReadingCmd.Flags().StringVar(&readingTime, "time", "", "Reading timestamp in RFC3339 format (default: now)")
	addReadingCmd.Flags().Float64Var(&readingKWh, "kwh", 0, "Consumption in kWh (required)")
	addReadingCmd.MarkFlagRequired("kwh")
	rootCmd.AddCommand(addReadingCmd)
}

func runAddReading(cmd *cobra.Command, args []string) error {
	timestamp := time.Now().UTC()
	if readingTime != "" {
		parsed, err := time.Parse(time.RFC3339, readingTime)
		if err != nil {
			return fmt.Errorf("parsing --time: %w", err)
		}
		timestamp = parsed.UTC()
	}

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
	assessment, err := svc.AppendUsage(args[0], timestamp, readingKWh)
	if err != nil {
		return err
	}

	fmt.Printf("Recorded %.2f kWh at %s (%d readings total)\n",
		readingKWh, timestamp.Format("2006-01-02 15:04:05"), len(assessment.UsageHistory))
	return nil
}

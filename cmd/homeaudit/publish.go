package main

import (
	"fmt"
	"time"

	"github.com/jgoulah/homeaudit/internal/publisher"
	"github.com/jgoulah/homeaudit/pkg/models"
	"github.com/spf13/cobra"
)

var publishSince string

var publishCmd = &cobra.Command{
	Use:   "publish [id]",
	Short: "Publish usage readings to MQTT",
	Long: `Reads stored usage readings and publishes them to the configured MQTT broker.
With an id, publishes only that assessment's readings; otherwise publishes all.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPublish,
}

func init() {
	publishCmd.Flags().StringVar(&publishSince, "since", "", "Only publish readings since this date (YYYY-MM-DD or relative like 7d)")
	rootCmd.AddCommand(publishCmd)
}

func runPublish(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if !cfg.MQTT.Enabled {
		return fmt.Errorf("MQTT is not enabled in config")
	}

	var since *time.Time
	if publishSince != "" {
		parsed, err := parseDate(publishSince)
		if err != nil {
			return fmt.Errorf("parsing --since date: %w", err)
		}
		since = &parsed
	}

	st, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer st.Close()

	svc := newService(cfg, st)

	// Determine which assessments to publish
	var assessments []models.Assessment
	if len(args) == 1 {
		assessment, err := svc.Get(args[0])
		if err != nil {
			return err
		}
		assessments = append(assessments, assessment)
	} else {
		assessments, err = svc.List()
		if err != nil {
			return err
		}
	}

	pub, err := publisher.New(cfg.MQTT)
	if err != nil {
		return fmt.Errorf("creating publisher: %w", err)
	}
	defer pub.Close()

	totalPublished := 0
	for _, assessment := range assessments {
		readings := assessment.UsageHistory
		if since != nil {
			filtered := []models.UsageReading{}
			for _, reading := range readings {
				if reading.Timestamp.Before(*since) {
					continue
				}
				filtered = append(filtered, reading)
			}
			readings = filtered
		}

		if len(readings) == 0 {
			continue
		}

		fmt.Printf("Publishing %d readings for %s (%s)...\n", len(readings), assessment.ID, assessment.Address)
		published := 0
		for i, reading := range readings {
			fmt.Printf("[%d/%d] %s (%.2f kWh)... ", i+1, len(readings),
				reading.Timestamp.Format("2006-01-02 15:04"), reading.Consumption)
			if err := pub.PublishReading(assessment, reading); err != nil {
				fmt.Printf("FAILED: %v\n", err)
				continue
			}
			fmt.Printf("✓\n")
			published++
		}

		fmt.Printf("Successfully published %d/%d readings for %s\n", published, len(readings), assessment.ID)
		totalPublished += published
	}

	fmt.Printf("\nTotal readings published: %d\n", totalPublished)
	return nil
}

// parseDate parses a date string in either YYYY-MM-DD format or relative format (e.g., "7d")
func parseDate(dateStr string) (time.Time, error) {
	// Try absolute date format first
	t, err := time.Parse("2006-01-02", dateStr)
	if err == nil {
		return t, nil
	}

	// Try relative format (e.g., "7d" for 7 days ago)
	if len(dateStr) > 1 && dateStr[len(dateStr)-1] == 'd' {
		daysStr := dateStr[:len(dateStr)-1]
		var days int
		if _, err := fmt.Sscanf(daysStr, "%d", &days); err == nil {
			return time.Now().AddDate(0, 0, -days), nil
		}
	}

	return time.Time{}, fmt.Errorf("invalid date format: %s (use YYYY-MM-DD or Nd for N days ago)", dateStr)
}

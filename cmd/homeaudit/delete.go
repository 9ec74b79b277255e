package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete an assessment",
	Long:  `Removes an assessment and its usage history from the database.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
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
	removed, err := svc.Delete(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("Deleted assessment %s (%s)\n", removed.ID, removed.Address)
	return nil
}

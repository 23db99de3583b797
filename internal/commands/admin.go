package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"realestatedb/internal/database"
	"realestatedb/internal/seed"
)

func InitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}
			if err := database.AutoMigrate(rt.db); err != nil {
				return err
			}
			fmt.Println("Schema is up to date.")
			return nil
		},
	}
}

func SeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load a small demo portfolio into an empty database",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}
			if err := database.AutoMigrate(rt.db); err != nil {
				return err
			}
			if err := seed.Run(rt.db); err != nil {
				if errors.Is(err, seed.ErrAlreadySeeded) {
					fmt.Println("Database already has data; nothing to do.")
					return nil
				}
				return err
			}
			fmt.Println("Seeded demo data.")
			return nil
		},
	}
}

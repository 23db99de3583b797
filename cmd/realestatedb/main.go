package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"realestatedb/internal/commands"
)

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "realestatedb",
		Short: "Property management database tool",
	}

	rootCmd.AddCommand(
		commands.InitCmd(),
		commands.SeedCmd(),
		commands.PropertyCmd(),
		commands.OwnerCmd(),
		commands.TenantCmd(),
		commands.EmployeeCmd(),
		commands.LeaseCmd(),
		commands.MaintenanceCmd(),
		commands.PaymentCmd(),
		commands.PropertyOwnerCmd(),
		commands.ReportCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

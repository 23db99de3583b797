package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"realestatedb/internal/models"
	"realestatedb/internal/validate"
)

func LeaseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lease",
		Short: "Manage leases",
	}
	cmd.AddCommand(
		leaseCreateCmd(),
		leaseListCmd(),
		leaseGetCmd(),
		leaseUpdateCmd(),
		leaseDeleteCmd(),
	)
	return cmd
}

func leaseCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Add a new lease",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}

			l := models.Lease{}
			propertyID, _ := cmd.Flags().GetUint("property-id")
			tenantID, _ := cmd.Flags().GetUint("tenant-id")
			l.PropertyID = propertyID
			l.TenantID = tenantID

			startDate, _ := cmd.Flags().GetString("start-date")
			start, err := validate.ParseDate("start_date", startDate)
			if err != nil {
				return err
			}
			l.StartDate = start

			endDate, _ := cmd.Flags().GetString("end-date")
			end, err := validate.ParseDate("end_date", endDate)
			if err != nil {
				return err
			}
			l.EndDate = end

			rent, _ := cmd.Flags().GetString("monthly-rent")
			amount, err := decimal.NewFromString(rent)
			if err != nil {
				return &validate.FieldError{Field: "monthly_rent", Reason: "expected a decimal amount"}
			}
			l.MonthlyRent = amount

			if deposit, _ := cmd.Flags().GetString("security-deposit"); deposit != "" {
				dep, err := decimal.NewFromString(deposit)
				if err != nil {
					return &validate.FieldError{Field: "security_deposit", Reason: "expected a decimal amount"}
				}
				l.SecurityDeposit = decimal.NullDecimal{Decimal: dep, Valid: true}
			}

			status, _ := cmd.Flags().GetString("status")
			l.Status = models.LeaseStatus(status)
			l.DueDay, _ = cmd.Flags().GetInt("due-day")

			if err := rt.store.CreateLease(cmd.Context(), &l); err != nil {
				return err
			}
			fmt.Printf("Created lease %d (status %s)\n", l.ID, l.Status)
			return nil
		},
	}
	cmd.Flags().Uint("property-id", 0, "Property id")
	cmd.Flags().Uint("tenant-id", 0, "Tenant id")
	cmd.Flags().String("start-date", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().String("end-date", "", "End date (YYYY-MM-DD)")
	cmd.Flags().String("monthly-rent", "", "Monthly rent")
	cmd.Flags().String("security-deposit", "", "Security deposit (optional)")
	cmd.Flags().String("status", "Active", "Lease status (Active, Expired, Terminated)")
	cmd.Flags().Int("due-day", 1, "Day of month rent is due (1-31)")
	return cmd
}

func leaseListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List leases",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}
			opts, err := listOptions(cmd)
			if err != nil {
				return err
			}
			rows, err := rt.store.ListLeases(cmd.Context(), opts)
			if err != nil {
				return err
			}
			if len(rows) == 0 {
				fmt.Println("No leases found.")
				return nil
			}
			fmt.Printf("%-5s  %-9s  %-7s  %-12s  %-12s  %-10s  %-11s  %-4s\n",
				"ID", "Property", "Tenant", "Start", "End", "Rent", "Status", "Due")
			for _, l := range rows {
				fmt.Printf("%-5d  %-9d  %-7d  %-12s  %-12s  %-10s  %-11s  %-4d\n",
					l.ID, l.PropertyID, l.TenantID,
					l.StartDate.Format(validate.DateFormat), l.EndDate.Format(validate.DateFormat),
					l.MonthlyRent.StringFixed(2), l.Status, l.DueDay)
			}
			return nil
		},
	}
	addListFlags(cmd)
	return cmd
}

func leaseGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get [id]",
		Short: "Show one lease",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			l, err := rt.store.GetLease(cmd.Context(), id)
			if err != nil {
				return err
			}
			deposit := "none"
			if l.SecurityDeposit.Valid {
				deposit = l.SecurityDeposit.Decimal.StringFixed(2)
			}
			fmt.Printf("ID:               %d\n", l.ID)
			fmt.Printf("Property:         %d\n", l.PropertyID)
			fmt.Printf("Tenant:           %d\n", l.TenantID)
			fmt.Printf("Term:             %s to %s\n",
				l.StartDate.Format(validate.DateFormat), l.EndDate.Format(validate.DateFormat))
			fmt.Printf("Monthly rent:     %s\n", l.MonthlyRent.StringFixed(2))
			fmt.Printf("Security deposit: %s\n", deposit)
			fmt.Printf("Status:           %s\n", l.Status)
			fmt.Printf("Due day:          %d\n", l.DueDay)
			return nil
		},
	}
}

func leaseUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update [id]",
		Short: "Update lease fields; a past end date forces Expired status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			pairs, _ := cmd.Flags().GetStringArray("set")
			fields, err := parsePairs("set", pairs)
			if err != nil {
				return err
			}
			if len(fields) == 0 {
				return fmt.Errorf("nothing to update; pass at least one --set field=value")
			}
			l, err := rt.store.UpdateLease(cmd.Context(), id, fields)
			if err != nil {
				return err
			}
			fmt.Printf("Updated lease %d (status %s)\n", id, l.Status)
			return nil
		},
	}
	cmd.Flags().StringArray("set", nil, "Field to change as field=value (repeatable)")
	return cmd
}

func leaseDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a lease and its payments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if yes, _ := cmd.Flags().GetBool("yes"); !yes {
				if !confirm(cmd, fmt.Sprintf("Delete lease %d and its payment history?", id)) {
					fmt.Println("Deletion canceled.")
					return nil
				}
			}
			if err := rt.store.DeleteLease(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Printf("Deleted lease %d\n", id)
			return nil
		},
	}
	cmd.Flags().Bool("yes", false, "Skip the confirmation prompt")
	return cmd
}

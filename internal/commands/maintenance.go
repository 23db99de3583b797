package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"realestatedb/internal/models"
	"realestatedb/internal/validate"
)

func MaintenanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "maintenance",
		Short: "Manage maintenance requests",
	}
	cmd.AddCommand(
		maintenanceCreateCmd(),
		maintenanceListCmd(),
		maintenanceGetCmd(),
		maintenanceUpdateCmd(),
		maintenanceDeleteCmd(),
	)
	return cmd
}

func maintenanceCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "File a new maintenance request",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}

			r := models.MaintenanceRequest{}
			r.PropertyID, _ = cmd.Flags().GetUint("property-id")
			r.Description, _ = cmd.Flags().GetString("description")
			if tenantID, _ := cmd.Flags().GetUint("tenant-id"); tenantID != 0 {
				r.TenantID = &tenantID
			}
			if employeeID, _ := cmd.Flags().GetUint("employee-id"); employeeID != 0 {
				r.EmployeeID = &employeeID
			}
			if requestDate, _ := cmd.Flags().GetString("request-date"); requestDate != "" {
				ts, err := validate.ParseDate("request_date", requestDate)
				if err != nil {
					return err
				}
				r.RequestDate = ts
			}
			if completionDate, _ := cmd.Flags().GetString("completion-date"); completionDate != "" {
				ts, err := validate.ParseDate("completion_date", completionDate)
				if err != nil {
					return err
				}
				r.CompletionDate = &ts
			}
			status, _ := cmd.Flags().GetString("status")
			r.Status = models.RequestStatus(status)
			if cost, _ := cmd.Flags().GetString("cost"); cost != "" {
				amount, err := decimal.NewFromString(cost)
				if err != nil {
					return &validate.FieldError{Field: "cost", Reason: "expected a decimal amount"}
				}
				r.Cost = decimal.NullDecimal{Decimal: amount, Valid: true}
			}

			if err := rt.store.CreateMaintenanceRequest(cmd.Context(), &r); err != nil {
				return err
			}
			fmt.Printf("Created maintenance request %d\n", r.ID)
			return nil
		},
	}
	cmd.Flags().Uint("property-id", 0, "Property id")
	cmd.Flags().Uint("tenant-id", 0, "Reporting tenant id (optional)")
	cmd.Flags().Uint("employee-id", 0, "Assigned employee id (optional)")
	cmd.Flags().String("description", "", "What needs fixing")
	cmd.Flags().String("request-date", "", "Request date (YYYY-MM-DD, defaults to today)")
	cmd.Flags().String("completion-date", "", "Completion date (YYYY-MM-DD, optional)")
	cmd.Flags().String("status", "Open", "Status (Open, In Progress, Completed)")
	cmd.Flags().String("cost", "", "Cost (optional)")
	return cmd
}

func maintenanceListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List maintenance requests",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}
			opts, err := listOptions(cmd)
			if err != nil {
				return err
			}
			rows, err := rt.store.ListMaintenanceRequests(cmd.Context(), opts)
			if err != nil {
				return err
			}
			if len(rows) == 0 {
				fmt.Println("No maintenance requests found.")
				return nil
			}
			fmt.Printf("%-5s  %-9s  %-12s  %-12s  %-10s  %-40s\n",
				"ID", "Property", "Requested", "Status", "Cost", "Description")
			for _, r := range rows {
				cost := "-"
				if r.Cost.Valid {
					cost = r.Cost.Decimal.StringFixed(2)
				}
				fmt.Printf("%-5d  %-9d  %-12s  %-12s  %-10s  %-40s\n",
					r.ID, r.PropertyID, r.RequestDate.Format(validate.DateFormat), r.Status, cost, r.Description)
			}
			return nil
		},
	}
	addListFlags(cmd)
	return cmd
}

func maintenanceGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get [id]",
		Short: "Show one maintenance request",
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
			r, err := rt.store.GetMaintenanceRequest(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Printf("ID:          %d\n", r.ID)
			fmt.Printf("Property:    %d\n", r.PropertyID)
			fmt.Printf("Tenant:      %s\n", optionalID(r.TenantID))
			fmt.Printf("Employee:    %s\n", optionalID(r.EmployeeID))
			fmt.Printf("Description: %s\n", r.Description)
			fmt.Printf("Requested:   %s\n", r.RequestDate.Format(validate.DateFormat))
			if r.CompletionDate != nil {
				fmt.Printf("Completed:   %s\n", r.CompletionDate.Format(validate.DateFormat))
			} else {
				fmt.Printf("Completed:   pending\n")
			}
			fmt.Printf("Status:      %s\n", r.Status)
			if r.Cost.Valid {
				fmt.Printf("Cost:        %s\n", r.Cost.Decimal.StringFixed(2))
			}
			return nil
		},
	}
}

func maintenanceUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update [id]",
		Short: "Update maintenance request fields",
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
			if _, err := rt.store.UpdateMaintenanceRequest(cmd.Context(), id, fields); err != nil {
				return err
			}
			fmt.Printf("Updated maintenance request %d\n", id)
			return nil
		},
	}
	cmd.Flags().StringArray("set", nil, "Field to change as field=value (repeatable)")
	return cmd
}

func maintenanceDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a maintenance request",
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
				if !confirm(cmd, fmt.Sprintf("Delete maintenance request %d?", id)) {
					fmt.Println("Deletion canceled.")
					return nil
				}
			}
			if err := rt.store.DeleteMaintenanceRequest(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Printf("Deleted maintenance request %d\n", id)
			return nil
		},
	}
	cmd.Flags().Bool("yes", false, "Skip the confirmation prompt")
	return cmd
}

func optionalID(id *uint) string {
	if id == nil {
		return "none"
	}
	return fmt.Sprintf("%d", *id)
}

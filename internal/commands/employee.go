package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"realestatedb/internal/models"
	"realestatedb/internal/validate"
)

func EmployeeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "employee",
		Short: "Manage employees",
	}
	cmd.AddCommand(
		employeeCreateCmd(),
		employeeListCmd(),
		employeeGetCmd(),
		employeeUpdateCmd(),
		employeeDeleteCmd(),
	)
	return cmd
}

func employeeCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Add a new employee",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}
			e := models.Employee{}
			e.FirstName, _ = cmd.Flags().GetString("first-name")
			e.LastName, _ = cmd.Flags().GetString("last-name")
			e.Email, _ = cmd.Flags().GetString("email")
			e.Phone, _ = cmd.Flags().GetString("phone")
			role, _ := cmd.Flags().GetString("role")
			e.Role = models.EmployeeRole(role)
			if hireDate, _ := cmd.Flags().GetString("hire-date"); hireDate != "" {
				ts, err := validate.ParseDate("hire_date", hireDate)
				if err != nil {
					return err
				}
				e.HireDate = ts
			}
			if err := rt.store.CreateEmployee(cmd.Context(), &e); err != nil {
				return err
			}
			fmt.Printf("Created employee %d\n", e.ID)
			return nil
		},
	}
	cmd.Flags().String("first-name", "", "First name")
	cmd.Flags().String("last-name", "", "Last name")
	cmd.Flags().String("email", "", "Email address (unique)")
	cmd.Flags().String("phone", "", "Phone number")
	cmd.Flags().String("role", "", "Role (Property Manager, Maintenance Staff, Accountant, Leasing Agent)")
	cmd.Flags().String("hire-date", "", "Hire date (YYYY-MM-DD)")
	return cmd
}

func employeeListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List employees",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}
			opts, err := listOptions(cmd)
			if err != nil {
				return err
			}
			rows, err := rt.store.ListEmployees(cmd.Context(), opts)
			if err != nil {
				return err
			}
			if len(rows) == 0 {
				fmt.Println("No employees found.")
				return nil
			}
			fmt.Printf("%-5s  %-25s  %-30s  %-18s  %-12s\n", "ID", "Name", "Email", "Role", "Hired")
			for _, e := range rows {
				fmt.Printf("%-5d  %-25s  %-30s  %-18s  %-12s\n",
					e.ID, e.FirstName+" "+e.LastName, e.Email, e.Role, e.HireDate.Format(validate.DateFormat))
			}
			return nil
		},
	}
	addListFlags(cmd)
	return cmd
}

func employeeGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get [id]",
		Short: "Show one employee",
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
			e, err := rt.store.GetEmployee(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Printf("ID:        %d\n", e.ID)
			fmt.Printf("Name:      %s %s\n", e.FirstName, e.LastName)
			fmt.Printf("Email:     %s\n", e.Email)
			fmt.Printf("Phone:     %s\n", e.Phone)
			fmt.Printf("Role:      %s\n", e.Role)
			fmt.Printf("Hire date: %s\n", e.HireDate.Format(validate.DateFormat))
			return nil
		},
	}
}

func employeeUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update [id]",
		Short: "Update employee fields",
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
			if _, err := rt.store.UpdateEmployee(cmd.Context(), id, fields); err != nil {
				return err
			}
			fmt.Printf("Updated employee %d\n", id)
			return nil
		},
	}
	cmd.Flags().StringArray("set", nil, "Field to change as field=value (repeatable)")
	return cmd
}

func employeeDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete an employee; assignments and received payments are unlinked",
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
				if !confirm(cmd, fmt.Sprintf("Delete employee %d?", id)) {
					fmt.Println("Deletion canceled.")
					return nil
				}
			}
			if err := rt.store.DeleteEmployee(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Printf("Deleted employee %d\n", id)
			return nil
		},
	}
	cmd.Flags().Bool("yes", false, "Skip the confirmation prompt")
	return cmd
}

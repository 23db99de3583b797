package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"realestatedb/internal/models"
)

func TenantCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tenant",
		Short: "Manage tenants",
	}
	cmd.AddCommand(
		tenantCreateCmd(),
		tenantListCmd(),
		tenantGetCmd(),
		tenantUpdateCmd(),
		tenantDeleteCmd(),
	)
	return cmd
}

func tenantCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Add a new tenant",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}
			t := models.Tenant{}
			t.FirstName, _ = cmd.Flags().GetString("first-name")
			t.LastName, _ = cmd.Flags().GetString("last-name")
			t.Email, _ = cmd.Flags().GetString("email")
			t.Phone, _ = cmd.Flags().GetString("phone")
			t.Employer, _ = cmd.Flags().GetString("employer")
			t.EmergencyContact, _ = cmd.Flags().GetString("emergency-contact")
			if err := rt.store.CreateTenant(cmd.Context(), &t); err != nil {
				return err
			}
			fmt.Printf("Created tenant %d\n", t.ID)
			return nil
		},
	}
	cmd.Flags().String("first-name", "", "First name")
	cmd.Flags().String("last-name", "", "Last name")
	cmd.Flags().String("email", "", "Email address (unique)")
	cmd.Flags().String("phone", "", "Phone number")
	cmd.Flags().String("employer", "", "Employer")
	cmd.Flags().String("emergency-contact", "", "Emergency contact number")
	return cmd
}

func tenantListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tenants",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}
			opts, err := listOptions(cmd)
			if err != nil {
				return err
			}
			rows, err := rt.store.ListTenants(cmd.Context(), opts)
			if err != nil {
				return err
			}
			if len(rows) == 0 {
				fmt.Println("No tenants found.")
				return nil
			}
			fmt.Printf("%-5s  %-25s  %-30s  %-15s  %-20s\n", "ID", "Name", "Email", "Phone", "Employer")
			for _, t := range rows {
				fmt.Printf("%-5d  %-25s  %-30s  %-15s  %-20s\n",
					t.ID, t.FirstName+" "+t.LastName, t.Email, t.Phone, t.Employer)
			}
			return nil
		},
	}
	addListFlags(cmd)
	return cmd
}

func tenantGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get [id]",
		Short: "Show one tenant",
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
			t, err := rt.store.GetTenant(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Printf("ID:                %d\n", t.ID)
			fmt.Printf("Name:              %s %s\n", t.FirstName, t.LastName)
			fmt.Printf("Email:             %s\n", t.Email)
			fmt.Printf("Phone:             %s\n", t.Phone)
			fmt.Printf("Employer:          %s\n", t.Employer)
			fmt.Printf("Emergency contact: %s\n", t.EmergencyContact)
			return nil
		},
	}
}

func tenantUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update [id]",
		Short: "Update tenant fields",
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
			if _, err := rt.store.UpdateTenant(cmd.Context(), id, fields); err != nil {
				return err
			}
			fmt.Printf("Updated tenant %d\n", id)
			return nil
		},
	}
	cmd.Flags().StringArray("set", nil, "Field to change as field=value (repeatable)")
	return cmd
}

func tenantDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a tenant; leases go with it, maintenance requests are unlinked",
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
				if !confirm(cmd, fmt.Sprintf("Delete tenant %d and all of their leases?", id)) {
					fmt.Println("Deletion canceled.")
					return nil
				}
			}
			if err := rt.store.DeleteTenant(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Printf("Deleted tenant %d\n", id)
			return nil
		},
	}
	cmd.Flags().Bool("yes", false, "Skip the confirmation prompt")
	return cmd
}

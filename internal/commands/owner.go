package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"realestatedb/internal/models"
)

func OwnerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "owner",
		Short: "Manage owners",
	}
	cmd.AddCommand(
		ownerCreateCmd(),
		ownerListCmd(),
		ownerGetCmd(),
		ownerUpdateCmd(),
		ownerDeleteCmd(),
	)
	return cmd
}

func ownerCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Add a new owner",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}
			o := models.Owner{}
			o.FirstName, _ = cmd.Flags().GetString("first-name")
			o.LastName, _ = cmd.Flags().GetString("last-name")
			o.Email, _ = cmd.Flags().GetString("email")
			o.Phone, _ = cmd.Flags().GetString("phone")
			o.MailingAddress, _ = cmd.Flags().GetString("mailing-address")
			if err := rt.store.CreateOwner(cmd.Context(), &o); err != nil {
				return err
			}
			fmt.Printf("Created owner %d\n", o.ID)
			return nil
		},
	}
	cmd.Flags().String("first-name", "", "First name")
	cmd.Flags().String("last-name", "", "Last name")
	cmd.Flags().String("email", "", "Email address (unique)")
	cmd.Flags().String("phone", "", "Phone number")
	cmd.Flags().String("mailing-address", "", "Mailing address")
	return cmd
}

func ownerListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List owners a page at a time",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}
			opts, err := listOptions(cmd)
			if err != nil {
				return err
			}
			rows, err := rt.store.ListOwners(cmd.Context(), opts)
			if err != nil {
				return err
			}
			if len(rows) == 0 {
				fmt.Println("No owners found.")
				return nil
			}
			fmt.Printf("%-5s  %-25s  %-30s  %-15s\n", "ID", "Name", "Email", "Phone")
			for _, o := range rows {
				fmt.Printf("%-5d  %-25s  %-30s  %-15s\n", o.ID, o.FirstName+" "+o.LastName, o.Email, o.Phone)
			}
			return nil
		},
	}
	addListFlags(cmd)
	return cmd
}

func ownerGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get [id]",
		Short: "Show one owner",
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
			o, err := rt.store.GetOwner(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Printf("ID:              %d\n", o.ID)
			fmt.Printf("Name:            %s %s\n", o.FirstName, o.LastName)
			fmt.Printf("Email:           %s\n", o.Email)
			fmt.Printf("Phone:           %s\n", o.Phone)
			fmt.Printf("Mailing address: %s\n", o.MailingAddress)
			return nil
		},
	}
}

func ownerUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update [id]",
		Short: "Update owner fields",
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
			if _, err := rt.store.UpdateOwner(cmd.Context(), id, fields); err != nil {
				return err
			}
			fmt.Printf("Updated owner %d\n", id)
			return nil
		},
	}
	cmd.Flags().StringArray("set", nil, "Field to change as field=value (repeatable)")
	return cmd
}

func ownerDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete an owner with no remaining property stakes",
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
				if !confirm(cmd, fmt.Sprintf("Delete owner %d?", id)) {
					fmt.Println("Deletion canceled.")
					return nil
				}
			}
			if err := rt.store.DeleteOwner(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Printf("Deleted owner %d\n", id)
			return nil
		},
	}
	cmd.Flags().Bool("yes", false, "Skip the confirmation prompt")
	return cmd
}

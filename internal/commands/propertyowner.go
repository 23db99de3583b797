package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"realestatedb/internal/models"
	"realestatedb/internal/validate"
)

func PropertyOwnerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ownership",
		Short: "Manage property ownership stakes",
	}
	cmd.AddCommand(
		ownershipCreateCmd(),
		ownershipListCmd(),
		ownershipUpdateCmd(),
		ownershipDeleteCmd(),
	)
	return cmd
}

func ownershipCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Link an owner to a property with a percentage stake",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}
			po := models.PropertyOwner{}
			po.PropertyID, _ = cmd.Flags().GetUint("property-id")
			po.OwnerID, _ = cmd.Flags().GetUint("owner-id")
			raw, _ := cmd.Flags().GetString("percentage")
			pct, err := decimal.NewFromString(raw)
			if err != nil {
				return &validate.FieldError{Field: "ownership_percentage", Reason: "expected a decimal percentage"}
			}
			po.OwnershipPercentage = pct
			if err := rt.store.CreatePropertyOwner(cmd.Context(), &po); err != nil {
				return err
			}
			fmt.Printf("Linked owner %d to property %d at %s%%\n",
				po.OwnerID, po.PropertyID, po.OwnershipPercentage.StringFixed(2))
			return nil
		},
	}
	cmd.Flags().Uint("property-id", 0, "Property id")
	cmd.Flags().Uint("owner-id", 0, "Owner id")
	cmd.Flags().String("percentage", "", "Ownership percentage (0-100)")
	return cmd
}

func ownershipListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List ownership stakes",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}
			opts, err := listOptions(cmd)
			if err != nil {
				return err
			}
			rows, err := rt.store.ListPropertyOwners(cmd.Context(), opts)
			if err != nil {
				return err
			}
			if len(rows) == 0 {
				fmt.Println("No ownership stakes found.")
				return nil
			}
			fmt.Printf("%-9s  %-7s  %-10s\n", "Property", "Owner", "Stake")
			for _, po := range rows {
				fmt.Printf("%-9d  %-7d  %9s%%\n",
					po.PropertyID, po.OwnerID, po.OwnershipPercentage.StringFixed(2))
			}
			return nil
		},
	}
	addListFlags(cmd)
	return cmd
}

func ownershipUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Change the percentage for one property-owner pair",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}
			propertyID, _ := cmd.Flags().GetUint("property-id")
			ownerID, _ := cmd.Flags().GetUint("owner-id")
			raw, _ := cmd.Flags().GetString("percentage")
			pct, err := decimal.NewFromString(raw)
			if err != nil {
				return &validate.FieldError{Field: "ownership_percentage", Reason: "expected a decimal percentage"}
			}
			po, err := rt.store.UpdateOwnershipPercentage(cmd.Context(), propertyID, ownerID, pct)
			if err != nil {
				return err
			}
			fmt.Printf("Owner %d now holds %s%% of property %d\n",
				po.OwnerID, po.OwnershipPercentage.StringFixed(2), po.PropertyID)
			return nil
		},
	}
	cmd.Flags().Uint("property-id", 0, "Property id")
	cmd.Flags().Uint("owner-id", 0, "Owner id")
	cmd.Flags().String("percentage", "", "New ownership percentage (0-100)")
	return cmd
}

func ownershipDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Remove an ownership stake",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}
			propertyID, _ := cmd.Flags().GetUint("property-id")
			ownerID, _ := cmd.Flags().GetUint("owner-id")
			if yes, _ := cmd.Flags().GetBool("yes"); !yes {
				if !confirm(cmd, fmt.Sprintf("Remove owner %d's stake in property %d?", ownerID, propertyID)) {
					fmt.Println("Deletion canceled.")
					return nil
				}
			}
			if err := rt.store.DeletePropertyOwner(cmd.Context(), propertyID, ownerID); err != nil {
				return err
			}
			fmt.Printf("Removed owner %d's stake in property %d\n", ownerID, propertyID)
			return nil
		},
	}
	cmd.Flags().Uint("property-id", 0, "Property id")
	cmd.Flags().Uint("owner-id", 0, "Owner id")
	cmd.Flags().Bool("yes", false, "Skip the confirmation prompt")
	return cmd
}

package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"realestatedb/internal/models"
	"realestatedb/internal/validate"
)

func PropertyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "property",
		Short: "Manage properties",
	}
	cmd.AddCommand(
		propertyCreateCmd(),
		propertyListCmd(),
		propertyGetCmd(),
		propertyUpdateCmd(),
		propertyDeleteCmd(),
	)
	return cmd
}

func propertyCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Add a new property",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}

			p := models.Property{}
			p.Address, _ = cmd.Flags().GetString("address")
			p.City, _ = cmd.Flags().GetString("city")
			p.State, _ = cmd.Flags().GetString("state")
			p.ZipCode, _ = cmd.Flags().GetString("zip")
			propertyType, _ := cmd.Flags().GetString("type")
			p.PropertyType = models.PropertyType(propertyType)
			p.SquareFeet, _ = cmd.Flags().GetInt("square-feet")
			p.YearBuilt, _ = cmd.Flags().GetInt("year-built")

			if purchaseDate, _ := cmd.Flags().GetString("purchase-date"); purchaseDate != "" {
				ts, err := validate.ParseDate("purchase_date", purchaseDate)
				if err != nil {
					return err
				}
				p.PurchaseDate = ts
			}
			if price, _ := cmd.Flags().GetString("purchase-price"); price != "" {
				amount, err := decimal.NewFromString(price)
				if err != nil {
					return &validate.FieldError{Field: "purchase_price", Reason: "expected a decimal amount"}
				}
				p.PurchasePrice = amount
			}

			if err := rt.store.CreateProperty(cmd.Context(), &p); err != nil {
				return err
			}
			fmt.Printf("Created property %d\n", p.ID)
			return nil
		},
	}
	cmd.Flags().String("address", "", "Street address")
	cmd.Flags().String("city", "", "City")
	cmd.Flags().String("state", "", "Two-letter state code")
	cmd.Flags().String("zip", "", "ZIP code")
	cmd.Flags().String("type", "", "Property type (Single Family, Apartment, Commercial, Condo)")
	cmd.Flags().Int("square-feet", 0, "Interior square footage")
	cmd.Flags().Int("year-built", 0, "Construction year")
	cmd.Flags().String("purchase-date", "", "Purchase date (YYYY-MM-DD)")
	cmd.Flags().String("purchase-price", "", "Purchase price")
	return cmd
}

func propertyListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List properties",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}
			opts, err := listOptions(cmd)
			if err != nil {
				return err
			}
			rows, err := rt.store.ListProperties(cmd.Context(), opts)
			if err != nil {
				return err
			}
			if len(rows) == 0 {
				fmt.Println("No properties found.")
				return nil
			}
			fmt.Printf("%-5s  %-30s  %-15s  %-5s  %-10s  %-14s  %-12s\n",
				"ID", "Address", "City", "St", "ZIP", "Type", "Price")
			for _, p := range rows {
				fmt.Printf("%-5d  %-30s  %-15s  %-5s  %-10s  %-14s  %-12s\n",
					p.ID, p.Address, p.City, p.State, p.ZipCode, p.PropertyType, p.PurchasePrice.StringFixed(2))
			}
			return nil
		},
	}
	addListFlags(cmd)
	return cmd
}

func propertyGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get [id]",
		Short: "Show one property",
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
			p, err := rt.store.GetProperty(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Printf("ID:             %d\n", p.ID)
			fmt.Printf("Address:        %s, %s, %s %s\n", p.Address, p.City, p.State, p.ZipCode)
			fmt.Printf("Type:           %s\n", p.PropertyType)
			fmt.Printf("Square feet:    %d\n", p.SquareFeet)
			fmt.Printf("Year built:     %d\n", p.YearBuilt)
			fmt.Printf("Purchase date:  %s\n", p.PurchaseDate.Format(validate.DateFormat))
			fmt.Printf("Purchase price: %s\n", p.PurchasePrice.StringFixed(2))
			return nil
		},
	}
}

func propertyUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update [id]",
		Short: "Update property fields",
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
			if _, err := rt.store.UpdateProperty(cmd.Context(), id, fields); err != nil {
				return err
			}
			fmt.Printf("Updated property %d\n", id)
			return nil
		},
	}
	cmd.Flags().StringArray("set", nil, "Field to change as field=value (repeatable)")
	return cmd
}

func propertyDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a property and its dependent records",
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
				if !confirm(cmd, fmt.Sprintf("Delete property %d and all of its leases, maintenance requests and ownership records?", id)) {
					fmt.Println("Deletion canceled.")
					return nil
				}
			}
			if err := rt.store.DeleteProperty(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Printf("Deleted property %d\n", id)
			return nil
		},
	}
	cmd.Flags().Bool("yes", false, "Skip the confirmation prompt")
	return cmd
}

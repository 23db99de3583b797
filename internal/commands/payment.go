package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"realestatedb/internal/models"
	"realestatedb/internal/validate"
)

func PaymentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "payment",
		Short: "Manage payments and the late-fee audit log",
	}
	cmd.AddCommand(
		paymentCreateCmd(),
		paymentListCmd(),
		paymentGetCmd(),
		paymentUpdateCmd(),
		paymentDeleteCmd(),
		paymentAuditsCmd(),
	)
	return cmd
}

func paymentCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Record a payment; late payments get an audit row automatically",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}

			p := models.Payment{}
			p.LeaseID, _ = cmd.Flags().GetUint("lease-id")
			if tenantID, _ := cmd.Flags().GetUint("tenant-id"); tenantID != 0 {
				p.TenantID = &tenantID
			}
			if receivedBy, _ := cmd.Flags().GetUint("received-by"); receivedBy != 0 {
				p.ReceivedBy = &receivedBy
			}

			raw, _ := cmd.Flags().GetString("amount")
			amount, err := decimal.NewFromString(raw)
			if err != nil {
				return &validate.FieldError{Field: "amount", Reason: "expected a decimal amount"}
			}
			p.Amount = amount

			if paymentDate, _ := cmd.Flags().GetString("payment-date"); paymentDate != "" {
				ts, err := validate.ParseDate("payment_date", paymentDate)
				if err != nil {
					return err
				}
				p.PaymentDate = ts
			}
			method, _ := cmd.Flags().GetString("method")
			p.Method = models.PaymentMethod(method)

			if err := rt.store.CreatePayment(cmd.Context(), &p); err != nil {
				return err
			}
			fmt.Printf("Created payment %d\n", p.ID)
			return nil
		},
	}
	cmd.Flags().Uint("lease-id", 0, "Lease id")
	cmd.Flags().Uint("tenant-id", 0, "Paying tenant id (optional)")
	cmd.Flags().Uint("received-by", 0, "Receiving employee id (optional)")
	cmd.Flags().String("amount", "", "Amount paid")
	cmd.Flags().String("payment-date", "", "Payment date (YYYY-MM-DD, defaults to today)")
	cmd.Flags().String("method", "", "Method (Credit Card, Check, Bank Transfer, Cash)")
	return cmd
}

func paymentListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List payments",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}
			opts, err := listOptions(cmd)
			if err != nil {
				return err
			}
			rows, err := rt.store.ListPayments(cmd.Context(), opts)
			if err != nil {
				return err
			}
			if len(rows) == 0 {
				fmt.Println("No payments found.")
				return nil
			}
			fmt.Printf("%-5s  %-6s  %-7s  %-10s  %-12s  %-14s\n",
				"ID", "Lease", "Tenant", "Amount", "Paid", "Method")
			for _, p := range rows {
				fmt.Printf("%-5d  %-6d  %-7s  %-10s  %-12s  %-14s\n",
					p.ID, p.LeaseID, optionalID(p.TenantID),
					p.Amount.StringFixed(2), p.PaymentDate.Format(validate.DateFormat), p.Method)
			}
			return nil
		},
	}
	addListFlags(cmd)
	return cmd
}

func paymentGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get [id]",
		Short: "Show one payment",
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
			p, err := rt.store.GetPayment(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Printf("ID:          %d\n", p.ID)
			fmt.Printf("Lease:       %d\n", p.LeaseID)
			fmt.Printf("Tenant:      %s\n", optionalID(p.TenantID))
			fmt.Printf("Amount:      %s\n", p.Amount.StringFixed(2))
			fmt.Printf("Paid:        %s\n", p.PaymentDate.Format(validate.DateFormat))
			fmt.Printf("Method:      %s\n", p.Method)
			fmt.Printf("Received by: %s\n", optionalID(p.ReceivedBy))
			return nil
		},
	}
}

func paymentUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update [id]",
		Short: "Update payment fields",
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
			if _, err := rt.store.UpdatePayment(cmd.Context(), id, fields); err != nil {
				return err
			}
			fmt.Printf("Updated payment %d\n", id)
			return nil
		},
	}
	cmd.Flags().StringArray("set", nil, "Field to change as field=value (repeatable)")
	return cmd
}

func paymentDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a payment; audit rows are kept",
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
				if !confirm(cmd, fmt.Sprintf("Delete payment %d?", id)) {
					fmt.Println("Deletion canceled.")
					return nil
				}
			}
			if err := rt.store.DeletePayment(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Printf("Deleted payment %d\n", id)
			return nil
		},
	}
	cmd.Flags().Bool("yes", false, "Skip the confirmation prompt")
	return cmd
}

func paymentAuditsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audits",
		Short: "List late-fee audit entries, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}
			opts, err := listOptions(cmd)
			if err != nil {
				return err
			}
			rows, err := rt.store.ListPaymentAudits(cmd.Context(), opts)
			if err != nil {
				return err
			}
			if len(rows) == 0 {
				fmt.Println("No audit entries found.")
				return nil
			}
			fmt.Printf("%-5s  %-8s  %-10s  %-20s\n", "ID", "Payment", "Late fee", "Recorded")
			for _, a := range rows {
				fmt.Printf("%-5d  %-8d  %-10s  %-20s\n",
					a.ID, a.PaymentID, a.LateFee.StringFixed(2), a.AuditTimestamp.Format("2006-01-02 15:04:05"))
			}
			return nil
		},
	}
	addListFlags(cmd)
	return cmd
}

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"realestatedb/internal/validate"
)

func ReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Run derived reports",
	}
	cmd.AddCommand(
		reportActiveLeasesCmd(),
		reportOpenMaintenanceCmd(),
		reportFinancialSummaryCmd(),
		reportExpectedVsReceivedCmd(),
		reportOwnerPayoutsCmd(),
		reportPayoutRankingCmd(),
		reportOldestOpenRequestsCmd(),
		reportOccupancyCmd(),
		reportRollingMaintenanceCmd(),
		reportRenewalRatesCmd(),
		reportRentYieldCmd(),
		reportRentQuartilesCmd(),
		reportRunningTotalsCmd(),
		reportYoYRentGrowthCmd(),
		reportLeaseOverlapCmd(),
	)
	return cmd
}

func reportActiveLeasesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "active-leases",
		Short: "Active leases with tenant and property details",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}
			rows, err := rt.reports.ActiveLeases(cmd.Context())
			if err != nil {
				return err
			}
			if len(rows) == 0 {
				fmt.Println("No active leases.")
				return nil
			}
			fmt.Printf("%-5s  %-30s  %-25s  %-12s  %-12s  %-10s  %-4s\n",
				"ID", "Address", "Tenant", "Start", "End", "Rent", "Due")
			for _, row := range rows {
				fmt.Printf("%-5d  %-30s  %-25s  %-12s  %-12s  %-10s  %-4d\n",
					row.LeaseID, row.Address, row.TenantFirstName+" "+row.TenantLastName,
					row.StartDate.Format(validate.DateFormat), row.EndDate.Format(validate.DateFormat),
					row.MonthlyRent.StringFixed(2), row.DueDay)
			}
			return nil
		},
	}
}

func reportOpenMaintenanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "open-maintenance",
		Short: "Unfinished maintenance requests with assignees",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}
			rows, err := rt.reports.OpenMaintenance(cmd.Context())
			if err != nil {
				return err
			}
			if len(rows) == 0 {
				fmt.Println("No open maintenance requests.")
				return nil
			}
			fmt.Printf("%-5s  %-30s  %-12s  %-12s  %-20s  %-40s\n",
				"ID", "Address", "Requested", "Status", "Assignee", "Description")
			for _, row := range rows {
				fmt.Printf("%-5d  %-30s  %-12s  %-12s  %-20s  %-40s\n",
					row.RequestID, row.Address, row.RequestDate.Format(validate.DateFormat),
					row.Status, row.AssigneeName(), row.Description)
			}
			return nil
		},
	}
}

func reportFinancialSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "financial-summary",
		Short: "Rent collected vs maintenance spend per property",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}
			rows, err := rt.reports.FinancialSummary(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Printf("%-5s  %-30s  %-15s  %-12s  %-12s  %-12s\n",
				"ID", "Address", "City", "Collected", "Maintenance", "Net")
			for _, row := range rows {
				fmt.Printf("%-5d  %-30s  %-15s  %12s  %12s  %12s\n",
					row.PropertyID, row.Address, row.City,
					row.RentCollected.StringFixed(2), row.MaintenanceCost.StringFixed(2), row.Net.StringFixed(2))
			}
			return nil
		},
	}
}

func reportExpectedVsReceivedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "expected-vs-received",
		Short: "Expected rent vs payments received per property",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}
			rows, err := rt.reports.ExpectedVsReceived(cmd.Context())
			if err != nil {
				return err
			}
			if len(rows) == 0 {
				fmt.Println("No active leases to project from.")
				return nil
			}
			fmt.Printf("%-5s  %-30s  %-12s  %-12s  %-12s\n",
				"ID", "Address", "Expected", "Received", "Shortfall")
			for _, row := range rows {
				fmt.Printf("%-5d  %-30s  %12s  %12s  %12s\n",
					row.PropertyID, row.Address,
					row.Expected.StringFixed(2), row.Received.StringFixed(2), row.Shortfall.StringFixed(2))
			}
			return nil
		},
	}
}

func reportOwnerPayoutsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "owner-payouts [property-id]",
		Short: "Monthly payout per co-owner of one property",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}
			propertyID, err := parseID(args[0])
			if err != nil {
				return err
			}
			rows, err := rt.reports.OwnerPayouts(cmd.Context(), propertyID)
			if err != nil {
				return err
			}
			if len(rows) == 0 {
				fmt.Println("No ownership stakes for this property.")
				return nil
			}
			fmt.Printf("%-5s  %-25s  %-8s  %-12s\n", "ID", "Owner", "Stake", "Payout")
			for _, row := range rows {
				fmt.Printf("%-5d  %-25s  %7s%%  %12s\n",
					row.OwnerID, row.FirstName+" "+row.LastName,
					row.OwnershipPercentage.StringFixed(2), row.Payout.StringFixed(2))
			}
			return nil
		},
	}
}

func reportPayoutRankingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "payout-ranking",
		Short: "Owners ranked by total payout across all properties",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}
			rows, err := rt.reports.PayoutRanking(cmd.Context())
			if err != nil {
				return err
			}
			if len(rows) == 0 {
				fmt.Println("No ownership stakes recorded.")
				return nil
			}
			fmt.Printf("%-5s  %-5s  %-25s  %-12s  %-8s\n", "Rank", "ID", "Owner", "Payout", "Share")
			for _, row := range rows {
				fmt.Printf("%-5d  %-5d  %-25s  %12s  %7s%%\n",
					row.PayoutRank, row.OwnerID, row.FirstName+" "+row.LastName,
					row.Payout.StringFixed(2), row.ContributionPct.StringFixed(2))
			}
			return nil
		},
	}
}

func reportOldestOpenRequestsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "oldest-open-requests",
		Short: "Longest-waiting open request per property",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}
			rows, err := rt.reports.OldestOpenRequests(cmd.Context())
			if err != nil {
				return err
			}
			if len(rows) == 0 {
				fmt.Println("No open maintenance requests.")
				return nil
			}
			fmt.Printf("%-5s  %-30s  %-12s  %-5s  %-40s\n",
				"ID", "Address", "Oldest", "Open", "Description")
			for _, row := range rows {
				fmt.Printf("%-5d  %-30s  %-12s  %-5d  %-40s\n",
					row.PropertyID, row.Address,
					row.OldestRequestDate.Format(validate.DateFormat), row.OpenCount, row.OldestDescription)
			}
			return nil
		},
	}
}

func reportOccupancyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "occupancy",
		Short: "Leased share of the trailing year per property",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}
			rows, err := rt.reports.OccupancyRates(cmd.Context())
			if err != nil {
				return err
			}
			if len(rows) == 0 {
				fmt.Println("No leases in the trailing year.")
				return nil
			}
			fmt.Printf("%-5s  %-30s  %-11s  %-9s\n", "ID", "Address", "Leased days", "Occupancy")
			for _, row := range rows {
				fmt.Printf("%-5d  %-30s  %-11d  %8s%%\n",
					row.PropertyID, row.Address, row.LeasedDays, row.OccupancyPct.StringFixed(2))
			}
			return nil
		},
	}
}

func reportRollingMaintenanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rolling-maintenance",
		Short: "3-point moving average of maintenance cost per property",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}
			rows, err := rt.reports.RollingMaintenanceCosts(cmd.Context())
			if err != nil {
				return err
			}
			if len(rows) == 0 {
				fmt.Println("No costed maintenance requests.")
				return nil
			}
			fmt.Printf("%-9s  %-30s  %-8s  %-12s  %-10s  %-11s\n",
				"Property", "Address", "Request", "Date", "Cost", "Rolling avg")
			for _, row := range rows {
				fmt.Printf("%-9d  %-30s  %-8d  %-12s  %10s  %11s\n",
					row.PropertyID, row.Address, row.RequestID,
					row.RequestDate.Format(validate.DateFormat),
					row.Cost.StringFixed(2), row.RollingAvgCost.StringFixed(2))
			}
			return nil
		},
	}
}

func reportRenewalRatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "renewal-rates",
		Short: "Share of leases beyond the first per tenant",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}
			rows, err := rt.reports.TenantRenewalRates(cmd.Context())
			if err != nil {
				return err
			}
			if len(rows) == 0 {
				fmt.Println("No tenants with leases.")
				return nil
			}
			fmt.Printf("%-5s  %-25s  %-7s  %-9s  %-8s\n", "ID", "Tenant", "Leases", "Renewals", "Rate")
			for _, row := range rows {
				fmt.Printf("%-5d  %-25s  %-7d  %-9d  %7s%%\n",
					row.TenantID, row.FirstName+" "+row.LastName,
					row.LeaseCount, row.Renewals, row.RenewalRate.StringFixed(2))
			}
			return nil
		},
	}
}

func reportRentYieldCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rent-yield",
		Short: "Annualized rent over purchase price for active leases",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}
			rows, err := rt.reports.RentYields(cmd.Context())
			if err != nil {
				return err
			}
			if len(rows) == 0 {
				fmt.Println("No active leases on priced properties.")
				return nil
			}
			fmt.Printf("%-5s  %-30s  %-10s  %-13s  %-7s\n",
				"ID", "Address", "Rent", "Price", "Yield")
			for _, row := range rows {
				fmt.Printf("%-5d  %-30s  %10s  %13s  %6s%%\n",
					row.LeaseID, row.Address,
					row.MonthlyRent.StringFixed(2), row.PurchasePrice.StringFixed(2), row.YieldPct.StringFixed(2))
			}
			return nil
		},
	}
}

func reportRentQuartilesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rent-quartiles",
		Short: "Leases bucketed into rent quartiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}
			rows, err := rt.reports.RentQuartiles(cmd.Context())
			if err != nil {
				return err
			}
			if len(rows) == 0 {
				fmt.Println("No leases recorded.")
				return nil
			}
			fmt.Printf("%-5s  %-30s  %-10s  %-8s\n", "ID", "Address", "Rent", "Quartile")
			for _, row := range rows {
				fmt.Printf("%-5d  %-30s  %10s  %-8d\n",
					row.LeaseID, row.Address, row.MonthlyRent.StringFixed(2), row.Quartile)
			}
			return nil
		},
	}
}

func reportRunningTotalsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "running-totals [tenant-id]",
		Short: "A tenant's payments with running totals",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}
			tenantID, err := parseID(args[0])
			if err != nil {
				return err
			}
			rows, err := rt.reports.TenantPaymentRunningTotals(cmd.Context(), tenantID)
			if err != nil {
				return err
			}
			if len(rows) == 0 {
				fmt.Println("No payments for this tenant.")
				return nil
			}
			fmt.Printf("%-5s  %-12s  %-10s  %-12s\n", "ID", "Paid", "Amount", "Running")
			for _, row := range rows {
				fmt.Printf("%-5d  %-12s  %10s  %12s\n",
					row.PaymentID, row.PaymentDate.Format(validate.DateFormat),
					row.Amount.StringFixed(2), row.RunningTotal.StringFixed(2))
			}
			return nil
		},
	}
}

func reportYoYRentGrowthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "yoy-rent-growth",
		Short: "Rent vs the rent twelve lease periods prior per property",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}
			rows, err := rt.reports.YearOverYearRentGrowth(cmd.Context())
			if err != nil {
				return err
			}
			if len(rows) == 0 {
				fmt.Println("No leases recorded.")
				return nil
			}
			fmt.Printf("%-5s  %-30s  %-12s  %-10s  %-10s  %-8s\n",
				"ID", "Address", "Start", "Rent", "Prior", "Growth")
			for _, row := range rows {
				prior, growth := "-", "-"
				if row.PriorRent.Valid {
					prior = row.PriorRent.Decimal.StringFixed(2)
				}
				if row.GrowthPct.Valid {
					growth = row.GrowthPct.Decimal.StringFixed(2) + "%"
				}
				fmt.Printf("%-5d  %-30s  %-12s  %10s  %10s  %-8s\n",
					row.LeaseID, row.Address, row.StartDate.Format(validate.DateFormat),
					row.MonthlyRent.StringFixed(2), prior, growth)
			}
			return nil
		},
	}
}

func reportLeaseOverlapCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lease-overlap [property-id]",
		Short: "Existing leases overlapping a candidate date range",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}
			propertyID, err := parseID(args[0])
			if err != nil {
				return err
			}
			startRaw, _ := cmd.Flags().GetString("start")
			start, err := validate.ParseDate("start", startRaw)
			if err != nil {
				return err
			}
			endRaw, _ := cmd.Flags().GetString("end")
			end, err := validate.ParseDate("end", endRaw)
			if err != nil {
				return err
			}
			activeOnly, _ := cmd.Flags().GetBool("active-only")
			rows, err := rt.reports.LeaseOverlaps(cmd.Context(), propertyID, start, end, activeOnly)
			if err != nil {
				return err
			}
			if len(rows) == 0 {
				fmt.Println("No overlapping leases.")
				return nil
			}
			fmt.Printf("%-5s  %-7s  %-12s  %-12s  %-11s\n", "ID", "Tenant", "Start", "End", "Status")
			for _, l := range rows {
				fmt.Printf("%-5d  %-7d  %-12s  %-12s  %-11s\n",
					l.ID, l.TenantID,
					l.StartDate.Format(validate.DateFormat), l.EndDate.Format(validate.DateFormat), l.Status)
			}
			return nil
		},
	}
	cmd.Flags().String("start", "", "Candidate start date (YYYY-MM-DD)")
	cmd.Flags().String("end", "", "Candidate end date (YYYY-MM-DD)")
	cmd.Flags().Bool("active-only", false, "Only consider active leases")
	return cmd
}

package commands

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"realestatedb/internal/config"
	"realestatedb/internal/database"
	"realestatedb/internal/logging"
	"realestatedb/internal/reports"
	"realestatedb/internal/store"
	"realestatedb/internal/validate"
)

// runtime bundles the per-invocation dependencies: one configuration,
// one database handle, one store and one error logger, built fresh for
// each command and passed explicitly rather than held in globals.
type runtime struct {
	cfg     *config.Config
	db      *gorm.DB
	store   *store.Store
	reports *reports.Reports
	log     *logrus.Logger
}

func newRuntime() (*runtime, error) {
	cfg := config.Load()
	log := logging.New(cfg.ErrorLogPath)
	db, err := database.Open(cfg)
	if err != nil {
		wrapped := &store.ConnectivityError{Err: err}
		logging.LogError(log, "database.open", cfg.Host, wrapped)
		return nil, wrapped
	}
	return &runtime{
		cfg:     cfg,
		db:      db,
		store:   store.New(db, log),
		reports: reports.New(db),
		log:     log,
	}, nil
}

func parseID(arg string) (uint, error) {
	n, err := strconv.ParseUint(arg, 10, 32)
	if err != nil {
		return 0, &validate.FieldError{Field: "id", Reason: "expected a numeric id"}
	}
	return uint(n), nil
}

// parsePairs turns repeated "field=value" flags into a map.
func parsePairs(flagName string, pairs []string) (map[string]string, error) {
	out := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		field, value, found := strings.Cut(pair, "=")
		if !found || field == "" {
			return nil, fmt.Errorf("--%s expects field=value, got %q", flagName, pair)
		}
		out[field] = value
	}
	return out, nil
}

// confirm asks for a yes/no answer on the command's input stream,
// mirroring the delete confirmations of the interactive tool.
func confirm(cmd *cobra.Command, prompt string) bool {
	fmt.Fprintf(cmd.OutOrStdout(), "%s (yes/no): ", prompt)
	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(line), "yes")
}

func listOptions(cmd *cobra.Command) (store.ListOptions, error) {
	page, _ := cmd.Flags().GetInt("page")
	pageSize, _ := cmd.Flags().GetInt("page-size")
	filterPairs, _ := cmd.Flags().GetStringArray("filter")
	filters, err := parsePairs("filter", filterPairs)
	if err != nil {
		return store.ListOptions{}, err
	}
	return store.ListOptions{Page: page, PageSize: pageSize, Filters: filters}, nil
}

func addListFlags(cmd *cobra.Command) {
	cmd.Flags().Int("page", 1, "Page number")
	cmd.Flags().Int("page-size", store.DefaultPageSize, "Rows per page")
	cmd.Flags().StringArray("filter", nil, "Equality filter as column=value (repeatable)")
}

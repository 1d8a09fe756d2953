// Copyright (c) 2026 Formkeeper Team
// Formkeeper - service contract record keeper
// This source code is licensed under the MIT license found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/amirdzh/formkeeper/internal/db"
	"github.com/amirdzh/formkeeper/internal/i18n"
	"github.com/amirdzh/formkeeper/internal/model"
	"github.com/amirdzh/formkeeper/internal/view"
)

var addFields = map[string]*string{}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new service contract record",
	RunE: func(cmd *cobra.Command, args []string) error {
		payload := map[string]string{}
		for col, val := range addFields {
			if *val != "" {
				payload[col] = *val
			}
		}

		id, err := db.DefaultStore().CreateForm(payload)
		if err != nil {
			if errors.Is(err, db.ErrNoValidColumns) {
				return errors.New(i18n.T("cli.no_fields"))
			}
			return err
		}
		fmt.Println(i18n.Tf("cli.record_saved", map[string]interface{}{"ID": id}))
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all records, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		forms, err := db.DefaultStore().GetAllForms()
		if err != nil {
			return err
		}
		printForms(forms)
		return nil
	},
}

var (
	searchFilters view.Filters
	searchSortCol string
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search and filter records",
	Long: `Search records with a free-text query and structured filters.
Every word of the query must match somewhere in the searchable fields.
Structured filters narrow the set first; the query then narrows further.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v := view.New(db.DefaultStore())
		if err := v.Reload(); err != nil {
			return err
		}

		v.ApplyFilters(searchFilters)
		if len(args) == 1 {
			v.Search(args[0])
		}
		if searchSortCol != "" {
			v.SortBy(searchSortCol)
		}

		printForms(v.Rows())
		return nil
	},
}

var favoriteCmd = &cobra.Command{
	Use:   "favorite <id>",
	Short: "Toggle a record's favorite flag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid record id %q", args[0])
		}
		status, err := db.DefaultStore().ToggleFavorite(id)
		if err != nil {
			return err
		}
		if status == nil {
			fmt.Println(i18n.T("cli.record_not_found"))
			os.Exit(1)
		}
		if *status {
			fmt.Println(i18n.T("cli.favorite_on"))
		} else {
			fmt.Println(i18n.T("cli.favorite_off"))
		}
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a record by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid record id %q", args[0])
		}
		removed, err := db.DefaultStore().DeleteForm(id)
		if err != nil {
			return err
		}
		if !removed {
			fmt.Println(i18n.T("cli.record_not_found"))
			os.Exit(1)
		}
		fmt.Println(i18n.T("cli.record_deleted"))
		return nil
	},
}

// printForms renders records as an aligned table on stdout.
func printForms(forms []model.ServiceForm) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tFAV\tCREATED\tFULLNAME\tMODEL\tSERIAL\tPROVIDER\tPROBLEM")
	for _, f := range forms {
		fav := ""
		if f.IsFavorite {
			fav = "*"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			f.ID, fav, f.CreatedAt, f.Fullname, f.DeviceModel, f.DeviceSerial, f.ServiceProvider, f.DeviceProblem)
	}
	_ = w.Flush()
}

func init() {
	for _, col := range db.WritableFormColumns() {
		if col == "created_at" || col == "is_favorite" {
			continue
		}
		var v string
		addFields[col] = &v
		addCmd.Flags().StringVar(&v, flagName(col), "", "value for "+col)
	}

	searchCmd.Flags().StringVar(&searchFilters.Fullname, "fullname", "", "filter by customer name")
	searchCmd.Flags().StringVar(&searchFilters.DeviceModel, "model", "", "filter by device model")
	searchCmd.Flags().StringVar(&searchFilters.ServiceProvider, "provider", "", "filter by service provider")
	searchCmd.Flags().StringVar(&searchFilters.ProblemType, "problem", "", "filter by problem type")
	searchCmd.Flags().StringVar(&searchFilters.DateFrom, "from", "", "only records created at or after this date")
	searchCmd.Flags().StringVar(&searchFilters.DateTo, "to", "", "only records created at or before this date")
	searchCmd.Flags().BoolVar(&searchFilters.FavoritesOnly, "favorites", false, "only favorite records")
	searchCmd.Flags().StringVar(&searchSortCol, "sort", "", "sort by column")
}

// flagName maps a column name to its CLI flag form, e.g. device_model ->
// device-model.
func flagName(col string) string {
	out := make([]byte, len(col))
	for i := 0; i < len(col); i++ {
		if col[i] == '_' {
			out[i] = '-'
		} else {
			out[i] = col[i]
		}
	}
	return string(out)
}

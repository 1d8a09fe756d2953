// Copyright (c) 2026 Formkeeper Team
// Formkeeper - service contract record keeper
// This source code is licensed under the MIT license found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/amirdzh/formkeeper/internal/db"
	"github.com/amirdzh/formkeeper/internal/export"
	"github.com/amirdzh/formkeeper/internal/i18n"
	"github.com/amirdzh/formkeeper/internal/model"
)

var (
	exportFormat string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export [id]",
	Short: "Export records to a file",
	Long: `Export records to a file. Without an id all records are exported;
with an id only that record is. Formats: csv, yaml, text (text requires an id).`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store := db.DefaultStore()

		if len(args) == 1 {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid record id %q", args[0])
			}
			form, err := store.GetFormByID(id)
			if err != nil {
				return err
			}
			if form == nil {
				fmt.Println(i18n.T("cli.record_not_found"))
				os.Exit(1)
			}

			var path string
			switch exportFormat {
			case "csv":
				path, err = export.WriteCSV([]model.ServiceForm{*form}, exportOut)
			case "yaml":
				path, err = export.WriteYAML([]model.ServiceForm{*form}, exportOut)
			case "text":
				path, err = export.WriteText(*form, exportOut)
			default:
				return fmt.Errorf("unknown export format %q", exportFormat)
			}
			if err != nil {
				return err
			}
			fmt.Println(i18n.Tf("cli.export_written", map[string]interface{}{"Path": path}))
			return nil
		}

		forms, err := store.GetAllForms()
		if err != nil {
			return err
		}

		var path string
		switch exportFormat {
		case "csv":
			path, err = export.WriteCSV(forms, exportOut)
		case "yaml":
			path, err = export.WriteYAML(forms, exportOut)
		case "text":
			return fmt.Errorf("text export needs a record id")
		default:
			return fmt.Errorf("unknown export format %q", exportFormat)
		}
		if err != nil {
			return err
		}
		fmt.Println(i18n.Tf("cli.export_written", map[string]interface{}{"Path": path}))
		return nil
	},
}

var copyCmd = &cobra.Command{
	Use:   "copy <id>",
	Short: "Copy a record's print view to the clipboard",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid record id %q", args[0])
		}
		form, err := db.DefaultStore().GetFormByID(id)
		if err != nil {
			return err
		}
		if form == nil {
			fmt.Println(i18n.T("cli.record_not_found"))
			os.Exit(1)
		}
		if err := export.CopyRecord(*form); err != nil {
			return err
		}
		fmt.Println(i18n.T("cli.copied"))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "csv", "export format: csv, yaml or text")
	exportCmd.Flags().StringVar(&exportOut, "out", "export.csv", "output file path")
}

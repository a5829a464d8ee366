// Copyright (c) 2026 WhatManga. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taibuivan/whatmanga/internal/parser"
)

// NewExportCommand creates the export command. It always writes CSV.
func NewExportCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "export <file|->",
		Short: "Parse a tracking list and print it as CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}

			result := app.Service.Preview(cmd.Context(), text)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), parser.ExportCSV(result.Entries))
			return err
		},
	}
}

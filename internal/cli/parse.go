// Copyright (c) 2026 WhatManga. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cli

import (
	"io"

	"github.com/spf13/cobra"
)

// NewParseCommand creates the parse command.
func NewParseCommand(app *App, rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <file|->",
		Short: "Parse a tracking list and print the entries",
		Long: `Parse a tracking list and print every entry with its progress, score
and warnings. Blocks that fail to parse are listed by line and never stop
the rest of the list.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}

			result := app.Service.Preview(cmd.Context(), text)

			formatter := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			return formatter.Write(result, func(w io.Writer) error {
				return writeParseText(w, result)
			})
		},
	}
}

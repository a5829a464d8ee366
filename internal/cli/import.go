// Copyright (c) 2026 WhatManga. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cli

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/taibuivan/whatmanga/internal/importer"
	"github.com/taibuivan/whatmanga/internal/platform/constants"
	"github.com/taibuivan/whatmanga/internal/platform/ctxutil"
)

// ImportOptions holds the flags of the import command.
type ImportOptions struct {
	Mode    string
	Owner   string
	Records bool
}

// NewImportCommand creates the import command.
func NewImportCommand(app *App, rootOpts *RootOptions) *cobra.Command {
	opts := &ImportOptions{}

	cmd := &cobra.Command{
		Use:   "import <file|->",
		Short: "Parse a tracking list and commit it to a library",
		Long: `Parse a tracking list and commit every entry to the owner's library.

Modes:
  add      create one record per entry
  update   update the record with the same title, or create it
  replace  delete the owner's records first, then create`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd, app, rootOpts, opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.Mode, "mode", app.Config.ImportMode, "commit mode (add|update|replace)")
	cmd.Flags().StringVar(&opts.Owner, "owner", app.Config.ImportOwner, "library owner ID")
	cmd.Flags().BoolVar(&opts.Records, "records", false, "print the stored records")

	return cmd
}

func runImport(cmd *cobra.Command, app *App, rootOpts *RootOptions, opts *ImportOptions, path string) error {
	ctx := cmd.Context()

	text, err := readInput(cmd, path)
	if err != nil {
		return err
	}

	result := app.Service.Preview(ctx, text)
	stats, err := app.Service.Commit(ctx, importer.CommitRequest{
		OwnerID: opts.Owner,
		Mode:    importer.Mode(opts.Mode),
		Entries: result.Entries,
	})
	if err != nil {
		ctxutil.GetLogger(ctx).Error("import_failed",
			slog.String(constants.FieldOwner, opts.Owner),
			slog.String(constants.FieldMode, opts.Mode),
			slog.Any(constants.FieldError, err),
		)
		return err
	}

	out := ImportOutput{Stats: stats}
	if opts.Records {
		if out.Records, err = app.Service.ListRecords(ctx, opts.Owner); err != nil {
			return err
		}
	}

	formatter := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
	return formatter.Write(out, func(w io.Writer) error {
		return writeImportText(w, out)
	})
}

// Copyright (c) 2026 WhatManga. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/taibuivan/whatmanga/internal/platform/apperr"
	"github.com/taibuivan/whatmanga/internal/platform/constants"
	"github.com/taibuivan/whatmanga/internal/platform/ctxutil"
)

// Output formats accepted by --format.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{FormatText, FormatJSON, FormatYAML}

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Format string
}

// NewRootCommand creates the root command for the whatmanga CLI.
func NewRootCommand(app *App) *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:     constants.AppName,
		Short:   "Parse hand-written manga and novel tracking lists",
		Long:    "Turns a free-text reading list (\"1- Naruto (*72 vol. do mangá). {10}\") into structured entries, CSV rows or library records.",
		Version: constants.AppVersion,

		SilenceUsage:  true,
		SilenceErrors: true,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return apperr.ValidationError(fmt.Sprintf("invalid format %q: must be one of %s", opts.Format, strings.Join(ValidFormats, ", ")))
			}

			ctx := ctxutil.StartRun(cmd.Context(), app.Logger.Logger)
			ctxutil.GetLogger(ctx).Debug("command_started", slog.String(constants.FieldCommand, cmd.Name()))
			cmd.SetContext(ctx)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.Format, "format", FormatText, "output format (text|json|yaml)")

	cmd.AddCommand(NewParseCommand(app, opts))
	cmd.AddCommand(NewExportCommand(app))
	cmd.AddCommand(NewImportCommand(app, opts))

	return cmd
}

// readInput returns the list text at path, or standard input for "-".
func readInput(cmd *cobra.Command, path string) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == constants.StdinPath {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", apperr.Unprocessable("Could not read list "+path, err)
	}
	return string(data), nil
}

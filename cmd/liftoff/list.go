package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/five82/liftoff/internal/app"
	"github.com/five82/liftoff/internal/format"
	"github.com/five82/liftoff/internal/launches"
)

type listFlags struct {
	search string
	status string
	window string
	page   int
	format string
}

func newListCmd(root *rootFlags) *cobra.Command {
	flags := &listFlags{}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print one page of launches as a table",
		Example: "  liftoff list --status success --window year\n" +
			"  liftoff list --search starlink --page 2 --format markdown",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := flags.options(root)
			if err != nil {
				return err
			}
			return app.List(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.search, "search", "s", "", "case-insensitive mission name filter")
	f.StringVar(&flags.status, "status", "", "outcome filter: success or failure")
	f.StringVarP(&flags.window, "window", "w", "", "date window: week, month or year")
	f.IntVarP(&flags.page, "page", "p", 1, "page number (9 launches per page)")
	f.StringVarP(&flags.format, "format", "f", "ascii", "output format: ascii or markdown")
	return cmd
}

func (f *listFlags) options(root *rootFlags) (app.ListOptions, error) {
	status, err := launches.ParseStatus(f.status)
	if err != nil {
		return app.ListOptions{}, fmt.Errorf("--status: %w", err)
	}
	window, err := launches.ParseWindow(f.window)
	if err != nil {
		return app.ListOptions{}, fmt.Errorf("--window: %w", err)
	}
	mode, err := format.ParseMode(f.format)
	if err != nil {
		return app.ListOptions{}, fmt.Errorf("--format: %w", err)
	}
	return app.ListOptions{
		Options:  root.options(),
		Criteria: launches.Criteria{Text: f.search, Status: status, Window: window},
		Page:     f.page,
		Format:   mode,
	}, nil
}

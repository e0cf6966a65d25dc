package main

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"tgchart/pkg/ui"
)

func newShowCmd(opts *rootOptions) *cobra.Command {
	var title string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Open the chart in a desktop window",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(opts, title)
		},
	}
	cmd.Flags().StringVar(&title, "title", "tgchart", "window title")
	return cmd
}

func runShow(opts *rootOptions, title string) error {
	cfg, err := opts.loadConfig()
	if err != nil {
		return err
	}
	ds, err := opts.loadDataset()
	if err != nil {
		return err
	}

	app, err := ui.NewChartApp(title, ds, cfg)
	if err != nil {
		return err
	}
	log.Debug("opening chart window", "series", len(ds.LineColumns()), "points", ds.Points())
	app.Run()
	return nil
}

package main

import (
	"fmt"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"tgchart/assets/sample"
	"tgchart/pkg/config"
	"tgchart/pkg/core"
)

type rootOptions struct {
	configPath string
	debug      bool
	dataPath   string
	exposition string
	metrics    []string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "tgchart",
		Short: "Time-series line chart with hover highlighting",
		Long: heredoc.Doc(`
			Draws a time-series line chart from a chart-data JSON document
			({columns, types, names, colors}) or from timestamped Prometheus
			text exposition. Without a data flag the bundled sample is used.
		`),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.debug {
				log.SetLevel(log.DebugLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(opts, "tgchart")
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "chart config file (default $TGCHART_CONFIG or "+config.DefaultChartConfigPath+")")
	flags.BoolVar(&opts.debug, "debug", false, "enable debug logging")
	flags.StringVarP(&opts.dataPath, "data", "d", "", "chart-data JSON file")
	flags.StringVar(&opts.exposition, "exposition", "", "Prometheus text exposition file with timestamped samples")
	flags.StringSliceVar(&opts.metrics, "metric", nil, "metric family to plot from --exposition (repeatable, default all)")

	cmd.AddCommand(newShowCmd(opts))
	cmd.AddCommand(newRenderCmd(opts))
	cmd.AddCommand(newBoundsCmd(opts))
	return cmd
}

func (o *rootOptions) loadConfig() (config.ChartConfig, error) {
	path := o.configPath
	if path == "" {
		path = config.ResolveChartConfigPath()
	}
	cfg, err := config.LoadChartConfig(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to load chart config %q: %w", path, err)
	}
	log.Debug("loaded chart config", "path", path, "width", cfg.Width, "height", cfg.Height, "pixel_ratio", cfg.PixelRatio)
	return cfg, nil
}

func (o *rootOptions) loadDataset() (*core.Dataset, error) {
	switch {
	case o.exposition != "":
		file, err := os.Open(o.exposition)
		if err != nil {
			return nil, err
		}
		defer file.Close()
		ds, err := core.ReadExposition(file, core.ExpositionOptions{Metrics: o.metrics})
		if err != nil {
			return nil, fmt.Errorf("%s: %w", o.exposition, err)
		}
		return ds, nil
	case o.dataPath != "":
		ds, err := core.LoadDataset(o.dataPath)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", o.dataPath, err)
		}
		return ds, nil
	default:
		return sample.Dataset()
	}
}

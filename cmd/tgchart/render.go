package main

import (
	"fmt"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"tgchart/pkg/chart"
	"tgchart/pkg/core"
	"tgchart/pkg/render"
)

type renderOptions struct {
	out        string
	hovers     []float64
	background string
}

func newRenderCmd(root *rootOptions) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Paint the chart headlessly to a PNG file",
		Example: heredoc.Doc(`
			# Render the sample with the pointer over x=300 (logical pixels)
			$ tgchart render --out chart.png --hover 300

			# Render two metric families from scraped samples
			$ tgchart render --exposition scrapes.prom --metric queue_depth --out queue.png
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "output PNG path (required)")
	cmd.Flags().Float64SliceVar(&opts.hovers, "hover", nil, "pointer x in logical pixels, replayed in order before the final frame")
	cmd.Flags().StringVar(&opts.background, "background", "#FFFFFF", "background color")
	cmd.MarkFlagRequired("out")
	return cmd
}

func runRender(root *rootOptions, opts *renderOptions) error {
	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}
	ds, err := root.loadDataset()
	if err != nil {
		return err
	}
	bg, err := core.ParseHexColor(opts.background)
	if err != nil {
		return fmt.Errorf("--background: %w", err)
	}

	surface := render.NewGGSurface(int(cfg.DeviceWidth()), int(cfg.DeviceHeight()))
	surface.Background = bg
	frames := chart.NewManualFrames()
	events := &chart.Dispatcher{}

	var last render.Frame
	c, err := chart.New(surface, events, ds, cfg, frames, chart.WithOnFrame(func(f render.Frame) { last = f }))
	if err != nil {
		return err
	}
	defer c.Destroy()

	c.Init()
	for _, x := range opts.hovers {
		events.Move(x, 0)
		frames.Flush()
	}

	file, err := os.Create(opts.out)
	if err != nil {
		return err
	}
	defer file.Close()
	if err := surface.EncodePNG(file); err != nil {
		return fmt.Errorf("encode %s: %w", opts.out, err)
	}

	log.Info("rendered chart", "out", opts.out, "paints", c.Paints(), "guide", last.Guide, "hovered", len(last.Hovered))
	return nil
}

package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"tgchart/pkg/config"
	"tgchart/pkg/core"
)

type ChartWindow struct {
	App    fyne.App
	Window fyne.Window
	Chart  *ChartWidget
	Legend *fyne.Container
}

func NewChartWindow(a fyne.App, title string, ds *core.Dataset, cfg config.ChartConfig) (*ChartWindow, error) {
	cw, err := NewChartWidget(ds, cfg)
	if err != nil {
		return nil, err
	}

	w := a.NewWindow(title)
	w.Resize(fyne.NewSize(float32(cfg.Width)+40, float32(cfg.Height)+80))

	legend := container.NewHBox(widget.NewLabel("Series:"))
	for _, c := range ds.LineColumns() {
		swatch := canvas.NewRectangle(ds.Color(c.ID))
		swatch.SetMinSize(fyne.NewSize(12, 12))
		legend.Add(container.NewCenter(swatch))
		legend.Add(widget.NewLabel(ds.Name(c.ID)))
	}

	content := container.NewBorder(
		nil,
		container.NewHScroll(legend),
		nil, nil,
		container.NewPadded(cw),
	)
	w.SetContent(content)
	w.SetOnClosed(cw.Destroy)

	return &ChartWindow{
		App:    a,
		Window: w,
		Chart:  cw,
		Legend: legend,
	}, nil
}

func (cw *ChartWindow) Show() {
	cw.Window.Show()
}

func (cw *ChartWindow) ShowAndRun() {
	cw.Window.ShowAndRun()
}

package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"tgchart/pkg/chart"
	"tgchart/pkg/config"
	"tgchart/pkg/core"
	"tgchart/pkg/render"
)

// ChartWidget hosts a chart.Chart in fyne: it rasterizes into a gg surface
// of cfg device size and forwards hover events to the chart.
type ChartWidget struct {
	widget.BaseWidget

	cfg     config.ChartConfig
	surface *render.GGSurface
	image   *canvas.Image
	events  chart.Dispatcher
	chart   *chart.Chart

	// OnFrame, when set, is called after every paint on the UI thread.
	OnFrame func(render.Frame)
}

var (
	_ fyne.Widget       = (*ChartWidget)(nil)
	_ desktop.Hoverable = (*ChartWidget)(nil)
	_ chart.EventSource = (*ChartWidget)(nil)
)

func NewChartWidget(ds *core.Dataset, cfg config.ChartConfig) (*ChartWidget, error) {
	cw := &ChartWidget{
		cfg:     cfg,
		surface: render.NewGGSurface(int(cfg.DeviceWidth()), int(cfg.DeviceHeight())),
	}
	cw.image = canvas.NewImageFromImage(cw.surface.Image())
	cw.image.FillMode = canvas.ImageFillStretch
	cw.image.ScaleMode = canvas.ImageScaleSmooth

	frames := chart.NewRateFrames(cfg.FrameRate, fyne.Do)
	c, err := chart.New(cw.surface, cw, ds, cfg, frames, chart.WithOnFrame(cw.frameDone))
	if err != nil {
		return nil, fmt.Errorf("create chart: %w", err)
	}
	cw.chart = c
	cw.ExtendBaseWidget(cw)
	c.Init()
	return cw, nil
}

func (cw *ChartWidget) Chart() *chart.Chart {
	return cw.chart
}

// Destroy tears the chart down; the widget keeps showing the last frame.
func (cw *ChartWidget) Destroy() {
	cw.chart.Destroy()
}

func (cw *ChartWidget) frameDone(f render.Frame) {
	cw.image.Refresh()
	if cw.OnFrame != nil {
		cw.OnFrame(f)
	}
}

func (cw *ChartWidget) AddPointerListener(l chart.PointerListener) {
	cw.events.AddPointerListener(l)
}

func (cw *ChartWidget) RemovePointerListener(l chart.PointerListener) {
	cw.events.RemovePointerListener(l)
}

func (cw *ChartWidget) Left() float64 {
	return cw.events.Left()
}

func (cw *ChartWidget) MouseIn(ev *desktop.MouseEvent) {
	cw.MouseMoved(ev)
}

// MouseMoved reports the pointer in configured logical units, so a widget
// stretched by its layout still maps onto the device canvas.
func (cw *ChartWidget) MouseMoved(ev *desktop.MouseEvent) {
	scale := float32(1)
	if w := cw.Size().Width; w > 0 {
		scale = float32(cw.cfg.Width) / w
	}
	left := ev.AbsolutePosition.X - ev.Position.X
	cw.events.SetLeft(float64(left))
	cw.events.Move(float64(left+ev.Position.X*scale), float64(ev.AbsolutePosition.Y))
}

func (cw *ChartWidget) MouseOut() {
	cw.events.Leave()
}

func (cw *ChartWidget) CreateRenderer() fyne.WidgetRenderer {
	return &chartRenderer{cw: cw}
}

type chartRenderer struct {
	cw *ChartWidget
}

func (r *chartRenderer) Destroy() {}

func (r *chartRenderer) Layout(size fyne.Size) {
	r.cw.image.Move(fyne.NewPos(0, 0))
	r.cw.image.Resize(size)
}

func (r *chartRenderer) MinSize() fyne.Size {
	return fyne.NewSize(float32(r.cw.cfg.Width), float32(r.cw.cfg.Height))
}

func (r *chartRenderer) Refresh() {
	r.cw.image.Refresh()
}

func (r *chartRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.cw.image}
}

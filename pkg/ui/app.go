package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/charmbracelet/log"

	"tgchart/pkg/config"
	"tgchart/pkg/core"
)

const appID = "com.github.tgchart"

type ChartApp struct {
	FyneApp fyne.App
	Main    *ChartWindow
}

func NewChartApp(title string, ds *core.Dataset, cfg config.ChartConfig) (*ChartApp, error) {
	a := app.NewWithID(appID)
	if icon, err := ChartIcon(ds); err == nil {
		a.SetIcon(icon)
	} else {
		log.Warn("chart icon unavailable", "error", err)
	}
	main, err := NewChartWindow(a, title, ds, cfg)
	if err != nil {
		return nil, err
	}
	main.Window.SetMaster()
	return &ChartApp{FyneApp: a, Main: main}, nil
}

func (ca *ChartApp) Run() {
	ca.Main.ShowAndRun()
}

// Package viewer provides the results window of the analyzer.
package viewer

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"afm-analyzer/internal/app"
)

// New builds the results window: rendered plots on the left, the formatted
// results text on the right.
func New(fyneApp fyne.App, res *app.Result) fyne.Window {
	win := fyneApp.NewWindow("AFM Scan Analyzer")

	tabs := container.NewAppTabs(
		container.NewTabItem("2D Map", plotImage(res.Image2DPath)),
		container.NewTabItem("3D Surface", plotImage(res.Image3DPath)),
	)
	if res.DistributionPath != "" {
		tabs.Append(container.NewTabItem("Distribution", plotImage(res.DistributionPath)))
	}

	text := widget.NewLabel(resultsText(res))
	text.TextStyle = fyne.TextStyle{Monospace: true}

	split := container.NewHSplit(tabs, container.NewScroll(text))
	split.SetOffset(0.68)

	win.SetContent(split)
	win.Resize(fyne.NewSize(1100, 700))
	return win
}

func plotImage(path string) fyne.CanvasObject {
	img := canvas.NewImageFromFile(path)
	img.FillMode = canvas.ImageFillContain
	return img
}

func resultsText(res *app.Result) string {
	if res.ResultsText == "" {
		return "No correction or analysis results were requested.\nEnable stages in the settings file to see them here."
	}
	return res.ResultsText
}

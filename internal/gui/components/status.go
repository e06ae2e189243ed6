package components

import (
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

type StatusBar struct {
	container   *fyne.Container
	statusLabel *widget.Label
	fileLabel   *widget.Label
}

func NewStatusBar() *StatusBar {
	statusLabel := widget.NewLabel("Ready")
	fileLabel := widget.NewLabel("No file loaded")

	mainContainer := container.NewBorder(
		nil, nil,
		statusLabel,
		fileLabel,
	)

	return &StatusBar{
		container:   mainContainer,
		statusLabel: statusLabel,
		fileLabel:   fileLabel,
	}
}

func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}

func (sb *StatusBar) SetStatus(status string) {
	sb.statusLabel.SetText(status)
}

func (sb *StatusBar) SetFile(path string) {
	if path == "" {
		sb.fileLabel.SetText("No file loaded")
		return
	}
	sb.fileLabel.SetText(filepath.Base(path))
}

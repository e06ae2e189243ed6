package components

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const (
	ViewportWidth  = 900
	ViewportHeight = 600
)

// PlotDisplay shows the rendered PNG in a scrollable viewport, with a
// placeholder label until the first plot exists.
type PlotDisplay struct {
	container       *fyne.Container
	plotImage       *canvas.Image
	placeholder     *widget.Label
	scrollContainer *container.Scroll
}

func NewPlotDisplay() *PlotDisplay {
	plotImage := canvas.NewImageFromImage(nil)
	plotImage.FillMode = canvas.ImageFillOriginal
	plotImage.Hide()

	placeholder := widget.NewLabel("No plot yet")
	placeholder.Alignment = fyne.TextAlignCenter

	scrollContainer := container.NewScroll(container.NewStack(placeholder, plotImage))
	scrollContainer.SetMinSize(fyne.NewSize(ViewportWidth, ViewportHeight))

	mainContainer := container.NewBorder(
		nil, nil, nil, nil,
		scrollContainer,
	)

	return &PlotDisplay{
		container:       mainContainer,
		plotImage:       plotImage,
		placeholder:     placeholder,
		scrollContainer: scrollContainer,
	}
}

func (pd *PlotDisplay) GetContainer() *fyne.Container {
	return pd.container
}

// SetPlot replaces the displayed image. The canvas minimum size tracks
// the real image dimensions so the scroll container works at full
// resolution.
func (pd *PlotDisplay) SetPlot(img image.Image) {
	if img == nil {
		return
	}

	bounds := img.Bounds()
	pd.plotImage.Image = img
	pd.plotImage.SetMinSize(fyne.NewSize(float32(bounds.Dx()), float32(bounds.Dy())))

	pd.placeholder.Hide()
	pd.plotImage.Show()
	pd.plotImage.Refresh()
}

// Clear returns to the placeholder state, used when a new granule is
// opened.
func (pd *PlotDisplay) Clear() {
	pd.plotImage.Image = nil
	pd.plotImage.Hide()
	pd.placeholder.Show()
	pd.scrollContainer.Refresh()
}

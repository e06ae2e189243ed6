package components

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"ccplot-gui/internal/granule"
)

const timeLabelFormat = "2006-01-02 15:04:05"

// ControlsPanel is the left-hand column: file open, time subset
// sliders, altitude sliders, colormap dropdown, plot and save buttons,
// progress bar. Handlers are wired by the GUI manager.
type ControlsPanel struct {
	container *fyne.Container

	openButton *widget.Button
	plotButton *widget.Button
	saveButton *widget.Button

	startSlider    *widget.Slider
	endSlider      *widget.Slider
	startTimeLabel *widget.Label
	endTimeLabel   *widget.Label

	altBottomSlider *widget.Slider
	altTopSlider    *widget.Slider
	altBottomLabel  *widget.Label
	altTopLabel     *widget.Label

	colormapSelect *widget.Select
	progressBar    *widget.ProgressBar

	times []time.Time

	openFileHandler func()
	plotHandler     func()
	savePlotHandler func()
}

func NewControlsPanel(altMin, altMax, altBottom, altTop int) *ControlsPanel {
	panel := &ControlsPanel{}
	panel.setupControls(altMin, altMax, altBottom, altTop)
	return panel
}

func (cp *ControlsPanel) setupControls(altMin, altMax, altBottom, altTop int) {
	cp.openButton = widget.NewButton("Open HDF File", cp.onOpenFile)

	cp.startTimeLabel = widget.NewLabel("Start Time: N/A")
	cp.endTimeLabel = widget.NewLabel("End Time: N/A")

	cp.startSlider = widget.NewSlider(0, 1)
	cp.startSlider.Step = 1
	cp.startSlider.OnChanged = func(v float64) {
		cp.updateTimeLabel(cp.startTimeLabel, "Start Time", int(v))
	}
	cp.startSlider.Disable()

	cp.endSlider = widget.NewSlider(0, 1)
	cp.endSlider.Step = 1
	cp.endSlider.OnChanged = func(v float64) {
		cp.updateTimeLabel(cp.endTimeLabel, "End Time", int(v))
	}
	cp.endSlider.Disable()

	cp.altBottomLabel = widget.NewLabel(fmt.Sprintf("Altitude Bottom: %d m", altBottom))
	cp.altBottomSlider = widget.NewSlider(float64(altMin), float64(altMax))
	cp.altBottomSlider.Step = 100
	cp.altBottomSlider.SetValue(float64(altBottom))
	cp.altBottomSlider.OnChanged = func(v float64) {
		cp.altBottomLabel.SetText(fmt.Sprintf("Altitude Bottom: %d m", int(v)))
	}

	cp.altTopLabel = widget.NewLabel(fmt.Sprintf("Altitude Top: %d m", altTop))
	cp.altTopSlider = widget.NewSlider(float64(altMin), float64(altMax))
	cp.altTopSlider.Step = 100
	cp.altTopSlider.SetValue(float64(altTop))
	cp.altTopSlider.OnChanged = func(v float64) {
		cp.altTopLabel.SetText(fmt.Sprintf("Altitude Top: %d m", int(v)))
	}

	cp.colormapSelect = widget.NewSelect(nil, nil)
	cp.colormapSelect.PlaceHolder = "Select colormap"

	cp.plotButton = widget.NewButton("Plot Data", cp.onPlot)
	cp.plotButton.Importance = widget.HighImportance
	cp.plotButton.Disable()

	cp.progressBar = widget.NewProgressBar()
	cp.progressBar.Hide()

	cp.saveButton = widget.NewButton("Save Plot As...", cp.onSavePlot)
	cp.saveButton.Disable()

	cp.container = container.NewVBox(
		cp.openButton,
		widget.NewSeparator(),
		widget.NewLabel("Time Subset (profiles)"),
		cp.startTimeLabel,
		cp.startSlider,
		cp.endTimeLabel,
		cp.endSlider,
		widget.NewSeparator(),
		widget.NewLabel("Altitude Range"),
		cp.altBottomLabel,
		cp.altBottomSlider,
		cp.altTopLabel,
		cp.altTopSlider,
		widget.NewSeparator(),
		widget.NewLabel("Colormap"),
		cp.colormapSelect,
		widget.NewSeparator(),
		cp.plotButton,
		cp.progressBar,
		cp.saveButton,
	)
}

func (cp *ControlsPanel) GetContainer() *fyne.Container {
	return cp.container
}

func (cp *ControlsPanel) SetOpenFileHandler(handler func()) {
	cp.openFileHandler = handler
}

func (cp *ControlsPanel) SetPlotHandler(handler func()) {
	cp.plotHandler = handler
}

func (cp *ControlsPanel) SetSavePlotHandler(handler func()) {
	cp.savePlotHandler = handler
}

// SetTimeline binds the profile sliders to a granule timeline. The
// start slider covers 0..n-2 and the end slider 1..n-1 so a valid
// selection always exists. Must run on the UI thread.
func (cp *ControlsPanel) SetTimeline(times []time.Time) {
	cp.times = times
	n := len(times)
	if n < 2 {
		return
	}

	cp.startSlider.Min = 0
	cp.startSlider.Max = float64(n - 2)
	cp.startSlider.Enable()
	cp.startSlider.SetValue(0)

	cp.endSlider.Min = 1
	cp.endSlider.Max = float64(n - 1)
	cp.endSlider.Enable()
	cp.endSlider.SetValue(float64(n - 1))

	cp.updateTimeLabel(cp.startTimeLabel, "Start Time", 0)
	cp.updateTimeLabel(cp.endTimeLabel, "End Time", n-1)

	cp.plotButton.Enable()
}

func (cp *ControlsPanel) updateTimeLabel(label *widget.Label, prefix string, index int) {
	if index < 0 || index >= len(cp.times) {
		label.SetText(prefix + ": N/A")
		return
	}
	label.SetText(fmt.Sprintf("%s: %s", prefix, cp.times[index].UTC().Format(timeLabelFormat)))
}

// Subset captures the current slider positions.
func (cp *ControlsPanel) Subset() granule.Subset {
	return granule.Subset{
		StartIndex: int(cp.startSlider.Value),
		EndIndex:   int(cp.endSlider.Value),
		AltBottom:  int(cp.altBottomSlider.Value),
		AltTop:     int(cp.altTopSlider.Value),
	}
}

func (cp *ControlsPanel) SetColormaps(names []string, selected string) {
	cp.colormapSelect.Options = names
	if selected != "" {
		cp.colormapSelect.SetSelected(selected)
	}
	cp.colormapSelect.Refresh()
}

// SelectedColormap returns the dropdown choice, which may be empty
// when no colormap directory was found.
func (cp *ControlsPanel) SelectedColormap() string {
	return cp.colormapSelect.Selected
}

// SetBusy disables the plot button while a ccplot run is in flight so
// at most one subprocess exists at a time.
func (cp *ControlsPanel) SetBusy(busy bool) {
	if busy {
		cp.plotButton.Disable()
		return
	}
	if len(cp.times) >= 2 {
		cp.plotButton.Enable()
	}
}

func (cp *ControlsPanel) SetSaveEnabled(enabled bool) {
	if enabled {
		cp.saveButton.Enable()
	} else {
		cp.saveButton.Disable()
	}
}

func (cp *ControlsPanel) SetProgress(progress float64) {
	if progress > 0 && progress < 1 {
		cp.progressBar.Show()
		cp.progressBar.SetValue(progress)
		return
	}

	if progress >= 1 {
		cp.progressBar.SetValue(1)
	} else {
		cp.progressBar.SetValue(0)
	}
	cp.progressBar.Hide()
}

func (cp *ControlsPanel) onOpenFile() {
	if cp.openFileHandler != nil {
		cp.openFileHandler()
	}
}

func (cp *ControlsPanel) onPlot() {
	if cp.plotHandler != nil {
		cp.plotHandler()
	}
}

func (cp *ControlsPanel) onSavePlot() {
	if cp.savePlotHandler != nil {
		cp.savePlotHandler()
	}
}

package gui

import (
	"image"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"

	"ccplot-gui/internal/granule"
	"ccplot-gui/internal/gui/components"
	"ccplot-gui/internal/logger"
)

// Manager owns the widget tree and is the only place that touches it.
// Everything that mutates widgets goes through fyne.Do so background
// goroutines can call these methods directly.
type Manager struct {
	window     fyne.Window
	logger     logger.Logger
	isShutdown bool

	controls    *components.ControlsPanel
	plotDisplay *components.PlotDisplay
	statusBar   *components.StatusBar
}

func NewManager(window fyne.Window, log logger.Logger, altMin, altMax, altBottom, altTop int) *Manager {
	manager := &Manager{
		window:      window,
		logger:      log,
		controls:    components.NewControlsPanel(altMin, altMax, altBottom, altTop),
		plotDisplay: components.NewPlotDisplay(),
		statusBar:   components.NewStatusBar(),
	}

	log.Info("GUIManager", "initialized", map[string]interface{}{
		"altitude_min": altMin,
		"altitude_max": altMax,
	})

	return manager
}

func (m *Manager) GetMainContainer() *fyne.Container {
	leftPanel := container.NewVScroll(m.controls.GetContainer())

	return container.NewBorder(
		nil,
		m.statusBar.GetContainer(),
		leftPanel,
		nil,
		m.plotDisplay.GetContainer(),
	)
}

func (m *Manager) GetWindow() fyne.Window {
	return m.window
}

func (m *Manager) SetOpenFileHandler(handler func()) {
	m.controls.SetOpenFileHandler(handler)
}

func (m *Manager) SetPlotHandler(handler func()) {
	m.controls.SetPlotHandler(func() {
		m.logger.Info("GUIManager", "plot requested", nil)
		handler()
	})
}

func (m *Manager) SetSavePlotHandler(handler func()) {
	m.controls.SetSavePlotHandler(handler)
}

// SetGranule updates every control that depends on the loaded file:
// timeline sliders, file label, and the stale plot display.
func (m *Manager) SetGranule(path string, times []time.Time, source granule.TimeSource) {
	fyne.Do(func() {
		m.controls.SetTimeline(times)
		m.controls.SetSaveEnabled(false)
		m.statusBar.SetFile(path)
		m.plotDisplay.Clear()
	})

	m.logger.Debug("GUIManager", "granule bound to controls", map[string]interface{}{
		"path":        path,
		"profiles":    len(times),
		"time_source": source.String(),
	})
}

func (m *Manager) Subset() granule.Subset {
	return m.controls.Subset()
}

// InitColormaps populates the colormap dropdown. Called during
// startup on the main goroutine, before the event loop runs, so it
// touches the widgets directly.
func (m *Manager) InitColormaps(names []string, selected string) {
	m.controls.SetColormaps(names, selected)
}

func (m *Manager) SelectedColormap() string {
	return m.controls.SelectedColormap()
}

func (m *Manager) SetPlotImage(img image.Image) {
	fyne.Do(func() {
		m.plotDisplay.SetPlot(img)
		m.controls.SetSaveEnabled(true)
	})
}

func (m *Manager) UpdateStatus(status string) {
	fyne.Do(func() {
		m.statusBar.SetStatus(status)
	})
}

func (m *Manager) SetBusy(busy bool) {
	fyne.Do(func() {
		m.controls.SetBusy(busy)
	})
}

func (m *Manager) SetProgress(progress float64) {
	fyne.Do(func() {
		m.controls.SetProgress(progress)
	})
}

func (m *Manager) ShowError(err error) {
	m.logger.Error("GUIManager", err, nil)
	fyne.Do(func() {
		dialog.ShowError(err, m.window)
	})
}

func (m *Manager) ShowWarning(title, message string) {
	m.logger.Warning("GUIManager", message, map[string]interface{}{
		"title": title,
	})
	fyne.Do(func() {
		dialog.ShowInformation(title, message, m.window)
	})
}

func (m *Manager) Shutdown() {
	if m.isShutdown {
		return
	}
	m.isShutdown = true
	m.logger.Info("GUIManager", "shutdown completed", nil)
}

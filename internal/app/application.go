// Package app wires the Fyne window, GUI manager, granule repository,
// and ccplot runner into one application.
package app

import (
	"context"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"

	"ccplot-gui/internal/ccplot"
	"ccplot-gui/internal/config"
	"ccplot-gui/internal/granule"
	"ccplot-gui/internal/gui"
	"ccplot-gui/internal/logger"
)

const (
	AppName    = "ccplot GUI"
	AppID      = "org.ccplot.ccplot-gui"
	AppVersion = "1.0.0"

	WindowWidth  = 1280
	WindowHeight = 800
)

type Application struct {
	fyneApp    fyne.App
	window     fyne.Window
	guiManager *gui.Manager
	repository *granule.Repository
	runner     *ccplot.Runner
	handlers   *Handlers
	lifecycle  *Lifecycle
	logger     logger.Logger

	ctx    context.Context
	cancel context.CancelFunc
}

func New(cfg config.Config, log logger.Logger) (*Application, error) {
	fyneApp := fyneapp.NewWithID(AppID)
	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(WindowWidth, WindowHeight))
	window.CenterOnScreen()
	window.SetMaster()

	ctx, cancel := context.WithCancel(context.Background())

	guiManager := gui.NewManager(window, log,
		cfg.Plot.AltitudeMin, cfg.Plot.AltitudeMax,
		cfg.Plot.AltitudeBottom, cfg.Plot.AltitudeTop,
	)
	repository := granule.NewRepository()
	runner := ccplot.NewRunner(cfg.Ccplot.Binary, log)
	handlers := NewHandlers(ctx, cfg, repository, runner, guiManager, log)
	lifecycle := NewLifecycle(cancel, guiManager, repository, log)

	guiManager.SetOpenFileHandler(handlers.HandleOpenFile)
	guiManager.SetPlotHandler(handlers.HandlePlot)
	guiManager.SetSavePlotHandler(handlers.HandleSavePlot)

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		guiManager: guiManager,
		repository: repository,
		runner:     runner,
		handlers:   handlers,
		lifecycle:  lifecycle,
		logger:     log,
		ctx:        ctx,
		cancel:     cancel,
	}

	application.populateColormaps(cfg)

	log.Info("Application", "initialization complete", map[string]interface{}{
		"version": AppVersion,
		"binary":  cfg.Ccplot.Binary,
	})

	return application, nil
}

// populateColormaps fills the dropdown from the configured colormap
// directory. A missing directory is not fatal: the configured default
// becomes the only option and path resolution happens at plot time.
func (a *Application) populateColormaps(cfg config.Config) {
	names, err := ccplot.ListColormaps(cfg.Ccplot.ColormapDir)
	if err != nil || len(names) == 0 {
		if err != nil {
			a.logger.Warning("Application", "colormap directory unavailable", map[string]interface{}{
				"dir":   cfg.Ccplot.ColormapDir,
				"error": err.Error(),
			})
		}
		a.guiManager.InitColormaps([]string{cfg.Ccplot.Colormap}, cfg.Ccplot.Colormap)
		return
	}

	selected := names[0]
	for _, name := range names {
		if name == cfg.Ccplot.Colormap {
			selected = name
			break
		}
	}
	a.guiManager.InitColormaps(names, selected)
}

// OpenAtStartup loads a granule passed on the command line once the
// event loop is up.
func (a *Application) OpenAtStartup(path string) {
	go a.handlers.OpenPath(path)
}

// Run shows the window and blocks until the application exits.
func (a *Application) Run() error {
	a.window.SetCloseIntercept(func() {
		a.logger.Info("Application", "shutdown requested", nil)
		a.lifecycle.Shutdown()
		a.window.Close()
	})

	a.window.SetContent(a.guiManager.GetMainContainer())
	a.window.Show()

	a.logger.Info("Application", "GUI displayed", nil)
	a.fyneApp.Run()

	return nil
}

// Quit ends the application from outside the event loop, used by the
// signal handler.
func (a *Application) Quit() {
	a.lifecycle.Shutdown()
	fyne.Do(func() {
		a.fyneApp.Quit()
	})
}

package app

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"

	"ccplot-gui/internal/ccplot"
	"ccplot-gui/internal/config"
	"ccplot-gui/internal/granule"
	"ccplot-gui/internal/gui"
	"ccplot-gui/internal/logger"
)

// Handlers implement the user actions: open granule, plot, save plot.
// Blocking work (HDF reads, the ccplot subprocess) runs on background
// goroutines; results come back through the GUI manager, which wraps
// widget updates in fyne.Do.
type Handlers struct {
	ctx        context.Context
	cfg        config.Config
	repository *granule.Repository
	runner     *ccplot.Runner
	guiManager *gui.Manager
	logger     logger.Logger
}

func NewHandlers(
	ctx context.Context,
	cfg config.Config,
	repo *granule.Repository,
	runner *ccplot.Runner,
	gm *gui.Manager,
	log logger.Logger,
) *Handlers {
	return &Handlers{
		ctx:        ctx,
		cfg:        cfg,
		repository: repo,
		runner:     runner,
		guiManager: gm,
		logger:     log,
	}
}

func (h *Handlers) HandleOpenFile() {
	fileDialog := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			h.guiManager.ShowError(err)
			return
		}
		if reader == nil {
			return
		}

		path := reader.URI().Path()
		reader.Close()

		h.guiManager.UpdateStatus("Loading granule...")
		go h.OpenPath(path)
	}, h.guiManager.GetWindow())

	fileDialog.SetFilter(storage.NewExtensionFileFilter([]string{".hdf", ".HDF"}))
	fileDialog.Show()
}

// OpenPath loads a granule and binds its timeline to the controls.
// Reading the time field out of the file is preferred; when the
// container cannot be read the filename timestamps are used and an
// evenly spaced timeline is synthesized.
func (h *Handlers) OpenPath(path string) {
	basename := filepath.Base(path)
	kind := granule.DetectKind(basename)

	source := granule.TimeSourceFile
	times, err := granule.ReadTimes(path, kind)
	if err != nil {
		h.logger.Warning("Handlers", "granule unreadable, falling back to filename timestamps", map[string]interface{}{
			"path":  path,
			"error": err.Error(),
		})

		start, end, ok := granule.ParseFilenameRange(basename)
		if !ok {
			h.guiManager.UpdateStatus("Ready")
			h.guiManager.ShowError(fmt.Errorf("cannot read %s: %w", basename, err))
			return
		}
		times = granule.SynthesizeTimeline(start, end)
		source = granule.TimeSourceFilename
	}

	h.repository.SetGranule(&granule.Granule{
		Path:     path,
		Kind:     kind,
		Times:    times,
		Source:   source,
		LoadTime: time.Now(),
	})

	h.guiManager.SetGranule(path, times, source)
	h.guiManager.UpdateStatus("File loaded successfully")

	h.logger.Info("Handlers", "granule loaded", map[string]interface{}{
		"path":        path,
		"kind":        kind.String(),
		"profiles":    len(times),
		"time_source": source.String(),
	})
}

func (h *Handlers) HandlePlot() {
	g := h.repository.Granule()
	if g == nil {
		h.guiManager.ShowWarning("No File", "Open an HDF file first.")
		return
	}

	subset := h.guiManager.Subset()
	if err := subset.Validate(g.ProfileCount()); err != nil {
		h.guiManager.ShowWarning("Invalid Selection", err.Error())
		return
	}

	colormap := h.guiManager.SelectedColormap()
	if colormap == "" {
		colormap = h.cfg.Ccplot.Colormap
	}

	invocation := ccplot.Invocation{
		Output:    h.cfg.Plot.Output,
		Colormap:  ccplot.ColormapPath(h.cfg.Ccplot.ColormapDir, colormap),
		Opacity:   h.cfg.Ccplot.Opacity,
		Start:     g.Times[subset.StartIndex],
		End:       g.Times[subset.EndIndex],
		AltBottom: subset.AltBottom,
		AltTop:    subset.AltTop,
		Product:   h.productFor(g.Kind),
		Input:     g.Path,
	}

	h.guiManager.SetBusy(true)
	h.guiManager.SetProgress(0.3)
	h.guiManager.UpdateStatus("Running ccplot...")

	go h.renderPlot(invocation)
}

func (h *Handlers) renderPlot(invocation ccplot.Invocation) {
	elapsed, err := h.runner.Render(h.ctx, invocation)
	if err != nil {
		h.guiManager.SetProgress(0)
		h.guiManager.SetBusy(false)
		h.guiManager.UpdateStatus("Plot failed")
		h.guiManager.ShowError(err)
		return
	}

	img, err := loadPNG(invocation.Output)
	if err != nil {
		h.guiManager.SetProgress(0)
		h.guiManager.SetBusy(false)
		h.guiManager.UpdateStatus("Plot failed")
		h.guiManager.ShowError(fmt.Errorf("read rendered plot: %w", err))
		return
	}

	h.repository.AddPlot(granule.PlotRecord{
		Output:     invocation.Output,
		Product:    invocation.Product,
		Start:      invocation.Start,
		End:        invocation.End,
		RenderTime: elapsed,
		When:       time.Now(),
	})

	h.guiManager.SetPlotImage(img)
	h.guiManager.SetProgress(1)
	h.guiManager.SetBusy(false)
	h.guiManager.UpdateStatus("Plot generated successfully")
}

func (h *Handlers) HandleSavePlot() {
	lastPlot := h.repository.LastPlot()
	if lastPlot == "" {
		h.guiManager.ShowWarning("No Plot", "Generate a plot first.")
		return
	}

	saveDialog := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			h.guiManager.ShowError(err)
			return
		}
		if writer == nil {
			return
		}

		h.guiManager.UpdateStatus("Saving plot...")
		go h.copyPlot(lastPlot, writer)
	}, h.guiManager.GetWindow())

	saveDialog.SetFileName("plot.png")
	saveDialog.SetFilter(storage.NewExtensionFileFilter([]string{".png"}))
	saveDialog.Show()
}

func (h *Handlers) copyPlot(src string, dst fyne.URIWriteCloser) {
	defer dst.Close()

	in, err := os.Open(src)
	if err != nil {
		h.guiManager.UpdateStatus("Save failed")
		h.guiManager.ShowError(fmt.Errorf("open plot: %w", err))
		return
	}
	defer in.Close()

	if _, err := io.Copy(dst, in); err != nil {
		h.guiManager.UpdateStatus("Save failed")
		h.guiManager.ShowError(fmt.Errorf("copy plot: %w", err))
		return
	}

	h.guiManager.UpdateStatus("Plot saved to " + dst.URI().Path())
	h.logger.Info("Handlers", "plot saved", map[string]interface{}{
		"source":      src,
		"destination": dst.URI().Path(),
	})
}

// productFor maps the granule convention to a ccplot product name.
// Unknown granules get the CALIPSO product, matching the behavior of
// plotting any loaded file as calipso532.
func (h *Handlers) productFor(kind granule.Kind) string {
	if kind == granule.KindCloudsat {
		return h.cfg.Plot.CloudsatProduct
	}
	return h.cfg.Plot.CalipsoProduct
}

func loadPNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return png.Decode(f)
}

package granule

import (
	"sync"
	"time"
)

// PlotRecord describes one completed ccplot invocation.
type PlotRecord struct {
	Output     string
	Product    string
	Start      time.Time
	End        time.Time
	RenderTime time.Duration
	When       time.Time
}

// Repository holds the currently loaded granule and the rendered plot
// history. All access is mutex-guarded because loading and plotting
// happen on background goroutines while the UI reads state.
type Repository struct {
	mu          sync.RWMutex
	current     *Granule
	lastPlot    string
	plotHistory []PlotRecord
	maxHistory  int
}

func NewRepository() *Repository {
	return &Repository{
		plotHistory: make([]PlotRecord, 0),
		maxHistory:  10,
	}
}

// SetGranule replaces the loaded granule. The previous granule and any
// plot made from it are forgotten.
func (r *Repository) SetGranule(g *Granule) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.current = g
	r.lastPlot = ""
}

func (r *Repository) Granule() *Granule {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

// AddPlot records a completed render and remembers its output path for
// save-as.
func (r *Repository) AddPlot(rec PlotRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastPlot = rec.Output
	r.plotHistory = append(r.plotHistory, rec)
	if len(r.plotHistory) > r.maxHistory {
		r.plotHistory = r.plotHistory[1:]
	}
}

// LastPlot returns the output path of the most recent render, or the
// empty string when nothing has been plotted for the current granule.
func (r *Repository) LastPlot() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lastPlot
}

func (r *Repository) PlotHistory() []PlotRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()

	history := make([]PlotRecord, len(r.plotHistory))
	copy(history, r.plotHistory)
	return history
}

func (r *Repository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.current = nil
	r.lastPlot = ""
	r.plotHistory = r.plotHistory[:0]
}

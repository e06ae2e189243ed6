package ccplot

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"ccplot-gui/internal/logger"
)

// Runner executes ccplot invocations and turns non-zero exits into
// errors carrying the tool's stderr text, which is what the user sees.
type Runner struct {
	binary string
	logger logger.Logger
}

func NewRunner(binary string, log logger.Logger) *Runner {
	return &Runner{
		binary: binary,
		logger: log,
	}
}

// Render runs one blocking ccplot invocation. On success the PNG named
// by inv.Output exists on disk. The returned duration is the wall time
// of the subprocess.
func (r *Runner) Render(ctx context.Context, inv Invocation) (time.Duration, error) {
	if err := inv.Validate(); err != nil {
		return 0, err
	}

	args := inv.Args()
	r.logger.Info("Runner", "invoking ccplot", map[string]interface{}{
		"binary":  r.binary,
		"command": strings.Join(append([]string{r.binary}, args...), " "),
	})

	cmd := exec.CommandContext(ctx, r.binary, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	started := time.Now()
	err := cmd.Run()
	elapsed := time.Since(started)

	if err != nil {
		r.logger.Error("Runner", err, map[string]interface{}{
			"elapsed": elapsed.String(),
			"stderr":  stderr.String(),
		})
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return elapsed, fmt.Errorf("ccplot failed: %s", msg)
		}
		return elapsed, fmt.Errorf("ccplot failed: %w", err)
	}

	r.logger.Info("Runner", "ccplot finished", map[string]interface{}{
		"output":  inv.Output,
		"elapsed": elapsed.String(),
	})
	return elapsed, nil
}

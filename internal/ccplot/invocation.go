// Package ccplot builds and runs invocations of the external ccplot
// plotting tool. The tool is an opaque collaborator: this package only
// assembles its command line, launches it, and reports its exit state.
package ccplot

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

// Invocation describes a single ccplot run. All fields are required.
type Invocation struct {
	Output    string
	Colormap  string
	Opacity   int
	Start     time.Time
	End       time.Time
	AltBottom int
	AltTop    int
	Product   string
	Input     string
}

// Validate checks the fields ccplot cannot be called without. Subset
// ordering is enforced earlier, at selection time; this is the last
// line of defense before spawning the process.
func (inv Invocation) Validate() error {
	switch {
	case inv.Output == "":
		return errors.New("invocation has no output path")
	case inv.Colormap == "":
		return errors.New("invocation has no colormap")
	case inv.Product == "":
		return errors.New("invocation has no product name")
	case inv.Input == "":
		return errors.New("invocation has no input granule")
	case !inv.Start.Before(inv.End):
		return fmt.Errorf("time range %s..%s is empty", formatTime(inv.Start), formatTime(inv.End))
	case inv.AltBottom >= inv.AltTop:
		return fmt.Errorf("altitude range %d..%d is empty", inv.AltBottom, inv.AltTop)
	}
	return nil
}

// Args assembles the ccplot argument list:
//
//	-o OUT -c CMAP -a OPACITY -x HH:MM:SS..HH:MM:SS -y LOW..HIGH PRODUCT INPUT
func (inv Invocation) Args() []string {
	return []string{
		"-o", inv.Output,
		"-c", inv.Colormap,
		"-a", strconv.Itoa(inv.Opacity),
		"-x", inv.TimeRange(),
		"-y", inv.AltitudeRange(),
		inv.Product,
		inv.Input,
	}
}

// TimeRange renders the -x argument, times of day in UTC.
func (inv Invocation) TimeRange() string {
	return formatTime(inv.Start) + ".." + formatTime(inv.End)
}

// AltitudeRange renders the -y argument in meters.
func (inv Invocation) AltitudeRange() string {
	return strconv.Itoa(inv.AltBottom) + ".." + strconv.Itoa(inv.AltTop)
}

func formatTime(t time.Time) string {
	return t.UTC().Format("15:04:05")
}

package ccplot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInvocation() Invocation {
	return Invocation{
		Output:    "/tmp/ccplot-gui.png",
		Colormap:  "/usr/share/ccplot/cmap/calipso-backscatter.cmap",
		Opacity:   30,
		Start:     time.Date(2007, time.June, 12, 3, 42, 18, 0, time.UTC),
		End:       time.Date(2007, time.June, 12, 3, 47, 18, 0, time.UTC),
		AltBottom: 0,
		AltTop:    30000,
		Product:   "calipso532",
		Input:     "/data/CAL_LID_L1-ValStage1-V3-01.2007-06-12T03-42-18ZN.hdf",
	}
}

func TestInvocationArgs(t *testing.T) {
	inv := validInvocation()

	assert.Equal(t, []string{
		"-o", "/tmp/ccplot-gui.png",
		"-c", "/usr/share/ccplot/cmap/calipso-backscatter.cmap",
		"-a", "30",
		"-x", "03:42:18..03:47:18",
		"-y", "0..30000",
		"calipso532",
		"/data/CAL_LID_L1-ValStage1-V3-01.2007-06-12T03-42-18ZN.hdf",
	}, inv.Args())
}

func TestTimeRangeZeroPadded(t *testing.T) {
	inv := validInvocation()
	inv.Start = time.Date(2006, time.August, 12, 1, 2, 3, 0, time.UTC)
	inv.End = time.Date(2006, time.August, 12, 9, 8, 7, 0, time.UTC)

	assert.Equal(t, "01:02:03..09:08:07", inv.TimeRange())
}

func TestTimeRangeNormalizesToUTC(t *testing.T) {
	inv := validInvocation()
	loc := time.FixedZone("UTC+2", 2*3600)
	inv.Start = time.Date(2007, time.June, 12, 5, 42, 18, 0, loc)
	inv.End = time.Date(2007, time.June, 12, 5, 47, 18, 0, loc)

	assert.Equal(t, "03:42:18..03:47:18", inv.TimeRange())
}

func TestInvocationValidate(t *testing.T) {
	require.NoError(t, validInvocation().Validate())

	tests := []struct {
		name   string
		mutate func(*Invocation)
	}{
		{"missing output", func(inv *Invocation) { inv.Output = "" }},
		{"missing colormap", func(inv *Invocation) { inv.Colormap = "" }},
		{"missing product", func(inv *Invocation) { inv.Product = "" }},
		{"missing input", func(inv *Invocation) { inv.Input = "" }},
		{"equal times", func(inv *Invocation) { inv.End = inv.Start }},
		{"inverted times", func(inv *Invocation) { inv.Start, inv.End = inv.End, inv.Start }},
		{"empty altitude range", func(inv *Invocation) { inv.AltBottom = inv.AltTop }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := validInvocation()
			tt.mutate(&inv)
			assert.Error(t, inv.Validate())
		})
	}
}

// Package granule models a loaded CALIPSO/CloudSat HDF granule: its
// path, data convention, and the ordered per-profile timestamp
// sequence used for time subsetting.
package granule

import (
	"strings"
	"time"
)

// Kind identifies the data convention of a granule.
type Kind int

const (
	KindUnknown Kind = iota
	KindCalipso
	KindCloudsat
)

func (k Kind) String() string {
	switch k {
	case KindCalipso:
		return "calipso"
	case KindCloudsat:
		return "cloudsat"
	default:
		return "unknown"
	}
}

// TimeSource records how the timeline was obtained.
type TimeSource int

const (
	// TimeSourceFile means the timestamps were read out of the
	// granule's time field.
	TimeSourceFile TimeSource = iota
	// TimeSourceFilename means the granule could not be opened and the
	// timeline was synthesized from the filename timestamps.
	TimeSourceFilename
)

func (s TimeSource) String() string {
	if s == TimeSourceFilename {
		return "filename"
	}
	return "file"
}

// Granule is a loaded data file together with its derived timeline.
// Times is ordered and has at least two entries.
type Granule struct {
	Path     string
	Kind     Kind
	Times    []time.Time
	Source   TimeSource
	LoadTime time.Time
}

func (g *Granule) ProfileCount() int {
	return len(g.Times)
}

func (g *Granule) StartTime() time.Time {
	return g.Times[0]
}

func (g *Granule) EndTime() time.Time {
	return g.Times[len(g.Times)-1]
}

// DetectKind classifies a granule by its base filename, the same way
// ccplot's own GUI distinguished the two conventions.
func DetectKind(basename string) Kind {
	switch {
	case strings.HasPrefix(basename, "CAL_LID"):
		return KindCalipso
	case strings.Contains(basename, "2B-GEOPROF"):
		return KindCloudsat
	default:
		return KindUnknown
	}
}

// SynthesizeTimeline builds an evenly spaced timeline between start
// and end, one entry per second of span (minimum two entries). Used
// when the granule itself cannot be read and only the filename
// timestamps are known.
func SynthesizeTimeline(start, end time.Time) []time.Time {
	span := end.Sub(start)
	if span <= 0 {
		return []time.Time{start, start.Add(time.Second)}
	}

	n := int(span/time.Second) + 1
	if n < 2 {
		n = 2
	}

	step := span / time.Duration(n-1)
	times := make([]time.Time, n)
	for i := 0; i < n-1; i++ {
		times[i] = start.Add(step * time.Duration(i))
	}
	times[n-1] = end
	return times
}

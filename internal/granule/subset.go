package granule

import "fmt"

// Subset is the user's time/altitude selection, consumed only at plot
// time. Indices address the granule timeline; altitudes are meters.
type Subset struct {
	StartIndex int
	EndIndex   int
	AltBottom  int
	AltTop     int
}

// Validate enforces the selection invariants before the external tool
// is invoked: start strictly before end on both axes, indices within
// the timeline.
func (s Subset) Validate(profileCount int) error {
	if s.StartIndex < 0 || s.EndIndex >= profileCount {
		return fmt.Errorf("profile selection %d..%d outside 0..%d", s.StartIndex, s.EndIndex, profileCount-1)
	}
	if s.StartIndex >= s.EndIndex {
		return fmt.Errorf("end profile must be after start profile (got %d..%d)", s.StartIndex, s.EndIndex)
	}
	if s.AltBottom >= s.AltTop {
		return fmt.Errorf("top altitude must be above bottom altitude (got %dm..%dm)", s.AltBottom, s.AltTop)
	}
	return nil
}

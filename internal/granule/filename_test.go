package granule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFilenameRangeCalipso(t *testing.T) {
	start, end, ok := ParseFilenameRange("CAL_LID_L1-ValStage1-V3-01.2007-06-12T03-42-18ZN.hdf")

	require.True(t, ok)
	assert.Equal(t, time.Date(2007, time.June, 12, 3, 42, 18, 0, time.UTC), start)
	assert.Equal(t, time.Date(2007, time.June, 12, 3, 47, 18, 0, time.UTC), end)
}

func TestParseFilenameRangeCloudsat(t *testing.T) {
	start, end, ok := ParseFilenameRange("2006224184641_01550_CS_2B-GEOPROF.hdf")

	require.True(t, ok)
	// Day 224 of 2006 is August 12th.
	assert.Equal(t, time.Date(2006, time.August, 12, 18, 46, 41, 0, time.UTC), start)
	assert.Equal(t, start.Add(2*time.Minute), end)
}

func TestParseFilenameRangeUnrecognized(t *testing.T) {
	tests := []string{
		"",
		"random.hdf",
		"CAL_LID_L1-no-timestamp.hdf",
		"2006224184641_01550_CS_2B-GEOPROF.nc", // wrong extension
		"20062241846_01550_CS_2B-GEOPROF.hdf",  // truncated digits
		"calipso_test1.png",
	}

	for _, name := range tests {
		t.Run(name, func(t *testing.T) {
			_, _, ok := ParseFilenameRange(name)
			assert.False(t, ok)
		})
	}
}

func TestParseFilenameRangeStartBeforeEnd(t *testing.T) {
	names := []string{
		"CAL_LID_L1-ValStage1-V3-01.2007-06-12T03-42-18ZN.hdf",
		"2006224184641_01550_CS_2B-GEOPROF.hdf",
	}

	for _, name := range names {
		start, end, ok := ParseFilenameRange(name)
		require.True(t, ok)
		assert.True(t, start.Before(end))
	}
}

func TestDetectKind(t *testing.T) {
	tests := []struct {
		name string
		want Kind
	}{
		{"CAL_LID_L1-ValStage1-V3-01.2007-06-12T03-42-18ZN.hdf", KindCalipso},
		{"2006224184641_01550_CS_2B-GEOPROF.hdf", KindCloudsat},
		{"observations.hdf", KindUnknown},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DetectKind(tt.name), tt.name)
	}
}

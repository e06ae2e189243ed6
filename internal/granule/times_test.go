package granule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalipsoTime(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  time.Time
	}{
		{"midnight", 70612.0, time.Date(2007, time.June, 12, 0, 0, 0, 0, time.UTC)},
		{"noon", 70612.5, time.Date(2007, time.June, 12, 12, 0, 0, 0, time.UTC)},
		{"quarter day", 60812.25, time.Date(2006, time.August, 12, 6, 0, 0, 0, time.UTC)},
		{"year boundary", 100101.0, time.Date(2010, time.January, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalipsoTime(tt.value)
			assert.WithinDuration(t, tt.want, got, time.Millisecond)
		})
	}
}

func TestCalipsoTimeMonotonicOverFractions(t *testing.T) {
	prev := CalipsoTime(70612.0)
	for frac := 0.01; frac < 1.0; frac += 0.01 {
		cur := CalipsoTime(70612.0 + frac)
		assert.True(t, prev.Before(cur))
		prev = cur
	}
}

func TestCloudsatTime(t *testing.T) {
	start := time.Date(2006, time.August, 12, 18, 46, 41, 0, time.UTC)

	assert.Equal(t, start, CloudsatTime(start, 0))
	assert.Equal(t, start.Add(90*time.Second), CloudsatTime(start, 90))
	assert.WithinDuration(t, start.Add(1500*time.Millisecond), CloudsatTime(start, 1.5), time.Millisecond)
}

func TestFirstColumn(t *testing.T) {
	col, err := firstColumn([][]float64{{1.5, 9}, {2.5, 9}, {3.5, 9}})
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, 2.5, 3.5}, col)

	col, err = firstColumn([][]float32{{1}, {2}})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, col)

	_, err = firstColumn([]float64{1, 2, 3})
	assert.Error(t, err)

	_, err = firstColumn([][]float64{{}})
	assert.Error(t, err)
}

func TestFloatVector(t *testing.T) {
	vec, err := floatVector([]float32{0, 0.5, 1})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.5, 1}, vec)

	_, err = floatVector("not numbers")
	assert.Error(t, err)
}

func TestReadTimesRejectsUnreadableFile(t *testing.T) {
	_, err := ReadTimes("testdata/does-not-exist.hdf", KindCalipso)
	assert.Error(t, err)
}

func TestSynthesizeTimeline(t *testing.T) {
	start := time.Date(2007, time.June, 12, 3, 42, 18, 0, time.UTC)
	end := start.Add(5 * time.Minute)

	times := SynthesizeTimeline(start, end)

	require.GreaterOrEqual(t, len(times), 2)
	assert.Equal(t, start, times[0])
	assert.Equal(t, end, times[len(times)-1])
	for i := 1; i < len(times); i++ {
		assert.True(t, times[i-1].Before(times[i]))
	}
}

func TestSynthesizeTimelineDegenerateSpan(t *testing.T) {
	start := time.Date(2007, time.June, 12, 3, 42, 18, 0, time.UTC)

	times := SynthesizeTimeline(start, start)

	require.Len(t, times, 2)
	assert.True(t, times[0].Before(times[1]))
}

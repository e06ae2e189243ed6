package granule

import (
	"regexp"
	"strconv"
	"time"
)

// The two filename conventions carrying a start timestamp. CALIPSO
// granules embed an ISO-like UTC datetime, CloudSat granules a 4-digit
// year, 3-digit day-of-year, and 6-digit time-of-day.
var (
	calipsoNamePattern  = regexp.MustCompile(`^CAL_LID_.*(\d{4})-(\d{2})-(\d{2})T(\d{2})-(\d{2})-(\d{2})Z.*\.hdf$`)
	cloudsatNamePattern = regexp.MustCompile(`^(\d{7})(\d{6})_.*CS_2B-.*\.hdf$`)
)

// Neither convention encodes the granule's end time, so it is guessed
// with a fixed span per convention.
const (
	calipsoGuessSpan  = 5 * time.Minute
	cloudsatGuessSpan = 2 * time.Minute
)

// ParseFilenameRange extracts a start/end time range from a granule's
// base filename. The end time is the start plus the convention's
// guessed span. ok is false when the name matches neither convention;
// there is no other failure mode.
func ParseFilenameRange(basename string) (start, end time.Time, ok bool) {
	if m := calipsoNamePattern.FindStringSubmatch(basename); m != nil {
		start = time.Date(
			atoi(m[1]), time.Month(atoi(m[2])), atoi(m[3]),
			atoi(m[4]), atoi(m[5]), atoi(m[6]),
			0, time.UTC,
		)
		return start, start.Add(calipsoGuessSpan), true
	}

	if m := cloudsatNamePattern.FindStringSubmatch(basename); m != nil {
		year := atoi(m[1][:4])
		dayOfYear := atoi(m[1][4:])
		start = time.Date(
			year, time.January, 1,
			atoi(m[2][:2]), atoi(m[2][2:4]), atoi(m[2][4:]),
			0, time.UTC,
		).AddDate(0, 0, dayOfYear-1)
		return start, start.Add(cloudsatGuessSpan), true
	}

	return time.Time{}, time.Time{}, false
}

// atoi is safe here: the patterns only capture digit runs.
func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

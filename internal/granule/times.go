package granule

import (
	"fmt"
	"time"

	"github.com/batchatco/go-native-netcdf/netcdf"
	"github.com/batchatco/go-native-netcdf/netcdf/api"
)

const (
	calipsoTimeField  = "Profile_UTC_Time"
	cloudsatTimeField = "Profile_time"
	cloudsatSwath     = "2B-GEOPROF"
	cloudsatStartAttr = "start_time"
)

// ReadTimes extracts the per-profile timestamp sequence from a granule
// file. CALIPSO granules carry a two-dimensional Profile_UTC_Time
// field whose first column holds yymmdd.fraction-of-day values;
// CloudSat granules carry a start_time attribute plus relative
// Profile_time offsets in seconds. Returns an error when the container
// cannot be opened or the expected field is missing; callers fall back
// to the filename timestamps in that case.
func ReadTimes(path string, kind Kind) ([]time.Time, error) {
	group, err := netcdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open granule: %w", err)
	}
	defer group.Close()

	switch kind {
	case KindCalipso:
		return readCalipsoTimes(group)
	case KindCloudsat:
		return readCloudsatTimes(group)
	default:
		return nil, fmt.Errorf("unsupported granule kind %q", kind)
	}
}

func readCalipsoTimes(group api.Group) ([]time.Time, error) {
	v, err := group.GetVariable(calipsoTimeField)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", calipsoTimeField, err)
	}

	column, err := firstColumn(v.Values)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", calipsoTimeField, err)
	}
	if len(column) < 2 {
		return nil, fmt.Errorf("%s holds %d profiles, need at least 2", calipsoTimeField, len(column))
	}

	times := make([]time.Time, len(column))
	for i, t := range column {
		times[i] = CalipsoTime(t)
	}
	return times, nil
}

func readCloudsatTimes(group api.Group) ([]time.Time, error) {
	swath, err := group.GetGroup(cloudsatSwath)
	if err != nil {
		// Converted granules sometimes flatten the swath into the root
		// group.
		swath = group
	} else {
		defer swath.Close()
	}

	raw, has := swath.Attributes().Get(cloudsatStartAttr)
	if !has {
		return nil, fmt.Errorf("granule has no %s attribute", cloudsatStartAttr)
	}
	attr, ok := raw.(string)
	if !ok {
		return nil, fmt.Errorf("%s attribute is %T, want string", cloudsatStartAttr, raw)
	}
	start, err := time.ParseInLocation("20060102150405", attr, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", cloudsatStartAttr, err)
	}

	v, err := swath.GetVariable(cloudsatTimeField)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", cloudsatTimeField, err)
	}

	offsets, err := floatVector(v.Values)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", cloudsatTimeField, err)
	}
	if len(offsets) < 2 {
		return nil, fmt.Errorf("%s holds %d profiles, need at least 2", cloudsatTimeField, len(offsets))
	}

	times := make([]time.Time, len(offsets))
	for i, off := range offsets {
		times[i] = CloudsatTime(start, off)
	}
	return times, nil
}

// CalipsoTime converts a CALIPSO Profile_UTC_Time value of the form
// yymmdd.fraction-of-day to a UTC timestamp. Years are relative to
// 2000.
func CalipsoTime(t float64) time.Time {
	whole := int(t)
	day := whole % 100
	month := (whole / 100) % 100
	year := 2000 + whole/10000

	frac := t - float64(whole)
	base := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return base.Add(time.Duration(frac * 24 * float64(time.Hour)))
}

// CloudsatTime converts a CloudSat Profile_time offset in seconds,
// relative to the swath's start_time, to a UTC timestamp.
func CloudsatTime(start time.Time, seconds float64) time.Time {
	return start.Add(time.Duration(seconds * float64(time.Second)))
}

// firstColumn extracts column 0 of a two-dimensional numeric variable
// as float64.
func firstColumn(values interface{}) ([]float64, error) {
	switch rows := values.(type) {
	case [][]float64:
		out := make([]float64, 0, len(rows))
		for _, row := range rows {
			if len(row) == 0 {
				return nil, fmt.Errorf("empty row in time field")
			}
			out = append(out, row[0])
		}
		return out, nil
	case [][]float32:
		out := make([]float64, 0, len(rows))
		for _, row := range rows {
			if len(row) == 0 {
				return nil, fmt.Errorf("empty row in time field")
			}
			out = append(out, float64(row[0]))
		}
		return out, nil
	default:
		return nil, fmt.Errorf("time field is %T, want a 2-D float array", values)
	}
}

// floatVector coerces a one-dimensional numeric variable to float64.
func floatVector(values interface{}) ([]float64, error) {
	switch vals := values.(type) {
	case []float64:
		return vals, nil
	case []float32:
		out := make([]float64, len(vals))
		for i, v := range vals {
			out[i] = float64(v)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("time field is %T, want a 1-D float array", values)
	}
}

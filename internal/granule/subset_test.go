package granule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubsetValidate(t *testing.T) {
	tests := []struct {
		name     string
		subset   Subset
		profiles int
		wantErr  bool
	}{
		{"valid", Subset{StartIndex: 0, EndIndex: 99, AltBottom: 0, AltTop: 30000}, 100, false},
		{"adjacent indices", Subset{StartIndex: 4, EndIndex: 5, AltBottom: 0, AltTop: 1}, 100, false},
		{"equal indices", Subset{StartIndex: 5, EndIndex: 5, AltBottom: 0, AltTop: 30000}, 100, true},
		{"inverted indices", Subset{StartIndex: 9, EndIndex: 3, AltBottom: 0, AltTop: 30000}, 100, true},
		{"end out of range", Subset{StartIndex: 0, EndIndex: 100, AltBottom: 0, AltTop: 30000}, 100, true},
		{"negative start", Subset{StartIndex: -1, EndIndex: 10, AltBottom: 0, AltTop: 30000}, 100, true},
		{"equal altitudes", Subset{StartIndex: 0, EndIndex: 1, AltBottom: 5000, AltTop: 5000}, 100, true},
		{"inverted altitudes", Subset{StartIndex: 0, EndIndex: 1, AltBottom: 20000, AltTop: 100}, 100, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.subset.Validate(tt.profiles)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

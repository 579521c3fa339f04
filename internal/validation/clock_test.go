package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinuteOfDay(t *testing.T) {
	tests := []struct {
		raw  string
		want int
		ok   bool
	}{
		{"08:30", 510, true},
		{"14:00", 840, true},
		{"09:15:00", 555, true},
		{"8:00 PM", 1200, true},
		{"8:00 pm", 1200, true},
		{"8PM", 1200, true},
		{"3 PM", 900, true},
		{"12:00 AM", 0, true},
		{"12:00 PM", 720, true},
		{"9:00 AM - 11:00 AM", 540, true},
		{"14:00 to 16:00", 840, true},
		{"9:00 AM – 11:00 AM", 540, true},
		{"morning", 0, false},
		{"", 0, false},
		{"after lunch", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := MinuteOfDay(tt.raw)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "20:00", FormatClock(1200))
	assert.Equal(t, "00:00", FormatClock(0))
	assert.Equal(t, "23:30", FormatClock(-30))
	assert.Equal(t, "01:00", FormatClock(25*60))
}

func TestMinuteGap(t *testing.T) {
	assert.Equal(t, 15, minuteGap(1200, 1215))
	assert.Equal(t, 15, minuteGap(1215, 1200))
	assert.Equal(t, 0, minuteGap(540, 540))
}

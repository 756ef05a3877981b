package validation

import (
	"testing"
	"time"

	"github.com/aminakh/trk/internal/models"
)

func TestParseWeekdays(t *testing.T) {
	tests := []struct {
		spec    string
		want    models.Schedule
		wantErr bool
	}{
		{"", nil, false},
		{"mon", models.Schedule{time.Monday}, false},
		{"mon,wed,fri", models.Schedule{time.Monday, time.Wednesday, time.Friday}, false},
		{"Friday, Monday", models.Schedule{time.Monday, time.Friday}, false},
		{"mon,mon", models.Schedule{time.Monday}, false},
		{"weekends", models.Schedule{time.Saturday, time.Sunday}, false},
		{"weekdays", models.Schedule{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday}, false},
		{"funday", nil, true},
	}

	for _, tt := range tests {
		got, err := ParseWeekdays(tt.spec)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseWeekdays(%q) expected error", tt.spec)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseWeekdays(%q) error = %v", tt.spec, err)
			continue
		}
		if len(got) != len(tt.want) {
			t.Errorf("ParseWeekdays(%q) = %v, want %v", tt.spec, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("ParseWeekdays(%q)[%d] = %v, want %v", tt.spec, i, got[i], tt.want[i])
			}
		}
	}
}

func TestParseWeekdaysDaily(t *testing.T) {
	got, err := ParseWeekdays("daily")
	if err != nil {
		t.Fatalf("ParseWeekdays(daily) error = %v", err)
	}
	if len(got) != 7 {
		t.Errorf("daily schedule has %d weekdays, want 7", len(got))
	}
}

func TestFormatWeekdays(t *testing.T) {
	if got := FormatWeekdays(nil); got != "-" {
		t.Errorf("FormatWeekdays(nil) = %q, want -", got)
	}
	schedule := models.Schedule{time.Monday, time.Wednesday, time.Friday}
	if got := FormatWeekdays(schedule); got != "Mon, Wed, Fri" {
		t.Errorf("FormatWeekdays() = %q", got)
	}
}

package reservation

import (
	"testing"
	"time"

	"github.com/lotusspa/salon-scheduler/internal/httperr"
)

func at(h int) time.Time {
	return time.Date(2026, 9, 1, h, 0, 0, 0, time.UTC)
}

func TestWindowValidate(t *testing.T) {
	now := at(8)

	tests := []struct {
		name     string
		win      Window
		wantCode string
	}{
		{"valid future window", Window{From: at(10), To: at(11)}, ""},
		{"empty window", Window{From: at(10), To: at(10)}, "invalid_time_range"},
		{"inverted window", Window{From: at(11), To: at(10)}, "invalid_time_range"},
		{"starts exactly now", Window{From: at(8), To: at(9)}, "time_in_past"},
		{"starts in the past", Window{From: at(7), To: at(9)}, "time_in_past"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.win.Validate(now)
			if got := httperr.BusinessCode(err); got != tt.wantCode {
				t.Errorf("Validate() code = %q, want %q", got, tt.wantCode)
			}
		})
	}
}

func TestWindowOverlaps(t *testing.T) {
	base := Window{From: at(10), To: at(12)}

	tests := []struct {
		name  string
		other Window
		want  bool
	}{
		{"identical", Window{From: at(10), To: at(12)}, true},
		{"contained", Window{From: at(10).Add(30 * time.Minute), To: at(11)}, true},
		{"containing", Window{From: at(9), To: at(13)}, true},
		{"overlaps start", Window{From: at(9), To: at(11)}, true},
		{"overlaps end", Window{From: at(11), To: at(13)}, true},
		{"adjacent before", Window{From: at(8), To: at(10)}, false},
		{"adjacent after", Window{From: at(12), To: at(14)}, false},
		{"disjoint before", Window{From: at(6), To: at(7)}, false},
		{"disjoint after", Window{From: at(14), To: at(15)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Overlaps(tt.other); got != tt.want {
				t.Errorf("Overlaps() = %v, want %v", got, tt.want)
			}
			// Overlap is symmetric.
			if got := tt.other.Overlaps(base); got != tt.want {
				t.Errorf("Overlaps() reversed = %v, want %v", got, tt.want)
			}
		})
	}
}

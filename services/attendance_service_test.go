package services

import (
	"testing"
	"time"
)

func TestIsLate(t *testing.T) {
	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		t.Fatalf("không load được timezone: %v", err)
	}

	tests := []struct {
		name string
		in   time.Time
		want bool
	}{
		{"trước giờ làm", time.Date(2026, 3, 2, 7, 45, 0, 0, loc), false},
		{"đúng 8 giờ", time.Date(2026, 3, 2, 8, 0, 0, 0, loc), false},
		{"8 giờ 1 giây", time.Date(2026, 3, 2, 8, 0, 1, 0, loc), true},
		{"giữa buổi sáng", time.Date(2026, 3, 2, 9, 30, 0, 0, loc), true},
		{"nửa đêm", time.Date(2026, 3, 2, 0, 0, 0, 0, loc), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsLate(tt.in); got != tt.want {
				t.Errorf("IsLate(%v) = %v, muốn %v", tt.in, got, tt.want)
			}
		})
	}
}

// Giờ UTC phải được quy về giờ Jakarta trước khi so với giờ vào ca.
func TestIsLateConvertsTimezone(t *testing.T) {
	// 00:30 UTC = 07:30 Jakarta (UTC+7)
	early := time.Date(2026, 3, 2, 0, 30, 0, 0, time.UTC)
	if IsLate(early) {
		t.Error("07:30 giờ Jakarta chưa trễ")
	}

	// 02:00 UTC = 09:00 Jakarta
	late := time.Date(2026, 3, 2, 2, 0, 0, 0, time.UTC)
	if !IsLate(late) {
		t.Error("09:00 giờ Jakarta là trễ")
	}
}

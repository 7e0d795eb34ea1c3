package clock

import (
	"testing"
	"time"
)

func TestDescribe(t *testing.T) {
	c := New()
	start := time.Date(2021, time.July, 4, 18, 15, 0, 0, time.UTC)
	end := time.Date(2021, time.July, 4, 21, 2, 0, 0, time.UTC)

	tests := []struct {
		name string
		in   Stamps
		want Display
	}{
		{
			name: "nothing known",
			in:   Stamps{Zone: "America/Chicago"},
			want: Display{},
		},
		{
			name: "start and end",
			in:   Stamps{Start: start, End: end, Zone: "America/Chicago"},
			want: Display{Known: true, Range: true, Date: "Sun Jul 04 2021", Start: "1:15 PM", End: "4:02 PM", Zone: "CDT"},
		},
		{
			name: "scheduled only",
			in:   Stamps{Expected: start, Zone: "America/Los_Angeles"},
			want: Display{Known: true, Date: "Sun Jul 04 2021", Start: "11:15 AM", Zone: "PDT"},
		},
		{
			name: "started but not finished",
			in:   Stamps{Start: start, Zone: "America/Chicago"},
			want: Display{Known: true, Date: "Sun Jul 04 2021", Start: "1:15 PM", Zone: "CDT"},
		},
		{
			name: "placeholder 23:33 eastern",
			in:   Stamps{Expected: time.Date(2021, time.July, 5, 3, 33, 0, 0, time.UTC), Zone: "America/New_York"},
			want: Display{Known: true, TimeUnknown: true, Date: "Sun Jul 04 2021"},
		},
		{
			name: "placeholder midnight eastern",
			in:   Stamps{Start: time.Date(2021, time.July, 5, 4, 0, 0, 0, time.UTC), End: end, Zone: "America/New_York"},
			want: Display{Known: true, TimeUnknown: true, Date: "Mon Jul 05 2021"},
		},
		{
			name: "unknown zone falls back to UTC",
			in:   Stamps{Expected: start, Zone: "Mars/Olympus_Mons"},
			want: Display{Known: true, Date: "Sun Jul 04 2021", Start: "6:15 PM", Zone: "UTC"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Describe(tt.in); got != tt.want {
				t.Errorf("Describe() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestIsPlaceholder(t *testing.T) {
	tests := []struct {
		h, m int
		want bool
	}{
		{23, 33, true},
		{0, 0, true},
		{23, 34, false},
		{19, 5, false},
		{0, 1, false},
	}
	for _, tt := range tests {
		ts := time.Date(2021, time.July, 4, tt.h, tt.m, 0, 0, time.UTC)
		if got := IsPlaceholder(ts); got != tt.want {
			t.Errorf("IsPlaceholder(%02d:%02d) = %v, want %v", tt.h, tt.m, got, tt.want)
		}
	}
}

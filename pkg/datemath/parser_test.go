package datemath_test

import (
	"testing"
	"time"

	"personal-task-tracker/pkg/datemath"
)

func TestNewParser(t *testing.T) {
	_, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}

	_, err = datemath.NewParser("Invalid/Timezone")
	if err == nil {
		t.Fatalf("expected error for invalid timezone")
	}

	_, err = datemath.NewParser("")
	if err != nil {
		t.Fatalf("empty timezone should fall back to local: %v", err)
	}
}

func TestDueDate(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	baseTime := time.Date(2025, 11, 30, 15, 30, 0, 0, time.UTC) // Sunday, Nov 30, 2025
	startOfBase := time.Date(2025, 11, 30, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		token string
		want  time.Time
		ok    bool
	}{
		{
			name:  "Prefixed ISO date",
			token: "due:2025-12-01",
			want:  time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
			ok:    true,
		},
		{
			name:  "Bare ISO date",
			token: "2025-12-01",
			want:  time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
			ok:    true,
		},
		{
			name:  "Prefixed tomorrow",
			token: "due:tomorrow",
			want:  startOfBase.AddDate(0, 0, 1),
			ok:    true,
		},
		{
			name:  "Bare tomorrow",
			token: "tomorrow",
			want:  startOfBase.AddDate(0, 0, 1),
			ok:    true,
		},
		{
			name:  "Next week",
			token: "due:next week",
			want:  startOfBase.AddDate(0, 0, 7),
			ok:    true,
		},
		{
			name:  "Mixed case prefix",
			token: "Due:Tomorrow",
			want:  startOfBase.AddDate(0, 0, 1),
			ok:    true,
		},
		{
			name:  "Unparseable",
			token: "due:someday",
			ok:    false,
		},
		{
			name:  "Empty",
			token: "",
			ok:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parser.DueDate(tt.token, baseTime)
			if ok != tt.ok {
				t.Fatalf("DueDate() ok = %v, want %v", ok, tt.ok)
			}
			if ok && !got.Equal(tt.want) {
				t.Errorf("DueDate() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClockHour24(t *testing.T) {
	tests := []struct {
		name  string
		clock datemath.Clock
		want  int
	}{
		{"Afternoon pm", datemath.Clock{Hour: 3, Meridiem: "pm"}, 15},
		{"Noon pm stays", datemath.Clock{Hour: 12, Meridiem: "pm"}, 12},
		{"Midnight am", datemath.Clock{Hour: 12, Meridiem: "am"}, 0},
		{"Morning am", datemath.Clock{Hour: 9, Meridiem: "am"}, 9},
		{"Uppercase PM", datemath.Clock{Hour: 5, Meridiem: "PM"}, 17},
		{"No meridiem 24h", datemath.Clock{Hour: 17}, 17},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.clock.Hour24(); got != tt.want {
				t.Errorf("Hour24() got = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMerge(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	anchor := time.Date(2025, 12, 1, 8, 45, 33, 123456, time.UTC)

	got := parser.Merge(anchor, datemath.Clock{Hour: 5, Minute: 30, Meridiem: "pm"})
	want := time.Date(2025, 12, 1, 17, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("Merge() got = %v, want %v", got, want)
	}
}

package goal

import "testing"

func TestProgressPercentage(t *testing.T) {
	cases := []struct {
		name             string
		progress, target int
		want             float64
	}{
		{"halfway", 5, 10, 50},
		{"exactly done", 10, 10, 100},
		{"overshoot caps at 100", 15, 10, 100},
		{"zero target is safe", 3, 0, 0},
		{"no progress", 0, 7, 0},
	}
	for _, tc := range cases {
		g := &Goal{Progress: tc.progress, Target: tc.target}
		if got := g.ProgressPercentage(); got != tc.want {
			t.Fatalf("%s: ProgressPercentage = %v, want %v", tc.name, got, tc.want)
		}
	}
}

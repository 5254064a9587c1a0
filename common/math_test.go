package common

import "testing"

func TestApproach(t *testing.T) {
	cases := []struct {
		name            string
		v, target, step float64
		want            float64
	}{
		{"up", 0, 10, 3, 3},
		{"up_clamped", 9, 10, 3, 10},
		{"down", 10, 0, 4, 6},
		{"down_clamped", 1, 0, 4, 0},
		{"at_target", 5, 5, 1, 5},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Approach(c.v, c.target, c.step); got != c.want {
				t.Fatalf("expected %v, got %v", c.want, got)
			}
		})
	}
}

func TestClampAndLerp(t *testing.T) {
	if Clamp(2, -1, 1) != 1 || Clamp(-2, -1, 1) != -1 || Clamp(0.5, -1, 1) != 0.5 {
		t.Fatalf("clamp out of range")
	}
	if Lerp(0, 10, 0.25) != 2.5 {
		t.Fatalf("lerp mismatch")
	}
}

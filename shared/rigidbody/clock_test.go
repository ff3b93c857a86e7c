package rigidbody

import "testing"

func TestClockAdvance(t *testing.T) {
	tests := []struct {
		name   string
		step   float64
		max    int
		frames []float64
		want   []int
	}{
		{"60fps over 50Hz", 0.02, 5, []float64{1.0 / 60, 1.0 / 60, 1.0 / 60, 1.0 / 60, 1.0 / 60, 1.0 / 60}, []int{0, 1, 1, 1, 1, 1}},
		{"exact steps", 0.02, 5, []float64{0.02, 0.04, 0.06}, []int{1, 2, 3}},
		{"capped", 0.02, 3, []float64{0.5, 0.02}, []int{3, 1}},
		{"uncapped", 0.02, 0, []float64{0.1}, []int{5}},
		{"no time", 0.02, 5, []float64{0, -1}, []int{0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewClock(tt.step, tt.max)
			for i, f := range tt.frames {
				if got := c.Advance(f); got != tt.want[i] {
					t.Errorf("frame %d: Advance(%v) = %d, want %d", i, f, got, tt.want[i])
				}
			}
		})
	}
}

func TestClockCarriesRemainder(t *testing.T) {
	c := NewClock(0.02, 5)
	c.Advance(0.03)
	if p := c.Pending(); p < 0.0099 || p > 0.0101 {
		t.Errorf("Pending() = %v, want 0.01", p)
	}
	c.Reset()
	if c.Pending() != 0 {
		t.Error("Reset should drop carried time")
	}
}

func TestClockZeroStep(t *testing.T) {
	c := &Clock{}
	if got := c.Advance(1); got != 0 {
		t.Errorf("zero step clock ran %d steps", got)
	}
}

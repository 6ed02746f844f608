package shimmer

import "testing"

func TestEasings(t *testing.T) {
	type tc struct {
		ease Easing
	}

	tests := map[string]tc{
		"linear":  {ease: Linear},
		"ease":    {ease: EaseInOut},
		"spring":  {ease: Spring(12, 60)},
		"coarse":  {ease: Spring(6, 1)},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.ease(0); got != 0 {
				t.Errorf("ease(0) = %v, want 0", got)
			}
			if got := tt.ease(1); got != 1 {
				t.Errorf("ease(1) = %v, want 1", got)
			}
			if got := tt.ease(-1); got != 0 {
				t.Errorf("ease(-1) = %v, want clamped 0", got)
			}
			prev := 0.0
			for i := 1; i <= 100; i++ {
				v := tt.ease(float64(i) / 100)
				if v < prev-1e-9 || v > 1 {
					t.Fatalf("ease(%v) = %v, not monotone within [0, 1]", float64(i)/100, v)
				}
				prev = v
			}
		})
	}
}

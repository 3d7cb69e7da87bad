package safe

import "testing"

func TestSubSaturating(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a    int64
		b    int64
		want int64
	}{
		{name: "positive difference", a: 200000000, b: 10000, want: 199990000},
		{name: "equal operands clamp to zero", a: 10000, b: 10000, want: 0},
		{name: "b exceeds a clamps to zero", a: 5000, b: 15000, want: 0},
		{name: "zero both", a: 0, b: 0, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SubSaturating(tt.a, tt.b); got != tt.want {
				t.Errorf("SubSaturating(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestSubSaturating_Uint64(t *testing.T) {
	t.Parallel()

	if got := SubSaturating(uint64(3), uint64(7)); got != 0 {
		t.Errorf("SubSaturating(3, 7) = %d, want 0", got)
	}
	if got := SubSaturating(uint64(7), uint64(3)); got != 4 {
		t.Errorf("SubSaturating(7, 3) = %d, want 4", got)
	}
}

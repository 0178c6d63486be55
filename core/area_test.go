package core

import "testing"

func TestAreaInset(t *testing.T) {
	tests := []struct {
		name  string
		in    Area
		n     int
		want  Area
		empty bool
	}{
		{"one cell", Area{X: 0, Y: 0, Width: 10, Height: 6}, 1, Area{X: 1, Y: 1, Width: 8, Height: 4}, false},
		{"zero", Area{X: 2, Y: 3, Width: 4, Height: 4}, 0, Area{X: 2, Y: 3, Width: 4, Height: 4}, false},
		{"collapsed", Area{X: 0, Y: 0, Width: 3, Height: 10}, 2, Area{X: 2, Y: 2, Width: 0, Height: 6}, true},
	}
	for _, tt := range tests {
		got := tt.in.Inset(tt.n)
		if got != tt.want {
			t.Errorf("%s: expected %+v, got %+v", tt.name, tt.want, got)
		}
		if got.Empty() != tt.empty {
			t.Errorf("%s: expected Empty()=%v", tt.name, tt.empty)
		}
	}
}

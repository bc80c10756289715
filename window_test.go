package julia

import "testing"

func TestWindowOriginSymmetric(t *testing.T) {
	tests := []struct {
		name string
		w    Window
		want bool
	}{
		{name: "default window", w: DefaultWindow, want: true},
		{name: "narrow symmetric", w: Window{X0: -1, X1: 1, Y0: -0.5, Y1: 0.5}, want: true},
		{name: "shifted x", w: Window{X0: -1, X1: 2, Y0: -2, Y1: 2}, want: false},
		{name: "shifted y", w: Window{X0: -2, X1: 2, Y0: 0, Y1: 2}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.w.OriginSymmetric(); got != tt.want {
				t.Errorf("OriginSymmetric(%+v) = %v, want %v", tt.w, got, tt.want)
			}
		})
	}
}

func TestWindowMapping(t *testing.T) {
	w := DefaultWindow
	const res = 4

	// Pixel 0 hits the lower-left corner; pixel res is one past the upper
	// edge, so the last sampled column sits one step inside it.
	if got := w.X(0, res); got != -2 {
		t.Errorf("X(0) = %v, want -2", got)
	}
	if got := w.X(3, res); got != 1 {
		t.Errorf("X(3) = %v, want 1", got)
	}
	if got := w.Y(2, res); got != 0 {
		t.Errorf("Y(2) = %v, want 0", got)
	}
}

func TestWindowIsZero(t *testing.T) {
	if !(Window{}).IsZero() {
		t.Error("zero window not reported as zero")
	}
	if DefaultWindow.IsZero() {
		t.Error("DefaultWindow reported as zero")
	}
}

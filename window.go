package julia

// Window is the rectangular region of the complex plane that gets sampled.
// Pixel (0,0) maps to the (X0,Y0) corner.
type Window struct {
	X0, X1 float64
	Y0, Y1 float64
}

// DefaultWindow is the classic filled-Julia-set view, centered on the origin.
var DefaultWindow = Window{X0: -2, X1: 2, Y0: -2, Y1: 2}

// OriginSymmetric reports whether the window is point-symmetric about the
// origin on both axes. The half-plane shortcut in ComputeGrid relies on this.
func (w Window) OriginSymmetric() bool {
	return w.X0 == -w.X1 && w.Y0 == -w.Y1
}

// IsZero reports whether w is the zero value, i.e. no window was chosen.
func (w Window) IsZero() bool {
	return w == Window{}
}

// X maps a pixel column in [0,res) to its real coordinate.
func (w Window) X(xpixel, res int) float64 {
	return w.X0 + (w.X1-w.X0)*float64(xpixel)/float64(res)
}

// Y maps a pixel row in [0,res) to its imaginary coordinate.
func (w Window) Y(ypixel, res int) float64 {
	return w.Y0 + (w.Y1-w.Y0)*float64(ypixel)/float64(res)
}

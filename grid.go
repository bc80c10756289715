package julia

// Grid is a square raster of escape counts. Counts is row-major with stride
// Res; a count of 0 marks a point that never escaped within the iteration cap,
// n > 0 marks escape on iteration n.
type Grid struct {
	Counts []int
	Res    int
}

// NewGrid allocates an all-zero res×res grid.
func NewGrid(res int) *Grid {
	return &Grid{Counts: make([]int, res*res), Res: res}
}

// At returns the escape count at pixel (x, y).
func (g *Grid) At(x, y int) int {
	return g.Counts[y*g.Res+x]
}

// Set stores the escape count at pixel (x, y).
func (g *Grid) Set(x, y, n int) {
	g.Counts[y*g.Res+x] = n
}

// SetPointMirror stores n at (x, y) and at the pixel's point reflection
// through the grid center, ((R−y) mod R, (R−x) mod R). Index 0 is a fixed
// point of the reflection on each axis: negating it wraps back onto itself.
func (g *Grid) SetPointMirror(x, y, n int) {
	g.Set(x, y, n)
	g.Set((g.Res-x)%g.Res, (g.Res-y)%g.Res, n)
}

// Max returns the largest escape count in the grid, 0 when nothing escaped.
func (g *Grid) Max() int {
	max := 0
	for _, n := range g.Counts {
		if n > max {
			max = n
		}
	}
	return max
}

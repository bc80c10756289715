// Package julia computes filled Julia sets as grids of escape-iteration
// counts and renders them to raster images.
package julia

import (
	"math"
	"math/cmplx"
	"runtime"
	"sync"
)

// Params describes one rendering run.
type Params struct {
	C       complex128 // parameter of f(z) = z² + c
	MaxIter int        // iteration cap, must be >= 1
	Res     int        // grid is Res×Res pixels, must be >= 1
	Window  Window     // sampled region; zero value means DefaultWindow
	Workers int        // row workers; <= 0 means GOMAXPROCS
}

// EscapeRadius returns the smallest radius r such that any iterate with
// |z| > r is guaranteed to diverge under f(z) = z² + c. A trajectory that
// crosses r never comes back below it.
func EscapeRadius(c complex128) float64 {
	return (1 + math.Sqrt(1+4*cmplx.Abs(c))) / 2
}

// EscapeCount iterates z ← z² + c starting from z0 and returns the 1-based
// iteration index at which |z| first exceeds r, or 0 if the trajectory stays
// within r for maxIter iterations. Pure function, safe to call from any
// number of goroutines.
func EscapeCount(z0, c complex128, r float64, maxIter int) int {
	z := z0
	rr := r * r
	for n := 1; n <= maxIter; n++ {
		z = z*z + c
		if real(z)*real(z)+imag(z)*imag(z) > rr {
			return n
		}
	}
	return 0
}

// ComputeGrid renders the escape grid for p. Row indices are fanned out over
// a channel to a fixed pool of workers; each worker claims whole rows and,
// when the half-plane shortcut applies, also writes the row's point-mirror
// row. No two workers ever touch the same cell, so the only synchronization
// is the final join.
//
// When the window is point-symmetric about the origin, rows with a negative
// y coordinate are skipped entirely: EscapeCount(z0) == EscapeCount(-z0) for
// this family of maps, so each skipped cell receives the count of its point
// reflection ((R−y) mod R, (R−x) mod R) instead. That halves the number of
// escape tests. Index 0 wraps onto itself under the reflection, so column 0
// mirrors within itself and row 0 (whose own y coordinate is negative for any
// window that extends below the axis) is never written and stays zero.
//
// ComputeGrid panics if p.Res or p.MaxIter is not positive; the CLI layer
// validates both before the computation runs.
func ComputeGrid(p Params) *Grid {
	if p.Res < 1 {
		panic("julia: resolution must be positive")
	}
	if p.MaxIter < 1 {
		panic("julia: iteration cap must be positive")
	}

	w := p.Window
	if w.IsZero() {
		w = DefaultWindow
	}
	workers := p.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	g := NewGrid(p.Res)
	r := EscapeRadius(p.C)
	mirror := w.OriginSymmetric()

	rows := make(chan int)
	go func() {
		for yp := 0; yp < p.Res; yp++ {
			rows <- yp
		}
		close(rows)
	}()

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for yp := range rows {
				y := w.Y(yp, p.Res)
				if mirror && y < 0 {
					continue
				}
				for xp := 0; xp < p.Res; xp++ {
					x := w.X(xp, p.Res)
					n := EscapeCount(complex(x, y), p.C, r, p.MaxIter)
					if mirror {
						g.SetPointMirror(xp, yp, n)
					} else {
						g.Set(xp, yp, n)
					}
				}
			}
		}()
	}
	wg.Wait()

	return g
}

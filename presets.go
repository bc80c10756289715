package julia

// Presets maps well-known Julia set parameters to their c values.
// The CLI accepts any of these names in place of a complex literal.
var Presets = map[string]complex128{
	// Dendrite - c on the boundary of the Mandelbrot set, a tree of
	// filaments with empty interior
	"dendrite": complex(0, 1),

	// Douady's rabbit - three-lobed bulbs around a period-3 attractor
	"rabbit": complex(-0.122561, 0.744862),

	// Basilica - period-2 attractor, two main bulbs joined at a pinch
	"basilica": complex(-1, 0),

	// San Marco - basilica squeezed flat along the real axis
	"sanmarco": complex(-0.75, 0),

	// Siegel disk - irrationally indifferent fixed point
	"siegel": complex(-0.390541, -0.586788),

	// Airplane - real parameter with a period-3 cycle
	"airplane": complex(-1.755, 0),
}

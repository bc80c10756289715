// juliaplot renders the filled Julia set for a complex parameter c and saves
// it as a raster image. The output format is chosen from the file extension.
package main

import (
	"fmt"
	"image"
	"log"
	"os"
	"sort"
	"strings"

	flag "github.com/spf13/pflag"

	julia "github.com/gfox/juliaplot"
)

var (
	iters      = flag.IntP("iters", "i", 512, "maximum number of iterations of f(z) for any z")
	resolution = flag.IntP("resolution", "r", 1000, "generate an r*r bitmap")
	out        = flag.StringP("out", "o", "julia.png", "output filename, format chosen from the extension")
	colour     = flag.Bool("colour", false, "make a colour image")
	offset     = flag.Float64("offset", 0.67, "hue offset [0-1], only used with --colour")
	smooth     = flag.Bool("smooth", false, "apply gaussian smoothing to the final image")
	workers    = flag.Int("workers", 0, "number of row workers, 0 means one per CPU")
)

func usage() {
	names := make([]string, 0, len(julia.Presets))
	for name := range julia.Presets {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprint(os.Stderr, `usage: juliaplot [flags] c

Plot the filled Julia set for the complex parameter c.

c is a complex literal in the form x+yi, e.g. 0+1i, 0.25-.5i, 1, or one of
the preset names: `+strings.Join(names, ", ")+`.

If the real component is negative, quote c and place a space character
between the opening quote and the minus sign, e.g. ' -1+1i', to avoid
conflicts with command line argument parsing.

flags:
`)
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 1 {
		usage()
		os.Exit(2)
	}
	if *iters < 1 || *resolution < 1 {
		fmt.Fprintln(os.Stderr, "iters and resolution must be positive")
		usage()
		os.Exit(2)
	}
	c, err := parseC(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		usage()
		os.Exit(2)
	}

	if err := run(c); err != nil {
		log.Fatalf("FATAL: %v", err)
	}
}

// parseC resolves the positional argument, first as a complex literal, then
// as a preset name.
func parseC(arg string) (complex128, error) {
	c, err := julia.ParseComplex(arg)
	if err == nil {
		return c, nil
	}
	if c, ok := julia.Presets[strings.ToLower(strings.TrimSpace(arg))]; ok {
		return c, nil
	}
	return 0, err
}

func run(c complex128) error {
	log.Printf("rendering %dx%d julia set for c = %v", *resolution, *resolution, c)
	grid := julia.ComputeGrid(julia.Params{
		C:       c,
		MaxIter: *iters,
		Res:     *resolution,
		Workers: *workers,
	})

	var img image.Image
	if *colour {
		img = julia.Colorize(grid, *offset)
	} else {
		img = julia.Grayscale(grid)
	}
	img = julia.Finish(img, *smooth)

	log.Printf("writing %q", *out)
	if err := julia.WriteImage(*out, img); err != nil {
		return fmt.Errorf("write image: %w", err)
	}
	return nil
}

// Package gcode renders a layer sequence into machine motion
// commands. Output is a pure function of the layers and the fixed
// extrusion constants: no randomness, no ambient state, byte-identical
// output for identical input.
package gcode

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/philipparndt/goslice/pkg/slicer"
)

const (
	// contourExtrude is added to the accumulator per contour segment.
	contourExtrude = 0.1
	// infillExtrude is added to the accumulator per infill line.
	infillExtrude = 0.05

	travelZFeed = 1200
	travelFeed  = 3000
	printFeed   = 1800
)

// Generate serializes the full layer sequence as G-code text. The
// extrusion accumulator is continuous across the entire run, never
// reset between layers or contours, and is threaded through the
// emission helpers as an explicit value so each call starts fresh
// from zero.
func Generate(layers []slicer.Layer, cfg slicer.Config) string {
	var b strings.Builder

	b.WriteString("; Generated by goslice\n")
	fmt.Fprintf(&b, "; Layer height: %smm\n", num(cfg.LayerHeight))
	fmt.Fprintf(&b, "; Infill density: %s%%\n\n", num(cfg.InfillDensity))

	b.WriteString("G21 ; Set units to mm\n")
	b.WriteString("G90 ; Absolute positioning\n")
	b.WriteString("M82 ; Extruder absolute mode\n\n")

	e := 0.0
	for i, layer := range layers {
		fmt.Fprintf(&b, "; Layer %d at Z=%s\n", i, num(layer.Height))

		for _, contour := range layer.Contours {
			e = emitContour(&b, contour, layer.Height, e)
		}
		for _, line := range layer.Infill {
			e = emitInfillLine(&b, line, layer.Height, e)
		}
	}

	if len(layers) > 0 {
		last := layers[len(layers)-1]
		fmt.Fprintf(&b, "\nG0 Z%s F%d\n", num(last.Height+10), travelZFeed)
	}
	b.WriteString("M84 ; Disable steppers\n")

	return b.String()
}

// emitContour writes one contour: a rapid to the layer height, a
// rapid to the first point, then one extrusion move per remaining
// point. It returns the updated accumulator.
func emitContour(b *strings.Builder, c slicer.Contour, height, e float64) float64 {
	if len(c.Points) == 0 {
		return e
	}

	fmt.Fprintf(b, "G0 Z%s F%d\n", num(height), travelZFeed)
	fmt.Fprintf(b, "G0 X%s Y%s F%d\n", num(c.Points[0].X), num(c.Points[0].Y), travelFeed)

	for _, p := range c.Points[1:] {
		e += contourExtrude
		fmt.Fprintf(b, "G1 X%s Y%s E%s F%d\n", num(p.X), num(p.Y), num(e), printFeed)
	}
	return e
}

// emitInfillLine writes one infill line: rapids to the layer height
// and first endpoint, then a single extrusion move to the second.
func emitInfillLine(b *strings.Builder, l slicer.Line, height, e float64) float64 {
	fmt.Fprintf(b, "G0 Z%s F%d\n", num(height), travelZFeed)
	fmt.Fprintf(b, "G0 X%s Y%s F%d\n", num(l.A.X), num(l.A.Y), travelFeed)

	e += infillExtrude
	fmt.Fprintf(b, "G1 X%s Y%s E%s F%d\n", num(l.B.X), num(l.B.Y), num(e), printFeed)
	return e
}

// num formats a coordinate with six significant digits, which keeps
// the accumulated extrusion values free of floating-point noise.
func num(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

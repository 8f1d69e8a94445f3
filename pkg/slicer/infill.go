package slicer

import (
	"math"
	"sort"

	"github.com/philipparndt/goslice/pkg/geometry"
)

// infillSpacing is the base distance between adjacent infill lines at
// 100% density.
const infillSpacing = 2.0

// Infill produces the fill lines for one layer. Lines run parallel to
// Y at increasing X across the mesh bounding box, stepping by
// spacing / (density/100), last line inclusive of maxX.
//
// In raster mode the contour shape is ignored entirely: infill spans
// the full bounding box, unclipped. Contour mode clips each line to
// the contour polygon by even-odd crossing parity.
//
// A density of zero would make the step infinite; any non-finite or
// non-positive step yields no lines at all, the defined sentinel for
// degenerate density.
func Infill(contour Contour, z float64, bbox geometry.BoundingBox, cfg Config) []Line {
	step := infillSpacing / (cfg.InfillDensity / 100.0)
	if step <= 0 || math.IsNaN(step) || math.IsInf(step, 0) {
		return nil
	}

	var lines []Line
	for x := bbox.Min.X; x <= bbox.Max.X; x += step {
		if cfg.InfillMode == InfillContour {
			lines = append(lines, clipToContour(contour, x, z)...)
			continue
		}
		lines = append(lines, Line{
			A: geometry.Vector3{X: x, Y: bbox.Min.Y, Z: z},
			B: geometry.Vector3{X: x, Y: bbox.Max.Y, Z: z},
		})
	}
	return lines
}

// clipToContour intersects the vertical line at x with the contour,
// treated as a closed polygon, and pairs the crossings into segments
// by even-odd parity. Fewer than two crossings produce no segment.
func clipToContour(contour Contour, x, z float64) []Line {
	points := contour.Points
	if len(points) < 3 {
		return nil
	}

	var crossings []float64
	for i := range points {
		a := points[i]
		b := points[(i+1)%len(points)]

		// Half-open span so a crossing exactly on a shared vertex is
		// counted once, not for both adjacent edges.
		if (a.X <= x && x < b.X) || (b.X <= x && x < a.X) {
			t := (x - a.X) / (b.X - a.X)
			crossings = append(crossings, a.Y+t*(b.Y-a.Y))
		}
	}

	sort.Float64s(crossings)

	var lines []Line
	for i := 0; i+1 < len(crossings); i += 2 {
		lines = append(lines, Line{
			A: geometry.Vector3{X: x, Y: crossings[i], Z: z},
			B: geometry.Vector3{X: x, Y: crossings[i+1], Z: z},
		})
	}
	return lines
}

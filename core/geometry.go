package core

import (
	"math"

	"github.com/terrafoundry/memorial-generator/model"
)

// Tolerances used throughout the boundary pipeline. Coordinates come
// out of a drafting application after projection, so equality is
// always tolerance-based, never exact.
const (
	// ScalarTolerance bounds float equality for individual
	// coordinate components.
	ScalarTolerance = 1e-9
	// PointTolerance bounds 2D point matching (Euclidean distance).
	PointTolerance = 1e-6
	// VertexMatchTolerance is the default radius for matching a
	// polygon vertex to a survey marker. Ingested coordinates are
	// rounded to 3 decimals, so a millimetre-scale radius is enough.
	VertexMatchTolerance = 0.001
)

// FloatsEqual reports whether two scalars are equal within
// ScalarTolerance.
func FloatsEqual(a, b float64) bool {
	return math.Abs(a-b) < ScalarTolerance
}

// PointsClose reports whether two points lie within tolerance of each
// other. The comparison is on true Euclidean distance (not squared
// distance) so the tolerance value keeps its documented meaning.
func PointsClose(a, b model.Vertex, tolerance float64) bool {
	return Distance(a, b) < tolerance
}

// Distance returns the Euclidean distance between two points.
func Distance(a, b model.Vertex) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Round rounds v to the given number of decimal places.
func Round(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}

// Centroid returns the arithmetic mean of the ring's vertices. This is
// deliberately not the area-weighted centroid: survey lots are roughly
// convex and the mean is where a drafter drops the lot label.
func Centroid(ring []model.Vertex) model.Vertex {
	var sx, sy float64
	for _, v := range ring {
		sx += v.X
		sy += v.Y
	}
	n := float64(len(ring))
	return model.Vertex{X: sx / n, Y: sy / n}
}

// PointInRing reports whether p lies inside the closed ring using the
// even-odd (ray casting) rule: a horizontal ray cast to the right from
// p toggles on every boundary crossing. The wrap-around edge (last
// vertex back to the first) is included.
//
// A horizontal edge never toggles containment: when the two edge Ys
// are equal, the strict lower bound and inclusive upper bound on p.Y
// cannot both hold. A point exactly on a horizontal edge therefore
// tests outside. Rings with fewer than 3 vertices test outside;
// self-intersecting rings are undefined behaviour and are not
// repaired.
func PointInRing(p model.Vertex, ring []model.Vertex) bool {
	n := len(ring)
	if n < 3 {
		return false
	}

	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := ring[j], ring[i]

		if p.Y > math.Min(a.Y, b.Y) && p.Y <= math.Max(a.Y, b.Y) && p.X <= math.Max(a.X, b.X) {
			if a.X == b.X {
				// Vertical edge: the ray crosses it whenever the
				// Y-range check above passed.
				inside = !inside
				continue
			}
			// a.Y != b.Y is implied by the Y-range check.
			xCross := (p.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y) + a.X
			if p.X <= xCross {
				inside = !inside
			}
		}
	}

	return inside
}

// Azimuth returns the grid azimuth of the direction a -> b in degrees,
// normalised into [0, 360). Azimuth is measured clockwise from grid
// north, hence atan2 takes Δx before Δy (the axis swap relative to the
// mathematical bearing convention).
func Azimuth(a, b model.Vertex) float64 {
	// Multiplying by the precomputed factor keeps the cardinal
	// directions exact: atan2's ±π/2 and π map to 90, 180, 270.
	const degPerRad = 180.0 / math.Pi
	deg := math.Atan2(b.X-a.X, b.Y-a.Y) * degPerRad
	if deg < 0 {
		deg += 360
	}
	return deg
}

// SplitDMS decomposes an angle in decimal degrees into integer
// degrees, integer minutes, and seconds rounded to 2 decimals, using
// the standard sexagesimal split.
func SplitDMS(angle float64) (degrees, minutes int, seconds float64) {
	degrees = int(angle)
	frac := angle - float64(degrees)
	minutes = int(frac * 60)
	seconds = Round((frac*60-float64(minutes))*60, 2)
	return degrees, minutes, seconds
}

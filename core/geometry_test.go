package core

import (
	"math"
	"testing"

	"github.com/terrafoundry/memorial-generator/model"
)

func squareRing() []model.Vertex {
	return []model.Vertex{
		{X: 0, Y: 0},
		{X: 10, Y: 0},
		{X: 10, Y: 10},
		{X: 0, Y: 10},
	}
}

func TestPointInRing_Inside(t *testing.T) {
	if !PointInRing(model.Vertex{X: 5, Y: 5}, squareRing()) {
		t.Errorf("expected (5,5) to be inside the 10x10 square")
	}
}

func TestPointInRing_Outside(t *testing.T) {
	if PointInRing(model.Vertex{X: 15, Y: 5}, squareRing()) {
		t.Errorf("expected (15,5) to be outside the 10x10 square")
	}
}

// A point exactly on a horizontal edge tests outside: horizontal edges
// never toggle the crossing count. This pins down the documented
// result rather than leaving the boundary case ambiguous.
func TestPointInRing_OnHorizontalEdge(t *testing.T) {
	if PointInRing(model.Vertex{X: 5, Y: 0}, squareRing()) {
		t.Errorf("expected (5,0) on the bottom edge to test outside")
	}
}

func TestPointInRing_DegenerateRing(t *testing.T) {
	ring := []model.Vertex{{X: 0, Y: 0}, {X: 10, Y: 10}}
	if PointInRing(model.Vertex{X: 5, Y: 5}, ring) {
		t.Errorf("a ring with fewer than 3 vertices has no inside")
	}
}

func TestAzimuth_DueNorth(t *testing.T) {
	az := Azimuth(model.Vertex{X: 0, Y: 0}, model.Vertex{X: 0, Y: 10})
	if az != 0 {
		t.Errorf("due-north azimuth = %v, want 0", az)
	}
	d, m, s := SplitDMS(az)
	if d != 0 || m != 0 || s != 0 {
		t.Errorf("due-north DMS = %d°%d'%.2f\", want 0°0'0.00\"", d, m, s)
	}
}

func TestAzimuth_DueEast(t *testing.T) {
	az := Azimuth(model.Vertex{X: 0, Y: 0}, model.Vertex{X: 10, Y: 0})
	if az != 90 {
		t.Errorf("due-east azimuth = %v, want 90", az)
	}
}

func TestAzimuth_ReverseEdgeDiffersBy180(t *testing.T) {
	a := model.Vertex{X: 3.25, Y: -7.5}
	b := model.Vertex{X: 18.75, Y: 4.125}

	fwd := Azimuth(a, b)
	rev := Azimuth(b, a)

	diff := math.Mod(rev-fwd+360, 360)
	if math.Abs(diff-180) > 1e-9 {
		t.Errorf("azimuth reversal: fwd=%v rev=%v diff=%v, want 180", fwd, rev, diff)
	}
}

func TestDistance_Symmetric(t *testing.T) {
	a := model.Vertex{X: 1.001, Y: 2.002}
	b := model.Vertex{X: -4.5, Y: 9}

	if Distance(a, b) != Distance(b, a) {
		t.Errorf("distance must be symmetric")
	}
	want := math.Sqrt(5.501*5.501 + 6.998*6.998)
	if math.Abs(Distance(a, b)-want) > 1e-12 {
		t.Errorf("distance = %v, want %v", Distance(a, b), want)
	}
}

func TestCentroid_ArithmeticMean(t *testing.T) {
	c := Centroid(squareRing())
	if !FloatsEqual(c.X, 5) || !FloatsEqual(c.Y, 5) {
		t.Errorf("square centroid = %+v, want (5,5)", c)
	}
}

func TestSplitDMS_RoundsSecondsToTwoDecimals(t *testing.T) {
	d, m, s := SplitDMS(123.7561)
	if d != 123 || m != 45 {
		t.Fatalf("DMS degrees/minutes = %d/%d, want 123/45", d, m)
	}
	// 0.7561° = 45.366', 0.366' = 21.96"
	if math.Abs(s-21.96) > 1e-9 {
		t.Errorf("seconds = %v, want 21.96", s)
	}
}

func TestPointsClose_ToleranceIsEuclidean(t *testing.T) {
	a := model.Vertex{X: 10.0000, Y: 20.0000}
	b := model.Vertex{X: 10.0003, Y: 20.0003}

	if !PointsClose(a, b, 0.001) {
		t.Errorf("points 0.00042 apart should match with tolerance 0.001")
	}
	if PointsClose(a, b, 0.0001) {
		t.Errorf("points 0.00042 apart must not match with tolerance 0.0001")
	}
}

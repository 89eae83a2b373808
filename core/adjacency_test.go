package core

import (
	"testing"

	"github.com/terrafoundry/memorial-generator/model"
)

// Two 10x10 lots side by side, sharing the edge (0,0)-(0,10). The
// neighbor lists the shared vertices in reversed order: adjacency
// only requires both endpoints to appear somewhere in the candidate's
// ring.
func TestFindNeighbor_SharedEdgeReversedOrientation(t *testing.T) {
	lot := &model.Polygon{
		Handle:   "east",
		Vertices: squareRing(),
	}
	neighbor := &model.Polygon{
		Handle: "west",
		Vertices: []model.Vertex{
			{X: 0, Y: 10}, {X: -10, Y: 10}, {X: -10, Y: 0}, {X: 0, Y: 0},
		},
	}

	// Edge 3 of lot is (0,10)->(0,0) via the wrap-around.
	got := FindNeighbor(lot, 3, []*model.Polygon{lot, neighbor})
	if got == nil || got.Handle != "west" {
		t.Fatalf("FindNeighbor = %v, want the west lot", got)
	}
}

func TestFindNeighbor_SingleSharedVertexIsNotANeighbor(t *testing.T) {
	lot := &model.Polygon{Handle: "a", Vertices: squareRing()}
	corner := &model.Polygon{
		Handle: "b",
		Vertices: []model.Vertex{
			{X: 10, Y: 10}, {X: 20, Y: 10}, {X: 20, Y: 20}, {X: 10, Y: 20},
		},
	}

	for i := range lot.Vertices {
		if got := FindNeighbor(lot, i, []*model.Polygon{lot, corner}); got != nil {
			t.Fatalf("edge %d: polygons touching at a single corner must not be neighbors", i)
		}
	}
}

func TestFindNeighbor_ExcludesSelfByHandle(t *testing.T) {
	lot := &model.Polygon{Handle: "a", Vertices: squareRing()}
	if got := FindNeighbor(lot, 0, []*model.Polygon{lot}); got != nil {
		t.Fatalf("a polygon must never be its own neighbor, got %v", got)
	}
}

func TestNeighborText_Sentinels(t *testing.T) {
	lot := &model.Polygon{Handle: "a", Vertices: squareRing()}
	neighbor := &model.Polygon{
		Handle: "b",
		Vertices: []model.Vertex{
			{X: 10, Y: 0}, {X: 20, Y: 0}, {X: 20, Y: 10}, {X: 10, Y: 10},
		},
	}

	// No candidate shares edge 3 of lot.
	if got := NeighborText(lot, 3, []*model.Polygon{lot, neighbor}, nil); got != NoNeighborText {
		t.Errorf("adjacency miss text = %q, want %q", got, NoNeighborText)
	}

	// Edge 1 of lot, (10,0)->(10,10), borders the unlabeled neighbor.
	if got := NeighborText(lot, 1, []*model.Polygon{lot, neighbor}, nil); got != NoLabelText {
		t.Errorf("unlabeled neighbor text = %q, want %q", got, NoLabelText)
	}

	labels := []*model.TextLabel{
		{Position: model.Vertex{X: 15, Y: 5}, RawText: "Lote nº 9", CleanedText: "Lote nº 9"},
	}
	if got := NeighborText(lot, 1, []*model.Polygon{lot, neighbor}, labels); got != "Lote nº 9" {
		t.Errorf("neighbor text = %q, want the neighbor's label", got)
	}
}

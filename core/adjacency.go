package core

import "github.com/terrafoundry/memorial-generator/model"

// NoNeighborText is the sentinel used when no other polygon shares
// both endpoints of an edge.
const NoNeighborText = "No confrontante found"

// FindNeighbor locates the parcel bordering edge (v[i], v[(i+1)%n]) of
// the given polygon: another polygon whose vertex set contains a match
// for each of the two endpoints within scalar tolerance. The endpoints
// may appear anywhere in the candidate's ring, in either orientation:
// shared endpoints, not a shared contiguous edge.
//
// Candidates are compared by handle to exclude the polygon itself, and
// the FIRST match in iteration order wins; multiple polygons sharing
// both endpoints (e.g. a sliver between lots) are not disambiguated.
func FindNeighbor(polygon *model.Polygon, edgeIndex int, allPolygons []*model.Polygon) *model.Polygon {
	current, next := polygon.Edge(edgeIndex)

	for _, candidate := range allPolygons {
		if candidate.Handle == polygon.Handle {
			continue
		}
		if hasVertexNear(candidate, current) && hasVertexNear(candidate, next) {
			return candidate
		}
	}
	return nil
}

// NeighborText resolves the bordering parcel's display text for an
// edge: the neighbor's associated label, or the miss sentinel when
// either the neighbor or its label is absent.
func NeighborText(polygon *model.Polygon, edgeIndex int, allPolygons []*model.Polygon, labels []*model.TextLabel) string {
	neighbor := FindNeighbor(polygon, edgeIndex, allPolygons)
	if neighbor == nil {
		return NoNeighborText
	}
	return NearestLabel(neighbor, labels).Cleaned
}

func hasVertexNear(polygon *model.Polygon, target model.Vertex) bool {
	for _, v := range polygon.Vertices {
		if FloatsEqual(v.X, target.X) && FloatsEqual(v.Y, target.Y) {
			return true
		}
	}
	return false
}

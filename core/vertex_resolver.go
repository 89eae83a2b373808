package core

import "github.com/terrafoundry/memorial-generator/model"

// UnresolvedVertexName is the sentinel display name used when no
// survey marker matches a polygon vertex. A resolution miss degrades
// the document but never aborts the run.
const UnresolvedVertexName = "Vertex not found"

// ResolvedVertex is the outcome of matching a polygon vertex against
// the survey markers. When Found is false, Name holds the sentinel
// and Elevation is meaningless.
type ResolvedVertex struct {
	Name      string
	Elevation float64
	Found     bool
}

// ResolveVertex maps a polygon vertex to the survey marker whose
// position lies within tolerance (Euclidean distance), returning the
// marker's display name and elevation.
//
// The scan takes the FIRST marker in provider iteration order, not
// the closest one. With overlapping markers inside the tolerance
// radius this is ambiguous, but it is the established behaviour of
// the documents this tool reproduces; changing it to nearest-match
// would silently alter output for such drawings.
func ResolveVertex(vertex model.Vertex, surveyPoints []*model.SurveyPoint, tolerance float64) ResolvedVertex {
	for _, sp := range surveyPoints {
		if PointsClose(sp.Position(), vertex, tolerance) {
			return ResolvedVertex{
				Name:      "V" + sp.Number,
				Elevation: sp.Elevation,
				Found:     true,
			}
		}
	}
	return ResolvedVertex{Name: UnresolvedVertexName}
}

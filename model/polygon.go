package model

// Polygon is a closed boundary ring for a single lot. The ring is
// implicit: edge n connects the last vertex back to the first. Handle
// is an opaque, stable identity used to exclude self-comparison during
// adjacency search; it is never interpreted.
//
// Invariant: len(Vertices) >= 3. Consecutive duplicate vertices
// (zero-length edges) are kept in storage and skipped during
// narration.
type Polygon struct {
	Handle    string
	Vertices  []Vertex
	Area      float64
	Perimeter float64
}

// Edge returns the endpoints of edge i, wrapping the last vertex back
// to the first.
func (p *Polygon) Edge(i int) (Vertex, Vertex) {
	n := len(p.Vertices)
	return p.Vertices[i], p.Vertices[(i+1)%n]
}

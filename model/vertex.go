package model

// Vertex is a 2D point in the drawing's projected plane. Easting maps
// to X and northing to Y; values are rounded to 3 decimals at
// ingestion and never compared exactly (see core tolerance helpers).
type Vertex struct {
	X float64
	Y float64
}

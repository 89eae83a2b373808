package model

// SurveyPoint is a named, surveyed ground marker. Identity is Number;
// position is (Easting, Northing), directly comparable to a Vertex's
// (X, Y).
type SurveyPoint struct {
	Number      string
	Easting     float64
	Northing    float64
	Elevation   float64
	Description string
}

// Position returns the point's planar position as a Vertex.
func (s *SurveyPoint) Position() Vertex {
	return Vertex{X: s.Easting, Y: s.Northing}
}

package core

import "github.com/terrafoundry/memorial-generator/model"

// NoLabelText is the sentinel returned when a polygon encloses no
// text label.
const NoLabelText = "No text found"

// AssociatedLabel carries both forms of a polygon's identifying label:
// Cleaned for narrative use, Raw for structured extraction of
// lot/quadra tokens (control sequences can delimit token positions in
// the raw string).
type AssociatedLabel struct {
	Cleaned string
	Raw     string
	Found   bool
}

// NearestLabel finds the polygon's identifying label: among the labels
// whose insertion point lies inside the ring, the one closest to the
// ring's centroid. The centroid is the plain vertex mean, good enough
// for the roughly-convex lots of a survey drawing.
//
// The miss sentinel lands in Cleaned so callers can use it directly in
// rendered text.
func NearestLabel(polygon *model.Polygon, labels []*model.TextLabel) AssociatedLabel {
	center := Centroid(polygon.Vertices)

	best := AssociatedLabel{Cleaned: NoLabelText}
	bestDistance := 0.0
	for _, label := range labels {
		if !PointInRing(label.Position, polygon.Vertices) {
			continue
		}
		d := Distance(center, label.Position)
		if !best.Found || d < bestDistance {
			best = AssociatedLabel{Cleaned: label.CleanedText, Raw: label.RawText, Found: true}
			bestDistance = d
		}
	}
	return best
}

package model

// EntityKind discriminates the drawing entity types the pipeline
// understands. Providers may yield other kinds; those are skipped.
type EntityKind int

const (
	KindUnknown EntityKind = iota
	KindPolygon
	KindSurveyPoint
	KindText
)

// String returns a short label for logs.
func (k EntityKind) String() string {
	switch k {
	case KindPolygon:
		return "polygon"
	case KindSurveyPoint:
		return "survey_point"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

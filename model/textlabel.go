package model

// TextLabel is a free-text annotation placed inside (or near) a lot.
// RawText keeps the formatting control sequences the drawing embeds;
// CleanedText has them stripped. Structured extraction of lot/quadra
// tokens runs on RawText because the control sequences can delimit
// token positions.
type TextLabel struct {
	Position    Vertex
	RawText     string
	CleanedText string
}

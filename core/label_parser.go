package core

import "regexp"

// LabelParser extracts the structured lot and quadra identifiers from
// a label's raw text. Implementations must fall back to the provided
// fallback string when a token cannot be extracted; the fallback is
// the full cleaned label text, which exposes the extraction failure to
// the reader instead of hiding it behind a placeholder.
type LabelParser interface {
	ParseLot(rawText, fallback string) string
	ParseQuadra(rawText, fallback string) string
}

// RegexLabelParser matches the literal cadastral markers used on the
// drawings this tool was written for: "Lote nº <digits>" and
// "Quadra <token>". Label text that deviates from these markers
// produces the fallback; that is the documented (and fragile) policy,
// not an error.
type RegexLabelParser struct {
	lot    *regexp.Regexp
	quadra *regexp.Regexp
}

// NewRegexLabelParser builds the default parser.
func NewRegexLabelParser() *RegexLabelParser {
	return &RegexLabelParser{
		lot:    regexp.MustCompile(`Lote nº (\d+)`),
		quadra: regexp.MustCompile(`Quadra (\w+)`),
	}
}

// ParseLot returns the lot number digits, or fallback when the marker
// is absent.
func (p *RegexLabelParser) ParseLot(rawText, fallback string) string {
	if m := p.lot.FindStringSubmatch(rawText); m != nil {
		return m[1]
	}
	return fallback
}

// ParseQuadra returns the quadra token, or fallback when the marker is
// absent.
func (p *RegexLabelParser) ParseQuadra(rawText, fallback string) string {
	if m := p.quadra.FindStringSubmatch(rawText); m != nil {
		return m[1]
	}
	return fallback
}

package core

import "github.com/terrafoundry/memorial-generator/model"

// Entity is one raw record from a drawing provider. Kind is the only
// universally available property; everything else is exposed through
// the per-kind capability interfaces below. The core never touches a
// host drafting application's object model directly; providers adapt
// it behind these interfaces.
type Entity interface {
	Kind() model.EntityKind
}

// PolygonSource exposes the properties of a closed boundary polyline.
// Coordinates is the flat [x0, y0, x1, y1, ...] sequence the host
// stores; Area and Perimeter are precomputed by the host.
type PolygonSource interface {
	Entity
	Handle() string
	Coordinates() []float64
	Area() float64
	Perimeter() float64
}

// PointSource exposes the named fields of a survey marker
// (CogoPoint-equivalent).
type PointSource interface {
	Entity
	Number() string
	Easting() float64
	Northing() float64
	Elevation() float64
	Description() string
}

// TextSource exposes a text entity's 2D insertion point and raw
// string content, control sequences included.
type TextSource interface {
	Entity
	Insertion() (x, y float64)
	Text() string
}

// EntityProvider supplies the run's selection as an order-stable
// snapshot. The normalizer iterates it exactly once; providers must
// return entities in a deterministic order because narration order
// and first-match-wins lookups depend on it.
type EntityProvider interface {
	Entities() ([]Entity, error)
}

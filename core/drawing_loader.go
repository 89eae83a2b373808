// core/drawing_loader.go
package core

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/terrafoundry/memorial-generator/model"
)

// DrawingFile is a file-backed EntityProvider: one JSON document
// holding the exported selection of a survey drawing as a single
// ordered entity array. It stands in for the drafting application's
// live selection set, which this tool does not talk to directly.
type DrawingFile struct {
	entities []Entity
}

// internal JSON shapes – kept unexported so we're free to evolve them.
// One record type covers every entity kind; "type" discriminates.
type drawingJSON struct {
	Entities []drawingEntityJSON `json:"entities"`
}

type drawingEntityJSON struct {
	Type string `json:"type"` // "polyline" | "cogo_point" | "text" | anything else

	// Polyline fields.
	Handle      string    `json:"handle"` // optional; synthesized when empty
	Coordinates []float64 `json:"coordinates"`
	Area        float64   `json:"area"`
	Perimeter   float64   `json:"perimeter"`

	// Survey point fields.
	Number      string  `json:"number"`
	Easting     float64 `json:"easting"`
	Northing    float64 `json:"northing"`
	Elevation   float64 `json:"elevation"`
	Description string  `json:"description"`

	// Text fields.
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Text string  `json:"text"`
}

// LoadDrawing reads a JSON drawing export from r and returns it as an
// order-stable provider. Decode failures are extraction failures:
// the caller gets an error and no partial provider.
//
// Polylines without a handle get a synthesized UUID so downstream
// identity comparisons still work; synthesized handles are stable for
// the lifetime of the provider but not across runs.
func LoadDrawing(r io.Reader) (*DrawingFile, error) {
	var payload drawingJSON
	dec := json.NewDecoder(r)
	if err := dec.Decode(&payload); err != nil {
		return nil, fmt.Errorf("LoadDrawing: decode failed: %w", err)
	}

	file := &DrawingFile{entities: make([]Entity, 0, len(payload.Entities))}
	for _, js := range payload.Entities {
		switch js.Type {
		case "polyline":
			handle := js.Handle
			if handle == "" {
				handle = uuid.NewString()
			}
			file.entities = append(file.entities, &polylineRecord{
				handle:    handle,
				coords:    js.Coordinates,
				area:      js.Area,
				perimeter: js.Perimeter,
			})
		case "cogo_point":
			file.entities = append(file.entities, &pointRecord{
				number:      js.Number,
				easting:     js.Easting,
				northing:    js.Northing,
				elevation:   js.Elevation,
				description: js.Description,
			})
		case "text":
			file.entities = append(file.entities, &textRecord{
				x:    js.X,
				y:    js.Y,
				text: js.Text,
			})
		default:
			// Unsupported kinds stay in the snapshot; the normalizer
			// decides to skip them (and logs the skip).
			file.entities = append(file.entities, &unknownRecord{hostType: js.Type})
		}
	}

	return file, nil
}

// Entities returns the snapshot in file order.
func (f *DrawingFile) Entities() ([]Entity, error) {
	return f.entities, nil
}

type polylineRecord struct {
	handle    string
	coords    []float64
	area      float64
	perimeter float64
}

func (r *polylineRecord) Kind() model.EntityKind { return model.KindPolygon }
func (r *polylineRecord) Handle() string         { return r.handle }
func (r *polylineRecord) Coordinates() []float64 { return r.coords }
func (r *polylineRecord) Area() float64          { return r.area }
func (r *polylineRecord) Perimeter() float64     { return r.perimeter }

type pointRecord struct {
	number      string
	easting     float64
	northing    float64
	elevation   float64
	description string
}

func (r *pointRecord) Kind() model.EntityKind { return model.KindSurveyPoint }
func (r *pointRecord) Number() string         { return r.number }
func (r *pointRecord) Easting() float64       { return r.easting }
func (r *pointRecord) Northing() float64      { return r.northing }
func (r *pointRecord) Elevation() float64     { return r.elevation }
func (r *pointRecord) Description() string    { return r.description }

type textRecord struct {
	x, y float64
	text string
}

func (r *textRecord) Kind() model.EntityKind    { return model.KindText }
func (r *textRecord) Insertion() (x, y float64) { return r.x, r.y }
func (r *textRecord) Text() string              { return r.text }

type unknownRecord struct {
	hostType string
}

func (r *unknownRecord) Kind() model.EntityKind { return model.KindUnknown }

package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/terrafoundry/memorial-generator/internal/logging"
	"github.com/terrafoundry/memorial-generator/kb"
	"github.com/terrafoundry/memorial-generator/model"
)

// NormalizeSummary reports what the normalizer built from a provider's
// snapshot. It is mainly useful for logging and for driving gauges
// from main().
type NormalizeSummary struct {
	Polygons     int
	SurveyPoints int
	TextLabels   int
	Skipped      int
}

// Normalize converts a provider's raw entities into typed model
// entities and stores them, in provider order, in the given drawing.
//
// Error policy is all-or-nothing: the first malformed entity aborts
// the run with an error and the drawing must be discarded. Entities of
// unsupported kinds are merely warn-logged and skipped. This mirrors
// the two failure classes of the pipeline: extraction failures are
// fatal, everything downstream degrades to sentinels.
func Normalize(ctx context.Context, provider EntityProvider, store *kb.Drawing, log logging.Logger) (*NormalizeSummary, error) {
	if log == nil {
		log = logging.Noop()
	}

	entities, err := provider.Entities()
	if err != nil {
		return nil, fmt.Errorf("normalize: provider snapshot failed: %w", err)
	}

	summary := &NormalizeSummary{}
	for i, raw := range entities {
		switch src := raw.(type) {
		case PolygonSource:
			polygon, err := normalizePolygon(src)
			if err != nil {
				return nil, fmt.Errorf("normalize: entity %d: %w", i, err)
			}
			if err := store.AddPolygon(polygon); err != nil {
				return nil, fmt.Errorf("normalize: entity %d: %w", i, err)
			}
			summary.Polygons++

		case PointSource:
			point := &model.SurveyPoint{
				Number:      src.Number(),
				Easting:     Round(src.Easting(), 3),
				Northing:    Round(src.Northing(), 3),
				Elevation:   Round(src.Elevation(), 3),
				Description: src.Description(),
			}
			if err := store.AddSurveyPoint(point); err != nil {
				return nil, fmt.Errorf("normalize: entity %d: %w", i, err)
			}
			summary.SurveyPoints++

		case TextSource:
			x, y := src.Insertion()
			store.AddTextLabel(&model.TextLabel{
				Position:    model.Vertex{X: Round(x, 3), Y: Round(y, 3)},
				RawText:     src.Text(),
				CleanedText: CleanLabelText(src.Text()),
			})
			summary.TextLabels++

		default:
			log.Warn(ctx, "skipping unsupported entity",
				logging.Int("index", i),
				logging.String("kind", raw.Kind().String()),
			)
			summary.Skipped++
		}
	}

	return summary, nil
}

func normalizePolygon(src PolygonSource) (*model.Polygon, error) {
	coords := src.Coordinates()
	if len(coords)%2 != 0 {
		return nil, fmt.Errorf("polygon %q has an odd coordinate count %d", src.Handle(), len(coords))
	}
	if len(coords) < 6 {
		return nil, fmt.Errorf("polygon %q has %d coordinate values; a closed ring needs at least 6", src.Handle(), len(coords))
	}

	vertices := make([]model.Vertex, 0, len(coords)/2)
	for i := 0; i < len(coords); i += 2 {
		vertices = append(vertices, model.Vertex{
			X: Round(coords[i], 3),
			Y: Round(coords[i+1], 3),
		})
	}

	return &model.Polygon{
		Handle:    src.Handle(),
		Vertices:  vertices,
		Area:      src.Area(),
		Perimeter: src.Perimeter(),
	}, nil
}

// CleanLabelText strips the formatting control sequences drafting
// applications embed in multiline text: the \P paragraph break and the
// \pxqc; justification prefix.
func CleanLabelText(raw string) string {
	cleaned := strings.ReplaceAll(raw, `\P`, "")
	cleaned = strings.ReplaceAll(cleaned, `\pxqc;`, "")
	return cleaned
}

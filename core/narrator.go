package core

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/terrafoundry/memorial-generator/internal/logging"
	"github.com/terrafoundry/memorial-generator/kb"
	"github.com/terrafoundry/memorial-generator/model"
	"github.com/terrafoundry/memorial-generator/numeral"
	"github.com/terrafoundry/memorial-generator/render"
)

const tracerName = "github.com/terrafoundry/memorial-generator/core"

// PipelineObserver receives degradation and timing signals from the
// narrator. It exists so the narrator can drive metrics without
// importing a metrics library; a nil observer disables it.
type PipelineObserver interface {
	ObserveNarration(seconds float64)
	CountVertexMiss()
	CountAdjacencyMiss()
	CountLabelParseFallback()
}

// Narrator assembles the legal boundary description for each polygon
// of a drawing. It holds no state across polygons: every document is
// computed independently from the shared immutable entity model, in
// the order polygons were provided.
type Narrator struct {
	templates *render.Templates
	numbers   numeral.Converter
	log       logging.Logger

	// Parser extracts lot/quadra tokens from label text. Defaults to
	// the literal-marker regex parser.
	Parser LabelParser
	// Tolerance is the vertex-to-marker match radius.
	Tolerance float64
	// Observer, when set, receives timing and degradation counts.
	Observer PipelineObserver
}

// NewNarrator builds a narrator with the default label parser and
// vertex match tolerance.
func NewNarrator(templates *render.Templates, numbers numeral.Converter, log logging.Logger) *Narrator {
	if log == nil {
		log = logging.Noop()
	}
	return &Narrator{
		templates: templates,
		numbers:   numbers,
		log:       log,
		Parser:    NewRegexLabelParser(),
		Tolerance: VertexMatchTolerance,
	}
}

// NarrateAll writes one document block per polygon to doc, in store
// order, streaming one table row per narrated edge to table as it is
// computed. The first failure aborts: a collaborator error (template
// or sink) cannot be absorbed into a sentinel the way lookup misses
// can.
func (n *Narrator) NarrateAll(ctx context.Context, store *kb.Drawing, doc, table io.Writer) error {
	for _, polygon := range store.Polygons() {
		if err := n.NarratePolygon(ctx, polygon, store, doc, table); err != nil {
			return err
		}
	}
	return nil
}

// NarratePolygon emits one polygon's header, edge narrative, and
// closing statement to doc, and its table rows to table.
func (n *Narrator) NarratePolygon(ctx context.Context, polygon *model.Polygon, store *kb.Drawing, doc, table io.Writer) error {
	start := time.Now()
	ctx, span := otel.Tracer(tracerName).Start(ctx, "narrate_polygon",
		trace.WithAttributes(
			attribute.String("polygon.handle", polygon.Handle),
			attribute.Int("polygon.vertices", len(polygon.Vertices)),
		),
	)
	defer func() {
		if n.Observer != nil {
			n.Observer.ObserveNarration(time.Since(start).Seconds())
		}
		span.End()
	}()

	labels := store.TextLabels()
	polygons := store.Polygons()
	surveyPoints := store.SurveyPoints()

	label := NearestLabel(polygon, labels)
	lotNumber := n.parseToken(ctx, n.Parser.ParseLot, label, "lot")
	quadNumber := n.parseToken(ctx, n.Parser.ParseQuadra, label, "quadra")

	area := Round(polygon.Area, 2)
	areaText, err := n.numbers.ToWords(area)
	if err != nil {
		// Converter failures degrade to the numeric form; the
		// document stays structurally valid.
		n.log.Warn(ctx, "area-to-words failed; using digits",
			logging.String("polygon", polygon.Handle),
			logging.String("error", err.Error()),
		)
		areaText = formatArea(area)
	}

	header, err := n.templates.Header(render.HeaderData{
		LotNumber:  lotNumber,
		QuadNumber: quadNumber,
		Area:       formatArea(area),
		AreaText:   areaText,
	})
	if err != nil {
		return err
	}

	sentences := make([]string, 0, len(polygon.Vertices))
	for i := range polygon.Vertices {
		current, next := polygon.Edge(i)
		if FloatsEqual(current.X, next.X) && FloatsEqual(current.Y, next.Y) {
			// Zero-length edge: no sentence, no table row.
			continue
		}

		edge := n.describeEdge(ctx, polygon, i, current, next, surveyPoints, polygons, labels)

		var sentence string
		var err error
		if len(sentences) == 0 {
			sentence, err = n.templates.OpeningEdge(edge)
		} else {
			sentence, err = n.templates.ContinuationEdge(edge)
		}
		if err != nil {
			return err
		}
		sentences = append(sentences, sentence)

		// The table row streams out as soon as the edge is computed,
		// interleaved with the per-edge work rather than buffered.
		row, err := n.templates.TableRow(edge)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(table, row); err != nil {
			return fmt.Errorf("write table row: %w", err)
		}
	}

	n.log.Info(ctx, "polygon narrated",
		logging.String("polygon", polygon.Handle),
		logging.String("lot", lotNumber),
		logging.Int("edges", len(sentences)),
	)

	if _, err := fmt.Fprintf(doc, "%s\n\n%s\n%s\n\n", header, strings.Join(sentences, "\n"), n.templates.Closing()); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	return nil
}

// describeEdge resolves everything one edge sentence needs.
func (n *Narrator) describeEdge(ctx context.Context, polygon *model.Polygon, edgeIndex int, current, next model.Vertex, surveyPoints []*model.SurveyPoint, polygons []*model.Polygon, labels []*model.TextLabel) render.EdgeData {
	currentRes := ResolveVertex(current, surveyPoints, n.Tolerance)
	nextRes := ResolveVertex(next, surveyPoints, n.Tolerance)
	for _, res := range []ResolvedVertex{currentRes, nextRes} {
		if !res.Found {
			n.log.Debug(ctx, "no survey marker for vertex",
				logging.String("polygon", polygon.Handle),
				logging.Int("edge", edgeIndex),
			)
			if n.Observer != nil {
				n.Observer.CountVertexMiss()
			}
		}
	}

	distance := Round(Distance(current, next), 2)
	degrees, minutes, seconds := SplitDMS(Azimuth(current, next))

	adjacentText := NoNeighborText
	if neighbor := FindNeighbor(polygon, edgeIndex, polygons); neighbor != nil {
		adjacentText = NearestLabel(neighbor, labels).Cleaned
	} else {
		if n.Observer != nil {
			n.Observer.CountAdjacencyMiss()
		}
		n.log.Debug(ctx, "no neighboring parcel for edge",
			logging.String("polygon", polygon.Handle),
			logging.Int("edge", edgeIndex),
		)
	}

	return render.EdgeData{
		CurrentVertexName: currentRes.Name,
		CurrentE:          formatCoord(current.X),
		CurrentN:          formatCoord(current.Y),
		CurrentElevation:  formatElevation(currentRes),
		AdjacentText:      adjacentText,
		Degrees:           degrees,
		Minutes:           minutes,
		Seconds:           fmt.Sprintf("%.2f", seconds),
		Distance:          strconv.FormatFloat(distance, 'f', 2, 64),
		NextVertexName:    nextRes.Name,
		NextE:             formatCoord(next.X),
		NextN:             formatCoord(next.Y),
		NextElevation:     formatElevation(nextRes),
	}
}

// parseToken runs one extraction strategy and applies the fallback
// policy: a token that cannot be extracted is replaced by the full
// cleaned label text, exposing the failure to the reader.
func (n *Narrator) parseToken(ctx context.Context, parse func(raw, fallback string) string, label AssociatedLabel, token string) string {
	got := parse(label.Raw, label.Cleaned)
	if got == label.Cleaned {
		if n.Observer != nil {
			n.Observer.CountLabelParseFallback()
		}
		n.log.Debug(ctx, "token extraction fell back to label text",
			logging.String("token", token),
		)
	}
	return got
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}

func formatArea(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// formatElevation renders a resolved elevation, or "-" when the
// vertex matched no survey marker: the narrative keeps its shape even
// when resolution degrades.
func formatElevation(res ResolvedVertex) string {
	if !res.Found {
		return "-"
	}
	return strconv.FormatFloat(res.Elevation, 'f', 3, 64)
}

package kb

import (
	"fmt"
	"sync"

	"github.com/terrafoundry/memorial-generator/model"
)

// MetricsRecorder receives entity counts whenever the drawing mutates,
// so gauges can track the model without the store importing a metrics
// library.
type MetricsRecorder interface {
	SetDrawingCounts(polygons, surveyPoints, textLabels int)
}

// Drawing is an in-memory, thread-safe store for one run's normalized
// entities. Iteration order is insertion order; the narrator's output
// depends on it, so the store never sorts or reorders.
//
// Entities are snapshots: nothing mutates them after normalization and
// the whole store is discarded at the end of the run.
type Drawing struct {
	mu sync.RWMutex

	polygons     []*model.Polygon
	surveyPoints []*model.SurveyPoint
	textLabels   []*model.TextLabel

	polygonByHandle map[string]*model.Polygon
	pointByNumber   map[string]*model.SurveyPoint

	metrics MetricsRecorder
}

// NewDrawing constructs an empty drawing model.
func NewDrawing() *Drawing {
	return &Drawing{
		polygonByHandle: make(map[string]*model.Polygon),
		pointByNumber:   make(map[string]*model.SurveyPoint),
	}
}

// SetMetricsRecorder installs a recorder that is notified of entity
// counts on every mutation. Pass nil to detach.
func (d *Drawing) SetMetricsRecorder(rec MetricsRecorder) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.metrics = rec
	d.recordCountsLocked()
}

// AddPolygon stores a boundary polygon. It returns an error if the
// handle is already present or the ring is too short to be closed.
func (d *Drawing) AddPolygon(p *model.Polygon) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, exists := d.polygonByHandle[p.Handle]; exists {
		return fmt.Errorf("polygon with handle %q already exists", p.Handle)
	}
	if len(p.Vertices) < 3 {
		return fmt.Errorf("polygon %q has %d vertices; a closed ring needs at least 3", p.Handle, len(p.Vertices))
	}
	d.polygonByHandle[p.Handle] = p
	d.polygons = append(d.polygons, p)
	d.recordCountsLocked()
	return nil
}

// AddSurveyPoint stores a survey marker. It returns an error if the
// point number is already present.
func (d *Drawing) AddSurveyPoint(s *model.SurveyPoint) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, exists := d.pointByNumber[s.Number]; exists {
		return fmt.Errorf("survey point with number %q already exists", s.Number)
	}
	d.pointByNumber[s.Number] = s
	d.surveyPoints = append(d.surveyPoints, s)
	d.recordCountsLocked()
	return nil
}

// AddTextLabel stores a text label. Labels have no identity of their
// own, so duplicates are allowed.
func (d *Drawing) AddTextLabel(t *model.TextLabel) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.textLabels = append(d.textLabels, t)
	d.recordCountsLocked()
}

// GetPolygon returns the polygon with the given handle, or nil.
func (d *Drawing) GetPolygon(handle string) *model.Polygon {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.polygonByHandle[handle]
}

// Polygons returns a snapshot slice of all polygons in insertion order.
func (d *Drawing) Polygons() []*model.Polygon {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]*model.Polygon, len(d.polygons))
	copy(out, d.polygons)
	return out
}

// SurveyPoints returns a snapshot slice of all survey points in
// insertion order.
func (d *Drawing) SurveyPoints() []*model.SurveyPoint {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]*model.SurveyPoint, len(d.surveyPoints))
	copy(out, d.surveyPoints)
	return out
}

// TextLabels returns a snapshot slice of all text labels in insertion
// order.
func (d *Drawing) TextLabels() []*model.TextLabel {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]*model.TextLabel, len(d.textLabels))
	copy(out, d.textLabels)
	return out
}

// Counts returns the number of stored entities per kind.
func (d *Drawing) Counts() (polygons, surveyPoints, textLabels int) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.polygons), len(d.surveyPoints), len(d.textLabels)
}

func (d *Drawing) recordCountsLocked() {
	if d.metrics == nil {
		return
	}
	d.metrics.SetDrawingCounts(len(d.polygons), len(d.surveyPoints), len(d.textLabels))
}

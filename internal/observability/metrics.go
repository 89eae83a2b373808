package observability

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PipelineCollector bundles Prometheus metrics for the generation
// pipeline: how big the entity model is, how long each polygon takes
// to narrate, and how often lookups degrade to sentinels.
type PipelineCollector struct {
	gatherer prometheus.Gatherer

	NarrationDurations prometheus.Histogram

	VertexMisses        prometheus.Counter
	AdjacencyMisses     prometheus.Counter
	LabelParseFallbacks prometheus.Counter
	EntitiesSkipped     prometheus.Counter

	DrawingPolygons     prometheus.Gauge
	DrawingSurveyPoints prometheus.Gauge
	DrawingTextLabels   prometheus.Gauge
}

// NewPipelineCollector registers pipeline Prometheus metrics against the
// provided registerer, defaulting to the global Prometheus registry when nil.
func NewPipelineCollector(reg prometheus.Registerer) (*PipelineCollector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	durations, err := registerHistogram(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "memorial_narration_duration_seconds",
		Help:    "Time spent narrating one polygon, in seconds.",
		Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
	}), "memorial_narration_duration_seconds")
	if err != nil {
		return nil, err
	}

	vertexMisses, err := registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "memorial_vertex_misses_total",
		Help: "Polygon vertices that matched no survey marker and fell back to the sentinel name.",
	}), "memorial_vertex_misses_total")
	if err != nil {
		return nil, err
	}
	adjacencyMisses, err := registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "memorial_adjacency_misses_total",
		Help: "Edges with no neighboring polygon sharing both endpoints.",
	}), "memorial_adjacency_misses_total")
	if err != nil {
		return nil, err
	}
	parseFallbacks, err := registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "memorial_label_parse_fallbacks_total",
		Help: "Lot or quadra tokens that could not be extracted from a label and fell back to the full label text.",
	}), "memorial_label_parse_fallbacks_total")
	if err != nil {
		return nil, err
	}
	skipped, err := registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "memorial_entities_skipped_total",
		Help: "Provider entities of unsupported kinds skipped during normalization.",
	}), "memorial_entities_skipped_total")
	if err != nil {
		return nil, err
	}

	polygons, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "memorial_drawing_polygons",
		Help: "Current number of boundary polygons in the drawing model.",
	}), "memorial_drawing_polygons")
	if err != nil {
		return nil, err
	}
	surveyPoints, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "memorial_drawing_survey_points",
		Help: "Current number of survey markers in the drawing model.",
	}), "memorial_drawing_survey_points")
	if err != nil {
		return nil, err
	}
	textLabels, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "memorial_drawing_text_labels",
		Help: "Current number of text labels in the drawing model.",
	}), "memorial_drawing_text_labels")
	if err != nil {
		return nil, err
	}

	return &PipelineCollector{
		gatherer:            gatherer,
		NarrationDurations:  durations,
		VertexMisses:        vertexMisses,
		AdjacencyMisses:     adjacencyMisses,
		LabelParseFallbacks: parseFallbacks,
		EntitiesSkipped:     skipped,
		DrawingPolygons:     polygons,
		DrawingSurveyPoints: surveyPoints,
		DrawingTextLabels:   textLabels,
	}, nil
}

// Handler exposes a ready-to-use /metrics handler.
func (c *PipelineCollector) Handler() http.Handler {
	gatherer := c.gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// SetDrawingCounts satisfies the kb.MetricsRecorder interface so the
// drawing store can drive gauge values directly from its mutators.
func (c *PipelineCollector) SetDrawingCounts(polygons, surveyPoints, textLabels int) {
	if c == nil {
		return
	}
	if c.DrawingPolygons != nil {
		c.DrawingPolygons.Set(float64(polygons))
	}
	if c.DrawingSurveyPoints != nil {
		c.DrawingSurveyPoints.Set(float64(surveyPoints))
	}
	if c.DrawingTextLabels != nil {
		c.DrawingTextLabels.Set(float64(textLabels))
	}
}

// ObserveNarration records one polygon's narration duration. The nil
// checks let the narrator carry an optional collector.
func (c *PipelineCollector) ObserveNarration(seconds float64) {
	if c == nil || c.NarrationDurations == nil {
		return
	}
	c.NarrationDurations.Observe(seconds)
}

// CountVertexMiss increments the vertex-miss counter.
func (c *PipelineCollector) CountVertexMiss() {
	if c == nil || c.VertexMisses == nil {
		return
	}
	c.VertexMisses.Inc()
}

// CountAdjacencyMiss increments the adjacency-miss counter.
func (c *PipelineCollector) CountAdjacencyMiss() {
	if c == nil || c.AdjacencyMisses == nil {
		return
	}
	c.AdjacencyMisses.Inc()
}

// CountLabelParseFallback increments the parse-fallback counter.
func (c *PipelineCollector) CountLabelParseFallback() {
	if c == nil || c.LabelParseFallbacks == nil {
		return
	}
	c.LabelParseFallbacks.Inc()
}

// CountEntitySkipped increments the unsupported-entity counter.
func (c *PipelineCollector) CountEntitySkipped() {
	if c == nil || c.EntitiesSkipped == nil {
		return
	}
	c.EntitiesSkipped.Inc()
}

func registerCounter(reg prometheus.Registerer, counter prometheus.Counter, name string) (prometheus.Counter, error) {
	if err := reg.Register(counter); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Counter); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return counter, nil
}

func registerHistogram(reg prometheus.Registerer, hist prometheus.Histogram, name string) (prometheus.Histogram, error) {
	if err := reg.Register(hist); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Histogram); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return hist, nil
}

func registerGauge(reg prometheus.Registerer, gauge prometheus.Gauge, name string) (prometheus.Gauge, error) {
	if err := reg.Register(gauge); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Gauge); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return gauge, nil
}

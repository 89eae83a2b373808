package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"golang.org/x/text/language"

	"github.com/terrafoundry/memorial-generator/core"
	"github.com/terrafoundry/memorial-generator/internal/logging"
	"github.com/terrafoundry/memorial-generator/internal/observability"
	"github.com/terrafoundry/memorial-generator/kb"
	"github.com/terrafoundry/memorial-generator/numeral"
	"github.com/terrafoundry/memorial-generator/render"
)

func main() {
	drawingPath := flag.String("drawing", "", "path to the JSON drawing export (required)")
	outPath := flag.String("out", "", "write the document here instead of stdout")
	tablePath := flag.String("table-out", "", "write the table rows here instead of stdout")
	tolerance := flag.Float64("tolerance", core.VertexMatchTolerance, "vertex-to-marker match radius in drawing units")
	locale := flag.String("locale", "pt-BR", "locale for the area-in-words phrase")
	metricsAddr := flag.String("metrics-addr", "", "HTTP address for Prometheus /metrics (disabled when empty)")
	flag.Parse()

	log := logging.NewFromEnv()
	ctx, log := logging.WithRunLogger(context.Background(), log)

	if *drawingPath == "" {
		fmt.Fprintln(os.Stderr, "usage: memorial -drawing <file.json> [-out <file>] [-table-out <file>]")
		os.Exit(2)
	}

	if err := run(ctx, log, *drawingPath, *outPath, *tablePath, *tolerance, *locale, *metricsAddr); err != nil {
		log.Error(ctx, "run failed", logging.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, log logging.Logger, drawingPath, outPath, tablePath string, tolerance float64, locale, metricsAddr string) error {
	shutdownTracing, err := observability.InitTracing(ctx, observability.TracingConfigFromEnv(), log)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer observability.ShutdownWithTimeout(ctx, shutdownTracing, log)

	collector, err := observability.NewPipelineCollector(nil)
	if err != nil {
		return fmt.Errorf("init metrics: %w", err)
	}
	metricsSrv := serveMetrics(ctx, metricsAddr, collector, log)
	defer stopMetrics(metricsSrv)

	tag, err := language.Parse(locale)
	if err != nil {
		return fmt.Errorf("parse locale %q: %w", locale, err)
	}
	numbers, err := numeral.NewConverter(tag)
	if err != nil {
		return err
	}

	drawingFile, err := os.Open(drawingPath)
	if err != nil {
		return fmt.Errorf("open drawing: %w", err)
	}
	provider, err := core.LoadDrawing(drawingFile)
	drawingFile.Close()
	if err != nil {
		return err
	}

	store := kb.NewDrawing()
	store.SetMetricsRecorder(collector)

	summary, err := core.Normalize(ctx, provider, store, log)
	if err != nil {
		return err
	}
	for i := 0; i < summary.Skipped; i++ {
		collector.CountEntitySkipped()
	}
	log.Info(ctx, "drawing normalized",
		logging.String("path", drawingPath),
		logging.Int("polygons", summary.Polygons),
		logging.Int("survey_points", summary.SurveyPoints),
		logging.Int("text_labels", summary.TextLabels),
		logging.Int("skipped", summary.Skipped),
	)

	doc, closeDoc, err := openSink(outPath)
	if err != nil {
		return err
	}
	defer closeDoc()
	table, closeTable, err := openSink(tablePath)
	if err != nil {
		return err
	}
	defer closeTable()

	narrator := core.NewNarrator(render.Default(), numbers, log)
	narrator.Tolerance = tolerance
	narrator.Observer = collector

	return narrator.NarrateAll(ctx, store, doc, table)
}

// openSink resolves an output path to a writer; empty means stdout.
func openSink(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create %s: %w", path, err)
	}
	return f, func() { f.Close() }, nil
}

func serveMetrics(ctx context.Context, addr string, collector *observability.PipelineCollector, log logging.Logger) *http.Server {
	if addr == "" {
		return nil
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", collector.Handler())

	srv := &http.Server{
		Addr:    addr,
		Handler: mux,
	}
	log.Info(ctx, "serving metrics", logging.String("addr", addr))
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Warn(ctx, "metrics server exited", logging.String("error", err.Error()))
		}
	}()
	return srv
}

func stopMetrics(srv *http.Server) {
	if srv == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
}

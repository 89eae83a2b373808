package tests

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"golang.org/x/text/language"

	"github.com/terrafoundry/memorial-generator/core"
	"github.com/terrafoundry/memorial-generator/internal/logging"
	"github.com/terrafoundry/memorial-generator/kb"
	"github.com/terrafoundry/memorial-generator/numeral"
	"github.com/terrafoundry/memorial-generator/render"
)

// A single 10x10 lot, markers on every corner, one label: small enough
// to assert the whole document byte for byte.
const singleLotDrawing = `{
  "entities": [
    {"type": "polyline", "handle": "lot1", "coordinates": [0,0, 10,0, 10,10, 0,10], "area": 100, "perimeter": 40},
    {"type": "cogo_point", "number": "1", "easting": 0, "northing": 0, "elevation": 740.5},
    {"type": "cogo_point", "number": "2", "easting": 10, "northing": 0, "elevation": 740.5},
    {"type": "cogo_point", "number": "3", "easting": 10, "northing": 10, "elevation": 740.5},
    {"type": "cogo_point", "number": "4", "easting": 0, "northing": 10, "elevation": 740.5},
    {"type": "text", "x": 5, "y": 5, "text": "Lote nº 1\\PQuadra A"}
  ]
}`

const wantSingleLotDocument = `Lote nº 1 da QUADRA “A”, com área de 100.00m² (cem), com a seguinte descrição:

Inicia-se a descrição deste perímetro no vértice V1, georreferenciado no Sistema Geodésico Brasileiro, DATUM - SIRGAS2000, MC-51°W, de coordenadas N 0.000m e E 0.000m de altitude 740.500m; deste segue confrontando com No confrontante found, com azimute de 90°0'0.00" por uma distância de 10.00m até o vértice V2, de coordenadas N 0.000m e E 10.000m de altitude 740.500m;
Deste segue confrontando com No confrontante found, com azimute de 0°0'0.00" por uma distância de 10.00m até o vértice V3, de coordenadas N 10.000m e E 10.000m de altitude 740.500m;
Deste segue confrontando com No confrontante found, com azimute de 270°0'0.00" por uma distância de 10.00m até o vértice V4, de coordenadas N 10.000m e E 0.000m de altitude 740.500m;
Deste segue confrontando com No confrontante found, com azimute de 180°0'0.00" por uma distância de 10.00m até o vértice V1, de coordenadas N 0.000m e E 0.000m de altitude 740.500m;
Todas as coordenadas aqui descritas estão georreferenciadas ao Sistema Geodésico Brasileiro e encontram-se representadas no Sistema UTM, referenciadas ao Meridiano Central nº 51 WGr, tendo como Datum o SIRGAS2000. Todos os azimutes e distâncias, área e perímetro foram calculados no plano de projeção UTM.

`

func generate(t *testing.T, drawing string) (doc, table string) {
	t.Helper()
	ctx := context.Background()

	provider, err := core.LoadDrawing(strings.NewReader(drawing))
	if err != nil {
		t.Fatalf("LoadDrawing: %v", err)
	}
	store := kb.NewDrawing()
	if _, err := core.Normalize(ctx, provider, store, logging.Noop()); err != nil {
		t.Fatalf("Normalize: %v", err)
	}

	numbers, err := numeral.NewConverter(language.BrazilianPortuguese)
	if err != nil {
		t.Fatalf("NewConverter: %v", err)
	}
	narrator := core.NewNarrator(render.Default(), numbers, logging.Noop())

	var docBuf, tableBuf bytes.Buffer
	if err := narrator.NarrateAll(ctx, store, &docBuf, &tableBuf); err != nil {
		t.Fatalf("NarrateAll: %v", err)
	}
	return docBuf.String(), tableBuf.String()
}

func TestPipeline_SingleLotDocument(t *testing.T) {
	doc, table := generate(t, singleLotDrawing)

	if doc != wantSingleLotDocument {
		t.Errorf("document mismatch:\n--- got ---\n%s\n--- want ---\n%s", doc, wantSingleLotDocument)
	}

	wantRows := []string{
		`Lado V1->V2: V1(0.000, 0.000, 740.500) -> V2(10.000, 0.000, 740.500), Distância: 10.00 m, Azimute: 90°0'0.00"; `,
		`Lado V2->V3: V2(10.000, 0.000, 740.500) -> V3(10.000, 10.000, 740.500), Distância: 10.00 m, Azimute: 0°0'0.00"; `,
		`Lado V3->V4: V3(10.000, 10.000, 740.500) -> V4(0.000, 10.000, 740.500), Distância: 10.00 m, Azimute: 270°0'0.00"; `,
		`Lado V4->V1: V4(0.000, 10.000, 740.500) -> V1(0.000, 0.000, 740.500), Distância: 10.00 m, Azimute: 180°0'0.00"; `,
	}
	gotRows := strings.Split(strings.TrimRight(table, "\n"), "\n")
	if len(gotRows) != len(wantRows) {
		t.Fatalf("table has %d rows, want %d:\n%s", len(gotRows), len(wantRows), table)
	}
	for i, want := range wantRows {
		if gotRows[i] != want {
			t.Errorf("row %d:\n got %q\nwant %q", i, gotRows[i], want)
		}
	}
}

func TestPipeline_RerunIsByteIdentical(t *testing.T) {
	doc1, table1 := generate(t, singleLotDrawing)
	doc2, table2 := generate(t, singleLotDrawing)

	if doc1 != doc2 {
		t.Errorf("document output differs across identical runs")
	}
	if table1 != table2 {
		t.Errorf("table output differs across identical runs")
	}
}

// Two lots sharing an edge: each lot's narrative names the other as
// confrontante along the shared side.
func TestPipeline_AdjacentLotsReferenceEachOther(t *testing.T) {
	const twoLots = `{
	  "entities": [
	    {"type": "polyline", "handle": "lot1", "coordinates": [0,0, 10,0, 10,10, 0,10], "area": 100, "perimeter": 40},
	    {"type": "polyline", "handle": "lot2", "coordinates": [10,0, 20,0, 20,10, 10,10], "area": 100, "perimeter": 40},
	    {"type": "text", "x": 5, "y": 5, "text": "Lote nº 1\\PQuadra A"},
	    {"type": "text", "x": 15, "y": 5, "text": "Lote nº 2\\PQuadra A"}
	  ]
	}`
	doc, _ := generate(t, twoLots)

	blocks := strings.Split(doc, "Lote nº ")
	if len(blocks) < 3 {
		t.Fatalf("expected two document blocks, got:\n%s", doc)
	}
	if !strings.Contains(doc, "confrontando com Lote nº 2Quadra A") {
		t.Errorf("lot 1 never references lot 2 as confrontante")
	}
	if !strings.Contains(doc, "confrontando com Lote nº 1Quadra A") {
		t.Errorf("lot 2 never references lot 1 as confrontante")
	}
}

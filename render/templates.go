// Package render holds the sentence templates of the legal
// description. Wording is a localization concern: the narrator only
// guarantees which slots are bound, never the prose around them, so
// translations can swap the template text without touching the
// pipeline.
package render

import (
	"fmt"
	"strings"
	"text/template"
)

// HeaderData binds the document header slots.
type HeaderData struct {
	LotNumber  string
	QuadNumber string
	Area       string
	AreaText   string
}

// EdgeData binds the slots shared by the opening sentence, the
// continuation sentence, and the table row. All values are
// pre-formatted strings: the narrator owns numeric precision, the
// templates own prose.
type EdgeData struct {
	CurrentVertexName string
	CurrentE          string
	CurrentN          string
	CurrentElevation  string
	AdjacentText      string
	Degrees           int
	Minutes           int
	Seconds           string
	Distance          string
	NextVertexName    string
	NextE             string
	NextN             string
	NextElevation     string
}

const (
	headerText = `Lote nº {{.LotNumber}} da QUADRA “{{.QuadNumber}}”, com área de {{.Area}}m² ({{.AreaText}}), com a seguinte descrição:`

	openingText = `Inicia-se a descrição deste perímetro no vértice {{.CurrentVertexName}}, georreferenciado no Sistema Geodésico Brasileiro, DATUM - SIRGAS2000, MC-51°W, de coordenadas N {{.CurrentN}}m e E {{.CurrentE}}m de altitude {{.CurrentElevation}}m; deste segue confrontando com {{.AdjacentText}}, com azimute de {{.Degrees}}°{{.Minutes}}'{{.Seconds}}" por uma distância de {{.Distance}}m até o vértice {{.NextVertexName}}, de coordenadas N {{.NextN}}m e E {{.NextE}}m de altitude {{.NextElevation}}m;`

	continuationText = `Deste segue confrontando com {{.AdjacentText}}, com azimute de {{.Degrees}}°{{.Minutes}}'{{.Seconds}}" por uma distância de {{.Distance}}m até o vértice {{.NextVertexName}}, de coordenadas N {{.NextN}}m e E {{.NextE}}m de altitude {{.NextElevation}}m;`

	closingText = `Todas as coordenadas aqui descritas estão georreferenciadas ao Sistema Geodésico Brasileiro e encontram-se representadas no Sistema UTM, referenciadas ao Meridiano Central nº 51 WGr, tendo como Datum o SIRGAS2000. Todos os azimutes e distâncias, área e perímetro foram calculados no plano de projeção UTM.`

	tableRowText = `Lado {{.CurrentVertexName}}->{{.NextVertexName}}: {{.CurrentVertexName}}({{.CurrentE}}, {{.CurrentN}}, {{.CurrentElevation}}) -> {{.NextVertexName}}({{.NextE}}, {{.NextN}}, {{.NextElevation}}), Distância: {{.Distance}} m, Azimute: {{.Degrees}}°{{.Minutes}}'{{.Seconds}}"; `
)

// Templates bundles the five parsed templates of one document style.
type Templates struct {
	header       *template.Template
	opening      *template.Template
	continuation *template.Template
	closing      string
	tableRow     *template.Template
}

// Default returns the Brazilian Portuguese memorial descritivo
// templates.
func Default() *Templates {
	return &Templates{
		header:       template.Must(template.New("header").Parse(headerText)),
		opening:      template.Must(template.New("opening").Parse(openingText)),
		continuation: template.Must(template.New("continuation").Parse(continuationText)),
		closing:      closingText,
		tableRow:     template.Must(template.New("table_row").Parse(tableRowText)),
	}
}

// Header renders the document header.
func (t *Templates) Header(data HeaderData) (string, error) {
	return execute(t.header, data)
}

// OpeningEdge renders the first edge's sentence, which restates the
// starting vertex.
func (t *Templates) OpeningEdge(data EdgeData) (string, error) {
	return execute(t.opening, data)
}

// ContinuationEdge renders a non-first edge's sentence.
func (t *Templates) ContinuationEdge(data EdgeData) (string, error) {
	return execute(t.continuation, data)
}

// Closing returns the fixed datum/projection disclaimer.
func (t *Templates) Closing() string {
	return t.closing
}

// TableRow renders one tabular side entry.
func (t *Templates) TableRow(data EdgeData) (string, error) {
	return execute(t.tableRow, data)
}

func execute(tmpl *template.Template, data any) (string, error) {
	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("render %s: %w", tmpl.Name(), err)
	}
	return sb.String(), nil
}

package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEdge() EdgeData {
	return EdgeData{
		CurrentVertexName: "V1",
		CurrentE:          "650000.000",
		CurrentN:          "7185000.000",
		CurrentElevation:  "741.320",
		AdjacentText:      "Lote nº 2 Quadra 07",
		Degrees:           90,
		Minutes:           0,
		Seconds:           "0.00",
		Distance:          "10.00",
		NextVertexName:    "V2",
		NextE:             "650010.000",
		NextN:             "7185000.000",
		NextElevation:     "741.150",
	}
}

func TestHeader_BindsEverySlot(t *testing.T) {
	got, err := Default().Header(HeaderData{
		LotNumber:  "12",
		QuadNumber: "07",
		Area:       "250.50",
		AreaText:   "duzentos e cinquenta vírgula cinco",
	})
	require.NoError(t, err)
	assert.Equal(t, "Lote nº 12 da QUADRA “07”, com área de 250.50m² (duzentos e cinquenta vírgula cinco), com a seguinte descrição:", got)
}

func TestOpeningEdge_RestatesStartingPoint(t *testing.T) {
	got, err := Default().OpeningEdge(sampleEdge())
	require.NoError(t, err)
	assert.Contains(t, got, "Inicia-se a descrição deste perímetro no vértice V1")
	assert.Contains(t, got, "N 7185000.000m e E 650000.000m de altitude 741.320m")
	assert.Contains(t, got, `azimute de 90°0'0.00"`)
	assert.Contains(t, got, "até o vértice V2")
}

func TestContinuationEdge_OmitsStartingPoint(t *testing.T) {
	tpls := Default()
	got, err := tpls.ContinuationEdge(sampleEdge())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, "Deste segue confrontando com"))
	assert.NotContains(t, got, "V1", "continuation must not restate the current vertex")
	assert.Contains(t, got, "até o vértice V2")
}

func TestTableRow_ListsBothEndpoints(t *testing.T) {
	got, err := Default().TableRow(sampleEdge())
	require.NoError(t, err)
	assert.Contains(t, got, "Lado V1->V2")
	assert.Contains(t, got, "V1(650000.000, 7185000.000, 741.320)")
	assert.Contains(t, got, "V2(650010.000, 7185000.000, 741.150)")
	assert.Contains(t, got, "Distância: 10.00 m")
}

func TestClosing_IsFixed(t *testing.T) {
	closing := Default().Closing()
	assert.Contains(t, closing, "SIRGAS2000")
	assert.Contains(t, closing, "plano de projeção UTM")
}

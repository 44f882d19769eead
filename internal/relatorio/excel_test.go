package relatorio

import (
	"bytes"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestRenderizarXLSX_MesmaGradeDoCSV(t *testing.T) {
	grade := gradeExemplo()

	saida, err := RenderizarXLSX(grade, 2024)
	require.NoError(t, err)

	arquivo, err := excelize.OpenReader(bytes.NewReader(saida))
	require.NoError(t, err)
	defer arquivo.Close()

	linhas, err := arquivo.GetRows("Financeiro 2024")
	require.NoError(t, err)
	require.Len(t, linhas, len(grade)+1)

	assert.Equal(t, []string{"Mês", "Receita", "Despesas", "Impostos", "Lucro"}, linhas[0])

	for i, l := range grade {
		celulas := linhas[i+1]
		require.Len(t, celulas, 5)
		assert.Equal(t, l.Mes, celulas[0])

		for j, esperado := range []float64{l.Receita, l.Despesas, l.Impostos, l.Lucro} {
			valor, err := strconv.ParseFloat(celulas[j+1], 64)
			require.NoError(t, err, "célula %d da linha %d", j+1, i+1)
			assert.InDelta(t, esperado, valor, 1e-9)
		}
	}
}

func TestRenderizarXLSX_AbaUnicaDoAno(t *testing.T) {
	saida, err := RenderizarXLSX(gradeExemplo(), 2025)
	require.NoError(t, err)

	arquivo, err := excelize.OpenReader(bytes.NewReader(saida))
	require.NoError(t, err)
	defer arquivo.Close()

	assert.Equal(t, []string{"Financeiro 2025"}, arquivo.GetSheetList())
}

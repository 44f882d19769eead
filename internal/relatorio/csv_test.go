package relatorio

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gradeExemplo() []Linha {
	return []Linha{
		{Mes: "01/2024", Receita: 1500.5, Despesas: 300, Impostos: 150.05, Lucro: 800.45},
		{Mes: "02/2024", Receita: 0, Despesas: 120, Impostos: 0, Lucro: -120},
	}
}

func TestRenderizarCSV_FormatoPtBR(t *testing.T) {
	saida, err := RenderizarCSV(gradeExemplo())
	require.NoError(t, err)

	texto := string(saida)
	assert.True(t, strings.HasPrefix(texto, "\uFEFF"), "deve começar com BOM")

	linhas := strings.Split(strings.TrimRight(texto, "\n"), "\n")
	require.Len(t, linhas, 3)
	assert.Equal(t, "\uFEFFMês;Receita;Despesas;Impostos;Lucro", linhas[0])
	assert.Equal(t, "01/2024;1500,50;300,00;150,05;800,45", linhas[1])
	assert.Equal(t, "02/2024;0,00;120,00;0,00;-120,00", linhas[2])
}

func TestRenderizarCSV_BytesIdenticos(t *testing.T) {
	a, err := RenderizarCSV(gradeExemplo())
	require.NoError(t, err)
	b, err := RenderizarCSV(gradeExemplo())
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestRenderizarCSV_GradeVazia(t *testing.T) {
	saida, err := RenderizarCSV(nil)
	require.NoError(t, err)

	texto := strings.TrimPrefix(string(saida), "\uFEFF")
	assert.Equal(t, "Mês;Receita;Despesas;Impostos;Lucro\n", texto)
}

func TestFormatarValor(t *testing.T) {
	assert.Equal(t, "1234,50", formatarValor(1234.5))
	assert.Equal(t, "0,00", formatarValor(0))
	assert.Equal(t, "-99,99", formatarValor(-99.99))
}

package financeiro

import (
	"testing"
	"time"

	"github.com/EquinoMarket/api-fornecedor/internal/despesa"
	"github.com/stretchr/testify/assert"
)

func dia(ano int, mes time.Month, d int) time.Time {
	return time.Date(ano, mes, d, 12, 0, 0, 0, time.Local)
}

func TestFiltrarPorMes_LimitesDoMes(t *testing.T) {
	itens := []despesa.Despesa{
		{ID: 1, DataDespesa: dia(2024, time.January, 31)},
		{ID: 2, DataDespesa: dia(2024, time.February, 1)},
	}

	janeiro := FiltrarPorMes(itens, "2024-01", func(d despesa.Despesa) time.Time { return d.DataDespesa })

	assert.Len(t, janeiro, 1)
	assert.Equal(t, uint(1), janeiro[0].ID)
}

func TestFiltrarPorMes_PreservaOrdemRelativa(t *testing.T) {
	itens := []despesa.Despesa{
		{ID: 3, DataDespesa: dia(2024, time.March, 20)},
		{ID: 1, DataDespesa: dia(2024, time.March, 5)},
		{ID: 2, DataDespesa: dia(2024, time.April, 1)},
		{ID: 4, DataDespesa: dia(2024, time.March, 1)},
	}

	marco := FiltrarPorMes(itens, "2024-03", func(d despesa.Despesa) time.Time { return d.DataDespesa })

	ids := []uint{}
	for _, d := range marco {
		ids = append(ids, d.ID)
	}
	assert.Equal(t, []uint{3, 1, 4}, ids)
}

func TestFiltrarPorMes_MesmoMesDeOutroAnoFicaFora(t *testing.T) {
	itens := []despesa.Despesa{
		{ID: 1, DataDespesa: dia(2023, time.January, 10)},
		{ID: 2, DataDespesa: dia(2024, time.January, 10)},
	}

	janeiro := FiltrarPorMes(itens, "2024-01", func(d despesa.Despesa) time.Time { return d.DataDespesa })

	assert.Len(t, janeiro, 1)
	assert.Equal(t, uint(2), janeiro[0].ID)
}

func TestFiltrarPorMes_EntradaVazia(t *testing.T) {
	out := FiltrarPorMes(nil, "2024-01", func(d despesa.Despesa) time.Time { return d.DataDespesa })
	assert.Empty(t, out)
}

func TestFiltrarPorMes_ChaveInvalidaNaoEntraEmPanico(t *testing.T) {
	itens := []despesa.Despesa{{ID: 1, DataDespesa: dia(2024, time.January, 10)}}

	assert.NotPanics(t, func() {
		assert.Empty(t, FiltrarPorMes(itens, "isso-não-é-mês", func(d despesa.Despesa) time.Time { return d.DataDespesa }))
		assert.Empty(t, FiltrarPorMes(itens, "", func(d despesa.Despesa) time.Time { return d.DataDespesa }))
		assert.Empty(t, FiltrarPorMes(itens, "2024-13", func(d despesa.Despesa) time.Time { return d.DataDespesa }))
	})
}

func TestFiltrarPorMes_NaoMutaEntrada(t *testing.T) {
	itens := []despesa.Despesa{
		{ID: 1, DataDespesa: dia(2024, time.January, 10)},
		{ID: 2, DataDespesa: dia(2024, time.February, 10)},
	}

	_ = FiltrarPorMes(itens, "2024-01", func(d despesa.Despesa) time.Time { return d.DataDespesa })

	assert.Len(t, itens, 2)
	assert.Equal(t, uint(1), itens[0].ID)
	assert.Equal(t, uint(2), itens[1].ID)
}

func TestRotuloDoMes(t *testing.T) {
	assert.Equal(t, "01/2024", RotuloDoMes("2024-01"))
	assert.Equal(t, "12/2025", RotuloDoMes("2025-12"))
	assert.Equal(t, "qualquer-coisa", RotuloDoMes("qualquer-coisa"))
}

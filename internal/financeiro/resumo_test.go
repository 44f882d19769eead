package financeiro

import (
	"testing"

	"github.com/EquinoMarket/api-fornecedor/internal/despesa"
	"github.com/EquinoMarket/api-fornecedor/internal/venda"
	"github.com/stretchr/testify/assert"
)

func TestResumirPeriodo_Vazio(t *testing.T) {
	r := ResumirPeriodo(nil, nil, 10)

	assert.Zero(t, r.Receita)
	assert.Zero(t, r.CustoProdutos)
	assert.Zero(t, r.TotalDespesas)
	assert.Zero(t, r.ImpostoEstimado)
	assert.Zero(t, r.Saidas)
	assert.Zero(t, r.SaldoLiquido)
	assert.Empty(t, r.DespesasPorCategoria)
	assert.NotNil(t, r.DespesasPorCategoria)
}

func TestResumirPeriodo_ReceitaECusto(t *testing.T) {
	vendas := []venda.Venda{
		{Valor: 300, Lucro: 100},
		{Valor: 200, Lucro: 50},
	}

	r := ResumirPeriodo(vendas, nil, 0)

	assert.Equal(t, 500.0, r.Receita)
	// custo = (300-100) + (200-50)
	assert.Equal(t, 350.0, r.CustoProdutos)
}

func TestResumirPeriodo_DespesasPorCategoria(t *testing.T) {
	despesas := []despesa.Despesa{
		{Categoria: despesa.CategoriaCombustivel, Valor: 80},
		{Categoria: despesa.CategoriaMateriais, Valor: 120},
		{Categoria: despesa.CategoriaCombustivel, Valor: 20},
	}

	r := ResumirPeriodo(nil, despesas, 0)

	assert.Equal(t, 220.0, r.TotalDespesas)
	assert.Equal(t, 100.0, r.DespesasPorCategoria[despesa.CategoriaCombustivel])
	assert.Equal(t, 120.0, r.DespesasPorCategoria[despesa.CategoriaMateriais])
	assert.Len(t, r.DespesasPorCategoria, 2)
}

func TestResumirPeriodo_ImpostoEstimado(t *testing.T) {
	vendas := []venda.Venda{{Valor: 1000, Lucro: 1000}}

	r := ResumirPeriodo(vendas, nil, 10)
	assert.Equal(t, 100.0, r.ImpostoEstimado)

	r = ResumirPeriodo(vendas, nil, 0)
	assert.Zero(t, r.ImpostoEstimado)
}

func TestResumirPeriodo_SaldoPodeSerNegativo(t *testing.T) {
	vendas := []venda.Venda{{Valor: 500, Lucro: 300}} // custo 200
	despesas := []despesa.Despesa{{Categoria: despesa.CategoriaOutros, Valor: 400}}

	r := ResumirPeriodo(vendas, despesas, 0)

	assert.Equal(t, 500.0, r.Receita)
	assert.Equal(t, 600.0, r.Saidas)
	assert.Equal(t, -100.0, r.SaldoLiquido)
}

func TestResumirPeriodo_IndependeDaOrdem(t *testing.T) {
	vendas := []venda.Venda{
		{Valor: 100, Lucro: 40},
		{Valor: 250, Lucro: 90},
		{Valor: 75, Lucro: 10},
	}
	despesas := []despesa.Despesa{
		{Categoria: despesa.CategoriaAlimentacao, Valor: 30},
		{Categoria: despesa.CategoriaCombustivel, Valor: 55},
	}

	direto := ResumirPeriodo(vendas, despesas, 8)

	invertidoVendas := []venda.Venda{vendas[2], vendas[1], vendas[0]}
	invertidoDespesas := []despesa.Despesa{despesas[1], despesas[0]}
	invertido := ResumirPeriodo(invertidoVendas, invertidoDespesas, 8)

	assert.Equal(t, direto, invertido)
}

// Agregar dois conjuntos disjuntos equivale a somar os resumos campo a campo.
func TestResumirPeriodo_Aditividade(t *testing.T) {
	vendasA := []venda.Venda{{Valor: 100, Lucro: 60}}
	vendasB := []venda.Venda{{Valor: 200, Lucro: 80}}
	despesasA := []despesa.Despesa{{Categoria: despesa.CategoriaMateriais, Valor: 25}}
	despesasB := []despesa.Despesa{{Categoria: despesa.CategoriaOutros, Valor: 75}}

	a := ResumirPeriodo(vendasA, despesasA, 10)
	b := ResumirPeriodo(vendasB, despesasB, 10)
	juntos := ResumirPeriodo(append(vendasA, vendasB...), append(despesasA, despesasB...), 10)

	assert.InDelta(t, a.Receita+b.Receita, juntos.Receita, 1e-9)
	assert.InDelta(t, a.CustoProdutos+b.CustoProdutos, juntos.CustoProdutos, 1e-9)
	assert.InDelta(t, a.TotalDespesas+b.TotalDespesas, juntos.TotalDespesas, 1e-9)
	assert.InDelta(t, a.ImpostoEstimado+b.ImpostoEstimado, juntos.ImpostoEstimado, 1e-9)
	assert.InDelta(t, a.Saidas+b.Saidas, juntos.Saidas, 1e-9)
	assert.InDelta(t, a.SaldoLiquido+b.SaldoLiquido, juntos.SaldoLiquido, 1e-9)
}

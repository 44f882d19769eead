package financeiro

import (
	"testing"
	"time"

	"github.com/EquinoMarket/api-fornecedor/internal/despesa"
	"github.com/EquinoMarket/api-fornecedor/internal/venda"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type vendasFake struct {
	chamadas int
	vendas   []venda.Venda
}

func (f *vendasFake) ListByFornecedor(uint) ([]venda.Venda, error) {
	f.chamadas++
	return f.vendas, nil
}

type despesasFake struct {
	chamadas int
	despesas []despesa.Despesa
}

func (f *despesasFake) ListByFornecedor(uint) ([]despesa.Despesa, error) {
	f.chamadas++
	return f.despesas, nil
}

type configFake struct {
	chamadas int
	aliquota float64
}

func (f *configFake) GetConfiguracao(fornecedorID uint) (*ConfiguracaoFinanceira, error) {
	f.chamadas++
	return &ConfiguracaoFinanceira{FornecedorID: fornecedorID, AliquotaImposto: f.aliquota}, nil
}

func (f *configFake) UpsertConfiguracao(fornecedorID uint, aliquota float64) (*ConfiguracaoFinanceira, error) {
	f.aliquota = aliquota
	return &ConfiguracaoFinanceira{FornecedorID: fornecedorID, AliquotaImposto: aliquota}, nil
}

func servicoComDados(t *testing.T) (*Servico, *vendasFake, *despesasFake) {
	t.Helper()
	vendas := &vendasFake{vendas: []venda.Venda{
		{Valor: 1000, Lucro: 400, CreatedAt: dia(2024, time.January, 10)},
		{Valor: 500, Lucro: 200, CreatedAt: dia(2024, time.March, 5)},
	}}
	despesas := &despesasFake{despesas: []despesa.Despesa{
		{Categoria: despesa.CategoriaCombustivel, Valor: 100, DataDespesa: dia(2024, time.January, 12)},
	}}
	return NewServico(vendas, despesas, &configFake{aliquota: 10}), vendas, despesas
}

func TestResumoDoMes(t *testing.T) {
	s, _, _ := servicoComDados(t)

	r, err := s.ResumoDoMes(1, "2024-01")
	require.NoError(t, err)

	assert.Equal(t, 1000.0, r.Receita)
	assert.Equal(t, 600.0, r.CustoProdutos)
	assert.Equal(t, 100.0, r.TotalDespesas)
	assert.Equal(t, 100.0, r.ImpostoEstimado)
	assert.Equal(t, 200.0, r.SaldoLiquido)
}

func TestResumosDoAno_DozeMesesEmOrdem(t *testing.T) {
	s, _, _ := servicoComDados(t)

	resumos, err := s.ResumosDoAno(1, 2024)
	require.NoError(t, err)
	require.Len(t, resumos, 12)

	// janeiro e março têm movimento; o resto zera
	assert.Equal(t, 1000.0, resumos[0].Receita)
	assert.Equal(t, 500.0, resumos[2].Receita)
	for i, r := range resumos {
		if i == 0 || i == 2 {
			continue
		}
		assert.Zero(t, r.Receita, "mês %d", i+1)
		assert.Zero(t, r.TotalDespesas, "mês %d", i+1)
	}
}

func TestResumosDoAno_BuscaUmaVezSo(t *testing.T) {
	s, vendas, despesas := servicoComDados(t)

	_, err := s.ResumosDoAno(1, 2024)
	require.NoError(t, err)

	assert.Equal(t, 1, vendas.chamadas)
	assert.Equal(t, 1, despesas.chamadas)
}

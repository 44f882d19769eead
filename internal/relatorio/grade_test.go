package relatorio

import (
	"testing"
	"time"

	"github.com/EquinoMarket/api-fornecedor/internal/despesa"
	"github.com/EquinoMarket/api-fornecedor/internal/financeiro"
	"github.com/EquinoMarket/api-fornecedor/internal/venda"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type vendasFixas []venda.Venda

func (f vendasFixas) ListByFornecedor(uint) ([]venda.Venda, error) { return f, nil }

type despesasFixas []despesa.Despesa

func (f despesasFixas) ListByFornecedor(uint) ([]despesa.Despesa, error) { return f, nil }

type configFixa float64

func (c configFixa) GetConfiguracao(fornecedorID uint) (*financeiro.ConfiguracaoFinanceira, error) {
	return &financeiro.ConfiguracaoFinanceira{FornecedorID: fornecedorID, AliquotaImposto: float64(c)}, nil
}

func (c configFixa) UpsertConfiguracao(fornecedorID uint, aliquota float64) (*financeiro.ConfiguracaoFinanceira, error) {
	return &financeiro.ConfiguracaoFinanceira{FornecedorID: fornecedorID, AliquotaImposto: aliquota}, nil
}

func TestMontarGrade_UmaLinhaPorMes(t *testing.T) {
	marco := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.Local)
	servico := financeiro.NewServico(
		vendasFixas{{Valor: 1000, Lucro: 400, CreatedAt: marco}},
		despesasFixas{{Categoria: despesa.CategoriaMateriais, Valor: 100, DataDespesa: marco}},
		configFixa(10),
	)

	linhas, err := MontarGrade(servico, 1, 2024)
	require.NoError(t, err)
	require.Len(t, linhas, 12)

	assert.Equal(t, "01/2024", linhas[0].Mes)
	assert.Equal(t, "12/2024", linhas[11].Mes)

	// março carrega o movimento: receita 1000, despesas 100, imposto 100,
	// lucro = 1000 - (600 + 100 + 100)
	assert.Equal(t, "03/2024", linhas[2].Mes)
	assert.Equal(t, 1000.0, linhas[2].Receita)
	assert.Equal(t, 100.0, linhas[2].Despesas)
	assert.Equal(t, 100.0, linhas[2].Impostos)
	assert.Equal(t, 200.0, linhas[2].Lucro)

	for i, l := range linhas {
		if i == 2 {
			continue
		}
		assert.Zero(t, l.Receita, "mês %d", i+1)
		assert.Zero(t, l.Lucro, "mês %d", i+1)
	}
}

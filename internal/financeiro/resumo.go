package financeiro

import (
	"github.com/EquinoMarket/api-fornecedor/internal/despesa"
	"github.com/EquinoMarket/api-fornecedor/internal/venda"
)

// ResumoPeriodo agrega o livro-caixa de um mês já filtrado.
// Valores em precisão plena; arredondamento só na exibição/exportação.
type ResumoPeriodo struct {
	Receita              float64            `json:"receita"`
	CustoProdutos        float64            `json:"custoProdutos"`
	TotalDespesas        float64            `json:"totalDespesas"`
	DespesasPorCategoria map[string]float64 `json:"despesasPorCategoria"`
	ImpostoEstimado      float64            `json:"impostoEstimado"`
	Saidas               float64            `json:"saidas"`
	SaldoLiquido         float64            `json:"saldoLiquido"`
}

// ResumirPeriodo reduz vendas e despesas já filtradas pelo chamador.
// Não filtra nada aqui: separação de responsabilidades com FiltrarPorMes.
// Determinístico e independente de ordem (soma comutativa), O(n).
// SaldoLiquido pode ser negativo; nenhum valor é truncado.
func ResumirPeriodo(vendas []venda.Venda, despesas []despesa.Despesa, aliquotaImposto float64) ResumoPeriodo {
	r := ResumoPeriodo{
		DespesasPorCategoria: make(map[string]float64),
	}

	for _, v := range vendas {
		r.Receita += v.Valor
		r.CustoProdutos += v.Valor - v.Lucro
	}

	for _, d := range despesas {
		r.TotalDespesas += d.Valor
		r.DespesasPorCategoria[d.Categoria] += d.Valor
	}

	r.ImpostoEstimado = r.Receita * aliquotaImposto / 100
	r.Saidas = r.CustoProdutos + r.TotalDespesas + r.ImpostoEstimado
	r.SaldoLiquido = r.Receita - r.Saidas
	return r
}

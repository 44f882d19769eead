package relatorio

import (
	"fmt"
	"strings"

	"github.com/EquinoMarket/api-fornecedor/internal/financeiro"
)

// Linha é uma linha da grade anual: um mês já agregado.
// Os três formatos (CSV, HTML, XLSX) renderizam a mesma grade.
type Linha struct {
	Mes      string // rótulo "MM/AAAA"
	Receita  float64
	Despesas float64
	Impostos float64
	Lucro    float64
}

var colunas = []string{"Mês", "Receita", "Despesas", "Impostos", "Lucro"}

// MontarGrade produz as 12 linhas de um ano a partir do serviço financeiro.
func MontarGrade(servico *financeiro.Servico, fornecedorID uint, ano int) ([]Linha, error) {
	resumos, err := servico.ResumosDoAno(fornecedorID, ano)
	if err != nil {
		return nil, err
	}

	linhas := make([]Linha, 0, len(resumos))
	for i, resumo := range resumos {
		mes := fmt.Sprintf("%04d-%02d", ano, i+1)
		linhas = append(linhas, Linha{
			Mes:      financeiro.RotuloDoMes(mes),
			Receita:  resumo.Receita,
			Despesas: resumo.TotalDespesas,
			Impostos: resumo.ImpostoEstimado,
			Lucro:    resumo.SaldoLiquido,
		})
	}
	return linhas, nil
}

// formatarValor escreve o número no padrão pt-BR (vírgula decimal, duas casas).
func formatarValor(v float64) string {
	return strings.Replace(fmt.Sprintf("%.2f", v), ".", ",", 1)
}

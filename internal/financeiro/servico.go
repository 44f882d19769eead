package financeiro

import (
	"fmt"
	"time"

	"github.com/EquinoMarket/api-fornecedor/internal/despesa"
	"github.com/EquinoMarket/api-fornecedor/internal/venda"
)

type VendaLister interface {
	ListByFornecedor(fornecedorID uint) ([]venda.Venda, error)
}

type DespesaLister interface {
	ListByFornecedor(fornecedorID uint) ([]despesa.Despesa, error)
}

type ConfiguracaoStore interface {
	GetConfiguracao(fornecedorID uint) (*ConfiguracaoFinanceira, error)
	UpsertConfiguracao(fornecedorID uint, aliquota float64) (*ConfiguracaoFinanceira, error)
}

// Servico monta resumos de período a partir dos repositórios do livro-caixa.
type Servico struct {
	Vendas   VendaLister
	Despesas DespesaLister
	Config   ConfiguracaoStore
}

func NewServico(vendas VendaLister, despesas DespesaLister, config ConfiguracaoStore) *Servico {
	return &Servico{Vendas: vendas, Despesas: despesas, Config: config}
}

func (s *Servico) carregar(fornecedorID uint) ([]venda.Venda, []despesa.Despesa, *ConfiguracaoFinanceira, error) {
	vendas, err := s.Vendas.ListByFornecedor(fornecedorID)
	if err != nil {
		return nil, nil, nil, err
	}
	despesas, err := s.Despesas.ListByFornecedor(fornecedorID)
	if err != nil {
		return nil, nil, nil, err
	}
	cfg, err := s.Config.GetConfiguracao(fornecedorID)
	if err != nil {
		return nil, nil, nil, err
	}
	return vendas, despesas, cfg, nil
}

func resumir(vendas []venda.Venda, despesas []despesa.Despesa, aliquota float64, mes string) ResumoPeriodo {
	vendasDoMes := FiltrarPorMes(vendas, mes, func(v venda.Venda) time.Time { return v.CreatedAt })
	despesasDoMes := FiltrarPorMes(despesas, mes, func(d despesa.Despesa) time.Time { return d.DataDespesa })
	return ResumirPeriodo(vendasDoMes, despesasDoMes, aliquota)
}

// ResumoDoMes busca, filtra e agrega o mês "AAAA-MM" de um fornecedor.
// A venda usa CreatedAt como chave de período; a despesa usa DataDespesa.
func (s *Servico) ResumoDoMes(fornecedorID uint, mes string) (ResumoPeriodo, error) {
	vendas, despesas, cfg, err := s.carregar(fornecedorID)
	if err != nil {
		return ResumoPeriodo{}, err
	}
	return resumir(vendas, despesas, cfg.AliquotaImposto, mes), nil
}

// ResumosDoAno devolve os doze resumos mensais de um ano, na ordem
// janeiro..dezembro, com uma única busca de vendas/despesas/configuração.
func (s *Servico) ResumosDoAno(fornecedorID uint, ano int) ([]ResumoPeriodo, error) {
	vendas, despesas, cfg, err := s.carregar(fornecedorID)
	if err != nil {
		return nil, err
	}

	resumos := make([]ResumoPeriodo, 0, 12)
	for m := 1; m <= 12; m++ {
		mes := fmt.Sprintf("%04d-%02d", ano, m)
		resumos = append(resumos, resumir(vendas, despesas, cfg.AliquotaImposto, mes))
	}
	return resumos, nil
}

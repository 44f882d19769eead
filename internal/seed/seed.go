package seed

import (
	"log"
	"os"
	"time"

	"github.com/EquinoMarket/api-fornecedor/internal/despesa"
	"github.com/EquinoMarket/api-fornecedor/internal/fornecedor"
	"github.com/EquinoMarket/api-fornecedor/internal/produto"
	"github.com/EquinoMarket/api-fornecedor/internal/utils"
	"github.com/EquinoMarket/api-fornecedor/internal/venda"
	"gorm.io/gorm"
)

// Executar popula o banco com dados de demonstração quando
// SEED_DEMO_DATA=true e a tabela de fornecedores está vazia.
// Nunca sobrescreve dados existentes.
func Executar(db *gorm.DB) {
	if os.Getenv("SEED_DEMO_DATA") != "true" {
		return
	}

	var total int64
	if err := db.Model(&fornecedor.Fornecedor{}).Count(&total).Error; err != nil {
		log.Println("seed: erro ao verificar banco:", err)
		return
	}
	if total > 0 {
		log.Println("seed: banco já possui dados, nada a fazer")
		return
	}

	senha, err := utils.HashSenha("demo1234")
	if err != nil {
		log.Println("seed: erro ao gerar senha:", err)
		return
	}

	demo := fornecedor.Fornecedor{
		Nome:     "João da Silva",
		NomeLoja: "Haras Boa Vista",
		CNPJ:     "00000000000191",
		Email:    "demo@harasboavista.com.br",
		Telefone: "(31) 99999-0000",
		Cidade:   "Belo Horizonte",
		UF:       "MG",
		Bio:      "Selaria e serviços equestres de demonstração.",
		Senha:    senha,
	}
	if err := db.Create(&demo).Error; err != nil {
		log.Println("seed: erro ao criar fornecedor:", err)
		return
	}

	original := 1200.0
	produtos := []produto.Produto{
		{
			FornecedorID:     demo.ID,
			Nome:             "Sela de couro legítimo",
			Descricao:        "Sela artesanal em couro, assento 16 polegadas.",
			Tipo:             produto.TipoProduto,
			Categoria:        "selaria",
			Preco:            980,
			PrecoOriginal:    &original,
			ParcelasSemJuros: 3,
			Ativo:            true,
		},
		{
			FornecedorID: demo.ID,
			Nome:         "Cabresto de nylon",
			Descricao:    "Cabresto reforçado, tamanhos P a GG.",
			Tipo:         produto.TipoProduto,
			Categoria:    "acessorios",
			Preco:        85,
			Ativo:        true,
		},
		{
			FornecedorID:     demo.ID,
			Nome:             "Casqueamento",
			Descricao:        "Atendimento a domicílio na região metropolitana.",
			Tipo:             produto.TipoServico,
			Categoria:        "servicos",
			Preco:            150,
			ParcelasSemJuros: 1,
			Ativo:            true,
		},
	}
	if err := db.Create(&produtos).Error; err != nil {
		log.Println("seed: erro ao criar produtos:", err)
		return
	}

	vendas := []venda.Venda{
		{FornecedorID: demo.ID, NomeProduto: "Sela de couro legítimo", Valor: 980, Lucro: 350, FormaPagamento: venda.PagamentoPix},
		{FornecedorID: demo.ID, NomeProduto: "Cabresto de nylon", Valor: 85, Lucro: 40, FormaPagamento: venda.PagamentoDinheiro},
	}
	if err := db.Create(&vendas).Error; err != nil {
		log.Println("seed: erro ao criar vendas:", err)
		return
	}

	despesas := []despesa.Despesa{
		{FornecedorID: demo.ID, Categoria: despesa.CategoriaCombustivel, Valor: 120, Descricao: "Deslocamento para atendimento", DataDespesa: time.Now()},
		{FornecedorID: demo.ID, Categoria: despesa.CategoriaMateriais, Valor: 230, Descricao: "Couro e linha encerada", DataDespesa: time.Now()},
	}
	if err := db.Create(&despesas).Error; err != nil {
		log.Println("seed: erro ao criar despesas:", err)
		return
	}

	log.Println("seed: dados de demonstração criados")
}

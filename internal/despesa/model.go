package despesa

import (
	"time"

	"gorm.io/gorm"
)

// Categorias de despesa do livro-caixa
const (
	CategoriaCombustivel = "combustivel"
	CategoriaMateriais   = "materiais"
	CategoriaAlimentacao = "alimentacao"
	CategoriaImpostos    = "impostos"
	CategoriaOutros      = "outros"
)

func CategoriaValida(c string) bool {
	switch c {
	case CategoriaCombustivel, CategoriaMateriais, CategoriaAlimentacao, CategoriaImpostos, CategoriaOutros:
		return true
	}
	return false
}

// Despesa é um lançamento de saída do livro-caixa.
// DataDespesa é escolhida pelo usuário e é a chave de período,
// diferente da venda, que usa CreatedAt.
type Despesa struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	FornecedorID uint      `gorm:"not null;index" json:"fornecedorId"`
	Categoria    string    `gorm:"size:30;not null" json:"categoria"`
	Valor        float64   `gorm:"not null;default:0" json:"valor"`
	Descricao    string    `json:"descricao"`
	DataDespesa  time.Time `gorm:"not null;index" json:"dataDespesa"`
	CreatedAt    time.Time `json:"createdAt"`
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Despesa{})
}

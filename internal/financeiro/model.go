package financeiro

import (
	"time"

	"gorm.io/gorm"
)

// ConfiguracaoFinanceira guarda a alíquota de imposto do fornecedor.
// É a única entidade do livro-caixa com semântica de update (upsert).
type ConfiguracaoFinanceira struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	FornecedorID    uint      `gorm:"not null;uniqueIndex" json:"fornecedorId"`
	AliquotaImposto float64   `gorm:"not null;default:0" json:"aliquotaImposto"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&ConfiguracaoFinanceira{})
}

package produto

import (
	"time"

	"gorm.io/gorm"
)

const (
	TipoProduto = "produto"
	TipoServico = "servico"
)

// Produto representa um item do catálogo (produto físico ou serviço)
type Produto struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	FornecedorID uint   `gorm:"not null;index" json:"fornecedorId"`
	Nome         string `gorm:"size:255;not null" json:"nome"`
	Descricao    string `json:"descricao"`
	Tipo         string `gorm:"size:20;not null;default:'produto'" json:"tipo"`
	Categoria    string `gorm:"size:100;index" json:"categoria"`

	Preco              float64  `gorm:"not null;default:0" json:"preco"`
	PrecoOriginal      *float64 `json:"precoOriginal,omitempty"`
	PercentualDesconto *float64 `json:"percentualDesconto,omitempty"`
	ParcelasSemJuros   int      `gorm:"not null;default:1" json:"parcelasSemJuros"`

	// Suporta múltiplas fotos em JSONB
	Fotos []string `gorm:"type:jsonb;serializer:json" json:"fotos"`

	Ativo bool `gorm:"not null;default:true" json:"ativo"`
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Produto{})
}

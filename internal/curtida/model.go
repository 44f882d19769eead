package curtida

import (
	"time"

	"gorm.io/gorm"
)

// Curtida registra que um cliente curtiu um produto (uma por par)
type Curtida struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ProdutoID uint      `gorm:"not null;uniqueIndex:idx_curtida_produto_cliente" json:"produtoId"`
	ClienteID uint      `gorm:"not null;uniqueIndex:idx_curtida_produto_cliente" json:"clienteId"`
	CreatedAt time.Time `json:"createdAt"`
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Curtida{})
}

package favorito

import (
	"time"

	"github.com/EquinoMarket/api-fornecedor/internal/produto"
	"gorm.io/gorm"
)

// Favorito vincula um cliente a um produto salvo (um por par)
type Favorito struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ClienteID uint      `gorm:"not null;uniqueIndex:idx_favorito_cliente_produto" json:"clienteId"`
	ProdutoID uint      `gorm:"not null;uniqueIndex:idx_favorito_cliente_produto" json:"produtoId"`
	CreatedAt time.Time `json:"createdAt"`

	Produto produto.Produto `gorm:"foreignKey:ProdutoID" json:"produto"`
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Favorito{})
}

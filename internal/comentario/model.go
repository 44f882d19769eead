package comentario

import "gorm.io/gorm"

// Comentario é um comentário de cliente no feed de um produto
type Comentario struct {
	gorm.Model
	Texto     string `gorm:"not null" json:"texto"`
	ProdutoID uint   `gorm:"not null;index" json:"produtoId"`
	ClienteID uint   `gorm:"not null;index" json:"clienteId"`
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Comentario{})
}

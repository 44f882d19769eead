package curtida

import (
	"errors"

	"gorm.io/gorm"
)

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Toggle cria a curtida se não existir ou remove se já existir.
// Retorna true quando o produto ficou curtido.
func (r *Repository) Toggle(produtoID, clienteID uint) (bool, error) {
	var existente Curtida
	err := r.DB.Where("produto_id = ? AND cliente_id = ?", produtoID, clienteID).
		First(&existente).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		c := Curtida{ProdutoID: produtoID, ClienteID: clienteID}
		return true, r.DB.Create(&c).Error
	}
	if err != nil {
		return false, err
	}
	return false, r.DB.Delete(&existente).Error
}

func (r *Repository) CountByProduto(produtoID uint) (int64, error) {
	var total int64
	err := r.DB.Model(&Curtida{}).
		Where("produto_id = ?", produtoID).
		Count(&total).Error
	return total, err
}

package favorito

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

// Adicionar é idempotente: favoritar duas vezes não duplica.
func (r *Repository) Adicionar(clienteID, produtoID uint) error {
	var existente Favorito
	err := r.DB.Where("cliente_id = ? AND produto_id = ?", clienteID, produtoID).
		First(&existente).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	f := Favorito{ClienteID: clienteID, ProdutoID: produtoID}
	return r.DB.Create(&f).Error
}

func (r *Repository) Remover(clienteID, produtoID uint) error {
	return r.DB.Where("cliente_id = ? AND produto_id = ?", clienteID, produtoID).
		Delete(&Favorito{}).Error
}

func (r *Repository) ListByCliente(clienteID uint) ([]Favorito, error) {
	var fs []Favorito
	err := r.DB.Preload("Produto").
		Where("cliente_id = ?", clienteID).
		Order("created_at DESC").
		Find(&fs).Error
	return fs, err
}

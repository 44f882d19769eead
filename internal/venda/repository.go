package venda

import "gorm.io/gorm"

// Repository encapsula o acesso a dados das vendas.
// Todas as operações são escopadas pelo fornecedor dono.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(v *Venda) error {
	return r.DB.Create(v).Error
}

func (r *Repository) ListByFornecedor(fornecedorID uint) ([]Venda, error) {
	var vs []Venda
	err := r.DB.Where("fornecedor_id = ?", fornecedorID).
		Order("created_at DESC").
		Find(&vs).Error
	return vs, err
}

// DeleteByID apaga a venda do fornecedor; retorna gorm.ErrRecordNotFound
// se nada foi deletado (linha inexistente ou de outro dono).
func (r *Repository) DeleteByID(id, fornecedorID uint) error {
	res := r.DB.Where("id = ? AND fornecedor_id = ?", id, fornecedorID).
		Delete(&Venda{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

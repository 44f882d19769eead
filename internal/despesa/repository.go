package despesa

import "gorm.io/gorm"

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(d *Despesa) error {
	return r.DB.Create(d).Error
}

func (r *Repository) ListByFornecedor(fornecedorID uint) ([]Despesa, error) {
	var ds []Despesa
	err := r.DB.Where("fornecedor_id = ?", fornecedorID).
		Order("data_despesa DESC").
		Find(&ds).Error
	return ds, err
}

// DeleteByID apaga a despesa do fornecedor; retorna gorm.ErrRecordNotFound
// se nada foi deletado.
func (r *Repository) DeleteByID(id, fornecedorID uint) error {
	res := r.DB.Where("id = ? AND fornecedor_id = ?", id, fornecedorID).
		Delete(&Despesa{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

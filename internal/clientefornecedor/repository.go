package clientefornecedor

import "gorm.io/gorm"

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(c *ClienteFornecedor) error {
	return r.DB.Create(c).Error
}

func (r *Repository) FindByID(id uint) (*ClienteFornecedor, error) {
	var c ClienteFornecedor
	if err := r.DB.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Repository) ListByFornecedor(fornecedorID uint) ([]ClienteFornecedor, error) {
	var cs []ClienteFornecedor
	err := r.DB.Where("fornecedor_id = ?", fornecedorID).
		Order("nome ASC").
		Find(&cs).Error
	return cs, err
}

func (r *Repository) Update(c *ClienteFornecedor) error {
	return r.DB.Save(c).Error
}

func (r *Repository) Delete(c *ClienteFornecedor) error {
	return r.DB.Delete(c).Error
}

// Pertence informa se o registro existe e pertence ao fornecedor.
func (r *Repository) Pertence(id, fornecedorID uint) (bool, error) {
	var total int64
	err := r.DB.Model(&ClienteFornecedor{}).
		Where("id = ? AND fornecedor_id = ?", id, fornecedorID).
		Count(&total).Error
	return total > 0, err
}

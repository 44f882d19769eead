package cliente

import "gorm.io/gorm"

// Repository encapsula operações de banco para Cliente
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(c *Cliente) error {
	return r.DB.Create(c).Error
}

func (r *Repository) FindByEmail(email string) (*Cliente, error) {
	var c Cliente
	if err := r.DB.Where("email = ?", email).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Repository) FindByID(id uint) (*Cliente, error) {
	var c Cliente
	if err := r.DB.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Repository) Update(c *Cliente) error {
	return r.DB.Save(c).Error
}

func (r *Repository) Delete(id uint) error {
	return r.DB.Delete(&Cliente{}, id).Error
}

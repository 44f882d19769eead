package comentario

import "gorm.io/gorm"

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(c *Comentario) error {
	return r.DB.Create(c).Error
}

func (r *Repository) FindByID(id uint) (*Comentario, error) {
	var c Comentario
	if err := r.DB.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// ListByProduto devolve os comentários em ordem cronológica
func (r *Repository) ListByProduto(produtoID uint) ([]Comentario, error) {
	var cs []Comentario
	err := r.DB.Where("produto_id = ?", produtoID).
		Order("created_at ASC").
		Find(&cs).Error
	return cs, err
}

func (r *Repository) Delete(c *Comentario) error {
	return r.DB.Delete(c).Error
}

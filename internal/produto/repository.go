package produto

import (
	"strings"

	"gorm.io/gorm"
)

// Filtro reúne os parâmetros de busca da vitrine
type Filtro struct {
	Tipo         string
	Categoria    string
	FornecedorID uint
	Texto        string
}

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(p *Produto) error {
	return r.DB.Create(p).Error
}

func (r *Repository) FindByID(id uint) (*Produto, error) {
	var p Produto
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) FindByFornecedor(fornecedorID uint) ([]Produto, error) {
	var ps []Produto
	err := r.DB.Where("fornecedor_id = ?", fornecedorID).
		Order("created_at DESC").
		Find(&ps).Error
	return ps, err
}

// Buscar lista produtos ativos aplicando os filtros da vitrine
func (r *Repository) Buscar(filtro Filtro) ([]Produto, error) {
	q := r.DB.Where("ativo = ?", true)
	if filtro.Tipo != "" {
		q = q.Where("tipo = ?", filtro.Tipo)
	}
	if filtro.Categoria != "" {
		q = q.Where("LOWER(categoria) = LOWER(?)", filtro.Categoria)
	}
	if filtro.FornecedorID != 0 {
		q = q.Where("fornecedor_id = ?", filtro.FornecedorID)
	}
	if filtro.Texto != "" {
		like := "%" + strings.ToLower(filtro.Texto) + "%"
		q = q.Where("LOWER(nome) LIKE ? OR LOWER(descricao) LIKE ?", like, like)
	}

	var ps []Produto
	err := q.Order("created_at DESC").Find(&ps).Error
	return ps, err
}

func (r *Repository) Update(p *Produto) error {
	return r.DB.Save(p).Error
}

func (r *Repository) Delete(p *Produto) error {
	return r.DB.Delete(p).Error
}

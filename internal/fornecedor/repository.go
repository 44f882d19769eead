package fornecedor

import (
	"strings"

	"gorm.io/gorm"
)

type Repository interface {
	BuscarPorEmailOuCNPJ(db *gorm.DB, valor string) (*Fornecedor, error)
	Salvar(db *gorm.DB, f *Fornecedor) error
	BuscarPorID(db *gorm.DB, id uint) (*Fornecedor, error)
	Buscar(db *gorm.DB, filtro Filtro) ([]Fornecedor, error)
	Deletar(db *gorm.DB, id uint) error
}

// Filtro reúne os parâmetros de busca pública de fornecedores
type Filtro struct {
	UF        string
	Cidade    string
	Categoria string
	Texto     string
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

// Busca primeiro por e-mail, depois por CNPJ, para evitar ambiguidade
func (r *repositoryImpl) BuscarPorEmailOuCNPJ(db *gorm.DB, valor string) (*Fornecedor, error) {
	var f Fornecedor
	if err := db.Where("email = ?", valor).First(&f).Error; err == nil {
		return &f, nil
	}
	if err := db.Where("cnpj = ?", valor).First(&f).Error; err == nil {
		return &f, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *repositoryImpl) Salvar(db *gorm.DB, f *Fornecedor) error {
	return db.Save(f).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Fornecedor, error) {
	var f Fornecedor
	err := db.First(&f, id).Error
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *repositoryImpl) Buscar(db *gorm.DB, filtro Filtro) ([]Fornecedor, error) {
	q := db.Model(&Fornecedor{})
	if filtro.UF != "" {
		q = q.Where("uf = ?", strings.ToUpper(filtro.UF))
	}
	if filtro.Cidade != "" {
		q = q.Where("LOWER(cidade) = LOWER(?)", filtro.Cidade)
	}
	if filtro.Categoria != "" {
		// fornecedores com ao menos um produto ativo na categoria
		q = q.Where("id IN (SELECT fornecedor_id FROM produtos WHERE LOWER(categoria) = LOWER(?) AND ativo AND deleted_at IS NULL)", filtro.Categoria)
	}
	if filtro.Texto != "" {
		like := "%" + strings.ToLower(filtro.Texto) + "%"
		q = q.Where("LOWER(nome) LIKE ? OR LOWER(nome_loja) LIKE ?", like, like)
	}

	var lista []Fornecedor
	err := q.Order("nome_loja ASC").Find(&lista).Error
	return lista, err
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Fornecedor{}, id).Error
}

package agendamento

import (
	"time"

	"gorm.io/gorm"
)

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(a *Agendamento) error {
	return r.DB.Create(a).Error
}

func (r *Repository) FindByID(id uint) (*Agendamento, error) {
	var a Agendamento
	if err := r.DB.First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *Repository) ListByCliente(clienteID uint) ([]Agendamento, error) {
	var as []Agendamento
	err := r.DB.Where("cliente_id = ?", clienteID).
		Order("data ASC").
		Find(&as).Error
	return as, err
}

func (r *Repository) ListByFornecedor(fornecedorID uint) ([]Agendamento, error) {
	var as []Agendamento
	err := r.DB.Where("fornecedor_id = ?", fornecedorID).
		Order("data ASC").
		Find(&as).Error
	return as, err
}

func (r *Repository) UpdateStatus(id uint, status string) error {
	return r.DB.Model(&Agendamento{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// ExpirarPendentesAntesDe marca como expirado todo agendamento pendente
// com data anterior ao corte. Retorna a quantidade afetada.
func (r *Repository) ExpirarPendentesAntesDe(corte time.Time) (int64, error) {
	res := r.DB.Model(&Agendamento{}).
		Where("status = ? AND data < ?", StatusPendente, corte).
		Update("status", StatusExpirado)
	return res.RowsAffected, res.Error
}

package financeiro

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// UpsertConfiguracao insere ou atualiza a alíquota do fornecedor
// (on conflict na unicidade de fornecedor_id).
func (r *Repository) UpsertConfiguracao(fornecedorID uint, aliquota float64) (*ConfiguracaoFinanceira, error) {
	cfg := ConfiguracaoFinanceira{
		FornecedorID:    fornecedorID,
		AliquotaImposto: aliquota,
	}
	err := r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "fornecedor_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"aliquota_imposto", "updated_at"}),
	}).Create(&cfg).Error
	if err != nil {
		return nil, err
	}

	// recarrega para devolver o registro efetivo
	if err := r.DB.Where("fornecedor_id = ?", fornecedorID).First(&cfg).Error; err != nil {
		return nil, err
	}
	return &cfg, nil
}

// GetConfiguracao devolve a configuração do fornecedor; sem registro,
// devolve o default (alíquota zero) sem criar linha.
func (r *Repository) GetConfiguracao(fornecedorID uint) (*ConfiguracaoFinanceira, error) {
	var cfg ConfiguracaoFinanceira
	err := r.DB.Where("fornecedor_id = ?", fornecedorID).First(&cfg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &ConfiguracaoFinanceira{FornecedorID: fornecedorID, AliquotaImposto: 0}, nil
	}
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

package clientefornecedor

import "gorm.io/gorm"

// ClienteFornecedor é um registro da carteira de clientes do próprio fornecedor.
// Não é uma conta de acesso; serve de referência opcional nas vendas.
type ClienteFornecedor struct {
	gorm.Model
	FornecedorID uint   `gorm:"not null;index" json:"fornecedorId"`
	Nome         string `gorm:"size:255;not null" json:"nome"`
	Telefone     string `gorm:"size:20" json:"telefone"`
	Email        string `gorm:"size:100" json:"email"`
	Observacoes  string `json:"observacoes"`
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&ClienteFornecedor{})
}

package fornecedor

import "gorm.io/gorm"

// Fornecedor representa a conta de um vendedor/prestador do marketplace
type Fornecedor struct {
	gorm.Model
	Nome      string `json:"nome"`
	NomeLoja  string `json:"nomeLoja"`
	CNPJ      string `json:"cnpj" gorm:"unique"`
	Email     string `json:"email" gorm:"unique"`
	Telefone  string `json:"telefone"`
	Cidade    string `json:"cidade"`
	UF        string `gorm:"size:2" json:"uf"`
	Bio       string `json:"bio"`
	Foto      string `json:"foto"`
	Senha     string `json:"-"`
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Fornecedor{})
}

package cliente

import (
	"time"

	"gorm.io/gorm"
)

// Cliente representa a conta de um comprador do marketplace
type Cliente struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Nome      string    `gorm:"size:100;not null" json:"nome"`
	Sobrenome string    `gorm:"size:100" json:"sobrenome"`
	Email     string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Senha     string    `gorm:"size:255;not null" json:"-"` // não expõe a senha no JSON
	Telefone  string    `gorm:"size:20" json:"telefone"`
	Foto      string    `gorm:"size:255" json:"foto"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Cliente{})
}

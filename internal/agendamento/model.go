package agendamento

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

const (
	StatusPendente   = "pendente"
	StatusConfirmado = "confirmado"
	StatusCancelado  = "cancelado"
	StatusConcluido  = "concluido"
	StatusExpirado   = "expirado"
)

// Agendamento é a reserva de um serviço de fornecedor por um cliente
type Agendamento struct {
	gorm.Model
	ProdutoID    uint      `gorm:"not null;index" json:"produtoId"`
	FornecedorID uint      `gorm:"not null;index" json:"fornecedorId"`
	ClienteID    uint      `gorm:"not null;index" json:"clienteId"`
	Data         time.Time `gorm:"not null" json:"data"`
	Observacao   string    `json:"observacao"`
	Status       string    `gorm:"size:20;not null;default:'pendente';index" json:"status"`
}

// transições permitidas por status de origem
var transicoes = map[string][]string{
	StatusPendente:   {StatusConfirmado, StatusCancelado, StatusExpirado},
	StatusConfirmado: {StatusConcluido, StatusCancelado},
}

// ValidarTransicao rejeita mudanças a partir de status terminais
// e destinos fora do fluxo pendente → confirmado → concluido.
func ValidarTransicao(de, para string) error {
	for _, permitido := range transicoes[de] {
		if para == permitido {
			return nil
		}
	}
	return fmt.Errorf("transição de %q para %q não é permitida", de, para)
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Agendamento{})
}

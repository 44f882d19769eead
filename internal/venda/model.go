package venda

import (
	"time"

	"gorm.io/gorm"
)

// Formas de pagamento aceitas no registro de venda
const (
	PagamentoPix      = "pix"
	PagamentoDinheiro = "dinheiro"
	PagamentoCartao   = "cartao"
	PagamentoBoleto   = "boleto"
)

// FormaPagamentoValida aceita também o campo vazio (forma não informada).
func FormaPagamentoValida(f string) bool {
	switch f {
	case "", PagamentoPix, PagamentoDinheiro, PagamentoCartao, PagamentoBoleto:
		return true
	}
	return false
}

// Venda é um lançamento do livro-caixa do fornecedor.
// NomeProduto é um retrato histórico em texto livre, não uma FK do catálogo.
// Nunca é atualizada após criada; CreatedAt é a chave de período.
type Venda struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	FornecedorID   uint      `gorm:"not null;index" json:"fornecedorId"`
	NomeProduto    string    `gorm:"size:255;not null" json:"nomeProduto"`
	Valor          float64   `gorm:"not null;default:0" json:"valor"`
	Lucro          float64   `gorm:"not null;default:0" json:"lucro"`
	FormaPagamento string    `gorm:"size:20" json:"formaPagamento"`
	ClienteID      *uint     `gorm:"index" json:"clienteId,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Venda{})
}

package produto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParaVitrine_AplicaDerivacao(t *testing.T) {
	p := Produto{
		ID:               7,
		FornecedorID:     3,
		Nome:             "Sela de couro",
		Tipo:             TipoProduto,
		Categoria:        "selaria",
		Preco:            90,
		PrecoOriginal:    f(100),
		ParcelasSemJuros: 3,
		Fotos:            []string{"a.jpg"},
	}

	v := ParaVitrine(p)

	assert.Equal(t, uint(7), v.ID)
	assert.Equal(t, uint(3), v.FornecedorID)
	assert.Equal(t, 90.0, v.Preco)
	assert.Equal(t, 100.0, v.PrecoOriginal)
	assert.Equal(t, 10.0, v.PercentualDesconto)
	assert.Equal(t, 3, v.ParcelasSemJuros)
	assert.Equal(t, 30.0, v.ValorParcela)
	assert.Equal(t, []string{"a.jpg"}, v.Fotos)
}

func TestParaVitrine_SemSinalUsaMarkupSintetico(t *testing.T) {
	v := ParaVitrine(Produto{Preco: 100})

	assert.InDelta(t, 135.0, v.PrecoOriginal, 1e-9)
	assert.Equal(t, 26.0, v.PercentualDesconto)
	// parcelas não informadas viram 1, parcela = preço cheio
	assert.Equal(t, 1, v.ParcelasSemJuros)
	assert.Equal(t, 100.0, v.ValorParcela)
}

func TestParaVitrine_DescontoArmazenado(t *testing.T) {
	v := ParaVitrine(Produto{Preco: 90, PercentualDesconto: f(10), ParcelasSemJuros: 2})

	assert.InDelta(t, 100.0, v.PrecoOriginal, 1e-9)
	assert.Equal(t, 10.0, v.PercentualDesconto)
	assert.Equal(t, 45.0, v.ValorParcela)
}

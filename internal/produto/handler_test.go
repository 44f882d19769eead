package produto

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func postProduto(t *testing.T, corpo string) *httptest.ResponseRecorder {
	t.Helper()
	h := NewHandler(nil)
	r := httptest.NewRequest(http.MethodPost, "/fornecedores/me/produtos", strings.NewReader(corpo))
	w := httptest.NewRecorder()
	h.Criar(w, r)
	return w
}

func TestCriarProduto_JSONMalFormado(t *testing.T) {
	w := postProduto(t, `{`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCriarProduto_NomeObrigatorio(t *testing.T) {
	w := postProduto(t, `{"preco":100}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "nome")
}

func TestCriarProduto_TipoInvalido(t *testing.T) {
	w := postProduto(t, `{"nome":"Sela","tipo":"aluguel","preco":100}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "tipo")
}

func TestCriarProduto_PrecoNegativo(t *testing.T) {
	w := postProduto(t, `{"nome":"Sela","preco":-1}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "negativo")
}

func TestCriarProduto_DescontoForaDaFaixa(t *testing.T) {
	// 100% levaria a divisão por zero na derivação
	w := postProduto(t, `{"nome":"Sela","preco":100,"percentualDesconto":100}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "desconto")

	w = postProduto(t, `{"nome":"Sela","preco":100,"percentualDesconto":-5}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestValidarEntrada_Defaults(t *testing.T) {
	dto := CreateProdutoDTO{Nome: "Sela", Preco: 100, ParcelasSemJuros: 0}

	msg := validarEntrada(&dto)

	assert.Empty(t, msg)
	assert.Equal(t, TipoProduto, dto.Tipo)
	assert.Equal(t, 1, dto.ParcelasSemJuros)
}

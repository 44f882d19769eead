package despesa

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func postDespesa(t *testing.T, corpo string) *httptest.ResponseRecorder {
	t.Helper()
	h := NewHandler(nil)
	r := httptest.NewRequest(http.MethodPost, "/fornecedores/me/despesas", strings.NewReader(corpo))
	w := httptest.NewRecorder()
	h.Criar(w, r)
	return w
}

func TestCriarDespesa_JSONMalFormado(t *testing.T) {
	w := postDespesa(t, `{`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCriarDespesa_CategoriaInvalida(t *testing.T) {
	w := postDespesa(t, `{"categoria":"luxo","valor":50,"dataDespesa":"2024-01-10"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "categoria")
}

func TestCriarDespesa_ValorNegativo(t *testing.T) {
	w := postDespesa(t, `{"categoria":"combustivel","valor":-5,"dataDespesa":"2024-01-10"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "negativo")
}

func TestCriarDespesa_DataInvalida(t *testing.T) {
	w := postDespesa(t, `{"categoria":"combustivel","valor":50,"dataDespesa":"10/01/2024"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "dataDespesa")
}

func TestCategoriaValida(t *testing.T) {
	for _, c := range []string{CategoriaCombustivel, CategoriaMateriais, CategoriaAlimentacao, CategoriaImpostos, CategoriaOutros} {
		assert.True(t, CategoriaValida(c), c)
	}
	assert.False(t, CategoriaValida(""))
	assert.False(t, CategoriaValida("luxo"))
}

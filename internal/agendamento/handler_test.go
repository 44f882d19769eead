package agendamento

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

func requisicaoStatus(corpo string) (*httptest.ResponseRecorder, *http.Request) {
	r := httptest.NewRequest(http.MethodPatch, "/agendamentos/1/status", strings.NewReader(corpo))
	r = mux.SetURLVars(r, map[string]string{"id": "1"})
	return httptest.NewRecorder(), r
}

func TestAtualizarStatus_ExpiradoSoPeloSistema(t *testing.T) {
	h := NewHandler(nil, nil)

	w, r := requisicaoStatus(`{"status":"expirado"}`)
	h.AtualizarStatus(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "expirado")
}

func TestAtualizarStatus_JSONMalFormado(t *testing.T) {
	h := NewHandler(nil, nil)

	w, r := requisicaoStatus(`{`)
	h.AtualizarStatus(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAtualizarStatus_IDInvalido(t *testing.T) {
	h := NewHandler(nil, nil)

	r := httptest.NewRequest(http.MethodPatch, "/agendamentos/abc/status", strings.NewReader(`{"status":"confirmado"}`))
	r = mux.SetURLVars(r, map[string]string{"id": "abc"})
	w := httptest.NewRecorder()
	h.AtualizarStatus(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

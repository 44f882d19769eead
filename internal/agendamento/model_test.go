package agendamento

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidarTransicao_FluxoNormal(t *testing.T) {
	assert.NoError(t, ValidarTransicao(StatusPendente, StatusConfirmado))
	assert.NoError(t, ValidarTransicao(StatusPendente, StatusCancelado))
	assert.NoError(t, ValidarTransicao(StatusPendente, StatusExpirado))
	assert.NoError(t, ValidarTransicao(StatusConfirmado, StatusConcluido))
	assert.NoError(t, ValidarTransicao(StatusConfirmado, StatusCancelado))
}

func TestValidarTransicao_StatusTerminais(t *testing.T) {
	for _, terminal := range []string{StatusCancelado, StatusConcluido, StatusExpirado} {
		for _, destino := range []string{StatusPendente, StatusConfirmado, StatusConcluido, StatusCancelado} {
			assert.Error(t, ValidarTransicao(terminal, destino), "de %s para %s", terminal, destino)
		}
	}
}

func TestValidarTransicao_PulosInvalidos(t *testing.T) {
	assert.Error(t, ValidarTransicao(StatusPendente, StatusConcluido))
	assert.Error(t, ValidarTransicao(StatusConfirmado, StatusExpirado))
	assert.Error(t, ValidarTransicao(StatusPendente, StatusPendente))
}

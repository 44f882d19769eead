package agendamento

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"time"
)

// NotificarNovoAgendamento envia um POST para a URL configurada em
// WEBHOOK_AGENDAMENTO_URL. Sem URL configurada, não faz nada.
func NotificarNovoAgendamento(a Agendamento, nomeServico string) {
	url := os.Getenv("WEBHOOK_AGENDAMENTO_URL")
	if url == "" {
		return
	}

	payload := map[string]interface{}{
		"mensagem":     "Novo agendamento recebido",
		"agendamento":  a.ID,
		"fornecedorId": a.FornecedorID,
		"servico":      nomeServico,
		"data":         a.Data.Format(time.RFC3339),
	}
	body, _ := json.Marshal(payload)

	resp, err := http.Post(url, "application/json", bytes.NewBuffer(body))
	if err != nil {
		log.Printf("Erro ao enviar webhook de agendamento: %v", err)
		return
	}
	defer resp.Body.Close()
}

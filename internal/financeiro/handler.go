package financeiro

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/EquinoMarket/api-fornecedor/internal/auth"
)

type Handler struct {
	Servico *Servico
}

func NewHandler(servico *Servico) *Handler {
	return &Handler{Servico: servico}
}

// GET /fornecedores/me/financeiro/configuracao
func (h *Handler) BuscarConfiguracao(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.Servico.Config.GetConfiguracao(auth.UsuarioDoContexto(r))
	if err != nil {
		http.Error(w, "erro ao buscar configuração", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cfg)
}

// PUT /fornecedores/me/financeiro/configuracao
func (h *Handler) AtualizarConfiguracao(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		AliquotaImposto float64 `json:"aliquotaImposto"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if payload.AliquotaImposto < 0 || payload.AliquotaImposto > 100 {
		http.Error(w, "alíquota deve estar entre 0 e 100", http.StatusBadRequest)
		return
	}

	cfg, err := h.Servico.Config.UpsertConfiguracao(auth.UsuarioDoContexto(r), payload.AliquotaImposto)
	if err != nil {
		http.Error(w, "erro ao salvar configuração", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cfg)
}

// GET /fornecedores/me/financeiro/resumo?mes=AAAA-MM
// Sem `mes`, usa o mês corrente.
func (h *Handler) Resumo(w http.ResponseWriter, r *http.Request) {
	mes := r.URL.Query().Get("mes")
	if mes == "" {
		agora := time.Now()
		mes = fmt.Sprintf("%04d-%02d", agora.Year(), int(agora.Month()))
	}

	resumo, err := h.Servico.ResumoDoMes(auth.UsuarioDoContexto(r), mes)
	if err != nil {
		http.Error(w, "erro ao montar resumo do período", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"mes":    mes,
		"resumo": resumo,
	})
}

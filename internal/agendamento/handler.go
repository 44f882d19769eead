package agendamento

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/EquinoMarket/api-fornecedor/internal/auth"
	"github.com/EquinoMarket/api-fornecedor/internal/produto"

	"github.com/gorilla/mux"
)

type Handler struct {
	Repo     *Repository
	Produtos *produto.Repository
}

func NewHandler(repo *Repository, produtos *produto.Repository) *Handler {
	return &Handler{Repo: repo, Produtos: produtos}
}

type criarAgendamentoRequest struct {
	ProdutoID  uint   `json:"produtoId"`
	Data       string `json:"data"` // RFC3339
	Observacao string `json:"observacao"`
}

// POST /agendamentos — cliente agenda um serviço
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var req criarAgendamentoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	data, err := time.Parse(time.RFC3339, req.Data)
	if err != nil {
		http.Error(w, "data inválida, use RFC3339", http.StatusBadRequest)
		return
	}
	if data.Before(time.Now()) {
		http.Error(w, "data do agendamento deve ser futura", http.StatusBadRequest)
		return
	}

	p, err := h.Produtos.FindByID(req.ProdutoID)
	if err != nil {
		http.Error(w, "serviço não encontrado", http.StatusNotFound)
		return
	}
	if p.Tipo != produto.TipoServico || !p.Ativo {
		http.Error(w, "produto não é um serviço agendável", http.StatusBadRequest)
		return
	}

	a := Agendamento{
		ProdutoID:    p.ID,
		FornecedorID: p.FornecedorID,
		ClienteID:    auth.UsuarioDoContexto(r),
		Data:         data,
		Observacao:   req.Observacao,
		Status:       StatusPendente,
	}

	if err := h.Repo.Create(&a); err != nil {
		http.Error(w, "erro ao criar agendamento", http.StatusInternalServerError)
		return
	}

	// notifica o fornecedor; falha não bloqueia o agendamento
	go NotificarNovoAgendamento(a, p.Nome)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(a)
}

// GET /clientes/me/agendamentos
func (h *Handler) ListarDoCliente(w http.ResponseWriter, r *http.Request) {
	as, err := h.Repo.ListByCliente(auth.UsuarioDoContexto(r))
	if err != nil {
		http.Error(w, "erro ao listar agendamentos", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(as)
}

// GET /fornecedores/me/agendamentos
func (h *Handler) ListarDoFornecedor(w http.ResponseWriter, r *http.Request) {
	as, err := h.Repo.ListByFornecedor(auth.UsuarioDoContexto(r))
	if err != nil {
		http.Error(w, "erro ao listar agendamentos", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(as)
}

// PATCH /agendamentos/{id}/status
// Fornecedor confirma/conclui; cliente ou fornecedor cancelam.
func (h *Handler) AtualizarStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	var payload struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	// "expirado" é exclusivo da varredura diária
	if payload.Status == StatusExpirado {
		http.Error(w, "status 'expirado' é aplicado apenas pelo sistema", http.StatusBadRequest)
		return
	}

	a, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "agendamento não encontrado", http.StatusNotFound)
		return
	}

	usuarioID := auth.UsuarioDoContexto(r)
	perfil, _ := r.Context().Value(auth.PerfilKey).(string)

	switch perfil {
	case auth.PerfilFornecedor:
		if a.FornecedorID != usuarioID {
			http.Error(w, "agendamento pertence a outro fornecedor", http.StatusForbidden)
			return
		}
	case auth.PerfilCliente:
		if a.ClienteID != usuarioID {
			http.Error(w, "agendamento pertence a outro cliente", http.StatusForbidden)
			return
		}
		if payload.Status != StatusCancelado {
			http.Error(w, "cliente só pode cancelar o agendamento", http.StatusForbidden)
			return
		}
	default:
		http.Error(w, "perfil inválido", http.StatusForbidden)
		return
	}

	if err := ValidarTransicao(a.Status, payload.Status); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Repo.UpdateStatus(a.ID, payload.Status); err != nil {
		http.Error(w, "erro ao atualizar status", http.StatusInternalServerError)
		return
	}

	a.Status = payload.Status
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(a)
}

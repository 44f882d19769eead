package venda

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/EquinoMarket/api-fornecedor/internal/auth"
	"github.com/EquinoMarket/api-fornecedor/internal/clientefornecedor"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type Handler struct {
	Repo     *Repository
	Clientes *clientefornecedor.Repository
}

func NewHandler(repo *Repository, clientes *clientefornecedor.Repository) *Handler {
	return &Handler{Repo: repo, Clientes: clientes}
}

type criarVendaRequest struct {
	NomeProduto    string  `json:"nomeProduto"`
	Valor          float64 `json:"valor"`
	Lucro          float64 `json:"lucro"`
	FormaPagamento string  `json:"formaPagamento"`
	ClienteID      *uint   `json:"clienteId,omitempty"`
}

// POST /fornecedores/me/vendas
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	fornecedorID := auth.UsuarioDoContexto(r)

	var req criarVendaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if req.NomeProduto == "" {
		http.Error(w, "nome do produto é obrigatório", http.StatusBadRequest)
		return
	}
	if req.Valor < 0 {
		http.Error(w, "valor da venda não pode ser negativo", http.StatusBadRequest)
		return
	}
	if !FormaPagamentoValida(req.FormaPagamento) {
		http.Error(w, "forma de pagamento inválida. Use 'pix', 'dinheiro', 'cartao' ou 'boleto'", http.StatusBadRequest)
		return
	}
	if req.ClienteID != nil {
		ok, err := h.Clientes.Pertence(*req.ClienteID, fornecedorID)
		if err != nil {
			http.Error(w, "erro ao validar cliente", http.StatusInternalServerError)
			return
		}
		if !ok {
			http.Error(w, "cliente vinculado não pertence a esse fornecedor", http.StatusBadRequest)
			return
		}
	}

	v := Venda{
		FornecedorID:   fornecedorID,
		NomeProduto:    req.NomeProduto,
		Valor:          req.Valor,
		Lucro:          req.Lucro,
		FormaPagamento: req.FormaPagamento,
		ClienteID:      req.ClienteID,
	}

	if err := h.Repo.Create(&v); err != nil {
		http.Error(w, "erro ao registrar venda", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(v)
}

// GET /fornecedores/me/vendas
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	vs, err := h.Repo.ListByFornecedor(auth.UsuarioDoContexto(r))
	if err != nil {
		http.Error(w, "erro ao listar vendas", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(vs)
}

// DELETE /fornecedores/me/vendas/{id}
// Linha já inexistente responde 204 do mesmo jeito: do ponto de vista
// do usuário a remoção é idempotente.
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de venda inválido", http.StatusBadRequest)
		return
	}

	err = h.Repo.DeleteByID(uint(id), auth.UsuarioDoContexto(r))
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		http.Error(w, "erro ao deletar venda", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

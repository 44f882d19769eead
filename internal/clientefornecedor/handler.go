package clientefornecedor

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/EquinoMarket/api-fornecedor/internal/auth"

	"github.com/gorilla/mux"
)

type Handler struct {
	Repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

type clienteRequest struct {
	Nome        string `json:"nome"`
	Telefone    string `json:"telefone"`
	Email       string `json:"email"`
	Observacoes string `json:"observacoes"`
}

// POST /fornecedores/me/clientes
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var req clienteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if req.Nome == "" {
		http.Error(w, "nome é obrigatório", http.StatusBadRequest)
		return
	}

	c := ClienteFornecedor{
		FornecedorID: auth.UsuarioDoContexto(r),
		Nome:         req.Nome,
		Telefone:     req.Telefone,
		Email:        req.Email,
		Observacoes:  req.Observacoes,
	}

	if err := h.Repo.Create(&c); err != nil {
		http.Error(w, "erro ao criar cliente", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(c)
}

// GET /fornecedores/me/clientes
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	cs, err := h.Repo.ListByFornecedor(auth.UsuarioDoContexto(r))
	if err != nil {
		http.Error(w, "erro ao listar clientes", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cs)
}

func (h *Handler) buscarDoFornecedor(w http.ResponseWriter, r *http.Request) *ClienteFornecedor {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return nil
	}

	c, err := h.Repo.FindByID(uint(id))
	if err != nil || c.FornecedorID != auth.UsuarioDoContexto(r) {
		http.Error(w, "cliente não encontrado para esse fornecedor", http.StatusNotFound)
		return nil
	}
	return c
}

// PUT /fornecedores/me/clientes/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	c := h.buscarDoFornecedor(w, r)
	if c == nil {
		return
	}

	var req clienteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if req.Nome == "" {
		http.Error(w, "nome é obrigatório", http.StatusBadRequest)
		return
	}

	c.Nome = req.Nome
	c.Telefone = req.Telefone
	c.Email = req.Email
	c.Observacoes = req.Observacoes

	if err := h.Repo.Update(c); err != nil {
		http.Error(w, "erro ao atualizar cliente", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(c)
}

// DELETE /fornecedores/me/clientes/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	c := h.buscarDoFornecedor(w, r)
	if c == nil {
		return
	}

	if err := h.Repo.Delete(c); err != nil {
		http.Error(w, "erro ao deletar cliente", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

package favorito

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

// POST /produtos/{id}/favorito
func (h *Handler) Adicionar(w http.ResponseWriter, r *http.Request) {
	produtoID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de produto inválido", http.StatusBadRequest)
		return
	}

	if err := h.Repo.Adicionar(auth.UsuarioDoContexto(r), uint(produtoID)); err != nil {
		http.Error(w, "erro ao favoritar produto", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

// DELETE /produtos/{id}/favorito
func (h *Handler) Remover(w http.ResponseWriter, r *http.Request) {
	produtoID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de produto inválido", http.StatusBadRequest)
		return
	}

	if err := h.Repo.Remover(auth.UsuarioDoContexto(r), uint(produtoID)); err != nil {
		http.Error(w, "erro ao remover favorito", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GET /clientes/me/favoritos
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	fs, err := h.Repo.ListByCliente(auth.UsuarioDoContexto(r))
	if err != nil {
		http.Error(w, "erro ao listar favoritos", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(fs)
}

package comentario

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

// POST /produtos/{id}/comentarios
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	produtoID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de produto inválido", http.StatusBadRequest)
		return
	}

	var body struct {
		Texto string `json:"texto"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if body.Texto == "" {
		http.Error(w, "texto é obrigatório", http.StatusBadRequest)
		return
	}

	c := Comentario{
		Texto:     body.Texto,
		ProdutoID: uint(produtoID),
		ClienteID: auth.UsuarioDoContexto(r),
	}

	if err := h.Repo.Create(&c); err != nil {
		http.Error(w, "erro ao criar comentário", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(c)
}

// GET /produtos/{id}/comentarios
func (h *Handler) ListarPorProduto(w http.ResponseWriter, r *http.Request) {
	produtoID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de produto inválido", http.StatusBadRequest)
		return
	}

	cs, err := h.Repo.ListByProduto(uint(produtoID))
	if err != nil {
		http.Error(w, "erro ao buscar comentários", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cs)
}

// DELETE /comentarios/{id} — somente o autor
func (h *Handler) Remover(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	c, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "comentário não encontrado", http.StatusNotFound)
		return
	}
	if c.ClienteID != auth.UsuarioDoContexto(r) {
		http.Error(w, "comentário pertence a outro cliente", http.StatusForbidden)
		return
	}

	if err := h.Repo.Delete(c); err != nil {
		http.Error(w, "erro ao remover comentário", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

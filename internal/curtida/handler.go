package curtida

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

// POST /produtos/{id}/curtida — alterna curtir/descurtir
func (h *Handler) Toggle(w http.ResponseWriter, r *http.Request) {
	produtoID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de produto inválido", http.StatusBadRequest)
		return
	}

	curtido, err := h.Repo.Toggle(uint(produtoID), auth.UsuarioDoContexto(r))
	if err != nil {
		http.Error(w, "erro ao registrar curtida", http.StatusInternalServerError)
		return
	}

	total, err := h.Repo.CountByProduto(uint(produtoID))
	if err != nil {
		http.Error(w, "erro ao contar curtidas", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"curtido": curtido,
		"total":   total,
	})
}

// GET /produtos/{id}/curtidas
func (h *Handler) Contar(w http.ResponseWriter, r *http.Request) {
	produtoID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de produto inválido", http.StatusBadRequest)
		return
	}

	total, err := h.Repo.CountByProduto(uint(produtoID))
	if err != nil {
		http.Error(w, "erro ao contar curtidas", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]int64{"total": total})
}

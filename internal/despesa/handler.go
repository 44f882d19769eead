package despesa

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/EquinoMarket/api-fornecedor/internal/auth"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type Handler struct {
	Repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

type criarDespesaRequest struct {
	Categoria   string  `json:"categoria"`
	Valor       float64 `json:"valor"`
	Descricao   string  `json:"descricao"`
	DataDespesa string  `json:"dataDespesa"` // "2024-01-31"
}

// POST /fornecedores/me/despesas
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var req criarDespesaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if !CategoriaValida(req.Categoria) {
		http.Error(w, "categoria inválida. Use 'combustivel', 'materiais', 'alimentacao', 'impostos' ou 'outros'", http.StatusBadRequest)
		return
	}
	if req.Valor < 0 {
		http.Error(w, "valor da despesa não pode ser negativo", http.StatusBadRequest)
		return
	}

	data, err := time.Parse("2006-01-02", req.DataDespesa)
	if err != nil {
		http.Error(w, "dataDespesa inválida, use AAAA-MM-DD", http.StatusBadRequest)
		return
	}

	d := Despesa{
		FornecedorID: auth.UsuarioDoContexto(r),
		Categoria:    req.Categoria,
		Valor:        req.Valor,
		Descricao:    req.Descricao,
		DataDespesa:  data,
	}

	if err := h.Repo.Create(&d); err != nil {
		http.Error(w, "erro ao registrar despesa", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(d)
}

// GET /fornecedores/me/despesas
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	ds, err := h.Repo.ListByFornecedor(auth.UsuarioDoContexto(r))
	if err != nil {
		http.Error(w, "erro ao listar despesas", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ds)
}

// DELETE /fornecedores/me/despesas/{id} — idempotente para o chamador
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de despesa inválido", http.StatusBadRequest)
		return
	}

	err = h.Repo.DeleteByID(uint(id), auth.UsuarioDoContexto(r))
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		http.Error(w, "erro ao deletar despesa", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

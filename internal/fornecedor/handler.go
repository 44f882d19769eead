package fornecedor

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/EquinoMarket/api-fornecedor/internal/auth"
	"github.com/EquinoMarket/api-fornecedor/internal/utils"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// request DTOs
type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type criarFornecedorRequest struct {
	Nome     string `json:"nome"`
	NomeLoja string `json:"nomeLoja"`
	CNPJ     string `json:"cnpj"`
	Email    string `json:"email"`
	Telefone string `json:"telefone"`
	Cidade   string `json:"cidade"`
	UF       string `json:"uf"`
	Bio      string `json:"bio"`
	Foto     string `json:"foto"`
	Senha    string `json:"senha"`
}

type atualizarFornecedorRequest struct {
	Nome     *string `json:"nome,omitempty"`
	NomeLoja *string `json:"nomeLoja,omitempty"`
	Telefone *string `json:"telefone,omitempty"`
	Cidade   *string `json:"cidade,omitempty"`
	UF       *string `json:"uf,omitempty"`
	Bio      *string `json:"bio,omitempty"`
	Foto     *string `json:"foto,omitempty"`
}

// Handler encapsula DB e repository
type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

// NewHandler retorna um handler inicializado
func NewHandler(db *gorm.DB, repo Repository) *Handler {
	return &Handler{
		DB:         db,
		Repository: repo,
	}
}

// Login gera um JWT para credenciais válidas (e-mail ou CNPJ)
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	user, err := h.Repository.BuscarPorEmailOuCNPJ(h.DB, req.Login)
	if err != nil {
		http.Error(w, "credenciais inválidas", http.StatusUnauthorized)
		return
	}

	if !utils.VerificarSenha(user.Senha, req.Password) {
		http.Error(w, "senha incorreta", http.StatusUnauthorized)
		return
	}

	token, err := auth.GerarToken(user.ID, auth.PerfilFornecedor)
	if err != nil {
		http.Error(w, "erro ao gerar token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"token": token})
}

// CriarFornecedor cadastra novo fornecedor (livre de autenticação)
func (h *Handler) CriarFornecedor(w http.ResponseWriter, r *http.Request) {
	var req criarFornecedorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if req.Email == "" || req.CNPJ == "" || req.Senha == "" {
		http.Error(w, "email, cnpj e senha são obrigatórios", http.StatusBadRequest)
		return
	}

	hash, err := utils.HashSenha(req.Senha)
	if err != nil {
		http.Error(w, "erro ao processar senha", http.StatusInternalServerError)
		return
	}

	f := Fornecedor{
		Nome:     req.Nome,
		NomeLoja: req.NomeLoja,
		CNPJ:     req.CNPJ,
		Email:    req.Email,
		Telefone: req.Telefone,
		Cidade:   req.Cidade,
		UF:       req.UF,
		Bio:      req.Bio,
		Foto:     req.Foto,
		Senha:    hash,
	}

	if err := h.Repository.Salvar(h.DB, &f); err != nil {
		http.Error(w, "erro ao salvar fornecedor", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(f)
}

// BuscarFornecedores é a busca pública com filtros de UF, cidade, categoria e texto
func (h *Handler) BuscarFornecedores(w http.ResponseWriter, r *http.Request) {
	filtro := Filtro{
		UF:        r.URL.Query().Get("uf"),
		Cidade:    r.URL.Query().Get("cidade"),
		Categoria: r.URL.Query().Get("categoria"),
		Texto:     r.URL.Query().Get("q"),
	}

	lista, err := h.Repository.Buscar(h.DB, filtro)
	if err != nil {
		http.Error(w, "erro ao buscar fornecedores", http.StatusInternalServerError)
		return
	}

	resumos := make([]ResumoFornecedorDTO, 0, len(lista))
	for _, f := range lista {
		resumos = append(resumos, paraResumo(f))
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resumos)
}

// BuscarPorID retorna o perfil público de um fornecedor
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	f, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "fornecedor não encontrado", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(paraResumo(*f))
}

// MeuPerfil retorna a conta do fornecedor autenticado
func (h *Handler) MeuPerfil(w http.ResponseWriter, r *http.Request) {
	id := auth.UsuarioDoContexto(r)

	f, err := h.Repository.BuscarPorID(h.DB, id)
	if err != nil {
		http.Error(w, "fornecedor não encontrado", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(f)
}

// AtualizarPerfil altera campos editáveis da própria conta
func (h *Handler) AtualizarPerfil(w http.ResponseWriter, r *http.Request) {
	id := auth.UsuarioDoContexto(r)

	f, err := h.Repository.BuscarPorID(h.DB, id)
	if err != nil {
		http.Error(w, "fornecedor não encontrado", http.StatusNotFound)
		return
	}

	var req atualizarFornecedorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	if req.Nome != nil {
		f.Nome = *req.Nome
	}
	if req.NomeLoja != nil {
		f.NomeLoja = *req.NomeLoja
	}
	if req.Telefone != nil {
		f.Telefone = *req.Telefone
	}
	if req.Cidade != nil {
		f.Cidade = *req.Cidade
	}
	if req.UF != nil {
		f.UF = *req.UF
	}
	if req.Bio != nil {
		f.Bio = *req.Bio
	}
	if req.Foto != nil {
		f.Foto = *req.Foto
	}

	if err := h.Repository.Salvar(h.DB, f); err != nil {
		http.Error(w, "erro ao atualizar fornecedor", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(f)
}

// DeletarConta remove a própria conta do fornecedor
func (h *Handler) DeletarConta(w http.ResponseWriter, r *http.Request) {
	id := auth.UsuarioDoContexto(r)

	if err := h.Repository.Deletar(h.DB, id); err != nil {
		http.Error(w, "erro ao deletar fornecedor", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

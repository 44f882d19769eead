package cliente

import (
	"encoding/json"
	"net/http"

	"github.com/EquinoMarket/api-fornecedor/internal/auth"
	"github.com/EquinoMarket/api-fornecedor/internal/utils"

	"gorm.io/gorm"
)

type Handler struct {
	Repo *Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Repo: NewRepository(db)}
}

// Login gera um JWT para um cliente com credenciais válidas
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	c, err := h.Repo.FindByEmail(req.Email)
	if err != nil {
		http.Error(w, "credenciais inválidas", http.StatusUnauthorized)
		return
	}

	if !utils.VerificarSenha(c.Senha, req.Password) {
		http.Error(w, "senha incorreta", http.StatusUnauthorized)
		return
	}

	token, err := auth.GerarToken(c.ID, auth.PerfilCliente)
	if err != nil {
		http.Error(w, "erro ao gerar token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"token": token})
}

// Criar cadastra novo cliente (livre de autenticação)
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var req CreateClienteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if req.Email == "" || req.Senha == "" {
		http.Error(w, "email e senha são obrigatórios", http.StatusBadRequest)
		return
	}

	hash, err := utils.HashSenha(req.Senha)
	if err != nil {
		http.Error(w, "erro ao processar senha", http.StatusInternalServerError)
		return
	}

	c := Cliente{
		Nome:      req.Nome,
		Sobrenome: req.Sobrenome,
		Email:     req.Email,
		Telefone:  req.Telefone,
		Foto:      req.Foto,
		Senha:     hash,
	}

	if err := h.Repo.Create(&c); err != nil {
		http.Error(w, "erro ao salvar cliente", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(c)
}

// MeuPerfil retorna a conta do cliente autenticado
func (h *Handler) MeuPerfil(w http.ResponseWriter, r *http.Request) {
	c, err := h.Repo.FindByID(auth.UsuarioDoContexto(r))
	if err != nil {
		http.Error(w, "cliente não encontrado", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(c)
}

// AtualizarPerfil altera os campos editáveis da própria conta
func (h *Handler) AtualizarPerfil(w http.ResponseWriter, r *http.Request) {
	c, err := h.Repo.FindByID(auth.UsuarioDoContexto(r))
	if err != nil {
		http.Error(w, "cliente não encontrado", http.StatusNotFound)
		return
	}

	var req UpdateClienteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	if req.Nome != nil {
		c.Nome = *req.Nome
	}
	if req.Sobrenome != nil {
		c.Sobrenome = *req.Sobrenome
	}
	if req.Telefone != nil {
		c.Telefone = *req.Telefone
	}
	if req.Foto != nil {
		c.Foto = *req.Foto
	}

	if err := h.Repo.Update(c); err != nil {
		http.Error(w, "erro ao atualizar cliente", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(c)
}

// DeletarConta remove a própria conta do cliente
func (h *Handler) DeletarConta(w http.ResponseWriter, r *http.Request) {
	if err := h.Repo.Delete(auth.UsuarioDoContexto(r)); err != nil {
		http.Error(w, "erro ao deletar cliente", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

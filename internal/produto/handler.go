package produto

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

func validarEntrada(dto *CreateProdutoDTO) string {
	if dto.Nome == "" {
		return "nome é obrigatório"
	}
	if dto.Tipo == "" {
		dto.Tipo = TipoProduto
	}
	if dto.Tipo != TipoProduto && dto.Tipo != TipoServico {
		return "tipo deve ser 'produto' ou 'servico'"
	}
	if dto.Preco < 0 {
		return "preço não pode ser negativo"
	}
	if dto.PrecoOriginal != nil && *dto.PrecoOriginal < 0 {
		return "preço original não pode ser negativo"
	}
	// clamp exigido pela derivação de preço: 100% levaria a divisão por zero
	if dto.PercentualDesconto != nil && (*dto.PercentualDesconto < 0 || *dto.PercentualDesconto > 99) {
		return "percentual de desconto deve estar entre 0 e 99"
	}
	if dto.ParcelasSemJuros < 1 {
		dto.ParcelasSemJuros = 1
	}
	return ""
}

// POST /fornecedores/me/produtos
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	fornecedorID := auth.UsuarioDoContexto(r)

	var dto CreateProdutoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if msg := validarEntrada(&dto); msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	ativo := true
	if dto.Ativo != nil {
		ativo = *dto.Ativo
	}

	p := Produto{
		FornecedorID:       fornecedorID,
		Nome:               dto.Nome,
		Descricao:          dto.Descricao,
		Tipo:               dto.Tipo,
		Categoria:          dto.Categoria,
		Preco:              dto.Preco,
		PrecoOriginal:      dto.PrecoOriginal,
		PercentualDesconto: dto.PercentualDesconto,
		ParcelasSemJuros:   dto.ParcelasSemJuros,
		Fotos:              dto.Fotos,
		Ativo:              ativo,
	}

	if err := h.Repo.Create(&p); err != nil {
		http.Error(w, "erro ao criar produto", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(p)
}

// GET /produtos — vitrine pública com preços derivados
func (h *Handler) Vitrine(w http.ResponseWriter, r *http.Request) {
	filtro := Filtro{
		Tipo:      r.URL.Query().Get("tipo"),
		Categoria: r.URL.Query().Get("categoria"),
		Texto:     r.URL.Query().Get("q"),
	}
	if fid := r.URL.Query().Get("fornecedorId"); fid != "" {
		id, err := strconv.Atoi(fid)
		if err != nil {
			http.Error(w, "fornecedorId inválido", http.StatusBadRequest)
			return
		}
		filtro.FornecedorID = uint(id)
	}

	ps, err := h.Repo.Buscar(filtro)
	if err != nil {
		http.Error(w, "erro ao buscar produtos", http.StatusInternalServerError)
		return
	}

	vitrine := make([]VitrineDTO, 0, len(ps))
	for _, p := range ps {
		vitrine = append(vitrine, ParaVitrine(p))
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(vitrine)
}

// GET /produtos/{id}
func (h *Handler) Buscar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de produto inválido", http.StatusBadRequest)
		return
	}

	p, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "produto não encontrado", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ParaVitrine(*p))
}

// GET /fornecedores/me/produtos — inclui inativos, sem derivação
func (h *Handler) MeusProdutos(w http.ResponseWriter, r *http.Request) {
	ps, err := h.Repo.FindByFornecedor(auth.UsuarioDoContexto(r))
	if err != nil {
		http.Error(w, "erro ao buscar produtos", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ps)
}

// PUT /fornecedores/me/produtos/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	fornecedorID := auth.UsuarioDoContexto(r)

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de produto inválido", http.StatusBadRequest)
		return
	}

	existente, err := h.Repo.FindByID(uint(id))
	if err != nil || existente.FornecedorID != fornecedorID {
		http.Error(w, "produto não encontrado para esse fornecedor", http.StatusNotFound)
		return
	}

	var dto CreateProdutoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if msg := validarEntrada(&dto); msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	existente.Nome = dto.Nome
	existente.Descricao = dto.Descricao
	existente.Tipo = dto.Tipo
	existente.Categoria = dto.Categoria
	existente.Preco = dto.Preco
	existente.PrecoOriginal = dto.PrecoOriginal
	existente.PercentualDesconto = dto.PercentualDesconto
	existente.ParcelasSemJuros = dto.ParcelasSemJuros
	existente.Fotos = dto.Fotos
	if dto.Ativo != nil {
		existente.Ativo = *dto.Ativo
	}

	if err := h.Repo.Update(existente); err != nil {
		http.Error(w, "erro ao atualizar produto", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(existente)
}

// DELETE /fornecedores/me/produtos/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	fornecedorID := auth.UsuarioDoContexto(r)

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de produto inválido", http.StatusBadRequest)
		return
	}

	existente, err := h.Repo.FindByID(uint(id))
	if err != nil || existente.FornecedorID != fornecedorID {
		http.Error(w, "produto não encontrado para esse fornecedor", http.StatusNotFound)
		return
	}

	if err := h.Repo.Delete(existente); err != nil {
		http.Error(w, "erro ao deletar produto", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

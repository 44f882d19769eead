package relatorio

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/EquinoMarket/api-fornecedor/internal/auth"
	"github.com/EquinoMarket/api-fornecedor/internal/financeiro"
	"github.com/EquinoMarket/api-fornecedor/internal/fornecedor"
	"gorm.io/gorm"
)

type Handler struct {
	DB           *gorm.DB
	Servico      *financeiro.Servico
	Fornecedores fornecedor.Repository
}

func NewHandler(db *gorm.DB, servico *financeiro.Servico, fornecedores fornecedor.Repository) *Handler {
	return &Handler{DB: db, Servico: servico, Fornecedores: fornecedores}
}

// ano lê o parâmetro ?ano=YYYY; sem ele, usa o ano corrente.
func anoDaRequisicao(r *http.Request) (int, error) {
	bruto := r.URL.Query().Get("ano")
	if bruto == "" {
		return time.Now().Year(), nil
	}
	ano, err := strconv.Atoi(bruto)
	if err != nil || ano < 2000 || ano > 2100 {
		return 0, fmt.Errorf("ano inválido: %q", bruto)
	}
	return ano, nil
}

// GET /fornecedores/me/financeiro/relatorio.csv?ano=YYYY
func (h *Handler) RelatorioCSV(w http.ResponseWriter, r *http.Request) {
	ano, err := anoDaRequisicao(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	linhas, err := MontarGrade(h.Servico, auth.UsuarioDoContexto(r), ano)
	if err != nil {
		http.Error(w, "erro ao montar relatório", http.StatusInternalServerError)
		return
	}

	saida, err := RenderizarCSV(linhas)
	if err != nil {
		http.Error(w, "erro ao gerar CSV", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="financeiro-%d.csv"`, ano))
	w.Write(saida)
}

// GET /fornecedores/me/financeiro/relatorio.html?ano=YYYY
func (h *Handler) RelatorioHTML(w http.ResponseWriter, r *http.Request) {
	ano, err := anoDaRequisicao(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	fornecedorID := auth.UsuarioDoContexto(r)
	f, err := h.Fornecedores.BuscarPorID(h.DB, fornecedorID)
	if err != nil {
		http.Error(w, "fornecedor não encontrado", http.StatusNotFound)
		return
	}

	linhas, err := MontarGrade(h.Servico, fornecedorID, ano)
	if err != nil {
		http.Error(w, "erro ao montar relatório", http.StatusInternalServerError)
		return
	}

	saida, err := RenderizarHTML(linhas, f.NomeLoja, ano)
	if err != nil {
		http.Error(w, "erro ao gerar HTML", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(saida)
}

// GET /fornecedores/me/financeiro/relatorio.xlsx?ano=YYYY
func (h *Handler) RelatorioXLSX(w http.ResponseWriter, r *http.Request) {
	ano, err := anoDaRequisicao(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	linhas, err := MontarGrade(h.Servico, auth.UsuarioDoContexto(r), ano)
	if err != nil {
		http.Error(w, "erro ao montar relatório", http.StatusInternalServerError)
		return
	}

	saida, err := RenderizarXLSX(linhas, ano)
	if err != nil {
		http.Error(w, "erro ao gerar planilha", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="financeiro-%d.xlsx"`, ano))
	w.Write(saida)
}

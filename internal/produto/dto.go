package produto

// VitrineDTO é a projeção pública de um produto com os preços derivados
type VitrineDTO struct {
	ID                 uint     `json:"id"`
	FornecedorID       uint     `json:"fornecedorId"`
	Nome               string   `json:"nome"`
	Descricao          string   `json:"descricao"`
	Tipo               string   `json:"tipo"`
	Categoria          string   `json:"categoria"`
	Preco              float64  `json:"preco"`
	PrecoOriginal      float64  `json:"precoOriginal"`
	PercentualDesconto float64  `json:"percentualDesconto"`
	ParcelasSemJuros   int      `json:"parcelasSemJuros"`
	ValorParcela       float64  `json:"valorParcela"`
	Fotos              []string `json:"fotos"`
}

// ParaVitrine monta a projeção aplicando a derivação de preço e parcela.
func ParaVitrine(p Produto) VitrineDTO {
	v := DerivarPreco(p.Preco, p.PrecoOriginal, p.PercentualDesconto)
	parcelas := p.ParcelasSemJuros
	if parcelas < 1 {
		parcelas = 1
	}
	return VitrineDTO{
		ID:                 p.ID,
		FornecedorID:       p.FornecedorID,
		Nome:               p.Nome,
		Descricao:          p.Descricao,
		Tipo:               p.Tipo,
		Categoria:          p.Categoria,
		Preco:              p.Preco,
		PrecoOriginal:      v.PrecoOriginal,
		PercentualDesconto: v.PercentualDesconto,
		ParcelasSemJuros:   parcelas,
		ValorParcela:       ValorParcela(p.Preco, parcelas),
		Fotos:              p.Fotos,
	}
}

// CreateProdutoDTO é usado em POST /fornecedores/me/produtos
type CreateProdutoDTO struct {
	Nome               string   `json:"nome"`
	Descricao          string   `json:"descricao"`
	Tipo               string   `json:"tipo"`
	Categoria          string   `json:"categoria"`
	Preco              float64  `json:"preco"`
	PrecoOriginal      *float64 `json:"precoOriginal,omitempty"`
	PercentualDesconto *float64 `json:"percentualDesconto,omitempty"`
	ParcelasSemJuros   int      `json:"parcelasSemJuros"`
	Fotos              []string `json:"fotos"`
	Ativo              *bool    `json:"ativo,omitempty"`
}

package fornecedor

// ResumoFornecedorDTO é a projeção pública devolvida na busca de fornecedores
type ResumoFornecedorDTO struct {
	ID       uint   `json:"id"`
	Nome     string `json:"nome"`
	NomeLoja string `json:"nomeLoja"`
	Cidade   string `json:"cidade"`
	UF       string `json:"uf"`
	Bio      string `json:"bio"`
	Foto     string `json:"foto"`
	Telefone string `json:"telefone"`
}

func paraResumo(f Fornecedor) ResumoFornecedorDTO {
	return ResumoFornecedorDTO{
		ID:       f.ID,
		Nome:     f.Nome,
		NomeLoja: f.NomeLoja,
		Cidade:   f.Cidade,
		UF:       f.UF,
		Bio:      f.Bio,
		Foto:     f.Foto,
		Telefone: f.Telefone,
	}
}

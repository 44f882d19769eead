package relatorio

import (
	"bytes"
	"encoding/csv"
)

// bom faz o Excel em pt-BR reconhecer o arquivo como UTF-8.
const bom = "\uFEFF"

// RenderizarCSV gera o relatório anual em CSV no padrão pt-BR:
// BOM, `;` como separador e vírgula decimal. A saída é determinística,
// a mesma grade produz sempre os mesmos bytes.
func RenderizarCSV(linhas []Linha) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(bom)

	w := csv.NewWriter(&buf)
	w.Comma = ';'

	if err := w.Write(colunas); err != nil {
		return nil, err
	}
	for _, l := range linhas {
		registro := []string{
			l.Mes,
			formatarValor(l.Receita),
			formatarValor(l.Despesas),
			formatarValor(l.Impostos),
			formatarValor(l.Lucro),
		}
		if err := w.Write(registro); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

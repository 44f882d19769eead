package relatorio

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// RenderizarXLSX gera a mesma grade do CSV em planilha Excel.
func RenderizarXLSX(linhas []Linha, ano int) ([]byte, error) {
	arquivo := excelize.NewFile()
	defer arquivo.Close()

	aba := fmt.Sprintf("Financeiro %d", ano)
	indice, err := arquivo.NewSheet(aba)
	if err != nil {
		return nil, err
	}
	arquivo.SetActiveSheet(indice)
	arquivo.DeleteSheet("Sheet1")

	for i, titulo := range colunas {
		celula, _ := excelize.CoordinatesToCellName(i+1, 1)
		arquivo.SetCellValue(aba, celula, titulo)
	}

	for i, l := range linhas {
		linha := i + 2
		arquivo.SetCellValue(aba, fmt.Sprintf("A%d", linha), l.Mes)
		arquivo.SetCellValue(aba, fmt.Sprintf("B%d", linha), l.Receita)
		arquivo.SetCellValue(aba, fmt.Sprintf("C%d", linha), l.Despesas)
		arquivo.SetCellValue(aba, fmt.Sprintf("D%d", linha), l.Impostos)
		arquivo.SetCellValue(aba, fmt.Sprintf("E%d", linha), l.Lucro)
	}

	buf, err := arquivo.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

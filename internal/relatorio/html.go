package relatorio

import (
	"bytes"
	"html/template"
)

// Documento imprimível: estilos inline e window.print() ao abrir.
var modeloHTML = template.Must(template.New("relatorio").Funcs(template.FuncMap{
	"valor": formatarValor,
}).Parse(`<!DOCTYPE html>
<html lang="pt-BR">
<head>
<meta charset="utf-8">
<title>Relatório financeiro {{.Ano}}</title>
<style>
  body { font-family: Arial, sans-serif; margin: 32px; color: #222; }
  h1 { font-size: 20px; }
  table { border-collapse: collapse; width: 100%; margin-top: 16px; }
  th, td { border: 1px solid #999; padding: 6px 10px; font-size: 13px; }
  th { background: #eee; text-align: left; }
  td.num { text-align: right; }
  tr.negativo td.saldo { color: #b00020; }
</style>
</head>
<body onload="window.print()">
<h1>Relatório financeiro — {{.NomeLoja}} — {{.Ano}}</h1>
<table>
  <thead>
    <tr>{{range .Colunas}}<th>{{.}}</th>{{end}}</tr>
  </thead>
  <tbody>
  {{range .Linhas}}
    <tr{{if lt .Lucro 0.0}} class="negativo"{{end}}>
      <td>{{.Mes}}</td>
      <td class="num">{{valor .Receita}}</td>
      <td class="num">{{valor .Despesas}}</td>
      <td class="num">{{valor .Impostos}}</td>
      <td class="num saldo">{{valor .Lucro}}</td>
    </tr>
  {{end}}
  </tbody>
</table>
</body>
</html>
`))

// RenderizarHTML gera a versão imprimível do relatório anual.
func RenderizarHTML(linhas []Linha, nomeLoja string, ano int) ([]byte, error) {
	var buf bytes.Buffer
	err := modeloHTML.Execute(&buf, map[string]interface{}{
		"Linhas":   linhas,
		"Colunas":  colunas,
		"NomeLoja": nomeLoja,
		"Ano":      ano,
	})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

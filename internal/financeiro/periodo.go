package financeiro

import (
	"fmt"
	"time"
)

// FiltrarPorMes retém os itens cuja data cai no mês de calendário "AAAA-MM",
// comparando os componentes locais de ano e mês (não é janela móvel de 30 dias).
// Puro: devolve nova slice preservando a ordem relativa, sem tocar na entrada.
// Chave de mês que não parseia devolve slice vazia, nunca pânico.
func FiltrarPorMes[T any](itens []T, mes string, data func(T) time.Time) []T {
	var ano, m int
	if _, err := fmt.Sscanf(mes, "%d-%d", &ano, &m); err != nil {
		return []T{}
	}

	filtrados := make([]T, 0, len(itens))
	for _, item := range itens {
		d := data(item)
		if d.Year() == ano && int(d.Month()) == m {
			filtrados = append(filtrados, item)
		}
	}
	return filtrados
}

// RotuloDoMes devolve o rótulo humano "MM/AAAA" para uma chave "AAAA-MM".
func RotuloDoMes(mes string) string {
	var ano, m int
	if _, err := fmt.Sscanf(mes, "%d-%d", &ano, &m); err != nil {
		return mes
	}
	return fmt.Sprintf("%02d/%04d", m, ano)
}

package produto

import "math"

// PrecoVitrine reúne os valores derivados exibidos junto do preço atual.
type PrecoVitrine struct {
	PrecoOriginal      float64 `json:"precoOriginal"`
	PercentualDesconto float64 `json:"percentualDesconto"`
}

// DerivarPreco calcula o par preço-original/desconto para exibição.
// Ordem de prioridade:
//  1. original informado e maior que o preço atual: o desconto é derivado dele;
//  2. desconto informado (> 0): o original é derivado de preco/(1-desconto/100);
//  3. nenhum sinal de desconto: original sintético de vitrine (preco × 1.35).
//
// Pré-condição do chamador: desconto já validado em [0, 99].
// Em todos os ramos o original devolvido é >= preço atual.
func DerivarPreco(preco float64, original, desconto *float64) PrecoVitrine {
	if original != nil && *original > preco {
		return PrecoVitrine{
			PrecoOriginal:      *original,
			PercentualDesconto: math.Round(100 * (*original - preco) / *original),
		}
	}

	if desconto != nil && *desconto > 0 {
		return PrecoVitrine{
			PrecoOriginal:      preco / (1 - *desconto/100),
			PercentualDesconto: *desconto,
		}
	}

	sintetico := preco * 1.35
	v := PrecoVitrine{PrecoOriginal: sintetico}
	if sintetico > 0 {
		v.PercentualDesconto = math.Round(100 * (sintetico - preco) / sintetico)
	}
	return v
}

// ValorParcela divide o preço em parcelas iguais sem juros.
// Quantidade menor que 1 é tratada como 1; nunca divide por zero.
func ValorParcela(preco float64, parcelas int) float64 {
	if parcelas < 1 {
		parcelas = 1
	}
	return preco / float64(parcelas)
}

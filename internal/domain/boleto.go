package domain

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Situações de boleto no SGA. BAIXADO significa pago/liquidado.
const (
	SituacaoBaixado = "BAIXADO"

	// Flags normalizadas expostas ao frontend no campo "pago".
	PagoSim = "S"
	PagoNao = "N"
)

// FlagPago deriva a flag de pagamento a partir da situação do boleto no SGA.
func FlagPago(situacao string) string {
	if situacao == SituacaoBaixado {
		return PagoSim
	}
	return PagoNao
}

// sentinelaLinhaDigitavel é a frase que o SGA devolve no lugar da linha
// digitável quando não conseguiu gerá-la. Aparece com e sem acentos conforme
// a versão do upstream; a comparação ignora caixa e acentuação.
const sentinelaLinhaDigitavel = "nao foi possivel"

// removeAcentos decompõe em NFD, remove as marcas combinantes e recompõe.
var removeAcentos = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func dobrar(s string) string {
	out, _, err := transform.String(removeAcentos, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return strings.ToLower(out)
}

// LinhaDigitavelValida diz se o valor recebido do SGA é uma linha digitável
// de verdade: não vazia e não uma mensagem de erro do tipo "Não foi possível
// gerar a linha digitável" (em qualquer variação de caixa/acentos).
func LinhaDigitavelValida(linha string) bool {
	if linha == "" {
		return false
	}
	return !strings.Contains(dobrar(linha), sentinelaLinhaDigitavel)
}

// SomenteDigitos remove tudo que não for dígito (máscaras de CPF, pontuação).
func SomenteDigitos(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// CPFValido exige exatamente 11 dígitos após a limpeza.
func CPFValido(cpf string) bool {
	return len(SomenteDigitos(cpf)) == 11
}

// Package normalize centraliza a normalização de nomes de produto e unidades.
// Os itens de pedido chegam como texto livre digitado; a consolidação por
// produto+unidade só funciona se "Pão de Queijo", "pao de queijo " e
// "PÃO DE QUEIJO" colapsarem para a mesma chave.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripAccents decompõe (NFD), remove marcas diacríticas e recompõe (NFC).
var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Name normaliza um nome de produto: remove acentos, colapsa espaços e
// converte para maiúsculas. Chave canônica para consolidação e matching.
func Name(s string) string {
	out, _, err := transform.String(stripAccents, s)
	if err != nil {
		out = s
	}
	return strings.ToUpper(strings.Join(strings.Fields(out), " "))
}

// Unit normaliza o rótulo de unidade (KG, UN, CX...) para maiúsculas sem espaços.
func Unit(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// Key devolve a chave produto+unidade usada na consolidação de itens.
func Key(productName, unit string) string {
	return Name(productName) + "|" + Unit(unit)
}

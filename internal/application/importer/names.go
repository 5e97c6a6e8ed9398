package importer

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldName clave de comparación sin acentos, mayúsculas ni espacios repetidos:
// "Cartão  de Crédito" y "cartao de credito" coinciden.
func foldName(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(strings.Join(strings.Fields(out), " "))
}

// nameIndex resuelve por nombre exacto y, si no hay, por nombre normalizado.
// Con nombres repetidos gana el primero indexado.
type nameIndex[T any] struct {
	exact  map[string]T
	folded map[string]T
}

func newNameIndex[T any]() *nameIndex[T] {
	return &nameIndex[T]{exact: make(map[string]T), folded: make(map[string]T)}
}

func (ix *nameIndex[T]) add(name string, v T) {
	if _, ok := ix.exact[name]; !ok {
		ix.exact[name] = v
	}
	key := foldName(name)
	if _, ok := ix.folded[key]; !ok {
		ix.folded[key] = v
	}
}

func (ix *nameIndex[T]) lookup(name string) (T, bool) {
	if v, ok := ix.exact[name]; ok {
		return v, true
	}
	v, ok := ix.folded[foldName(name)]
	return v, ok
}

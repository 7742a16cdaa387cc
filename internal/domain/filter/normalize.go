package filter

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// normalizer descompone (NFD), elimina marcas diacríticas y recompone (NFC).
// Así "Camión" y "camion" coinciden en la búsqueda.
var normalizer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize prepara un texto para comparación: minúsculas y sin tildes.
// Si la transformación falla (entrada no UTF-8 válida) se degrada a
// solo minúsculas.
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	out, _, err := transform.String(normalizer, s)
	if err != nil {
		return s
	}
	return out
}

package importer

import (
	"strings"

	"golang.org/x/text/width"
)

// NormalizeCode canoniza un código de artículo venido de fuentes externas:
// pliega caracteres de ancho completo a ASCII (dígitos y letras fullwidth son
// habituales en los CSV del fabricante), recorta espacios y pasa a mayúsculas.
func NormalizeCode(raw string) string {
	folded := width.Narrow.String(raw)
	return strings.ToUpper(strings.TrimSpace(folded))
}

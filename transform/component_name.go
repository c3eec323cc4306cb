package transform

import (
	"path"
	"strings"
	"unicode"
)

// componentSuffix is appended to every generated component name unless the
// derived name already ends with it.
const componentSuffix = "Icon"

// ComponentNameFromPath derives a PascalCase component identifier from an
// asset path: "/icons/arrow-left.svg" becomes "ArrowLeftIcon". Word
// boundaries are hyphens and underscores; everything after each word's first
// letter keeps its original case, so an existing camelCase segment survives
// intact.
func ComponentNameFromPath(assetPath string) string {
	stem := strings.TrimPrefix(assetPath, "/")
	stem = path.Base(stem)
	stem = strings.TrimSuffix(stem, path.Ext(stem))

	words := strings.FieldsFunc(stem, func(r rune) bool {
		return r == '-' || r == '_'
	})

	var b strings.Builder
	for _, word := range words {
		runes := []rune(word)
		b.WriteRune(unicode.ToUpper(runes[0]))
		b.WriteString(string(runes[1:]))
	}

	name := b.String()
	if strings.HasSuffix(name, componentSuffix) {
		return name
	}
	return name + componentSuffix
}

package transform

import "regexp"

var (
	scriptOpenPattern = regexp.MustCompile(`<script[^>]*>`)
	importLinePattern = regexp.MustCompile(`(?m)^import\s+.*$`)
)

// ScriptInsertion describes where generated imports belong inside a document.
type ScriptInsertion struct {
	// ScriptStart is the offset just past the first <script ...> opening tag.
	ScriptStart int
	// LastImportEnd is the offset just past the last existing import line
	// found after ScriptStart, equal to ScriptStart when there are none.
	LastImportEnd int
}

// Offset returns the offset the generated import block is spliced at: after
// the existing imports when the script has any, otherwise right after the
// opening tag.
func (s ScriptInsertion) Offset() int {
	if s.LastImportEnd > s.ScriptStart {
		return s.LastImportEnd
	}
	return s.ScriptStart
}

// LocateScriptInsertion finds the import insertion point in a document.
// ok is false when the document has no script section.
func LocateScriptInsertion(doc string) (insertion ScriptInsertion, ok bool) {
	loc := scriptOpenPattern.FindStringIndex(doc)
	if loc == nil {
		return ScriptInsertion{}, false
	}
	scriptStart := loc[1]

	lastImportEnd := scriptStart
	for _, m := range importLinePattern.FindAllStringIndex(doc[scriptStart:], -1) {
		lastImportEnd = scriptStart + m[1]
	}

	return ScriptInsertion{ScriptStart: scriptStart, LastImportEnd: lastImportEnd}, true
}

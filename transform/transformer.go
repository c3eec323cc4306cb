package transform

import (
	"regexp"
	"sort"
	"strings"
)

// candidateTagPattern matches an img opening tag carrying the inline-render
// marker, self-closing or not.
var candidateTagPattern = regexp.MustCompile(`<img[^>]*v-svg-inline[^>]*/?>`)

// dynamicSrcMarker disqualifies a tag from transformation: a bound src
// cannot be statically resolved to an import.
const dynamicSrcMarker = ":src"

// Summary counts what transforming one document did.
type Summary struct {
	ImportsAdded int
	TagsReplaced int
	TagsSkipped  int
}

// Result is the outcome of transforming one document. When Changed is false
// the document must be left as-is; Warning carries the reason when the
// transform found work but nowhere to put the imports.
type Result struct {
	Changed bool
	NewText string
	Summary Summary
	Warning string
}

// span is one pending edit: text at [start, end) of the original document is
// replaced by repl. A zero-width span is a pure insertion.
type span struct {
	start, end int
	repl       string
}

// TransformDocument rewrites every eligible inline-SVG img tag in doc and
// splices the matching import statements into the script section. All edits
// are applied as a single pass of ascending, non-overlapping span
// replacements over the original text, so identical tags at different
// offsets are replaced independently and every byte outside the recognized
// spans is preserved exactly. The transform is pure: no I/O, no retained
// state across calls.
func TransformDocument(doc string) Result {
	var (
		summary Summary
		edits   []span
	)
	plan := NewImportPlan()

	for _, loc := range candidateTagPattern.FindAllStringIndex(doc, -1) {
		tagText := doc[loc[0]:loc[1]]

		if strings.Contains(tagText, dynamicSrcMarker) {
			summary.TagsSkipped++
			continue
		}

		parsed := ParseImgTag(tagText)
		if parsed.Source == "" {
			// Malformed candidate; ignorable.
			continue
		}

		name := ComponentNameFromPath(parsed.Source)
		plan.Add(name, parsed.Source)
		edits = append(edits, span{
			start: loc[0],
			end:   loc[1],
			repl:  RenderComponentTag(name, parsed),
		})
	}

	if len(plan.Statements()) == 0 {
		return Result{Summary: summary}
	}

	insertion, ok := LocateScriptInsertion(doc)
	if !ok {
		return Result{
			Summary: summary,
			Warning: "no <script> section found; document left unchanged",
		}
	}
	summary.TagsReplaced = len(edits)

	importBlock := "\n" + strings.Join(plan.Statements(), "\n") + "\n"
	edits = append(edits, span{start: insertion.Offset(), end: insertion.Offset(), repl: importBlock})
	sort.SliceStable(edits, func(i, j int) bool { return edits[i].start < edits[j].start })

	var b strings.Builder
	pos := 0
	for _, e := range edits {
		b.WriteString(doc[pos:e.start])
		b.WriteString(e.repl)
		pos = e.end
	}
	b.WriteString(doc[pos:])

	summary.ImportsAdded = len(plan.Statements())
	return Result{Changed: true, NewText: b.String(), Summary: summary}
}

package transform

import (
	"regexp"
	"strings"
)

// inlineMarker flags an img tag for replacement with a generated component.
// It is consumed by the transform and never carried through to the output.
const inlineMarker = "v-svg-inline"

// attrPattern captures one attribute token inside a tag: either a directive
// name (v-, @ or : prefix with optional .word/-word modifier suffixes) or a
// plain name with internal hyphens, each with an optional quoted value.
// Quoted values are consumed by the match, so words inside a value are never
// picked up as attribute names.
var attrPattern = regexp.MustCompile(`((?:v-|@|:)\w+(?:[.-]\w+)*|\w+(?:-\w+)*)(?:="([^"]*)")?`)

// reservedAttrNames are never carried through as plain attributes. src and
// the inline marker are consumed by the transform itself; the rest are
// directive shorthands owned by the directive classification.
var reservedAttrNames = map[string]bool{
	"src":           true,
	inlineMarker:    true,
	"click":         true,
	"dynamic-class": true,
	"dynamic-style": true,
	"v-if":          true,
	"v-else-if":     true,
	"v-else":        true,
	"v-for":         true,
}

// TagAttribute is one plain attribute carried through to the rewritten tag.
type TagAttribute struct {
	Name  string
	Value string
}

// Directive is one framework directive carried through to the rewritten tag.
// An empty Value renders it bare, without the ="..." part.
type Directive struct {
	Name  string
	Value string
}

// ParsedTag is the structured form of one candidate img tag. Attribute and
// directive order matches their order in the source text.
type ParsedTag struct {
	Source     string
	Attributes []TagAttribute
	Directives []Directive
}

// ParseImgTag extracts the source path, plain attributes and framework
// directives from the raw text of one img tag. Every attribute token is
// classified exactly once by its name: the source attribute, the inline
// marker, directive-prefixed names, and plain names. A plain attribute
// without a value is discarded (the element name itself falls out this way);
// a directive without a value is kept with an empty value.
func ParseImgTag(tag string) ParsedTag {
	var parsed ParsedTag
	srcSeen := false

	for _, m := range attrPattern.FindAllStringSubmatchIndex(tag, -1) {
		name := tag[m[2]:m[3]]
		hasValue := m[4] >= 0
		value := ""
		if hasValue {
			value = tag[m[4]:m[5]]
		}

		switch {
		case name == "src":
			if !srcSeen {
				srcSeen = true
				parsed.Source = value
			}
		case name == inlineMarker:
			// dropped
		case isDirectiveName(name):
			parsed.Directives = append(parsed.Directives, Directive{Name: name, Value: value})
		case hasValue && !reservedAttrNames[name]:
			parsed.Attributes = append(parsed.Attributes, TagAttribute{Name: name, Value: value})
		}
	}

	return parsed
}

func isDirectiveName(name string) bool {
	return strings.HasPrefix(name, "v-") ||
		strings.HasPrefix(name, "@") ||
		strings.HasPrefix(name, ":")
}

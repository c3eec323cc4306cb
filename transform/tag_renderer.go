package transform

import (
	"fmt"
	"strings"
)

// RenderComponentTag renders the self-closing replacement element for a
// parsed tag: attributes first, then directives, each in source order.
// Captured values pass through unescaped.
func RenderComponentTag(componentName string, tag ParsedTag) string {
	var b strings.Builder
	b.WriteString("<")
	b.WriteString(componentName)

	for _, attr := range tag.Attributes {
		fmt.Fprintf(&b, ` %s="%s"`, attr.Name, attr.Value)
	}
	for _, d := range tag.Directives {
		if d.Value != "" {
			fmt.Fprintf(&b, ` %s="%s"`, d.Name, d.Value)
		} else {
			fmt.Fprintf(&b, " %s", d.Name)
		}
	}

	b.WriteString(" />")
	return b.String()
}

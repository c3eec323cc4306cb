package transform

import "fmt"

// virtualRoot is the fixed import-path prefix the bundler resolves asset
// imports against. Downstream resolution depends on it verbatim.
const virtualRoot = "~/public"

// ImportPlan accumulates import statements in first-occurrence order, one
// per distinct statement text.
type ImportPlan struct {
	statements []string
	seen       map[string]bool
}

func NewImportPlan() *ImportPlan {
	return &ImportPlan{seen: make(map[string]bool)}
}

// Add records the import statement for a component and the asset path it was
// derived from. Duplicate statements are ignored.
func (p *ImportPlan) Add(componentName, assetPath string) {
	stmt := fmt.Sprintf("import %s from '%s%s'", componentName, virtualRoot, assetPath)
	if p.seen[stmt] {
		return
	}
	p.seen[stmt] = true
	p.statements = append(p.statements, stmt)
}

// Statements returns the accumulated import statements in insertion order.
func (p *ImportPlan) Statements() []string {
	return p.statements
}

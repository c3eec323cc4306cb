package transform

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocateScriptInsertion_NoScript(t *testing.T) {
	_, ok := LocateScriptInsertion("<template><div /></template>\n")

	assert.False(t, ok)
}

func TestLocateScriptInsertion_EmptyScript(t *testing.T) {
	doc := "<template></template>\n<script>\nexport default {}\n</script>\n"

	insertion, ok := LocateScriptInsertion(doc)

	require.True(t, ok)
	wantStart := strings.Index(doc, "<script>") + len("<script>")
	assert.Equal(t, wantStart, insertion.ScriptStart)
	assert.Equal(t, wantStart, insertion.LastImportEnd)
	assert.Equal(t, wantStart, insertion.Offset())
}

func TestLocateScriptInsertion_AfterExistingImports(t *testing.T) {
	doc := "<script>\n" +
		"import a from 'a'\n" +
		"import b from 'b'\n" +
		"const x = 1\n" +
		"</script>\n"

	insertion, ok := LocateScriptInsertion(doc)

	require.True(t, ok)
	wantEnd := strings.Index(doc, "import b from 'b'") + len("import b from 'b'")
	assert.Equal(t, wantEnd, insertion.LastImportEnd)
	assert.Equal(t, wantEnd, insertion.Offset())
	assert.Greater(t, insertion.LastImportEnd, insertion.ScriptStart)
}

func TestLocateScriptInsertion_ScatteredImports(t *testing.T) {
	// The last import line wins even with non-import lines between imports.
	doc := "<script>\n" +
		"import a from 'a'\n" +
		"const between = true\n" +
		"import late from 'late'\n" +
		"const x = 1\n" +
		"</script>\n"

	insertion, ok := LocateScriptInsertion(doc)

	require.True(t, ok)
	wantEnd := strings.Index(doc, "import late from 'late'") + len("import late from 'late'")
	assert.Equal(t, wantEnd, insertion.LastImportEnd)
}

func TestLocateScriptInsertion_ScriptWithAttributes(t *testing.T) {
	doc := `<script setup lang="ts">` + "\nconst x = 1\n</script>\n"

	insertion, ok := LocateScriptInsertion(doc)

	require.True(t, ok)
	assert.Equal(t, len(`<script setup lang="ts">`), insertion.ScriptStart)
}

package scan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("<template />\n"), 0o644))
}

func TestFindComponentFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "App.vue"))
	writeFile(t, filepath.Join(root, "pages", "index.vue"))
	writeFile(t, filepath.Join(root, "pages", "about.VUE"))
	writeFile(t, filepath.Join(root, "util.js"))

	files, err := FindComponentFiles(root, []string{".vue"}, nil)

	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		filepath.Join(root, "App.vue"),
		filepath.Join(root, "pages", "index.vue"),
		filepath.Join(root, "pages", "about.VUE"),
	}, files)
}

func TestFindComponentFiles_SkipsDependencyDirs(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "App.vue"))
	writeFile(t, filepath.Join(root, "node_modules", "pkg", "Button.vue"))
	writeFile(t, filepath.Join(root, ".nuxt", "generated.vue"))

	files, err := FindComponentFiles(root, []string{".vue"}, nil)

	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "App.vue")}, files)
}

func TestFindComponentFiles_UserExcludes(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "App.vue"))
	writeFile(t, filepath.Join(root, "legacy", "Old.vue"))

	files, err := FindComponentFiles(root, []string{".vue"}, []string{"legacy"})

	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "App.vue")}, files)
}

func TestFindComponentFiles_EmptyTree(t *testing.T) {
	files, err := FindComponentFiles(t.TempDir(), []string{".vue"}, nil)

	require.NoError(t, err)
	assert.Empty(t, files)
}

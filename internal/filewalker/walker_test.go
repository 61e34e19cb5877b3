package filewalker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mergel10n/internal/fsys/memfs"
)

func newTree() *memfs.FileSystem {
	m := memfs.New()
	m.AddFile("/app/Login/Resources/zz.lproj/Localizable.strings", nil)
	m.AddFile("/app/Login/Resources/en.lproj/Localizable.strings", nil)
	m.AddFile("/app/Home/Resources/zz.lproj/Localizable.strings", nil)
	m.AddFile("/app/Home/Assets/zz.lproj/Localizable.strings", nil)
	m.AddFile("/app/Legacy/Resources/en.lproj/Localizable.strings", nil)
	return m
}

func TestExpandGlob(t *testing.T) {
	w := NewWalker(newTree(), "zz")

	paths, err := w.Expand([]string{"/app/**/Resources"})

	require.NoError(t, err)
	assert.Equal(t, []string{"/app/Home/Resources", "/app/Login/Resources"}, paths)
}

func TestExpandKeepsPlainPaths(t *testing.T) {
	w := NewWalker(newTree(), "zz")

	paths, err := w.Expand([]string{"/missing", "/app/*/Assets", "/missing"})

	require.NoError(t, err)
	assert.Equal(t, []string{"/missing", "/app/Home/Assets"}, paths)
}

func TestExpandNoMatch(t *testing.T) {
	w := NewWalker(newTree(), "zz")

	paths, err := w.Expand([]string{"/app/*/Nothing"})

	require.NoError(t, err)
	assert.Empty(t, paths)
}

func TestExpandBadPattern(t *testing.T) {
	w := NewWalker(newTree(), "zz")

	_, err := w.Expand([]string{"/app/[Res"})

	assert.Error(t, err)
}

func TestExpandRelativePatterns(t *testing.T) {
	m := memfs.New()
	m.AddFile("app/Login/Resources/zz.lproj/Localizable.strings", nil)
	m.AddFile(".shared/Resources/zz.lproj/Localizable.strings", nil)

	tests := []struct {
		name    string
		pattern string
		want    []string
	}{
		{name: "plain relative", pattern: "app/**/Resources", want: []string{"app/Login/Resources"}},
		{name: "dot slash prefix", pattern: "./app/**/Resources", want: []string{"app/Login/Resources"}},
		{name: "hidden folder under current dir", pattern: "*/Resources", want: []string{".shared/Resources"}},
		{name: "hidden folder in pattern", pattern: "./.shared/*", want: []string{".shared/Resources"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			paths, err := NewWalker(m, "zz").Expand([]string{tt.pattern})

			require.NoError(t, err)
			assert.Equal(t, tt.want, paths)
		})
	}
}

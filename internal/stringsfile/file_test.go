package stringsfile

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mergel10n/internal/fsys"
	"mergel10n/internal/fsys/memfs"
	"mergel10n/internal/l10n"
)

func TestPath(t *testing.T) {
	f := File{BasePath: "App/Resources", Language: "de"}
	assert.Equal(t, "App/Resources/de.lproj/Localizable.strings", f.Path())
}

func TestFromPath(t *testing.T) {
	f, ok := FromPath("App/Resources/pt-BR.lproj/Localizable.strings")
	require.True(t, ok)
	assert.Equal(t, File{BasePath: "App/Resources", Language: "pt-BR"}, f)

	_, ok = FromPath("App/Resources/pt-BR.lproj/InfoPlist.strings")
	assert.False(t, ok)
	_, ok = FromPath("App/Resources/Localizable.strings")
	assert.False(t, ok)
}

func TestRead(t *testing.T) {
	f := File{BasePath: "/res", Language: "en"}

	tests := []struct {
		name     string
		content  *string
		wantKind ErrorKind
		want     []l10n.Entry
	}{
		{
			name:    "valid",
			content: ptr("/* c */\n\"k\" = \"v\";\n\n"),
			want:    []l10n.Entry{{Key: "k", Value: "v", Comment: "c"}},
		},
		{
			name:     "missing file",
			wantKind: KindFolderNotFound,
		},
		{
			name:     "unmatched text",
			content:  ptr("/* c */\n\"k\" = \"v\";\ngarbage"),
			wantKind: KindUnmatchedString,
		},
		{
			name:     "whitespace only",
			content:  ptr("\n\n  \n"),
			wantKind: KindPossibleEncodingProblem,
		},
		{
			name:     "empty",
			content:  ptr(""),
			wantKind: KindPossibleEncodingProblem,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := memfs.New()
			if tt.content != nil {
				m.AddFile(f.Path(), []byte(*tt.content))
			}

			entries, err := f.Read(m, fsys.UTF8, true)
			if tt.wantKind != "" {
				require.Error(t, err)
				assert.True(t, IsKind(err, tt.wantKind), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, entries)
		})
	}
}

func TestReadUnmatchedCarriesRest(t *testing.T) {
	m := memfs.New()
	f := File{BasePath: "/res", Language: "en"}
	m.AddFile(f.Path(), []byte("/* a */\n\"a\" = \"1\";\n\"b\" = \"2\";\n"))

	_, err := f.Read(m, fsys.UTF8, true)

	var fe *Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, KindUnmatchedString, fe.Kind)
	assert.Equal(t, "\"b\" = \"2\";\n", fe.Rest)
	assert.Equal(t, f, fe.File)
}

func TestReadFailures(t *testing.T) {
	f := File{BasePath: "/res", Language: "zz"}

	t.Run("io error", func(t *testing.T) {
		m := memfs.New()
		m.AddFile(f.Path(), []byte("x"))
		boom := errors.New("boom")
		m.FailReads(f.Path(), boom)

		_, err := f.Read(m, fsys.UTF8, true)
		assert.True(t, IsKind(err, KindFileCannotBeRead))
		assert.ErrorIs(t, err, boom)
	})

	t.Run("decoding error", func(t *testing.T) {
		m := memfs.New()
		m.AddFile(f.Path(), []byte{0xFF, 0xFE, '/', 0})

		_, err := f.Read(m, fsys.UTF8, true)
		assert.True(t, IsKind(err, KindFileCannotBeRead))
		assert.ErrorIs(t, err, fsys.ErrInvalidText)
	})
}

func TestReadUTF16Master(t *testing.T) {
	m := memfs.New()
	f := File{BasePath: "/res", Language: "zz"}
	data, err := fsys.UTF16.Encode("/* c */\n\"k\" = \"zz_k\";\n")
	require.NoError(t, err)
	m.AddFile(f.Path(), data)

	entries, err := f.Read(m, fsys.UTF16, true)
	require.NoError(t, err)
	assert.Equal(t, []l10n.Entry{{Key: "k", Value: "zz_k", Comment: "c"}}, entries)
}

func TestSave(t *testing.T) {
	m := memfs.New()
	f := File{BasePath: "/res", Language: "de"}

	err := f.Save(m, []l10n.Entry{{Key: "k", Value: "v", Comment: "c"}}, fsys.UTF8)
	require.NoError(t, err)

	content, ok := m.Content(f.Path())
	require.True(t, ok)
	assert.Equal(t, "/* c */\n\"k\" = \"v\";\n\n", string(content))
}

func TestSaveFailure(t *testing.T) {
	m := memfs.New()
	f := File{BasePath: "/res", Language: "de"}
	m.FailWrites(f.Path(), errors.New("disk full"))

	err := f.Save(m, nil, fsys.UTF8)
	assert.True(t, IsKind(err, KindFileCannotBeSaved))
}

func TestReplace(t *testing.T) {
	master := []l10n.Entry{
		{Key: "a", Comment: "A"},
		{Key: "b", Comment: "B"},
	}
	f := File{BasePath: "/res", Language: "de"}

	for _, fill := range []bool{false, true} {
		m := memfs.New()
		m.AddFile(f.Path(), []byte("/* old */\n\"a\" = \"1\";\n\n/* old2 */\n\"c\" = \"3\";\n"))

		merged, err := f.Replace(m, master, ReplaceOptions{FillWithEmpty: fill, RequiresComments: true, Encoding: fsys.UTF8})
		require.NoError(t, err)

		content, _ := m.Content(f.Path())
		if fill {
			assert.Len(t, merged, 2)
			assert.Equal(t, "/* A */\n\"a\" = \"1\";\n\n/* B */\n\"b\" = \"\";\n\n", string(content))
		} else {
			assert.Len(t, merged, 1)
			assert.Equal(t, "/* A */\n\"a\" = \"1\";\n\n", string(content))
		}
	}
}

func TestReplaceLeavesFileOnReadError(t *testing.T) {
	m := memfs.New()
	f := File{BasePath: "/res", Language: "de"}
	m.AddFile(f.Path(), []byte("broken"))

	_, err := f.Replace(m, []l10n.Entry{{Key: "a"}}, ReplaceOptions{Encoding: fsys.UTF8, RequiresComments: true})

	assert.True(t, IsKind(err, KindUnmatchedString))
	content, _ := m.Content(f.Path())
	assert.Equal(t, "broken", string(content))
}

func TestErrorMessage(t *testing.T) {
	err := &Error{Kind: KindUnmatchedString, File: File{BasePath: "/res", Language: "de"}, Rest: "oops"}
	assert.Equal(t, `[FILE_PARSER_HAS_UNMATCHED_STRING] /res/de.lproj/Localizable.strings: unmatched text "oops"`, err.Error())
}

func ptr(s string) *string { return &s }

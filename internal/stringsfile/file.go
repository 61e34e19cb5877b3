// Package stringsfile reads, merges and saves the Localizable.strings file
// of one language in a localization folder.
package stringsfile

import (
	"fmt"
	"path/filepath"
	"strings"

	"mergel10n/internal/fsys"
	"mergel10n/internal/l10n"
	"mergel10n/internal/parser"
)

// FileName is the strings table every language folder holds.
const FileName = "Localizable.strings"

// File points at <BasePath>/<Language>.lproj/Localizable.strings.
type File struct {
	BasePath string
	Language string
}

// Path returns the location of the file.
func (f File) Path() string {
	return filepath.Join(f.BasePath, f.Language+".lproj", FileName)
}

// FromPath recovers the File for a path laid out as
// <base>/<language>.lproj/Localizable.strings.
func FromPath(p string) (File, bool) {
	if filepath.Base(p) != FileName {
		return File{}, false
	}
	dir := filepath.Dir(p)
	language, ok := strings.CutSuffix(filepath.Base(dir), ".lproj")
	if !ok || language == "" {
		return File{}, false
	}
	return File{BasePath: filepath.Dir(dir), Language: language}, true
}

// Read loads and parses the file.
//
// The whole text must be matched: leftover non-whitespace input is reported
// as KindUnmatchedString with the leftover text. Input yielding no entries,
// empty or whitespace-only included, is reported as a possible encoding
// problem.
func (f File) Read(filesystem fsys.FileSystem, enc fsys.Encoding, requiresComments bool) ([]l10n.Entry, error) {
	if !filesystem.Exists(f.Path()) {
		return nil, newError(KindFolderNotFound, f, nil)
	}

	text, err := fsys.ReadText(filesystem, f.Path(), enc)
	if err != nil {
		return nil, newError(KindFileCannotBeRead, f, err)
	}

	p, err := f.parser(requiresComments)
	if err != nil {
		return nil, err
	}
	result := p.Parse(text)
	if strings.TrimSpace(result.Rest) != "" {
		return nil, &Error{Kind: KindUnmatchedString, File: f, Rest: result.Rest}
	}
	if len(result.Entries) == 0 {
		return nil, newError(KindPossibleEncodingProblem, f, nil)
	}
	return result.Entries, nil
}

func (f File) parser(requiresComments bool) (parser.Parser, error) {
	p, ok := parser.ForFile(parser.Formats(requiresComments), f.Path())
	if !ok {
		return nil, newError(KindFileCannotBeParsed, f, fmt.Errorf("no parser for %q", filepath.Ext(f.Path())))
	}
	return p, nil
}

// Save serializes entries and overwrites the file.
func (f File) Save(filesystem fsys.FileSystem, entries []l10n.Entry, enc fsys.Encoding) error {
	p, err := f.parser(true)
	if err != nil {
		return err
	}
	contents := p.Serialize(entries)
	if err := fsys.WriteText(filesystem, f.Path(), contents, enc); err != nil {
		return newError(KindFileCannotBeSaved, f, err)
	}
	return nil
}

// ReplaceOptions controls how a language file is synchronized.
type ReplaceOptions struct {
	// FillWithEmpty adds empty entries for keys the file does not have yet.
	FillWithEmpty bool
	// RequiresComments makes an entry without a comment a parse failure.
	RequiresComments bool
	Encoding         fsys.Encoding
}

// Replace reads the file, merges it against the master entries and writes
// the result back. It returns the merged entries.
func (f File) Replace(filesystem fsys.FileSystem, master []l10n.Entry, opts ReplaceOptions) ([]l10n.Entry, error) {
	entries, err := f.Read(filesystem, opts.Encoding, opts.RequiresComments)
	if err != nil {
		return nil, err
	}
	merged := l10n.Merge(master, entries, opts.FillWithEmpty)
	if err := f.Save(filesystem, merged, opts.Encoding); err != nil {
		return nil, err
	}
	return merged, nil
}

package parser

import (
	"path/filepath"

	"mergel10n/internal/l10n"
)

// ParseResult holds parsing output for a single file.
type ParseResult struct {
	// Entries are the matched entries in file order.
	Entries []l10n.Entry
	// Rest is the input left after the last matched entry.
	Rest string
}

// Parser is the interface for translation file format parsers.
type Parser interface {
	// CanParse returns true if this parser handles the given file extension.
	CanParse(ext string) bool
	// Parse matches as many entries as possible from text.
	Parse(text string) ParseResult
	// Serialize renders entries back into file contents.
	Serialize(entries []l10n.Entry) string
}

// Formats returns a parser for every supported file format.
func Formats(requiresComments bool) []Parser {
	return []Parser{NewStringsParser(requiresComments)}
}

// ForFile returns the first of parsers that handles the extension of path.
func ForFile(parsers []Parser, path string) (Parser, bool) {
	ext := filepath.Ext(path)
	for _, p := range parsers {
		if p.CanParse(ext) {
			return p, true
		}
	}
	return nil, false
}

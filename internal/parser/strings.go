package parser

import (
	"strings"

	c "mergel10n/internal/combinator"
	"mergel10n/internal/l10n"
)

// StringsParser handles Apple Localizable.strings files made of commented
// `"key" = "value";` entries.
type StringsParser struct {
	file c.Parser[[]l10n.Entry]
}

// NewStringsParser builds a parser. With requiresComments set, an entry
// without a leading `/* ... */` comment stops parsing; otherwise its
// comment is empty.
func NewStringsParser(requiresComments bool) *StringsParser {
	return &StringsParser{file: fileParser(requiresComments)}
}

func (p *StringsParser) CanParse(ext string) bool {
	return ext == ".strings"
}

func (p *StringsParser) Parse(text string) ParseResult {
	entries, _, rest := c.Run(p.file, text)
	return ParseResult{Entries: entries, Rest: rest}
}

// Serialize writes every entry as a comment line and a key/value line,
// each followed by a blank line. Quotes and newlines are not escaped.
func (p *StringsParser) Serialize(entries []l10n.Entry) string {
	var b strings.Builder
	for _, e := range entries {
		b.WriteString(e.String())
		b.WriteString("\n\n")
	}
	return b.String()
}

var commentParser = c.Map(
	c.Zip3(
		c.Literal("/* "),
		c.StringUntil(c.Literal(" */")),
		c.Literal(" */"),
	),
	func(t c.Tuple3[struct{}, string, struct{}]) string { return t.V2 },
)

func entryParser(requiresComments bool) c.Parser[l10n.Entry] {
	comment := commentParser
	if !requiresComments {
		comment = c.OrElse(commentParser, "")
	}

	return c.Map(
		c.Zip7(
			comment,
			c.ZeroOrMoreSpacesOrLines,
			c.Literal(`"`),
			c.StringUntil(c.Literal(`" = "`)),
			c.Literal(`" = "`),
			c.OrElse(c.StringUntil(c.Literal(`";`)), ""),
			c.Zip(c.Literal(`";`), c.ZeroOrMoreSpacesOrLines),
		),
		func(t c.Tuple7[string, struct{}, struct{}, string, struct{}, string, c.Pair[struct{}, struct{}]]) l10n.Entry {
			return l10n.Entry{Key: t.V4, Value: t.V6, Comment: t.V1}
		},
	)
}

func fileParser(requiresComments bool) c.Parser[[]l10n.Entry] {
	return c.Map(
		c.Zip(c.ZeroOrMoreSpacesOrLines, c.ZeroOrMore(entryParser(requiresComments))),
		func(p c.Pair[struct{}, []l10n.Entry]) []l10n.Entry { return p.Second },
	)
}

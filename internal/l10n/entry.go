// Package l10n holds the translation entry model and the key
// synchronization between a master key list and a language's entries.
package l10n

import "fmt"

// Entry is one translated string of a Localizable.strings file.
type Entry struct {
	// Key identifies the string. Lookups compare keys only.
	Key string
	// Value is the translated text.
	Value string
	// Comment is the developer note shown above the entry.
	Comment string
}

// SameKey reports whether e and other identify the same string.
func (e Entry) SameKey(other Entry) bool {
	return e.Key == other.Key
}

// Equal compares key, value and comment.
func (e Entry) Equal(other Entry) bool {
	return e == other
}

// String renders the entry as it appears in a .strings file, without a
// trailing newline.
func (e Entry) String() string {
	return fmt.Sprintf("/* %s */\n\"%s\" = \"%s\";", e.Comment, e.Key, e.Value)
}

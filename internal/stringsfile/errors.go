package stringsfile

import (
	"errors"
	"fmt"

	"mergel10n/internal/textutil"
)

// ErrorKind classifies why a file could not be processed.
type ErrorKind string

const (
	KindFolderNotFound          ErrorKind = "FOLDER_NOT_FOUND"
	KindFileCannotBeRead        ErrorKind = "FILE_CANNOT_BE_READ"
	KindFileCannotBeParsed      ErrorKind = "FILE_CANNOT_BE_PARSED"
	KindUnmatchedString         ErrorKind = "FILE_PARSER_HAS_UNMATCHED_STRING"
	KindPossibleEncodingProblem ErrorKind = "FILE_POSSIBLE_ENCODING_PROBLEM"
	KindFileCannotBeSaved       ErrorKind = "FILE_CANNOT_BE_SAVED"
)

// Error reports a failure on one translation file.
type Error struct {
	Kind ErrorKind
	File File
	// Rest is the unconsumed input for KindUnmatchedString.
	Rest string
	Err  error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("[%s] %s", e.Kind, e.File.Path())
	if e.Kind == KindUnmatchedString {
		msg += fmt.Sprintf(": unmatched text %q", textutil.Truncate(e.Rest, 80))
	}
	if e.Err != nil {
		msg += fmt.Sprintf(": %v", e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(kind ErrorKind, file File, err error) *Error {
	return &Error{Kind: kind, File: file, Err: err}
}

// IsKind reports whether err wraps an *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind == kind
	}
	return false
}

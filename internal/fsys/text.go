package fsys

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
)

// Encoding names the text encoding of a file on disk.
type Encoding string

const (
	UTF8 Encoding = "utf-8"
	// UTF16 honours a byte order mark, defaults to big endian without one
	// and writes a byte order mark.
	UTF16   Encoding = "utf-16"
	UTF16LE Encoding = "utf-16le"
	UTF16BE Encoding = "utf-16be"
)

// ErrInvalidText is returned when file contents are not valid in the
// requested encoding.
var ErrInvalidText = errors.New("invalid text for encoding")

const byteOrderMark = "\uFEFF"

// ParseEncoding accepts an encoding name such as "utf-8", "UTF8" or "utf-16le".
func ParseEncoding(name string) (Encoding, error) {
	switch strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), "_", "-")) {
	case "utf-8", "utf8":
		return UTF8, nil
	case "utf-16", "utf16":
		return UTF16, nil
	case "utf-16le", "utf16le":
		return UTF16LE, nil
	case "utf-16be", "utf16be":
		return UTF16BE, nil
	}
	return "", fmt.Errorf("unsupported encoding %q", name)
}

func (e Encoding) codec() (encoding.Encoding, error) {
	switch e {
	case UTF8:
		return unicode.UTF8BOM, nil
	case UTF16:
		return unicode.UTF16(unicode.BigEndian, unicode.UseBOM), nil
	case UTF16LE:
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM), nil
	case UTF16BE:
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM), nil
	}
	return nil, fmt.Errorf("unsupported encoding %q", string(e))
}

// Decode converts raw file contents into text. A leading byte order mark is
// dropped.
func (e Encoding) Decode(data []byte) (string, error) {
	codec, err := e.codec()
	if err != nil {
		return "", err
	}
	switch e {
	case UTF8:
		if !utf8.Valid(data) {
			return "", fmt.Errorf("%w: %s", ErrInvalidText, e)
		}
	default:
		if len(data)%2 != 0 {
			return "", fmt.Errorf("%w: %s has odd length %d", ErrInvalidText, e, len(data))
		}
	}
	decoded, err := codec.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", e, err)
	}
	return strings.TrimPrefix(string(decoded), byteOrderMark), nil
}

// Encode converts text into file contents.
func (e Encoding) Encode(text string) ([]byte, error) {
	if e == UTF8 {
		return []byte(text), nil
	}
	codec, err := e.codec()
	if err != nil {
		return nil, err
	}
	encoded, err := codec.NewEncoder().Bytes([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", e, err)
	}
	return encoded, nil
}

// ReadText reads path and decodes it with enc.
func ReadText(filesystem FileSystem, path string, enc Encoding) (string, error) {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	text, err := enc.Decode(data)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return text, nil
}

// WriteText encodes text with enc and writes it to path.
func WriteText(filesystem FileSystem, path, text string, enc Encoding) error {
	data, err := enc.Encode(text)
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := filesystem.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

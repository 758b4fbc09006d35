package textextraction

import (
	"errors"
	"io"
	"unicode/utf8"
)

// ErrInvalidUTF8 indicates the input bytes are not valid UTF-8.
var ErrInvalidUTF8 = errors.New("input is not valid UTF-8")

// PlainTextExtractor passes UTF-8 text through untouched.
type PlainTextExtractor struct{}

func (e *PlainTextExtractor) Extract(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", ErrInvalidUTF8
	}
	return string(data), nil
}

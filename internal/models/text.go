package models

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const documentFileMode os.FileMode = 0o644

var ErrInvalidEncoding = errors.New("file is not valid UTF-8 text")

// DecodeText turns raw file bytes into buffer text. A UTF-8 or UTF-16 byte
// order mark is honoured and stripped; anything else must already be UTF-8.
func DecodeText(data []byte) (string, error) {
	decoded, _, err := transform.Bytes(unicode.BOMOverride(transform.Nop), data)
	if err != nil {
		return "", fmt.Errorf("failed to decode text: %w", err)
	}
	if !utf8.Valid(decoded) {
		return "", ErrInvalidEncoding
	}
	return string(decoded), nil
}

// ReadTextFile reads and decodes the whole file at path.
func ReadTextFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return DecodeText(data)
}

// WriteTextFile writes content to path as UTF-8, replacing any existing file.
func WriteTextFile(path, content string) error {
	return os.WriteFile(path, []byte(content), documentFileMode)
}

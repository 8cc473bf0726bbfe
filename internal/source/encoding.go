package source

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// Decode converts raw file bytes into the canonical in-memory form: UTF-8,
// LF line endings, no BOM, terminated by a newline. UTF-16 input is detected
// by its BOM; input that is not valid UTF-8 falls back to Latin-1, which
// never fails. The returned flags record every applied transformation.
func Decode(raw []byte) ([]byte, FileFlags, error) {
	content := raw
	flags := FileFlags(0)

	switch {
	case bytes.HasPrefix(content, bomUTF16LE):
		decoded, err := decodeUTF16(content, unicode.LittleEndian)
		if err != nil {
			return nil, 0, err
		}
		content = decoded
		flags |= FileHadBOM | FileReencoded

	case bytes.HasPrefix(content, bomUTF16BE):
		decoded, err := decodeUTF16(content, unicode.BigEndian)
		if err != nil {
			return nil, 0, err
		}
		content = decoded
		flags |= FileHadBOM | FileReencoded

	case bytes.HasPrefix(content, bomUTF8):
		content = content[len(bomUTF8):]
		flags |= FileHadBOM

	default:
		if !utf8.Valid(content) {
			decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(content)
			if err != nil {
				return nil, 0, fmt.Errorf("decode latin-1: %w", err)
			}
			content = decoded
			flags |= FileReencoded
		}
	}

	content, hadCRLF := normalizeCRLF(content)
	if hadCRLF {
		flags |= FileNormalizedCRLF
	}

	if len(content) == 0 || content[len(content)-1] != '\n' {
		content = append(content, '\n')
		flags |= FileAppendedNewline
	}

	return content, flags, nil
}

func decodeUTF16(content []byte, endian unicode.Endianness) ([]byte, error) {
	dec := unicode.UTF16(endian, unicode.UseBOM).NewDecoder()
	decoded, err := dec.Bytes(content)
	if err != nil {
		return nil, fmt.Errorf("decode utf-16: %w", err)
	}
	return decoded, nil
}

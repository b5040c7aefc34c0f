package countyimport

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/htmlindex"
)

// ErrUnreadableFile is returned when a source file cannot be decoded with
// any of the candidate encodings.
var ErrUnreadableFile = errors.New("file is not readable with any supported encoding")

// legacyEncodings are tried in order after UTF-8. County exports are
// usually windows-1252; the rest cover older extracts.
var legacyEncodings = []string{"windows-1252", "latin1", "iso-8859-1"}

// ReadFileWithFallback reads a county export and decodes it to UTF-8,
// trying UTF-8 first and then the legacy single-byte encodings. It
// returns the decoded bytes and the name of the encoding that succeeded.
func ReadFileWithFallback(path string) ([]byte, string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	if utf8.Valid(raw) {
		return raw, "utf-8", nil
	}

	for _, name := range legacyEncodings {
		enc, err := htmlindex.Get(name)
		if err != nil {
			continue
		}
		decoded, err := enc.NewDecoder().Bytes(raw)
		if err != nil {
			continue
		}
		return decoded, name, nil
	}

	return nil, "", fmt.Errorf("%w: %s", ErrUnreadableFile, path)
}

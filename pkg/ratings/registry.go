package ratings

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/ukaji3/ratings-go/pkg/ratings/parser"
)

// LoadRegistry reads the ordered institution names from a JSON array file.
// Entries are normalized; their order is preserved.
func LoadRegistry(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, NewConversionError(StageRegistry, path, ErrFileNotFound)
		}
		return nil, NewConversionError(StageRegistry, path, err)
	}

	names, err := ParseRegistry(data)
	if err != nil {
		return nil, NewConversionError(StageRegistry, path, err)
	}
	return names, nil
}

// ParseRegistry decodes a JSON array of institution names.
func ParseRegistry(data []byte) ([]string, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw []interface{}
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRegistry, err)
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return nil, fmt.Errorf("%w: unexpected data after the array", ErrInvalidRegistry)
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: expected a JSON array", ErrInvalidRegistry)
	}

	names := make([]string, 0, len(raw))
	for _, v := range raw {
		names = append(names, parser.NormalizeName(v))
	}
	return names, nil
}

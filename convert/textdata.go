package convert

import (
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// TextDataConverter translates between structured text encodings. The data
// passes through a generic in-memory value, so key order and comments are not
// preserved.
type TextDataConverter struct {
	logger *zap.Logger
}

func NewTextDataConverter(logger *zap.Logger) *TextDataConverter {
	return &TextDataConverter{logger: logger}
}

func (c *TextDataConverter) Convert(content []byte, in, out string) ([]byte, error) {
	var (
		converted []byte
		err       error
	)
	switch {
	case in == "json" && isYAML(out):
		converted, err = jsonToYAML(content)
	case isYAML(in) && out == "json":
		converted, err = yamlToJSON(content)
	case isDelimited(in) && out == "json":
		converted, err = delimitedToJSON(content, delimiter(in))
	default:
		return nil, fmt.Errorf("%w: %s to %s", ErrNotImplemented, in, out)
	}
	if err != nil {
		return nil, &ConversionError{Family: "data", Err: err}
	}
	return converted, nil
}

func isYAML(name string) bool {
	return name == "yaml" || name == "yml"
}

func jsonToYAML(content []byte) ([]byte, error) {
	var value interface{}
	if err := json.Unmarshal(content, &value); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	encoded, err := yaml.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("failed to encode yaml: %w", err)
	}
	return encoded, nil
}

func yamlToJSON(content []byte) ([]byte, error) {
	var value interface{}
	if err := yaml.Unmarshal(content, &value); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	encoded, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode json: %w", err)
	}
	return encoded, nil
}

// delimitedToJSON treats the first row as a header and emits an array of
// objects, one per data row. Short rows leave trailing columns empty.
func delimitedToJSON(content []byte, sep rune) ([]byte, error) {
	rows, err := readDelimited(content, sep)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return []byte("[]"), nil
	}

	header := rows[0]
	records := make([]map[string]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		record := make(map[string]string, len(header))
		for i, key := range header {
			if i < len(row) {
				record[key] = row[i]
			} else {
				record[key] = ""
			}
		}
		records = append(records, record)
	}

	encoded, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode json: %w", err)
	}
	return encoded, nil
}

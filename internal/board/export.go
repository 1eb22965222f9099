package board

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// WriteYAML encodes the finished sheets to w and closes the encoder.
func WriteYAML(w io.Writer, sheets []Sheet) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(struct {
		Sheets []Sheet `yaml:"sheets"`
	}{sheets}); err != nil {
		return fmt.Errorf("encode sheets: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("close yaml encoder: %w", err)
	}
	return nil
}

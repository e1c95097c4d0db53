package edm

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Load reads a YAML schema descriptor.
func Load(r io.Reader) (*Schema, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading schema")
	}
	var result Schema
	if err := yaml.Unmarshal(buf, &result); err != nil {
		return nil, errors.Wrap(err, "unmarshalling schema")
	}
	return &result, nil
}

// LoadFile reads a YAML schema descriptor from a file.
func LoadFile(path string) (*Schema, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening schema %s", path)
	}
	defer f.Close()
	return Load(f)
}

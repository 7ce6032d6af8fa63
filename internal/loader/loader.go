// Package loader reads the delegate dataset and catalog files from disk.
package loader

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"delegates/internal/classifier"
	"delegates/internal/models"
)

// LoadDataset reads a JSON array of delegates from path.
func LoadDataset(path string) ([]models.RawDelegate, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	raws, err := DecodeDataset(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return raws, nil
}

// DecodeDataset decodes a JSON array of delegates. Malformed age,
// education and experience values decode leniently; only a document
// that is not an array of objects is an error.
func DecodeDataset(r io.Reader) ([]models.RawDelegate, error) {
	var raws []models.RawDelegate
	if err := json.NewDecoder(r).Decode(&raws); err != nil {
		return nil, fmt.Errorf("failed to decode dataset: %w", err)
	}

	if raws == nil {
		raws = []models.RawDelegate{}
	}

	return raws, nil
}

// LoadCatalog reads and validates a YAML catalog from path.
func LoadCatalog(path string) (*classifier.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var catalog classifier.Catalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse catalog YAML: %w", err)
	}

	if err := catalog.Validate(); err != nil {
		return nil, fmt.Errorf("catalog validation failed: %w", err)
	}

	return &catalog, nil
}

// EncodeCatalog writes catalog as YAML.
func EncodeCatalog(w io.Writer, catalog *classifier.Catalog) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(catalog); err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}

	return enc.Close()
}

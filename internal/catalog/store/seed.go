package store

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"packport/internal/catalog/models"
)

//go:embed seed.yaml
var embeddedSeed []byte

type seedFile struct {
	Products []models.Product `yaml:"products"`
}

// SeedEmbedded builds the catalog from the seed bundled into the binary:
// the three launch products every demo session starts with.
func SeedEmbedded() (*InMemory, error) {
	return seedFromBytes(embeddedSeed)
}

// SeedFromFile builds the catalog from an external YAML file, for demos that
// ship their own product set.
func SeedFromFile(path string) (*InMemory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog seed: %w", err)
	}
	return seedFromBytes(data)
}

func seedFromBytes(data []byte) (*InMemory, error) {
	var f seedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog seed: %w", err)
	}
	if len(f.Products) == 0 {
		return nil, fmt.Errorf("catalog seed holds no products")
	}
	return NewInMemory(f.Products)
}

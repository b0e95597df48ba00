// Package store holds the read-only product catalog. The catalog is seeded
// once at startup and never written afterwards; it is the single source of
// truth every other module reads from.
package store

import (
	"context"
	"fmt"

	"packport/internal/catalog/models"
	id "packport/pkg/domain"
	"packport/pkg/platform/sentinel"
	strutil "packport/pkg/platform/strings"
)

// Store is the read surface of the catalog. Implementations must be safe for
// concurrent readers.
type Store interface {
	// List returns all products in catalog order.
	List(ctx context.Context) []models.Product
	// Get returns the product with the given ID.
	Get(ctx context.Context, productID id.ProductID) (models.Product, error)
	// At returns the i-th product in catalog order.
	At(ctx context.Context, i int) (models.Product, error)
	// Len returns the catalog size.
	Len(ctx context.Context) int
}

// InMemory is the catalog store. There is no mutex: the backing slice is
// written once in New and read-only afterwards.
type InMemory struct {
	products []models.Product
	byID     map[id.ProductID]int
}

// NewInMemory builds a catalog from seed records, validating the invariants
// the rest of the core trusts: unique non-empty IDs, known statuses, and
// pillar scores inside [0,100]. Certification and allergen lists are trimmed
// and deduped.
func NewInMemory(products []models.Product) (*InMemory, error) {
	byID := make(map[id.ProductID]int, len(products))
	for i, p := range products {
		if p.ID == "" {
			return nil, fmt.Errorf("catalog product %d: empty id", i)
		}
		if _, dup := byID[p.ID]; dup {
			return nil, fmt.Errorf("catalog product %q: duplicate id", p.ID)
		}
		if !p.Status.Valid() {
			return nil, fmt.Errorf("catalog product %q: unknown status %q", p.ID, p.Status)
		}
		for name, v := range map[string]int{
			"co2":           p.Sustainability.CO2,
			"recyclability": p.Sustainability.Recyclability,
			"animalWelfare": p.Sustainability.AnimalWelfare,
			"localSourcing": p.Sustainability.LocalSourcing,
			"packaging":     p.Sustainability.Packaging,
		} {
			if v < 0 || v > 100 {
				return nil, fmt.Errorf("catalog product %q: pillar %s value %d outside [0,100]", p.ID, name, v)
			}
		}
		products[i].Certifications = strutil.DedupeAndTrim(p.Certifications)
		products[i].Allergens = strutil.DedupeAndTrim(p.Allergens)
		byID[p.ID] = i
	}
	return &InMemory{products: products, byID: byID}, nil
}

func (s *InMemory) List(_ context.Context) []models.Product {
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *InMemory) Get(_ context.Context, productID id.ProductID) (models.Product, error) {
	i, ok := s.byID[productID]
	if !ok {
		return models.Product{}, fmt.Errorf("product %q: %w", productID, sentinel.ErrNotFound)
	}
	return s.products[i], nil
}

func (s *InMemory) At(_ context.Context, i int) (models.Product, error) {
	if i < 0 || i >= len(s.products) {
		return models.Product{}, fmt.Errorf("catalog index %d: %w", i, sentinel.ErrNotFound)
	}
	return s.products[i], nil
}

func (s *InMemory) Len(_ context.Context) int {
	return len(s.products)
}

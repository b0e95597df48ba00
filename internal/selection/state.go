// Package selection tracks which products the user has scanned into the
// comparison set and which one currently has focus. State is a plain value
// with pure transitions; Session adds the locking for concurrent access.
package selection

import (
	"context"
	"fmt"

	"packport/internal/catalog/models"
	"packport/internal/catalog/store"
	id "packport/pkg/domain"
	dErrors "packport/pkg/domain-errors"
)

// State is the scanned-product list plus the focus index. The zero value is
// the empty selection. A product never appears twice.
type State struct {
	Products []models.Product
	Focus    int
}

// AddNext returns the state with the first catalog product that is not yet
// selected appended, in catalog order. Once every catalog product is
// selected, AddNext returns the state unchanged with added=false.
func (s State) AddNext(ctx context.Context, catalog store.Store) (State, bool, error) {
	selected := make(map[id.ProductID]struct{}, len(s.Products))
	for _, p := range s.Products {
		selected[p.ID] = struct{}{}
	}
	for i := 0; i < catalog.Len(ctx); i++ {
		p, err := catalog.At(ctx, i)
		if err != nil {
			return s, false, fmt.Errorf("selection: fetching catalog product %d: %w", i, err)
		}
		if _, ok := selected[p.ID]; ok {
			continue
		}
		products := make([]models.Product, len(s.Products), len(s.Products)+1)
		copy(products, s.Products)
		return State{Products: append(products, p), Focus: s.Focus}, true, nil
	}
	return s, false, nil
}

// SetFocus returns the state focused on the i-th selected product.
func (s State) SetFocus(i int) (State, error) {
	if i < 0 || i >= len(s.Products) {
		return s, dErrors.New(dErrors.CodeOutOfRange,
			fmt.Sprintf("focus index %d outside selection of %d products", i, len(s.Products)))
	}
	return State{Products: s.Products, Focus: i}, nil
}

// Remove returns the state without the given product. The focus index is
// re-clamped so it never references a removed slot.
func (s State) Remove(productID id.ProductID) (State, error) {
	at := -1
	for i, p := range s.Products {
		if p.ID == productID {
			at = i
			break
		}
	}
	if at < 0 {
		return s, dErrors.New(dErrors.CodeNotFound,
			fmt.Sprintf("product %q is not in the selection", productID))
	}

	products := make([]models.Product, 0, len(s.Products)-1)
	products = append(products, s.Products[:at]...)
	products = append(products, s.Products[at+1:]...)

	focus := s.Focus
	if at < focus {
		focus--
	}
	if focus >= len(products) {
		focus = len(products) - 1
	}
	if focus < 0 {
		focus = 0
	}
	return State{Products: products, Focus: focus}, nil
}

// Package community serves the cross-product review feed. Products are
// immutable, so the feed is a read-only projection of the catalog.
package community

import (
	"context"
	"fmt"
	"sort"

	"packport/internal/catalog/models"
	"packport/internal/catalog/store"
	dErrors "packport/pkg/domain-errors"
)

// Feed filters. The category filters match review categories exactly.
const (
	FilterNewest      = "Newest"
	FilterMostHelpful = "Most helpful"
)

var categoryFilters = map[string]bool{
	"Taste":          true,
	"Sustainability": true,
	"Packaging":      true,
}

// Filters lists the supported filters in display order.
func Filters() []string {
	return []string{FilterMostHelpful, FilterNewest, "Taste", "Sustainability", "Packaging"}
}

// FeedReview is a product review tagged with its product's name.
type FeedReview struct {
	models.Review
	ProductName string `json:"productName"`
}

// Service flattens and orders the review feed.
type Service struct {
	catalog store.Store
}

func NewService(catalog store.Store) *Service {
	return &Service{catalog: catalog}
}

// Reviews returns the feed under the given filter. An empty filter defaults
// to Newest.
func (s *Service) Reviews(ctx context.Context, filter string) ([]FeedReview, error) {
	if filter == "" {
		filter = FilterNewest
	}
	if filter != FilterNewest && filter != FilterMostHelpful && !categoryFilters[filter] {
		return nil, dErrors.New(dErrors.CodeInvalidInput, fmt.Sprintf("unknown feed filter %q", filter))
	}

	feed := make([]FeedReview, 0)
	for _, p := range s.catalog.List(ctx) {
		for _, r := range p.Reviews {
			if categoryFilters[filter] && r.Category != filter {
				continue
			}
			feed = append(feed, FeedReview{Review: r, ProductName: p.Name})
		}
	}

	switch filter {
	case FilterMostHelpful:
		sort.SliceStable(feed, func(i, j int) bool {
			if feed[i].Rating != feed[j].Rating {
				return feed[i].Rating > feed[j].Rating
			}
			return feed[i].Date.After(feed[j].Date)
		})
	default:
		sort.SliceStable(feed, func(i, j int) bool {
			return feed[i].Date.After(feed[j].Date)
		})
	}
	return feed, nil
}

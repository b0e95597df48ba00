package community

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"packport/internal/catalog/store"
	dErrors "packport/pkg/domain-errors"
)

type CommunityFeedSuite struct {
	suite.Suite
	ctx context.Context
	svc *Service
}

func TestCommunityFeedSuite(t *testing.T) {
	suite.Run(t, new(CommunityFeedSuite))
}

func (s *CommunityFeedSuite) SetupSuite() {
	catalog, err := store.SeedEmbedded()
	s.Require().NoError(err)
	s.ctx = context.Background()
	s.svc = NewService(catalog)
}

func (s *CommunityFeedSuite) TestNewestOrdersByDateDescending() {
	feed, err := s.svc.Reviews(s.ctx, FilterNewest)
	s.Require().NoError(err)
	s.Require().Len(feed, 7)

	for i := 1; i < len(feed); i++ {
		s.False(feed[i].Date.After(feed[i-1].Date), "feed not ordered newest first at %d", i)
	}
	for _, r := range feed {
		s.NotEmpty(r.ProductName, "review %s missing product name", r.ID)
	}
}

func (s *CommunityFeedSuite) TestEmptyFilterDefaultsToNewest() {
	byDefault, err := s.svc.Reviews(s.ctx, "")
	s.Require().NoError(err)
	byNewest, err := s.svc.Reviews(s.ctx, FilterNewest)
	s.Require().NoError(err)
	s.Equal(byNewest, byDefault)
}

func (s *CommunityFeedSuite) TestMostHelpfulOrdersByRating() {
	feed, err := s.svc.Reviews(s.ctx, FilterMostHelpful)
	s.Require().NoError(err)
	s.Require().Len(feed, 7)

	for i := 1; i < len(feed); i++ {
		s.GreaterOrEqual(feed[i-1].Rating, feed[i].Rating)
	}
}

func (s *CommunityFeedSuite) TestCategoryFilters() {
	taste, err := s.svc.Reviews(s.ctx, "Taste")
	s.Require().NoError(err)
	s.Len(taste, 4)
	for _, r := range taste {
		s.Equal("Taste", r.Category)
	}

	sustainability, err := s.svc.Reviews(s.ctx, "Sustainability")
	s.Require().NoError(err)
	s.Len(sustainability, 3)

	// A valid category no review carries yields an empty feed, not an error.
	packaging, err := s.svc.Reviews(s.ctx, "Packaging")
	s.Require().NoError(err)
	s.Empty(packaging)
}

func (s *CommunityFeedSuite) TestUnknownFilterRejected() {
	_, err := s.svc.Reviews(s.ctx, "Spiciest")
	s.Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeInvalidInput))
}

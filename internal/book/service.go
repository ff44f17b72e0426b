package book

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/errgroup"

	"booksapi/internal/platform/gutendex"
	"booksapi/internal/review"
)

var ErrSearchRequired = errors.New("search string is required")

// Service is the review-aggregation and book-merge pipeline. It combines
// aggregate queries from the local review store with live fetches from the
// external catalog. Both collaborators are injected; the service holds no
// state of its own.
type Service struct {
	catalog CatalogClient
	reviews ReviewStore
}

func NewService(catalog CatalogClient, reviews ReviewStore) *Service {
	return &Service{catalog: catalog, reviews: reviews}
}

// Search forwards a title search to the catalog. The empty search string is
// rejected before any remote call is made.
func (s *Service) Search(ctx context.Context, search string, page int) (*gutendex.SearchResult, error) {
	if search == "" {
		return nil, ErrSearchRequired
	}
	return s.catalog.Search(ctx, search, page)
}

// GetBookWithReview fetches the remote book and the local review aggregate
// concurrently and merges them. The merge is all-or-nothing: if either side
// fails the whole operation fails, even when the other result is already in
// hand. A book with zero reviews merges cleanly with rating 0.0 and an
// empty review list.
func (s *Service) GetBookWithReview(ctx context.Context, bookID int64) (*BookWithReview, error) {
	var (
		avg      *float64
		reviews  []string
		remote   *gutendex.Book
		fetchers errgroup.Group
	)

	fetchers.Go(func() error {
		var err error
		avg, reviews, err = s.reviews.AverageAndReviews(ctx, bookID)
		return err
	})
	fetchers.Go(func() error {
		var err error
		remote, err = s.catalog.GetByID(ctx, bookID)
		return err
	})
	if err := fetchers.Wait(); err != nil {
		return nil, err
	}

	merged := &BookWithReview{
		Book:    *remote,
		BookID:  bookID,
		Rating:  0.0,
		Reviews: reviews,
	}
	if avg != nil {
		merged.Rating = *avg
	}
	if merged.Reviews == nil {
		merged.Reviews = []string{}
	}
	return merged, nil
}

// GetTopRated returns the limit highest-rated books, catalog metadata
// included. The store supplies the descending-average order and the
// precomputed rating/reviews per id; catalog lookups fan out concurrently
// and land in their store-order slot, so the final list stays sorted by
// rating regardless of fetch completion order. One failed lookup aborts the
// whole request.
func (s *Service) GetTopRated(ctx context.Context, limit int) ([]BookWithReview, error) {
	top, err := s.reviews.TopRated(ctx, limit)
	if err != nil {
		return nil, err
	}
	if len(top) == 0 {
		return []BookWithReview{}, nil
	}

	bookIDs := make([]int64, len(top))
	for i, entry := range top {
		bookIDs[i] = entry.BookID
	}
	reviewsByBook, err := s.reviews.ReviewsByBook(ctx, bookIDs)
	if err != nil {
		return nil, err
	}

	remote := make([]*gutendex.Book, len(top))
	var fetchers errgroup.Group
	for i, entry := range top {
		fetchers.Go(func() error {
			b, err := s.catalog.GetByID(ctx, entry.BookID)
			if err != nil {
				return err
			}
			remote[i] = b
			return nil
		})
	}
	if err := fetchers.Wait(); err != nil {
		return nil, err
	}

	merged := make([]BookWithReview, len(top))
	for i, entry := range top {
		reviews := reviewsByBook[entry.BookID]
		if reviews == nil {
			reviews = []string{}
		}
		merged[i] = BookWithReview{
			Book:    *remote[i],
			BookID:  entry.BookID,
			Rating:  entry.Rating,
			Reviews: reviews,
		}
	}
	return merged, nil
}

// GetMonthlyRating is a pure local aggregate: per-month mean ratings with
// month numbers mapped to English month names.
func (s *Service) GetMonthlyRating(ctx context.Context, bookID int64) (*MonthlyRatingList, error) {
	months, err := s.reviews.MonthlyAverage(ctx, bookID)
	if err != nil {
		return nil, err
	}

	ratings := make([]MonthlyRating, 0, len(months))
	for _, m := range months {
		ratings = append(ratings, MonthlyRating{
			Month:  time.Month(m.Month).String(),
			Rating: m.Rating,
		})
	}
	return &MonthlyRatingList{BookID: bookID, Ratings: ratings}, nil
}

// AddReview validates the input, verifies the book exists in the catalog,
// then persists the review. The catalog's not-found response propagates
// as-is when the id is unknown.
func (s *Service) AddReview(ctx context.Context, bookID int64, rating int, text string) (*ReviewReceipt, error) {
	if err := review.Validate(rating, text); err != nil {
		return nil, err
	}
	if _, err := s.catalog.GetByID(ctx, bookID); err != nil {
		return nil, err
	}

	r := &review.Review{BookID: bookID, Rating: rating, Review: text}
	if err := s.reviews.Create(ctx, r); err != nil {
		return nil, err
	}
	return &ReviewReceipt{BookID: r.BookID, Rating: r.Rating, Review: r.Review}, nil
}

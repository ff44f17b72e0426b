package book

import (
	"context"

	"booksapi/internal/platform/gutendex"
	"booksapi/internal/review"
)

// CatalogClient is the external book catalog at its boundary: paginated
// title search plus single-book lookup.
type CatalogClient interface {
	Search(ctx context.Context, search string, page int) (*gutendex.SearchResult, error)
	GetByID(ctx context.Context, bookID int64) (*gutendex.Book, error)
}

// ReviewStore persists reviews and answers the aggregate queries the
// pipeline merges with catalog data.
type ReviewStore interface {
	Create(ctx context.Context, r *review.Review) error
	AverageAndReviews(ctx context.Context, bookID int64) (*float64, []string, error)
	TopRated(ctx context.Context, limit int) ([]review.BookAverage, error)
	ReviewsByBook(ctx context.Context, bookIDs []int64) (map[int64][]string, error)
	MonthlyAverage(ctx context.Context, bookID int64) ([]review.MonthAverage, error)
}

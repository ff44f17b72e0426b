package book

import (
	"booksapi/internal/platform/gutendex"
)

// BookWithReview is the merged view of an external catalog book and the
// local review aggregate for it: the remote payload extended with book_id,
// the mean rating (0.0 with no reviews) and the review texts.
type BookWithReview struct {
	gutendex.Book
	BookID  int64    `json:"book_id"`
	Rating  float64  `json:"rating"`
	Reviews []string `json:"reviews"`
}

type MonthlyRating struct {
	Month  string  `json:"month"`
	Rating float64 `json:"rating"`
}

// MonthlyRatingList holds one entry per calendar month that has at least one
// review, ordered by month number.
type MonthlyRatingList struct {
	BookID  int64           `json:"book_id"`
	Ratings []MonthlyRating `json:"ratings"`
}

// ReviewReceipt is the response body for a stored review.
type ReviewReceipt struct {
	BookID int64  `json:"book_id"`
	Rating int    `json:"rating"`
	Review string `json:"review"`
}

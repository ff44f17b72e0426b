package review

import (
	"errors"
	"time"
	"unicode/utf8"
)

// Review is a locally stored rating and text tied to an external book id.
// Reviews are append-only: once written they are never updated or deleted.
type Review struct {
	ID        int64     `json:"id"`
	BookID    int64     `json:"book_id"`
	Rating    int       `json:"rating"`
	Review    string    `json:"review"`
	CreatedAt time.Time `json:"created_at"`
}

// BookAverage is one row of the top-rated aggregate: a book id and the mean
// of all its ratings.
type BookAverage struct {
	BookID int64
	Rating float64
}

// MonthAverage is the mean rating for one calendar month (1-12). Months
// without reviews are absent, not zero-filled.
type MonthAverage struct {
	Month  int
	Rating float64
}

var (
	ErrRatingOutOfRange = errors.New("rating must be between 0 and 5")
	ErrReviewLength     = errors.New("review must be between 1 and 500 characters")
)

const maxReviewLen = 500

// Validate checks the write-time invariants. Anything that fails here is a
// client input error and must be rejected before a row is written.
func Validate(rating int, text string) error {
	if rating < 0 || rating > 5 {
		return ErrRatingOutOfRange
	}
	// Length is measured in characters, matching the varchar(500) column.
	if n := utf8.RuneCountInString(text); n < 1 || n > maxReviewLen {
		return ErrReviewLength
	}
	return nil
}

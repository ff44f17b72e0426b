package review

import (
	"context"
	"database/sql"

	"github.com/jackc/pgx/v5"
)

// DB is the slice of pgxpool.Pool the repo needs. pgxmock satisfies it too,
// which keeps the aggregate queries testable without a live database.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PostgresRepo struct {
	db DB
}

func NewPostgresRepo(db DB) *PostgresRepo {
	return &PostgresRepo{db: db}
}

// Create persists a new review and fills in the generated id and timestamp.
// The write is atomic: either the whole row lands or nothing does.
func (repo *PostgresRepo) Create(ctx context.Context, r *Review) error {
	if err := Validate(r.Rating, r.Review); err != nil {
		return err
	}
	insertSQL := `
		INSERT INTO book_reviews (book_id, rating, review)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	return repo.db.QueryRow(ctx, insertSQL, r.BookID, r.Rating, r.Review).Scan(&r.ID, &r.CreatedAt)
}

// AverageAndReviews returns the mean rating for a book together with all its
// review texts in insertion order. The average is nil when the book has no
// reviews.
func (repo *PostgresRepo) AverageAndReviews(ctx context.Context, bookID int64) (*float64, []string, error) {
	avgSQL := `SELECT AVG(rating)::FLOAT8 FROM book_reviews WHERE book_id = $1`
	var average sql.NullFloat64
	if err := repo.db.QueryRow(ctx, avgSQL, bookID).Scan(&average); err != nil {
		return nil, nil, err
	}

	reviewsSQL := `SELECT review FROM book_reviews WHERE book_id = $1 ORDER BY id`
	rows, err := repo.db.Query(ctx, reviewsSQL, bookID)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	var reviews []string
	for rows.Next() {
		var text string
		if err := rows.Scan(&text); err != nil {
			return nil, nil, err
		}
		reviews = append(reviews, text)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}

	if !average.Valid {
		return nil, reviews, nil
	}
	return &average.Float64, reviews, nil
}

// TopRated returns up to limit book ids ordered by descending mean rating.
func (repo *PostgresRepo) TopRated(ctx context.Context, limit int) ([]BookAverage, error) {
	topSQL := `
		SELECT book_id, AVG(rating)::FLOAT8 AS avg_rating
		FROM book_reviews
		GROUP BY book_id
		ORDER BY avg_rating DESC
		LIMIT $1
	`
	rows, err := repo.db.Query(ctx, topSQL, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var top []BookAverage
	for rows.Next() {
		var entry BookAverage
		if err := rows.Scan(&entry.BookID, &entry.Rating); err != nil {
			return nil, err
		}
		top = append(top, entry)
	}
	return top, rows.Err()
}

// ReviewsByBook fetches the review texts for every given book id in one
// query, keyed by book id, each list in insertion order.
func (repo *PostgresRepo) ReviewsByBook(ctx context.Context, bookIDs []int64) (map[int64][]string, error) {
	reviewsSQL := `SELECT book_id, review FROM book_reviews WHERE book_id = ANY($1) ORDER BY id`
	rows, err := repo.db.Query(ctx, reviewsSQL, bookIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := make(map[int64][]string, len(bookIDs))
	for rows.Next() {
		var bookID int64
		var text string
		if err := rows.Scan(&bookID, &text); err != nil {
			return nil, err
		}
		reviews[bookID] = append(reviews[bookID], text)
	}
	return reviews, rows.Err()
}

// MonthlyAverage returns the mean rating per calendar month for one book,
// ordered by month number ascending.
func (repo *PostgresRepo) MonthlyAverage(ctx context.Context, bookID int64) ([]MonthAverage, error) {
	monthlySQL := `
		SELECT EXTRACT(MONTH FROM created_at)::INT AS month, AVG(rating)::FLOAT8
		FROM book_reviews
		WHERE book_id = $1
		GROUP BY month
		ORDER BY month
	`
	rows, err := repo.db.Query(ctx, monthlySQL, bookID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var months []MonthAverage
	for rows.Next() {
		var entry MonthAverage
		if err := rows.Scan(&entry.Month, &entry.Rating); err != nil {
			return nil, err
		}
		months = append(months, entry)
	}
	return months, rows.Err()
}

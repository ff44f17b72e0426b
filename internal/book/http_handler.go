package book

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"booksapi/internal/httpx"
	"booksapi/internal/platform/gutendex"
	"booksapi/internal/review"
)

type HTTPHandler struct {
	svc *Service
}

func NewHTTPHandler(svc *Service) *HTTPHandler {
	return &HTTPHandler{svc: svc}
}

// Search handles GET /books?search=<str>&page=<int>
func (h *HTTPHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	page := 0
	if raw := query.Get("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			httpx.JSONError(w, r, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid input", []httpx.ErrorDetail{
				{Field: "page", Message: "page must be an integer greater than or equal to 1"},
			})
			return
		}
		page = parsed
	}

	result, err := h.svc.Search(r.Context(), query.Get("search"), page)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, result)
}

// TopRated handles GET /books/top-rated?limit=<int>
func (h *HTTPHandler) TopRated(w http.ResponseWriter, r *http.Request) {
	limit := 10
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			httpx.JSONError(w, r, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid input", []httpx.ErrorDetail{
				{Field: "limit", Message: "limit must be an integer greater than or equal to 1"},
			})
			return
		}
		limit = parsed
	}

	books, err := h.svc.GetTopRated(r.Context(), limit)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string][]BookWithReview{"books": books})
}

// GetBook handles GET /books/{book_id}
func (h *HTTPHandler) GetBook(w http.ResponseWriter, r *http.Request) {
	bookID, ok := h.bookIDFrom(w, r)
	if !ok {
		return
	}

	merged, err := h.svc.GetBookWithReview(r.Context(), bookID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, merged)
}

// MonthlyRating handles GET /books/{book_id}/monthly-rating
func (h *HTTPHandler) MonthlyRating(w http.ResponseWriter, r *http.Request) {
	bookID, ok := h.bookIDFrom(w, r)
	if !ok {
		return
	}

	ratings, err := h.svc.GetMonthlyRating(r.Context(), bookID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, ratings)
}

type createReviewReq struct {
	Review *string `json:"review" validate:"required,min=1,max=500"`
	Rating *int    `json:"rating" validate:"required,gte=0,lte=5"`
}

// CreateReview handles POST /books/{book_id}/review
func (h *HTTPHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	bookID, ok := h.bookIDFrom(w, r)
	if !ok {
		return
	}

	var req createReviewReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}

	if details := httpx.ValidateStruct(req); len(details) > 0 {
		httpx.JSONError(w, r, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	receipt, err := h.svc.AddReview(r.Context(), bookID, *req.Rating, *req.Review)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, receipt)
}

func (h *HTTPHandler) bookIDFrom(w http.ResponseWriter, r *http.Request) (int64, bool) {
	bookID, err := strconv.ParseInt(r.PathValue("book_id"), 10, 64)
	if err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "book_id must be an integer", nil)
		return 0, false
	}
	return bookID, true
}

func (h *HTTPHandler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	var remoteErr *gutendex.RemoteError
	switch {
	case errors.Is(err, ErrSearchRequired):
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Search string is required", nil)
	case errors.Is(err, review.ErrRatingOutOfRange):
		httpx.JSONError(w, r, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid input", []httpx.ErrorDetail{
			{Field: "rating", Message: review.ErrRatingOutOfRange.Error()},
		})
	case errors.Is(err, review.ErrReviewLength):
		httpx.JSONError(w, r, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid input", []httpx.ErrorDetail{
			{Field: "review", Message: review.ErrReviewLength.Error()},
		})
	case errors.As(err, &remoteErr):
		// Remote dependency errors pass through verbatim: status and body.
		httpx.Passthrough(w, remoteErr.StatusCode, remoteErr.Body)
	default:
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
	}
}

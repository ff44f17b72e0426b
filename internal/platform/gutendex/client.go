package gutendex

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// Client talks to the Gutendex book catalog. It is stateless: every call is
// a live round-trip, and remote failures are surfaced verbatim as
// *RemoteError without retrying.
type Client struct {
	httpClient *http.Client
	userAgent  string

	// externalURL is the remote books endpoint including its path and
	// trailing slash, e.g. "https://gutendex.com/books/".
	externalURL string

	// publicURL is this service's own base URL. Pagination links returned
	// by Search have externalURL replaced with publicURL + "/books" so
	// clients keep paging through us instead of the remote.
	publicURL string

	limiter *rate.Limiter
}

func NewClient(externalURL, publicURL, userAgent string, rps int) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		userAgent:   userAgent,
		externalURL: externalURL,
		publicURL:   strings.TrimRight(publicURL, "/"),
		limiter:     rate.NewLimiter(rate.Every(time.Second/time.Duration(rps)), 1),
	}
}

// Author matches the authors entries of a Gutendex book payload.
type Author struct {
	Name      string `json:"name"`
	BirthYear *int   `json:"birth_year"`
	DeathYear *int   `json:"death_year"`
}

// Book matches a Gutendex book payload, trimmed to the fields this API
// exposes.
type Book struct {
	ID            int64    `json:"id"`
	Title         string   `json:"title"`
	Authors       []Author `json:"authors"`
	Languages     []string `json:"languages"`
	DownloadCount int      `json:"download_count"`
}

// SearchResult is one page of catalog search results. The remote's result
// list surfaces as "books"; next/previous are rewritten to point at this
// service.
type SearchResult struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Books    []Book  `json:"books"`
}

// searchPage is the wire shape of the remote search endpoint.
type searchPage struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []Book  `json:"results"`
}

// RemoteError carries a non-success catalog response. Status code and body
// are preserved verbatim so callers can pass them through.
type RemoteError struct {
	StatusCode int
	Body       []byte
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("gutendex: remote returned status %d", e.StatusCode)
}

// Search fetches one page of title search results. A page of 0 means the
// remote's first page.
func (c *Client) Search(ctx context.Context, search string, page int) (*SearchResult, error) {
	params := url.Values{}
	params.Set("search", search)
	if page > 0 {
		params.Set("page", strconv.Itoa(page))
	}

	var remote searchPage
	if err := c.get(ctx, c.externalURL+"?"+params.Encode(), &remote); err != nil {
		return nil, err
	}

	result := &SearchResult{
		Count:    remote.Count,
		Next:     c.rewriteLink(remote.Next),
		Previous: c.rewriteLink(remote.Previous),
		Books:    remote.Results,
	}
	if result.Books == nil {
		result.Books = []Book{}
	}
	return result, nil
}

// GetByID fetches a single book by its catalog id. A remote 404 comes back
// as a *RemoteError carrying the remote's own not-found body.
func (c *Client) GetByID(ctx context.Context, bookID int64) (*Book, error) {
	var book Book
	if err := c.get(ctx, c.externalURL+strconv.FormatInt(bookID, 10), &book); err != nil {
		return nil, err
	}
	return &book, nil
}

// rewriteLink substitutes the remote base with this service's search path,
// leaving the query string untouched.
func (c *Client) rewriteLink(link *string) *string {
	if link == nil {
		return nil
	}
	rewritten := strings.Replace(*link, c.externalURL, c.publicURL+"/books", 1)
	return &rewritten
}

func (c *Client) get(ctx context.Context, u string, target interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return &RemoteError{StatusCode: resp.StatusCode, Body: body}
	}

	return json.NewDecoder(resp.Body).Decode(target)
}

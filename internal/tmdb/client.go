// Package tmdb is a small client for the public movie metadata API.  It
// covers the four endpoints the app needs: upcoming movies, movie details,
// movie videos and movie images.
package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/iliyamo/cinema-showcase/internal/model"
)

const (
	DefaultBaseURL      = "https://api.themoviedb.org/3"
	DefaultImageBaseURL = "https://image.tmdb.org/t/p"

	defaultTimeout     = 12 * time.Second
	defaultMaxAttempts = 3
	defaultRetryBase   = 200 * time.Millisecond
	defaultRetryCap    = 1200 * time.Millisecond
)

// Client wraps HTTP access to the movie metadata API.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	apiKey      string
	maxAttempts int
	retryBase   time.Duration
	retryCap    time.Duration
}

// APIError is returned when the API responds with a non-2xx status.
type APIError struct {
	StatusCode int
	Status     string
	Endpoint   string
	Body       string
}

func (e *APIError) Error() string {
	if e == nil {
		return "tmdb api error"
	}
	return fmt.Sprintf("tmdb api error: %s: %s", e.Status, e.Body)
}

// IsNotFound reports whether the error represents a 404 from the API.
func IsNotFound(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusNotFound
	}
	return false
}

// ErrInvalidMovieID is returned for non-positive movie identifiers.
var ErrInvalidMovieID = errors.New("invalid movie id")

// NewClient creates a client for apiKey.  An empty baseURL selects
// DefaultBaseURL; a nil httpClient selects a client with a 12s timeout.
func NewClient(httpClient *http.Client, baseURL, apiKey string) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient:  httpClient,
		baseURL:     strings.TrimRight(baseURL, "/"),
		apiKey:      apiKey,
		maxAttempts: defaultMaxAttempts,
		retryBase:   defaultRetryBase,
		retryCap:    defaultRetryCap,
	}
}

// UpcomingMovies fetches one page of upcoming movies.  Pages start at 1;
// smaller values are treated as 1.
func (c *Client) UpcomingMovies(ctx context.Context, page int) (model.UpcomingMoviesResponse, error) {
	if page < 1 {
		page = 1
	}
	var out model.UpcomingMoviesResponse
	q := url.Values{"page": []string{strconv.Itoa(page)}}
	if err := c.getJSON(ctx, c.endpoint("/movie/upcoming", q), &out); err != nil {
		return model.UpcomingMoviesResponse{}, err
	}
	return out, nil
}

// MovieDetails fetches the full record of a single movie.
func (c *Client) MovieDetails(ctx context.Context, movieID int64) (model.MovieDetails, error) {
	if movieID <= 0 {
		return model.MovieDetails{}, ErrInvalidMovieID
	}
	var out model.MovieDetails
	if err := c.getJSON(ctx, c.endpoint(fmt.Sprintf("/movie/%d", movieID), nil), &out); err != nil {
		return model.MovieDetails{}, err
	}
	return out, nil
}

// MovieVideos fetches the videos (trailers, teasers, clips) of a movie.
func (c *Client) MovieVideos(ctx context.Context, movieID int64) (model.MovieVideosResponse, error) {
	if movieID <= 0 {
		return model.MovieVideosResponse{}, ErrInvalidMovieID
	}
	var out model.MovieVideosResponse
	if err := c.getJSON(ctx, c.endpoint(fmt.Sprintf("/movie/%d/videos", movieID), nil), &out); err != nil {
		return model.MovieVideosResponse{}, err
	}
	return out, nil
}

// MovieImages fetches the backdrops, posters and logos of a movie.
func (c *Client) MovieImages(ctx context.Context, movieID int64) (model.MovieImages, error) {
	if movieID <= 0 {
		return model.MovieImages{}, ErrInvalidMovieID
	}
	var out model.MovieImages
	if err := c.getJSON(ctx, c.endpoint(fmt.Sprintf("/movie/%d/images", movieID), nil), &out); err != nil {
		return model.MovieImages{}, err
	}
	return out, nil
}

// FindTrailer returns the first video of type "Trailer".
func FindTrailer(videos []model.MovieVideo) (model.MovieVideo, bool) {
	for _, v := range videos {
		if v.Type == "Trailer" {
			return v, true
		}
	}
	return model.MovieVideo{}, false
}

func (c *Client) endpoint(path string, q url.Values) string {
	if q == nil {
		q = url.Values{}
	}
	q.Set("api_key", c.apiKey)
	return c.baseURL + path + "?" + q.Encode()
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	maxAttempts := c.maxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return fmt.Errorf("create request: %w", err)
		}
		req.Header.Set("Accept", "application/json")
		req.Header.Set("Content-Type", "application/json")

		res, err := c.httpClient.Do(req)
		if err != nil {
			if c.shouldRetryNetworkError(err) && attempt < maxAttempts {
				if waitErr := c.waitRetry(ctx, attempt); waitErr != nil {
					return waitErr
				}
				continue
			}
			return fmt.Errorf("request failed: %w", err)
		}

		if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
			snippet, _ := io.ReadAll(io.LimitReader(res.Body, 8<<10))
			_ = res.Body.Close()

			apiErr := &APIError{
				StatusCode: res.StatusCode,
				Status:     res.Status,
				Endpoint:   redactKey(endpoint),
				Body:       strings.TrimSpace(string(snippet)),
			}
			if c.shouldRetryStatus(res.StatusCode) && attempt < maxAttempts {
				if waitErr := c.waitRetry(ctx, attempt); waitErr != nil {
					return waitErr
				}
				continue
			}
			return apiErr
		}

		err = json.NewDecoder(res.Body).Decode(out)
		_ = res.Body.Close()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("decode response from %s: %w", redactKey(endpoint), err)
		}
		return nil
	}

	return errors.New("request failed after retries")
}

func (c *Client) shouldRetryStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func (c *Client) shouldRetryNetworkError(err error) bool {
	if err == nil {
		return false
	}
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

func (c *Client) waitRetry(ctx context.Context, attempt int) error {
	timer := time.NewTimer(c.retryDelay(attempt))
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// retryDelay doubles retryBase per attempt and never exceeds retryCap.
func (c *Client) retryDelay(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	base := c.retryBase
	if base <= 0 {
		base = defaultRetryBase
	}
	limit := c.retryCap
	if limit <= 0 {
		limit = defaultRetryCap
	}

	delay := base
	for i := 1; i < attempt; i++ {
		if delay >= limit/2 {
			return limit
		}
		delay *= 2
	}
	if delay > limit {
		return limit
	}
	return delay
}

// redactKey strips the api_key parameter so endpoints can be logged.
func redactKey(endpoint string) string {
	u, err := url.Parse(endpoint)
	if err != nil {
		return endpoint
	}
	q := u.Query()
	if q.Has("api_key") {
		q.Set("api_key", "REDACTED")
		u.RawQuery = q.Encode()
	}
	return u.String()
}

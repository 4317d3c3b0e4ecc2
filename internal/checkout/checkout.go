// Package checkout implements the mock seat-selection to payment flow.  A
// quote prices a set of seats and is handed back to the client as a signed
// token; completing the quote emits an event.  No money moves, no seat is
// held and nothing is persisted.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/oklog/ulid/v2"

	"github.com/iliyamo/cinema-showcase/internal/catalog"
	"github.com/iliyamo/cinema-showcase/internal/layout"
	"github.com/iliyamo/cinema-showcase/internal/queue"
	"github.com/iliyamo/cinema-showcase/internal/seatmap"
)

var (
	ErrNoSeats         = errors.New("no seats selected")
	ErrDuplicateSeat   = errors.New("seat selected twice")
	ErrSeatNotFound    = errors.New("seat not found")
	ErrSeatUnavailable = errors.New("seat not available")
	ErrUnknownShowtime = errors.New("unknown date or showtime")
	ErrInvalidQuote    = errors.New("invalid quote")
	ErrQuoteExpired    = errors.New("quote expired")
)

const tokenSubject = "checkout-quote"

// DefaultTheaterAlias is the theater id that resolves to the configured
// default theater.
const DefaultTheaterAlias = "default"

// EventPublisher delivers completion events.  The RabbitMQ publisher
// satisfies it.
type EventPublisher interface {
	PublishCheckoutCompleted(ctx context.Context, event queue.CheckoutCompletedEvent) error
}

// QuoteRequest is the body of a quote call.
type QuoteRequest struct {
	MovieID    int64    `json:"movie_id" validate:"required,gt=0"`
	MovieTitle string   `json:"movie_title" validate:"required,max=255"`
	TheaterID  string   `json:"theater_id" validate:"required,max=64"`
	Date       string   `json:"date" validate:"required"`
	Showtime   string   `json:"showtime" validate:"required"`
	SeatIDs    []string `json:"seat_ids" validate:"max=10,dive,required"`
}

// QuotedSeat is one priced seat of a quote.
type QuotedSeat struct {
	ID     string         `json:"id"`
	Label  string         `json:"label"`
	Status seatmap.Status `json:"status"`
	Price  float64        `json:"price"`
}

// Quote is the priced selection.  Token carries the whole quote signed with
// the service secret and is the only thing Complete accepts.
type Quote struct {
	Reference   string       `json:"reference"`
	MovieID     int64        `json:"movie_id"`
	MovieTitle  string       `json:"movie_title"`
	TheaterID   string       `json:"theater_id"`
	TheaterName string       `json:"theater_name"`
	Date        string       `json:"date"`
	Showtime    string       `json:"showtime"`
	Seats       []QuotedSeat `json:"seats"`
	Total       float64      `json:"total"`
	ExpiresAt   time.Time    `json:"expires_at"`
	Token       string       `json:"token,omitempty"`
}

// Receipt is returned by Complete.  Published is false when the event
// could not be delivered; the checkout itself still succeeds.
type Receipt struct {
	Reference   string    `json:"reference"`
	MovieTitle  string    `json:"movie_title"`
	TheaterName string    `json:"theater_name"`
	Date        string    `json:"date"`
	Showtime    string    `json:"showtime"`
	Seats       []string  `json:"seats"`
	Total       float64   `json:"total"`
	CompletedAt time.Time `json:"completed_at"`
	Published   bool      `json:"published"`
}

type quoteClaims struct {
	Quote Quote `json:"quote"`
	jwt.RegisteredClaims
}

// Service prices seat selections against theater layouts.
type Service struct {
	layouts   layout.Source
	publisher EventPublisher
	secret    []byte
	ttl       time.Duration
	validate  *validator.Validate
	now       func() time.Time

	defaultTheater string
}

// NewService wires a Service.  publisher may be nil, in which case
// completions are not broadcast.  A non-positive ttl defaults to 15 minutes.
func NewService(layouts layout.Source, publisher EventPublisher, secret string, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &Service{
		layouts:   layouts,
		publisher: publisher,
		secret:    []byte(secret),
		ttl:       ttl,
		validate:  validator.New(),
		now:       time.Now,
	}
}

// WithDefaultTheater sets the theater the "default" alias resolves to.
func (s *Service) WithDefaultTheater(id string) *Service {
	s.defaultTheater = id
	return s
}

// Quote validates the request, prices the seats and signs the result.
// Validation failures are returned as validator.ValidationErrors.
func (s *Service) Quote(ctx context.Context, req QuoteRequest) (Quote, error) {
	if err := s.validate.Struct(req); err != nil {
		return Quote{}, err
	}
	if len(req.SeatIDs) == 0 {
		return Quote{}, ErrNoSeats
	}
	if !catalog.IsBookingDate(req.Date) {
		return Quote{}, fmt.Errorf("%w: date %q", ErrUnknownShowtime, req.Date)
	}
	slot, ok := catalog.FindShowtime(req.Showtime)
	if !ok {
		return Quote{}, fmt.Errorf("%w: showtime %q", ErrUnknownShowtime, req.Showtime)
	}

	theaterID := req.TheaterID
	if theaterID == DefaultTheaterAlias && s.defaultTheater != "" {
		theaterID = s.defaultTheater
	}
	theater, err := s.layouts.Get(ctx, theaterID)
	if err != nil {
		return Quote{}, err
	}
	if slot.TheaterID != theater.ID {
		return Quote{}, fmt.Errorf("%w: showtime %q is not played in theater %q", ErrUnknownShowtime, req.Showtime, theater.ID)
	}
	seats, total, err := priceSeats(theater.Grid(), req.SeatIDs)
	if err != nil {
		return Quote{}, err
	}

	now := s.now().UTC()
	q := Quote{
		Reference:   ulid.Make().String(),
		MovieID:     req.MovieID,
		MovieTitle:  req.MovieTitle,
		TheaterID:   theater.ID,
		TheaterName: theater.Name,
		Date:        req.Date,
		Showtime:    req.Showtime,
		Seats:       seats,
		Total:       total,
		ExpiresAt:   now.Add(s.ttl).Truncate(time.Second),
	}
	token, err := s.sign(q, now)
	if err != nil {
		return Quote{}, fmt.Errorf("sign quote: %w", err)
	}
	q.Token = token
	return q, nil
}

// Complete verifies a quote token and emits the completion event.  The
// same token may be completed more than once; there is no stored state to
// guard against it.
func (s *Service) Complete(ctx context.Context, token string) (Receipt, error) {
	q, err := s.parse(token)
	if err != nil {
		return Receipt{}, err
	}

	labels := make([]string, 0, len(q.Seats))
	ids := make([]string, 0, len(q.Seats))
	for _, seat := range q.Seats {
		labels = append(labels, seat.Label)
		ids = append(ids, seat.ID)
	}
	r := Receipt{
		Reference:   q.Reference,
		MovieTitle:  q.MovieTitle,
		TheaterName: q.TheaterName,
		Date:        q.Date,
		Showtime:    q.Showtime,
		Seats:       labels,
		Total:       q.Total,
		CompletedAt: s.now().UTC(),
	}

	if s.publisher != nil {
		ev := queue.CheckoutCompletedEvent{
			Reference:   q.Reference,
			MovieID:     q.MovieID,
			MovieTitle:  q.MovieTitle,
			TheaterID:   q.TheaterID,
			TheaterName: q.TheaterName,
			Date:        q.Date,
			Showtime:    q.Showtime,
			SeatIDs:     ids,
			SeatLabels:  labels,
			Total:       q.Total,
			CompletedAt: r.CompletedAt.Format(time.RFC3339),
		}
		if err := s.publisher.PublishCheckoutCompleted(ctx, ev); err != nil {
			log.Printf("checkout: publish %s failed: %v", q.Reference, err)
		} else {
			r.Published = true
		}
	}
	return r, nil
}

func priceSeats(grid [][]seatmap.Seat, ids []string) ([]QuotedSeat, float64, error) {
	seen := make(map[string]bool, len(ids))
	out := make([]QuotedSeat, 0, len(ids))
	var total float64
	for _, id := range ids {
		if seen[id] {
			return nil, 0, fmt.Errorf("%w: %s", ErrDuplicateSeat, id)
		}
		seen[id] = true

		seat, ok := seatmap.Find(grid, id)
		if !ok || seat.IsGap() {
			return nil, 0, fmt.Errorf("%w: %s", ErrSeatNotFound, id)
		}
		if !seat.Selectable() {
			return nil, 0, fmt.Errorf("%w: %s", ErrSeatUnavailable, id)
		}
		out = append(out, QuotedSeat{ID: seat.ID, Label: seat.Label(), Status: seat.Status, Price: seat.Price})
		total += seat.Price
	}
	return out, total, nil
}

func (s *Service) sign(q Quote, now time.Time) (string, error) {
	claims := quoteClaims{
		Quote: q,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        q.Reference,
			Subject:   tokenSubject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(q.ExpiresAt),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *Service) parse(raw string) (Quote, error) {
	var claims quoteClaims
	tok, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithSubject(tokenSubject),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Quote{}, ErrQuoteExpired
		}
		return Quote{}, fmt.Errorf("%w: %v", ErrInvalidQuote, err)
	}
	if !tok.Valid || claims.Quote.Reference == "" || claims.Quote.Reference != claims.ID {
		return Quote{}, ErrInvalidQuote
	}
	return claims.Quote, nil
}

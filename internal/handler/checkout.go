package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/cinema-showcase/internal/checkout"
	"github.com/iliyamo/cinema-showcase/internal/seatmap"
)

// CheckoutHandler exposes the mock payment flow.
type CheckoutHandler struct {
	Service *checkout.Service
}

type completeRequest struct {
	Token string `json:"token"`
}

// Quote handles POST /v1/checkout/quote.
func (h *CheckoutHandler) Quote(c echo.Context) error {
	var req checkout.QuoteRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid json")
	}
	q, err := h.Service.Quote(c.Request().Context(), req)
	if err != nil {
		return checkoutError(c, err)
	}
	return c.JSON(http.StatusOK, q)
}

// Complete handles POST /v1/checkout/complete.  Nothing is charged; the
// receipt only echoes the signed quote.
func (h *CheckoutHandler) Complete(c echo.Context) error {
	var req completeRequest
	if err := c.Bind(&req); err != nil || req.Token == "" {
		return errorJSON(c, http.StatusBadRequest, "token is required")
	}
	r, err := h.Service.Complete(c.Request().Context(), req.Token)
	if err != nil {
		return checkoutError(c, err)
	}
	return c.JSON(http.StatusOK, r)
}

func checkoutError(c echo.Context, err error) error {
	if ok, werr := validationJSON(c, err); ok {
		return werr
	}
	switch {
	case errors.Is(err, checkout.ErrNoSeats),
		errors.Is(err, checkout.ErrDuplicateSeat),
		errors.Is(err, checkout.ErrUnknownShowtime),
		errors.Is(err, checkout.ErrInvalidQuote):
		return errorJSON(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, checkout.ErrSeatNotFound),
		errors.Is(err, seatmap.ErrTheaterNotFound):
		return errorJSON(c, http.StatusNotFound, err.Error())
	case errors.Is(err, checkout.ErrSeatUnavailable):
		return errorJSON(c, http.StatusConflict, err.Error())
	case errors.Is(err, checkout.ErrQuoteExpired):
		return errorJSON(c, http.StatusGone, err.Error())
	}
	log.Printf("checkout: %v", err)
	return errorJSON(c, http.StatusInternalServerError, "checkout failed")
}

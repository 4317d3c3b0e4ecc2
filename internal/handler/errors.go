package handler

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// errorJSON writes the common {"error": msg} body.
func errorJSON(c echo.Context, code int, msg string) error {
	return c.JSON(code, echo.Map{"error": msg})
}

// validationJSON reports struct validation failures as a 400 with one
// entry per offending field, keyed by field name and valued by the tag
// that failed.  Returns false when err is not a validation error.
func validationJSON(c echo.Context, err error) (bool, error) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return false, nil
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fe.Tag()
	}
	return true, c.JSON(http.StatusBadRequest, echo.Map{
		"error":  "validation failed",
		"fields": fields,
	})
}

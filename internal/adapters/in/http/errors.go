package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"oja/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

var errInvalidBody = echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")

// StatusFor maps the core error taxonomy onto HTTP status codes.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errs.IsValidation(err):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrInsufficientFunds):
		return http.StatusPaymentRequired
	case errors.Is(err, errs.ErrOutOfStock),
		errors.Is(err, errs.ErrAlreadyAccepted),
		errors.Is(err, errs.ErrInvalidTransition):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// NewErrorHandler renders every error as an Error body. Unexpected errors are
// logged and their details are not sent to the client.
func NewErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, message := describe(err)
		if code >= http.StatusInternalServerError {
			logger.ErrorContext(c.Request().Context(), "Request failed",
				"method", c.Request().Method,
				"path", c.Path(),
				"error", err,
			)
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(code)
		} else {
			writeErr = c.JSON(code, Error{Code: code, Message: message})
		}
		if writeErr != nil {
			logger.ErrorContext(c.Request().Context(), "Failed to write error response", "error", writeErr)
		}
	}
}

func describe(err error) (int, string) {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code, fmt.Sprint(httpErr.Message)
	}

	code := StatusFor(err)
	if code == http.StatusInternalServerError {
		return code, http.StatusText(code)
	}
	return code, err.Error()
}

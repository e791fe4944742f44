package http

import (
	"errors"
	"fmt"
	"net/http"

	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusFor maps an error kind to its HTTP status. Unknown errors are internal.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrValidation), errors.Is(err, errs.ErrStatusIsInvalid):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ports.ErrInvalidCode):
		return http.StatusUnauthorized
	case errors.Is(err, ports.ErrEventHistoryDisabled):
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err as an Error body. Internal errors are logged and replaced by a
// generic message; everything else is the caller's fault and is reported as is.
func (s *Server) respondError(ctx echo.Context, err error, internalMessage string) error {
	code := statusFor(err)
	message := err.Error()
	if code == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), internalMessage,
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err,
		)
		message = internalMessage
	}

	return ctx.JSON(code, Error{
		Code:    code,
		Message: message,
	})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// handleHTTPError renders errors that escape handlers (routing misses, bad path parameters,
// recovered panics) with the same Error body handlers use.
func (s *Server) handleHTTPError(err error, ctx echo.Context) {
	if ctx.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := http.StatusText(code)

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		code = httpErr.Code
		message = fmt.Sprint(httpErr.Message)
	} else {
		s.logger.ErrorContext(ctx.Request().Context(), "Unhandled error", "path", ctx.Path(), "error", err)
	}

	if ctx.Request().Method == http.MethodHead {
		err = ctx.NoContent(code)
	} else {
		err = ctx.JSON(code, Error{Code: code, Message: message})
	}
	if err != nil {
		s.logger.ErrorContext(ctx.Request().Context(), "Failed to write error response", "error", err)
	}
}

package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequestOTP handles POST /api/otp/request. In demo mode the code comes back in the
// response instead of an SMS.
func (s *Server) RequestOTP(ctx echo.Context) error {
	var body OTPRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	code, err := s.verifier.RequestCode(ctx.Request().Context(), body.Phone)
	if err != nil {
		return s.respondError(ctx, err, "Failed to issue code")
	}

	return ctx.JSON(http.StatusOK, OTPRequested{
		Ok:      true,
		Code:    code,
		Message: "OTP sent (demo)",
	})
}

// VerifyOTP handles POST /api/otp/verify.
func (s *Server) VerifyOTP(ctx echo.Context) error {
	var body OTPVerify
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	identity, err := s.verifier.Verify(ctx.Request().Context(), body.Phone, body.Code, body.Name, body.Role)
	if err != nil {
		return s.respondError(ctx, err, "Failed to verify code")
	}

	return ctx.JSON(http.StatusOK, OTPVerified{
		Token: identity.Token,
		User:  toUser(identity),
	})
}

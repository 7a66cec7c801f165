package httpgin

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/soft-boni/admin-panel-venue-proximity/internal/auth"
	"github.com/soft-boni/admin-panel-venue-proximity/internal/service"
)

// respondStatus answers a sign-in step. Validation failures keep the flow
// status in the body next to the message.
func respondStatus(c *gin.Context, resp SignInResponse, err error) {
	var verr *auth.ValidationError
	if errors.As(err, &verr) {
		resp.Error = verr.Message
		c.JSON(http.StatusUnauthorized, resp)
		return
	}

	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary  Submit email and password
// @Description Opens a session when the request carries no valid bearer token.
// @Tags     auth
// @Param    req body  CredentialsRequest true "credentials"
// @Success  200 {object} SignInResponse
// @Failure  401 {object} SignInResponse "Invalid email or password."
// @Failure  409 {object} ErrorResponse
// @Router   /auth/credentials [post]
func handleSubmitCredentials(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CredentialsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		var resp SignInResponse

		sid, err := svcs.SignIn.Resolve(bearerToken(c))
		if err != nil {
			var token string
			var exp time.Time
			sid, token, exp, err = svcs.SignIn.Start()
			if err != nil {
				respondErr(c, err)
				return
			}
			resp.Token, resp.ExpiresAt = token, &exp
		}
		c.Set(ctxSessionID, sid)

		st, err := svcs.SignIn.SubmitCredentials(c.Request.Context(), sid, req.Email, req.Password)
		resp.Status = st
		respondStatus(c, resp, err)
	}
}

// @Summary  Submit the two-factor code
// @Tags     auth
// @Security Bearer
// @Param    req body  SecondFactorRequest true "code"
// @Success  200 {object} SignInResponse
// @Failure  401 {object} SignInResponse "Invalid two-factor authentication code."
// @Failure  409 {object} ErrorResponse
// @Router   /auth/second-factor [post]
func handleSubmitCode(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SecondFactorRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		st, err := svcs.SignIn.SubmitCode(c.Request.Context(), c.GetString(ctxSessionID), req.Code)
		respondStatus(c, SignInResponse{Status: st}, err)
	}
}

// @Summary  Return to the credentials step
// @Tags     auth
// @Security Bearer
// @Success  200 {object} SignInResponse
// @Router   /auth/back [post]
func handleBack(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		st, err := svcs.SignIn.Back(c.Request.Context(), c.GetString(ctxSessionID))
		respondStatus(c, SignInResponse{Status: st}, err)
	}
}

// @Summary  Current sign-in state
// @Tags     auth
// @Security Bearer
// @Success  200 {object} signin.Status
// @Router   /auth/state [get]
func handleState(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		st, err := svcs.SignIn.State(c.Request.Context(), c.GetString(ctxSessionID))
		respondStatus(c, SignInResponse{Status: st}, err)
	}
}

// @Summary  Log out
// @Tags     auth
// @Security Bearer
// @Success  204
// @Router   /auth/logout [post]
func handleLogout(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svcs.SignIn.Logout(c.Request.Context(), c.GetString(ctxSessionID)); err != nil {
			respondErr(c, err)
			return
		}

		c.Status(http.StatusNoContent)
	}
}

package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	authdomain "github.com/raqamly/console/internal/auth/domain"
	"github.com/raqamly/console/internal/auth/session"
	"github.com/raqamly/console/internal/observability/logger"
	"github.com/raqamly/console/internal/observability/metrics"
	signupdomain "github.com/raqamly/console/internal/signup/domain"
	userdomain "github.com/raqamly/console/internal/user/domain"
	"go.uber.org/zap"
)

// authResult is the tagged payload the console client consumes for auth
// flows: success flag, human message, and the profile when available.
type authResult struct {
	Success bool             `json:"success"`
	Message string           `json:"message"`
	User    *userdomain.User `json:"user,omitempty"`
}

type authHandler struct {
	sessions *session.Manager
	auth     authdomain.Service
	signup   signupdomain.Service
	users    userdomain.Service
	authn    *Authenticator
	metrics  *metrics.Metrics
}

func (h *authHandler) Register(r *gin.RouterGroup) {
	r.POST("/auth/signup", h.Signup)
	r.POST("/auth/login", h.Login)
	r.POST("/auth/logout", h.Logout)
	r.GET("/me", h.Me)

	authed := r.Group("", h.authn.Required())
	authed.PATCH("/me", h.UpdateMe)
}

type signupRequest struct {
	Email        string `json:"email" binding:"required"`
	Password     string `json:"password" binding:"required"`
	Name         string `json:"name"`
	BusinessName string `json:"business_name"`
}

func (h *authHandler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, authResult{Success: false, Message: "Signup failed"})
		return
	}

	result, err := h.signup.Signup(c.Request.Context(), signupdomain.SignupRequest{
		Email:        req.Email,
		Password:     req.Password,
		Name:         req.Name,
		BusinessName: req.BusinessName,
		UserAgent:    c.Request.UserAgent(),
		IPAddress:    c.ClientIP(),
	})
	if err != nil {
		status, _ := mapError(err)
		_ = c.Error(err)
		c.JSON(status, authResult{Success: false, Message: "Signup failed"})
		return
	}

	h.sessions.Set(c, result.RawToken, result.ExpiresAt)
	c.JSON(http.StatusCreated, authResult{
		Success: true,
		Message: "Signup successful",
		User:    result.User,
	})
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *authHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, authResult{Success: false, Message: "Login failed"})
		return
	}

	result, err := h.auth.Login(c.Request.Context(), authdomain.LoginRequest{
		Email:     req.Email,
		Password:  req.Password,
		UserAgent: c.Request.UserAgent(),
		IPAddress: c.ClientIP(),
	})
	if err != nil {
		h.metrics.RecordLoginAttempt(c.Request.Context(), "failure")
		status, _ := mapError(err)
		_ = c.Error(err)
		c.JSON(status, authResult{Success: false, Message: "Login failed"})
		return
	}

	profile, err := h.users.Get(c.Request.Context(), result.Identity.ID)
	if err != nil {
		h.metrics.RecordLoginAttempt(c.Request.Context(), "failure")
		status, _ := mapError(err)
		_ = c.Error(err)
		c.JSON(status, authResult{Success: false, Message: "Login failed"})
		return
	}

	h.metrics.RecordLoginAttempt(c.Request.Context(), "success")
	h.sessions.Set(c, result.RawToken, result.ExpiresAt)
	c.JSON(http.StatusOK, authResult{
		Success: true,
		Message: "Login successful",
		User:    profile,
	})
}

func (h *authHandler) Logout(c *gin.Context) {
	if token := h.sessions.ReadToken(c); token != "" {
		if err := h.auth.Logout(c.Request.Context(), token); err != nil {
			abortWithError(c, err)
			return
		}
	}

	h.sessions.Clear(c)
	c.JSON(http.StatusOK, authResult{Success: true, Message: "Logged out"})
}

// Me resolves the session into a profile. No session yields 401 with an
// empty user; a session whose profile row is gone is logged and answered
// with an empty user rather than an error.
func (h *authHandler) Me(c *gin.Context) {
	token := h.sessions.ReadToken(c)
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"user": nil})
		return
	}

	sess, err := h.auth.Authenticate(c.Request.Context(), token)
	if err != nil {
		abortWithError(c, err)
		return
	}

	profile, err := h.users.Get(c.Request.Context(), sess.IdentityID)
	if err != nil {
		if errors.Is(err, userdomain.ErrNotFound) {
			logger.FromContext(c.Request.Context()).Warn("session resolved but profile missing",
				zap.String("identity_id", sess.IdentityID.String()))
			c.JSON(http.StatusOK, gin.H{"user": nil})
			return
		}
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": profile})
}

type updateMeRequest struct {
	Name         *string `json:"name"`
	BusinessName *string `json:"business_name"`
}

func (h *authHandler) UpdateMe(c *gin.Context) {
	var req updateMeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}

	user := currentUser(c)
	updated, err := h.users.Update(c.Request.Context(), user.ID, userdomain.UpdateUserRequest{
		Name:         req.Name,
		BusinessName: req.BusinessName,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}

	h.authn.Invalidate(user.ID)
	c.JSON(http.StatusOK, gin.H{"user": updated})
}

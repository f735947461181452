package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ZeeshanMalik1/switch2itech-backend/internal/middleware"
	"github.com/ZeeshanMalik1/switch2itech-backend/internal/model"
	"github.com/ZeeshanMalik1/switch2itech-backend/internal/service"
)

type AuthHandler struct {
	authService  *service.AuthService
	cookieSecure bool
}

func NewAuthHandler(authService *service.AuthService, cookieSecure bool) *AuthHandler {
	return &AuthHandler{authService: authService, cookieSecure: cookieSecure}
}

// POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req struct {
		Name     string     `json:"name" binding:"required"`
		Email    string     `json:"email" binding:"required,email"`
		Password string     `json:"password" binding:"required"`
		Profile  string     `json:"profile"`
		Role     model.Role `json:"role" binding:"omitempty,oneof=user admin client developer manager"`
		PhoneNo  string     `json:"phoneNo"`
		Company  string     `json:"company"`
		Address  string     `json:"address"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Name, email, and password are required")
		return
	}

	user, err := h.authService.Register(service.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Profile:  req.Profile,
		Role:     req.Role,
		PhoneNo:  req.PhoneNo,
		Company:  req.Company,
		Address:  req.Address,
	})
	if err != nil {
		Fail(c, err)
		return
	}

	token, expireAt, err := h.authService.IssueToken(user)
	if err != nil {
		Fail(c, err)
		return
	}
	h.setSessionCookie(c, token, expireAt)

	Created(c, gin.H{"user": user, "token": token})
}

// POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Email and password are required")
		return
	}

	user, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		Fail(c, err)
		return
	}

	token, expireAt, err := h.authService.IssueToken(user)
	if err != nil {
		Fail(c, err)
		return
	}
	h.setSessionCookie(c, token, expireAt)

	Success(c, gin.H{"user": user, "token": token})
}

// POST /auth/logout
//
// Overwrites the session cookie with a throwaway value that expires almost
// immediately. Tokens already handed out stay valid until their own expiry
// when presented via header; there is no server-side revocation.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.SessionCookie, "loggedout", 10, "/", "", h.cookieSecure, true)
	Message(c, "Logged out successfully")
}

// GET /auth/me
func (h *AuthHandler) GetMe(c *gin.Context) {
	Success(c, middleware.GetCurrentUser(c))
}

// The token rides in an HttpOnly, SameSite=Strict cookie and in the response
// body; callers may use either channel.
func (h *AuthHandler) setSessionCookie(c *gin.Context, token string, expireAt time.Time) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.SessionCookie, token, int(time.Until(expireAt).Seconds()), "/", "", h.cookieSecure, true)
}

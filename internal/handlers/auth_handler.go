package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/planhub/planhub/internal/models"
	"github.com/planhub/planhub/internal/responses"
	"github.com/planhub/planhub/internal/services"
)

// Cookie configuration
const (
	RefreshTokenCookieName = "refresh_token"
	RefreshTokenMaxAge     = 30 * 24 * 3600 // 30 days in seconds
)

type AuthHandler struct {
	userService *services.UserService
}

func NewAuthHandler(userService *services.UserService) *AuthHandler {
	return &AuthHandler{userService: userService}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req struct {
		Name     string `json:"name"     binding:"required"`
		Email    string `json:"email"    binding:"required,email"`
		Password string `json:"password" binding:"required,min=6"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Please provide your name, email and password correctly")
		return
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	}
	accessToken, refreshToken, err := h.userService.Register(user)
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Could not register user")
		return
	}

	c.SetCookie(RefreshTokenCookieName, refreshToken, RefreshTokenMaxAge, "/", "", true, true)

	res := gin.H{
		"access_token": accessToken,
	}

	responses.Success(c, http.StatusCreated, res, "New user registered successfully!")
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"    binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid Format")
		return
	}

	accessToken, refreshToken, err := h.userService.Login(req.Email, req.Password)
	if err != nil {
		responses.Fail(c, http.StatusUnauthorized, err, "Failed to login")
		return
	}

	c.SetCookie(RefreshTokenCookieName, refreshToken, RefreshTokenMaxAge, "/", "", true, true)

	res := gin.H{
		"access_token": accessToken,
	}

	responses.Success(c, http.StatusOK, res, "User Login Successfully!")
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	refreshToken, err := c.Cookie(RefreshTokenCookieName)
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Missing refresh token")
		return
	}

	accessToken, err := h.userService.Refresh(refreshToken)
	if err != nil {
		c.SetCookie(RefreshTokenCookieName, "", -1, "/", "", true, true)
		responses.Fail(c, http.StatusUnauthorized, err, "Could not refresh session")
		return
	}

	res := gin.H{
		"access_token": accessToken,
	}

	responses.Success(c, http.StatusOK, res, "Token refreshed")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	refreshToken, err := c.Cookie(RefreshTokenCookieName)
	if err == nil && refreshToken != "" {
		if err := h.userService.Logout(refreshToken); err != nil {
			responses.Fail(c, http.StatusInternalServerError, err, "Could not revoke token")
			return
		}
	}

	c.SetCookie(RefreshTokenCookieName, "", -1, "/", "", true, true)

	responses.Success(c, http.StatusOK, nil, "Logged out successfully")
}

func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	user, err := h.userService.GetUser(userID)
	if err != nil {
		responses.Fail(c, http.StatusNotFound, err, "User not found")
		return
	}

	responses.Success(c, http.StatusOK, user, "User fetched successfully")
}

package handlers

import (
	"net/http"

	"servicehub/models"
	"servicehub/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler serves registration, login and the caller's profile.
type AuthHandler struct {
	Users user.UserService
}

func NewAuthHandler(us user.UserService) *AuthHandler {
	return &AuthHandler{Users: us}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	logger := getLogger(c)

	var req models.Registration
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" || req.Role == "" {
		badRequest(c, "name, email, password and role are required")
		return
	}

	res, err := h.Users.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, "Registration failed", err)
		return
	}
	logger.Info("User registered", zap.Int64("userID", res.User.ID), zap.String("role", res.User.Role))
	c.JSON(http.StatusCreated, res)
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	if req.Email == "" || req.Password == "" {
		badRequest(c, "email and password are required")
		return
	}

	res, err := h.Users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, "Login failed", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GetProfile handles GET /api/user/profile.
func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	u, err := h.Users.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, "User not found", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": u})
}

// UpdateProfile handles PATCH /api/user/profile.
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var patch models.ProfilePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badRequest(c, err.Error())
		return
	}
	u, err := h.Users.UpdateProfile(c.Request.Context(), userID, patch)
	if err != nil {
		respondError(c, "Failed to update profile", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": u})
}

package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"safepath/internal/domain"
	"safepath/internal/middleware"
	"safepath/internal/redis"
	"safepath/internal/repository"
	"safepath/internal/service"
)

// UserHandler handles HTTP requests for accounts and sessions.
type UserHandler struct {
	userRepo repository.UserRepository
	sessions redis.SessionStoreInterface
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userRepo repository.UserRepository, sessions redis.SessionStoreInterface) *UserHandler {
	return &UserHandler{userRepo: userRepo, sessions: sessions}
}

// RegisterRequest is the HTTP request body for user registration.
type RegisterRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
	Email    string `json:"email"`
	Address  string `json:"address"`
}

// LoginRequest is the HTTP request body for login.
type LoginRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// UserResponse is the HTTP response for user data.
type UserResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
}

// SessionResponse is the HTTP response for a successful login.
type SessionResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

func toUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:      u.ID,
		Name:    u.Name,
		Phone:   u.Phone,
		Email:   u.Email,
		Address: u.Address,
	}
}

// Register handles POST /v1/users/register
func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	if req.Name == "" || req.Phone == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "name, phone and password are required"})
		return
	}

	existing, err := h.userRepo.GetByPhone(c.Request.Context(), req.Phone)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		respondError(c, err)
		return
	}
	if existing != nil {
		c.JSON(http.StatusConflict, ErrorResponse{Error: "phone number already registered"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		respondError(c, err)
		return
	}

	user := &domain.User{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Phone:        req.Phone,
		PasswordHash: string(hash),
		Email:        req.Email,
		Address:      req.Address,
	}

	if err := h.userRepo.Create(c.Request.Context(), user); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toUserResponse(user))
}

// Login handles POST /v1/users/login
func (h *UserHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	user, err := h.userRepo.GetByPhone(c.Request.Context(), req.Phone)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(c, service.ErrInvalidCredentials)
			return
		}
		respondError(c, err)
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		respondError(c, service.ErrInvalidCredentials)
		return
	}

	token, err := h.sessions.Create(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, SessionResponse{
		Token: token,
		User:  toUserResponse(user),
	})
}

// Logout handles POST /v1/users/logout
func (h *UserHandler) Logout(c *gin.Context) {
	token := bearerToken(c)
	if token != "" {
		if err := h.sessions.Delete(c.Request.Context(), token); err != nil {
			respondError(c, err)
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "logged out"})
}

// Me handles GET /v1/users/me
func (h *UserHandler) Me(c *gin.Context) {
	userID := middleware.UserID(c)
	if userID == "" {
		respondError(c, service.ErrNotAuthenticated)
		return
	}

	user, err := h.userRepo.GetByID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toUserResponse(user))
}

// UpdateProfileRequest is the HTTP request body for profile updates.
type UpdateProfileRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// UpdateProfile handles PUT /v1/users/me
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID := middleware.UserID(c)
	if userID == "" {
		respondError(c, service.ErrNotAuthenticated)
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	user, err := h.userRepo.GetByID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	if req.Address != "" {
		user.Address = req.Address
	}

	if err := h.userRepo.Update(c.Request.Context(), user); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toUserResponse(user))
}

func bearerToken(c *gin.Context) string {
	auth := c.GetHeader("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(auth, prefix) {
		return ""
	}
	return strings.TrimPrefix(auth, prefix)
}

package users

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-ai-backend/internal/shared/server/respond"
)

// Handler exposes the auth endpoints.
type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.POST("/auth/signup", h.Signup)
	r.POST("/auth/login", h.Login)
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_body", "Invalid request body.", nil)
		return
	}

	user, err := h.Svc.Signup(c.Request.Context(), req.Name, req.Email, req.Password)
	switch {
	case err == nil:
		respond.JSON(c, http.StatusCreated, gin.H{"user": user})
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "invalid_input", err.Error(), nil)
	case errors.Is(err, ErrEmailTaken):
		respond.Error(c, http.StatusBadRequest, "email_taken", "Email already registered.", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal", "Signup failed.", nil)
	}
}

func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_body", "Invalid request body.", nil)
		return
	}

	user, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	switch {
	case err == nil:
		respond.OK(c, gin.H{"user": user})
	case errors.Is(err, ErrInvalidCredentials):
		respond.Error(c, http.StatusUnauthorized, "invalid_credentials", "Invalid email or password.", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal", "Login failed.", nil)
	}
}

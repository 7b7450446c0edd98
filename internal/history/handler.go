package history

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-ai-backend/internal/shared/server/middleware"
	"resume-ai-backend/internal/shared/server/respond"
)

// Handler exposes the history endpoints for the current identity.
type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.GET("/history", h.List)
	r.DELETE("/history", h.Clear)
}

func (h *Handler) List(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	entries, err := h.Svc.List(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal", "Could not load history.", nil)
		return
	}
	if entries == nil {
		entries = []Entry{}
	}
	respond.OK(c, gin.H{"history": entries})
}

func (h *Handler) Clear(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	if err := h.Svc.Clear(c.Request.Context(), userID); err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal", "Could not clear history.", nil)
		return
	}
	respond.OK(c, gin.H{"cleared": true})
}

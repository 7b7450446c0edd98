package resumes

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-ai-backend/internal/shared/server/middleware"
	"resume-ai-backend/internal/shared/server/respond"
)

// Handler exposes saved-resume endpoints. The legacy /user-resumes routes are
// kept for the resume-builder client, which sends its user id in the body.
type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.GET("/resumes", h.List)
	r.POST("/resumes", h.Save)
	r.DELETE("/resumes/:id", h.Delete)
	r.POST("/user-resumes/save", h.SaveBuilder)
	r.GET("/user-resumes/latest", h.LatestBuilder)
}

type saveRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Type    string `json:"type"`
}

type saveBuilderRequest struct {
	UserID     string         `json:"userId"`
	ResumeData map[string]any `json:"resumeData"`
}

func (h *Handler) List(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	list, err := h.Svc.List(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal", "Could not load resumes.", nil)
		return
	}
	if list == nil {
		list = []SavedResume{}
	}
	respond.OK(c, gin.H{"resumes": list})
}

func (h *Handler) Save(c *gin.Context) {
	var req saveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_body", "Invalid request body.", nil)
		return
	}

	userID := middleware.UserIDFromContext(c)
	resume, err := h.Svc.Save(c.Request.Context(), userID, req.Title, req.Content, req.Type)
	switch {
	case err == nil:
		respond.JSON(c, http.StatusCreated, gin.H{"resume": resume})
	case errors.Is(err, ErrEmptyContent):
		respond.Error(c, http.StatusBadRequest, "empty_content", "Resume content is required.", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal", "Could not save resume.", nil)
	}
}

func (h *Handler) Delete(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	id := c.Param("id")

	err := h.Svc.Delete(c.Request.Context(), userID, id)
	switch {
	case err == nil:
		respond.OK(c, gin.H{"deleted": true})
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "Resume not found.", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal", "Could not delete resume.", nil)
	}
}

func (h *Handler) SaveBuilder(c *gin.Context) {
	var req saveBuilderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_body", "Invalid request body.", nil)
		return
	}

	userID := middleware.UserIDFromContext(c)
	// Header identity wins; the body field covers the legacy builder client.
	if userID == middleware.GuestID && strings.TrimSpace(req.UserID) != "" {
		userID = strings.TrimSpace(req.UserID)
	}

	resume, err := h.Svc.SaveBuilder(c.Request.Context(), userID, req.ResumeData)
	switch {
	case err == nil:
		respond.JSON(c, http.StatusCreated, gin.H{"resume": resume})
	case errors.Is(err, ErrEmptyContent):
		respond.Error(c, http.StatusBadRequest, "empty_content", "Resume data is required.", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal", "Could not save resume.", nil)
	}
}

func (h *Handler) LatestBuilder(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	if q := strings.TrimSpace(c.Query("userId")); userID == middleware.GuestID && q != "" {
		userID = q
	}

	content, err := h.Svc.LatestBuilderContent(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal", "Could not load resume.", nil)
		return
	}
	respond.OK(c, gin.H{"content": content})
}

package analyses

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-ai-backend/internal/history"
	"resume-ai-backend/internal/llm"
	"resume-ai-backend/internal/shared/server/middleware"
	"resume-ai-backend/internal/shared/server/respond"
	"resume-ai-backend/internal/shared/telemetry"
)

// maxUploadBytes caps resume uploads at 10MB.
const maxUploadBytes = 10 << 20

// Handler exposes the AI feature routes. Every route takes a multipart
// "resume" file plus feature-specific form fields.
type Handler struct {
	Svc     *Service
	Temp    *TempStore
	History *history.Service
}

func NewHandler(svc *Service, temp *TempStore, hist *history.Service) *Handler {
	return &Handler{Svc: svc, Temp: temp, History: hist}
}

// RegisterRoutes mounts the feature endpoints on the API group.
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.POST("/analyze", h.Analyze)
	r.POST("/rewrite", h.Rewrite)
	r.POST("/cover-letter", h.CoverLetter)
	r.POST("/interview", h.Interview)
	r.POST("/tailor", h.Tailor)
	r.POST("/skills", h.Skills)
	r.POST("/roast", h.Roast)
	r.POST("/salary", h.Salary)
	r.POST("/linkedin", h.LinkedIn)
}

func (h *Handler) Analyze(c *gin.Context) {
	h.run(c, llm.AnalyzePrompt, h.analyzeHook)
}

func (h *Handler) Rewrite(c *gin.Context) {
	h.run(c, llm.RewritePrompt, h.rewriteHook)
}

func (h *Handler) CoverLetter(c *gin.Context) {
	h.run(c, llm.CoverLetterPrompt, nil)
}

func (h *Handler) Interview(c *gin.Context) {
	h.run(c, llm.InterviewPrompt, nil)
}

func (h *Handler) Tailor(c *gin.Context) {
	h.run(c, llm.TailorPrompt, nil)
}

func (h *Handler) Skills(c *gin.Context) {
	h.run(c, llm.SkillsPrompt, h.skillsHook)
}

func (h *Handler) Roast(c *gin.Context) {
	h.run(c, llm.RoastPrompt, h.roastHook)
}

func (h *Handler) Salary(c *gin.Context) {
	h.run(c, llm.SalaryPrompt, nil)
}

func (h *Handler) LinkedIn(c *gin.Context) {
	h.run(c, llm.LinkedInPrompt, nil)
}

// run is the shared request path: stage the upload, collect form fields, run
// the pipeline, map errors to status codes.
func (h *Handler) run(c *gin.Context, build llm.PromptBuilder, hook hookBuilder) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBytes)

	header, err := c.FormFile("resume")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "no_file", "No resume file uploaded.", nil)
		return
	}

	upload, err := h.Temp.Save(header)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "upload_failed", "Could not store the uploaded file.", nil)
		return
	}

	pc := llm.PromptContext{
		JobRole:        c.PostForm("jobRole"),
		CompanyName:    c.PostForm("companyName"),
		JobDescription: c.PostForm("jobDescription"),
		Location:       c.PostForm("location"),
		PriorAnswer:    c.PostForm("userAnswer"),
		PriorQuestion:  c.PostForm("currentQuestion"),
	}
	if pc.JobRole == "" {
		pc.JobRole = "General Position"
	}

	userID := middleware.UserIDFromContext(c)
	var successHook SuccessHook
	if hook != nil {
		successHook = hook(userID, pc)
	}

	result, err := h.Svc.Handle(c.Request.Context(), upload, build, pc, successHook)
	switch {
	case err == nil:
		respond.OK(c, result)
	case errors.Is(err, ErrNoFile):
		respond.Error(c, http.StatusBadRequest, "no_file", "No resume file uploaded.", nil)
	case errors.Is(err, llm.ErrNotConfigured):
		respond.Error(c, http.StatusInternalServerError, "ai_unavailable", "AI service is not configured.", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal", "Analysis failed.", nil)
	}
}

// hookBuilder binds the request identity and fields into a pipeline hook.
type hookBuilder func(userID string, pc llm.PromptContext) SuccessHook

func (h *Handler) analyzeHook(userID string, pc llm.PromptContext) SuccessHook {
	return func(ctx context.Context, result map[string]any, resumeText string) {
		name, _ := result["candidateName"].(string)
		entry := history.Entry{
			UserID:        userID,
			Type:          "analysis",
			Role:          pc.JobRole,
			CandidateName: name,
			MatchScore:    numberField(result, "jobMatchScore"),
			AtsScore:      numberField(result, "atsScore"),
			Payload:       result,
		}
		h.record(ctx, entry)
	}
}

func (h *Handler) rewriteHook(userID string, pc llm.PromptContext) SuccessHook {
	return func(ctx context.Context, result map[string]any, resumeText string) {
		rewritten, _ := result["rewritten"].(string)
		details := rewritten
		if len(details) > 100 {
			details = details[:100]
		}
		entry := history.Entry{
			UserID:        userID,
			Type:          "rewrite",
			Role:          pc.JobRole,
			CandidateName: "Rewritten Candidate",
			Details:       details + "...",
		}
		h.record(ctx, entry)
	}
}

func (h *Handler) skillsHook(userID string, pc llm.PromptContext) SuccessHook {
	return func(ctx context.Context, result map[string]any, resumeText string) {
		gaps, _ := result["criticalGaps"].([]any)
		entry := history.Entry{
			UserID:  userID,
			Type:    "skills",
			Role:    pc.JobRole,
			Details: fmt.Sprintf("Gap Analysis: %d gaps found", len(gaps)),
		}
		h.record(ctx, entry)
	}
}

func (h *Handler) roastHook(userID string, pc llm.PromptContext) SuccessHook {
	return func(ctx context.Context, result map[string]any, resumeText string) {
		entry := history.Entry{
			UserID:        userID,
			Type:          "roast",
			Role:          pc.JobRole,
			CandidateName: "Roast Victim",
			MatchScore:    numberField(result, "burnScore"),
			AtsScore:      0,
		}
		h.record(ctx, entry)
	}
}

// record appends a history entry, logging and swallowing failures so history
// never breaks a successful analysis.
func (h *Handler) record(ctx context.Context, entry history.Entry) {
	if h.History == nil {
		return
	}
	if err := h.History.Record(ctx, entry); err != nil {
		telemetry.Warn("history.record_failed", map[string]any{
			"user_id": entry.UserID,
			"type":    entry.Type,
			"error":   err.Error(),
		})
	}
}

func numberField(result map[string]any, key string) int {
	n, _ := toNumber(result[key])
	return n
}

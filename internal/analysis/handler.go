package analysis

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"resume-checker/internal/shared/server/respond"
)

const (
	maxUploadBytes     = 5 << 20
	defaultRecentLimit = 10
	maxRecentLimit     = 50
)

// Handler wires HTTP handlers to the analysis service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches resume analysis routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/resume/analyze", h.analyze)
	rg.GET("/resume/analysis/:id", h.getAnalysis)
	rg.GET("/resume/analyses/recent", h.recentAnalyses)
}

func (h *Handler) analyze(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "No file uploaded")
		return
	}
	if fileHeader.Size > maxUploadBytes {
		respond.Error(c, http.StatusBadRequest, "File exceeds the 5 MB limit")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "Could not read uploaded file")
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxUploadBytes+1))
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "Could not read uploaded file")
		return
	}
	if len(data) > maxUploadBytes {
		respond.Error(c, http.StatusBadRequest, "File exceeds the 5 MB limit")
		return
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	analysis, err := h.Svc.Process(c.Request.Context(), data, mimeType, fileHeader.Filename)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnsupportedType):
			respond.Error(c, http.StatusBadRequest, "Only PDF and DOCX files are supported")
		case errors.Is(err, ErrEmptyText):
			respond.Error(c, http.StatusBadRequest, "No text could be extracted from the document")
		case errors.Is(err, ErrExtraction):
			respond.Error(c, http.StatusBadRequest, err.Error())
		default:
			respond.Error(c, http.StatusInternalServerError, "Failed to analyze resume")
		}
		return
	}

	respond.OK(c, analysis)
}

func (h *Handler) getAnalysis(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "Invalid analysis id")
		return
	}

	analysis, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "Analysis not found")
		default:
			respond.Error(c, http.StatusInternalServerError, "Failed to fetch analysis")
		}
		return
	}

	respond.OK(c, analysis)
}

func (h *Handler) recentAnalyses(c *gin.Context) {
	limit := defaultRecentLimit
	if v := c.Query("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			respond.Error(c, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = parsed
	}
	if limit > maxRecentLimit {
		limit = maxRecentLimit
	}

	analyses, err := h.Svc.Recent(c.Request.Context(), limit)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "Failed to list analyses")
		return
	}

	respond.OK(c, analyses)
}

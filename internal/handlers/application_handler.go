package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"jobtracker-api/internal/apperrors"
	"jobtracker-api/internal/dtos"
	"jobtracker-api/internal/models"
	"jobtracker-api/internal/repository"
	"jobtracker-api/internal/services"
)

// ApplicationHandler maps HTTP requests onto the application service and
// the stats aggregator.
type ApplicationHandler struct {
	Apps  *services.ApplicationService
	Stats *services.StatsService
}

func NewApplicationHandler(apps *services.ApplicationService, stats *services.StatsService) *ApplicationHandler {
	return &ApplicationHandler{Apps: apps, Stats: stats}
}

// respondError translates the service error taxonomy into status codes:
// validation -> 400, missing record or file -> 404, everything else -> 500.
func respondError(c *gin.Context, err error) {
	switch {
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// Create is POST /applications. The body is a multipart form: the record
// fields plus a required "resume" file part and an optional "cover_letter"
// part.
func (h *ApplicationHandler) Create(c *gin.Context) {
	var req dtos.CreateApplicationRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid form data: " + err.Error()})
		return
	}

	in := services.CreateApplicationInput{CreateApplicationRequest: req}

	resumeHeader, err := c.FormFile("resume")
	if err == nil {
		f, openErr := resumeHeader.Open()
		if openErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "resume: unreadable upload"})
			return
		}
		defer f.Close()
		in.Resume = &services.FileUpload{Filename: resumeHeader.Filename, Reader: f}
	}

	coverHeader, err := c.FormFile("cover_letter")
	if err == nil {
		f, openErr := coverHeader.Open()
		if openErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cover_letter: unreadable upload"})
			return
		}
		defer f.Close()
		in.CoverLetter = &services.FileUpload{Filename: coverHeader.Filename, Reader: f}
	}

	app, err := h.Apps.Create(in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, app)
}

// List is GET /applications with optional search, company_name, job_title,
// status, skip and limit query parameters.
func (h *ApplicationHandler) List(c *gin.Context) {
	f := repository.Filter{
		Search:      c.Query("search"),
		CompanyName: c.Query("company_name"),
		JobTitle:    c.Query("job_title"),
		Status:      models.Status(c.Query("status")),
		Offset:      intQuery(c, "skip"),
		Limit:       intQuery(c, "limit"),
	}

	apps, total, err := h.Apps.List(f)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dtos.ListApplicationsResponse{Total: total, Applications: apps})
}

func intQuery(c *gin.Context, name string) int {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// Get is GET /applications/:id.
func (h *ApplicationHandler) Get(c *gin.Context) {
	app, err := h.Apps.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

// UpdateStatus is PATCH /applications/:id/status.
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	var req dtos.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	app, err := h.Apps.UpdateStatus(c.Param("id"), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

// UpdatePeople is PATCH /applications/:id/people.
func (h *ApplicationHandler) UpdatePeople(c *gin.Context) {
	var req dtos.UpdatePeopleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	app, err := h.Apps.UpdatePeople(c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

// Delete is DELETE /applications/:id.
func (h *ApplicationHandler) Delete(c *gin.Context) {
	if err := h.Apps.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Application deleted successfully"})
}

// DownloadAttachment is GET /applications/:id/attachments/:kind with kind
// one of "resume" or "cover_letter".
func (h *ApplicationHandler) DownloadAttachment(c *gin.Context) {
	kind := models.AttachmentKind(c.Param("kind"))
	data, filename, err := h.Apps.Attachment(c.Param("id"), kind)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/octet-stream", data)
}

// Summary is GET /applications/stats.
func (h *ApplicationHandler) Summary(c *gin.Context) {
	sum, err := h.Stats.Summary()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sum)
}

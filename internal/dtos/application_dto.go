package dtos

import (
	"jobtracker-api/internal/models"
)

// CreateApplicationRequest is the multipart form body of POST /applications.
// The resume (and optional cover letter) files travel alongside it as file
// parts and are handled separately.
type CreateApplicationRequest struct {
	JobTitle       string `form:"job_title" binding:"required"`
	CompanyName    string `form:"company_name" binding:"required"`
	JobDescription string `form:"job_description" binding:"required"`
	JobURL         string `form:"job_url"`

	// Optional fields
	MyLocation     string `form:"my_location"`
	ReferrerName   string `form:"referrer_name"`
	ReferrerEmail  string `form:"referrer_email"`
	RecruiterName  string `form:"recruiter_name"`
	RecruiterEmail string `form:"recruiter_email"`
	Status         string `form:"status"` // Defaults to "Applied" if empty
	IsTailored     bool   `form:"is_tailored"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdatePeopleRequest carries a partial update: only non-nil fields are
// applied, so a client can change the recruiter without clobbering the
// referrer.
type UpdatePeopleRequest struct {
	ReferrerName   *string `json:"referrer_name"`
	ReferrerEmail  *string `json:"referrer_email"`
	RecruiterName  *string `json:"recruiter_name"`
	RecruiterEmail *string `json:"recruiter_email"`
}

type ScrapeRequest struct {
	URL string `json:"url" binding:"required,url"`
}

type ListApplicationsResponse struct {
	Total        int64                `json:"total"`
	Applications []models.Application `json:"applications"`
}

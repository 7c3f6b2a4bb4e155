package models

import (
	"time"
)

// Status of a job application. This is a flat set: any status may move to
// any other, since real applications get reopened, re-assessed or rejected
// out of order.
type Status string

const (
	StatusApplied    Status = "Applied"
	StatusRejected   Status = "Rejected"
	StatusAssessment Status = "Assessment"
	StatusInterview  Status = "Interview"
	StatusOffer      Status = "Offer"
)

// Statuses lists every valid status in display order.
func Statuses() []Status {
	return []Status{StatusApplied, StatusRejected, StatusAssessment, StatusInterview, StatusOffer}
}

func (s Status) Valid() bool {
	switch s {
	case StatusApplied, StatusRejected, StatusAssessment, StatusInterview, StatusOffer:
		return true
	}
	return false
}

// AttachmentKind identifies which document of an application a stored file
// belongs to. Together with the application id it fully addresses the file.
type AttachmentKind string

const (
	KindResume      AttachmentKind = "resume"
	KindCoverLetter AttachmentKind = "cover_letter"
)

func (k AttachmentKind) Valid() bool {
	return k == KindResume || k == KindCoverLetter
}

type Application struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	CompanyName    string `gorm:"not null" json:"company_name"`
	JobTitle       string `gorm:"not null" json:"job_title"`
	JobDescription string `gorm:"type:text;not null" json:"job_description"`
	JobURL         string `json:"job_url,omitempty"`

	// Relative refs into the attachment store. ResumePath is set on every
	// live record; CoverLetterPath may be empty.
	ResumePath      string `gorm:"not null" json:"resume_path"`
	CoverLetterPath string `json:"cover_letter_path,omitempty"`

	ReferrerName   string `json:"referrer_name,omitempty"`
	ReferrerEmail  string `json:"referrer_email,omitempty"`
	RecruiterName  string `json:"recruiter_name,omitempty"`
	RecruiterEmail string `json:"recruiter_email,omitempty"`

	Status     Status `gorm:"not null;default:'Applied'" json:"status"`
	IsTailored bool   `json:"is_tailored"`
	MyLocation string `json:"my_location,omitempty"`

	// AppliedDate is captured at creation and never changes afterwards.
	AppliedDate time.Time `gorm:"not null;index" json:"applied_date"`
}

// AttachmentRef returns the stored ref for the given kind, or "" when the
// application has no such attachment.
func (a *Application) AttachmentRef(kind AttachmentKind) string {
	if kind == KindCoverLetter {
		return a.CoverLetterPath
	}
	return a.ResumePath
}

package services

import (
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"jobtracker-api/internal/apperrors"
	"jobtracker-api/internal/dtos"
	"jobtracker-api/internal/models"
	"jobtracker-api/internal/repository"
	"jobtracker-api/internal/storage"
)

// FileUpload is one uploaded document: its original filename plus a reader
// over its bytes.
type FileUpload struct {
	Filename string
	Reader   io.Reader
}

// CreateApplicationInput gathers everything needed to create a record. The
// resume is mandatory; everything the dto marks optional is optional here
// too.
type CreateApplicationInput struct {
	dtos.CreateApplicationRequest
	Resume      *FileUpload
	CoverLetter *FileUpload
}

// ApplicationService implements the record lifecycle: validated all-or-
// nothing creation, reads, the two partial updates, and delete with
// attachment cleanup.
type ApplicationService struct {
	repo  repository.ApplicationRepository
	files storage.Store
	now   func() time.Time
}

func NewApplicationService(repo repository.ApplicationRepository, files storage.Store) *ApplicationService {
	return &ApplicationService{repo: repo, files: files, now: time.Now}
}

// Create validates the input, stores the attachments, then persists the
// record. Ordering matters for the all-or-nothing guarantee: the record only
// becomes visible after its files are on disk, and a failed persist removes
// the files it just stored.
func (s *ApplicationService) Create(in CreateApplicationInput) (*models.Application, error) {
	if err := validateCreate(&in); err != nil {
		return nil, err
	}

	status := models.StatusApplied
	if strings.TrimSpace(in.Status) != "" {
		status = models.Status(in.Status)
		if !status.Valid() {
			return nil, apperrors.NewValidation("status", "must be one of Applied, Rejected, Assessment, Interview, Offer")
		}
	}

	id := uuid.NewString()

	resumeRef, err := s.files.Store(id, models.KindResume, in.Resume.Filename, in.Resume.Reader)
	if err != nil {
		return nil, err
	}

	coverRef := ""
	if in.CoverLetter != nil {
		coverRef, err = s.files.Store(id, models.KindCoverLetter, in.CoverLetter.Filename, in.CoverLetter.Reader)
		if err != nil {
			s.files.Delete(resumeRef)
			return nil, err
		}
	}

	app := &models.Application{
		ID:              id,
		CompanyName:     strings.TrimSpace(in.CompanyName),
		JobTitle:        strings.TrimSpace(in.JobTitle),
		JobDescription:  in.JobDescription,
		JobURL:          strings.TrimSpace(in.JobURL),
		ResumePath:      resumeRef,
		CoverLetterPath: coverRef,
		ReferrerName:    strings.TrimSpace(in.ReferrerName),
		ReferrerEmail:   strings.TrimSpace(in.ReferrerEmail),
		RecruiterName:   strings.TrimSpace(in.RecruiterName),
		RecruiterEmail:  strings.TrimSpace(in.RecruiterEmail),
		Status:          status,
		IsTailored:      in.IsTailored,
		MyLocation:      strings.TrimSpace(in.MyLocation),
		AppliedDate:     s.now(),
	}

	if err := s.repo.Create(app); err != nil {
		s.files.Delete(resumeRef)
		if coverRef != "" {
			s.files.Delete(coverRef)
		}
		return nil, err
	}
	return app, nil
}

func validateCreate(in *CreateApplicationInput) error {
	if strings.TrimSpace(in.JobTitle) == "" {
		return apperrors.NewValidation("job_title", "is required")
	}
	if strings.TrimSpace(in.CompanyName) == "" {
		return apperrors.NewValidation("company_name", "is required")
	}
	if strings.TrimSpace(in.JobDescription) == "" {
		return apperrors.NewValidation("job_description", "is required")
	}
	if in.Resume == nil || in.Resume.Reader == nil {
		return apperrors.NewValidation("resume", "file is required")
	}
	return nil
}

func (s *ApplicationService) Get(id string) (*models.Application, error) {
	return s.repo.Get(id)
}

func (s *ApplicationService) List(f repository.Filter) ([]models.Application, int64, error) {
	if f.Status != "" && !f.Status.Valid() {
		return nil, 0, apperrors.NewValidation("status", "must be one of Applied, Rejected, Assessment, Interview, Offer")
	}
	return s.repo.List(f)
}

// UpdateStatus moves the application to the given status. Any status may
// move to any other.
func (s *ApplicationService) UpdateStatus(id string, newStatus string) (*models.Application, error) {
	status := models.Status(newStatus)
	if !status.Valid() {
		return nil, apperrors.NewValidation("status", "must be one of Applied, Rejected, Assessment, Interview, Offer")
	}
	app, err := s.repo.Get(id)
	if err != nil {
		return nil, err
	}
	app.Status = status
	if err := s.repo.Update(app); err != nil {
		return nil, err
	}
	return app, nil
}

// UpdatePeople applies whichever referrer/recruiter fields the request
// supplies and leaves the rest alone.
func (s *ApplicationService) UpdatePeople(id string, req dtos.UpdatePeopleRequest) (*models.Application, error) {
	app, err := s.repo.Get(id)
	if err != nil {
		return nil, err
	}
	if req.ReferrerName != nil {
		app.ReferrerName = strings.TrimSpace(*req.ReferrerName)
	}
	if req.ReferrerEmail != nil {
		app.ReferrerEmail = strings.TrimSpace(*req.ReferrerEmail)
	}
	if req.RecruiterName != nil {
		app.RecruiterName = strings.TrimSpace(*req.RecruiterName)
	}
	if req.RecruiterEmail != nil {
		app.RecruiterEmail = strings.TrimSpace(*req.RecruiterEmail)
	}
	if err := s.repo.Update(app); err != nil {
		return nil, err
	}
	return app, nil
}

// Delete removes the record and then its stored files. The store's delete
// is idempotent, so cleanup cannot fail on an already-missing file.
func (s *ApplicationService) Delete(id string) error {
	app, err := s.repo.Get(id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	if err := s.files.Delete(app.ResumePath); err != nil {
		return err
	}
	if app.CoverLetterPath != "" {
		if err := s.files.Delete(app.CoverLetterPath); err != nil {
			return err
		}
	}
	return nil
}

// Attachment returns the stored bytes for one of the record's documents,
// along with a filename suitable for a download response.
func (s *ApplicationService) Attachment(id string, kind models.AttachmentKind) ([]byte, string, error) {
	if !kind.Valid() {
		return nil, "", apperrors.NewValidation("kind", "must be resume or cover_letter")
	}
	app, err := s.repo.Get(id)
	if err != nil {
		return nil, "", err
	}
	ref := app.AttachmentRef(kind)
	if ref == "" {
		return nil, "", apperrors.ErrNotFound
	}
	data, err := s.files.Retrieve(ref)
	if err != nil {
		return nil, "", err
	}
	return data, downloadName(ref), nil
}

func downloadName(ref string) string {
	if i := strings.LastIndex(ref, "/"); i >= 0 {
		return ref[i+1:]
	}
	return ref
}

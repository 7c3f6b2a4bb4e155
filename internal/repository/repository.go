package repository

import (
	"jobtracker-api/internal/models"
)

// Filter narrows a List call. Zero values mean "no constraint"; Limit == 0
// returns everything after Offset.
type Filter struct {
	// Search matches case-insensitively against company name, job title,
	// referrer name and recruiter name.
	Search string
	// CompanyName and JobTitle are case-insensitive partial matches on
	// their single field.
	CompanyName string
	JobTitle    string
	// Status is an exact match.
	Status models.Status

	Offset int
	Limit  int
}

// ApplicationRepository owns the persistent set of application records.
// List returns the page of matches plus the total match count before
// pagination, ordered by applied date descending. Get, Update and Delete
// return apperrors.ErrNotFound for ids that do not exist.
type ApplicationRepository interface {
	Create(app *models.Application) error
	Get(id string) (*models.Application, error)
	List(f Filter) ([]models.Application, int64, error)
	Update(app *models.Application) error
	Delete(id string) error
}

package repository

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"jobtracker-api/internal/apperrors"
	"jobtracker-api/internal/models"
)

type gormRepository struct {
	db *gorm.DB
}

// NewGorm returns an ApplicationRepository backed by the given GORM
// connection.
func NewGorm(db *gorm.DB) ApplicationRepository {
	return &gormRepository{db: db}
}

var _ ApplicationRepository = (*gormRepository)(nil)

func (r *gormRepository) Create(app *models.Application) error {
	if err := r.db.Create(app).Error; err != nil {
		return apperrors.NewStorage("create application", err)
	}
	return nil
}

func (r *gormRepository) Get(id string) (*models.Application, error) {
	var app models.Application
	err := r.db.First(&app, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("application %s: %w", id, apperrors.ErrNotFound)
	}
	if err != nil {
		return nil, apperrors.NewStorage("get application", err)
	}
	return &app, nil
}

// filtered builds a fresh query with the filter's where clauses applied.
// A fresh query per use keeps Count and Find from sharing statement state.
func (r *gormRepository) filtered(f Filter) *gorm.DB {
	q := r.db.Model(&models.Application{})
	if f.Search != "" {
		p := like(f.Search)
		q = q.Where(
			"LOWER(company_name) LIKE ? OR LOWER(job_title) LIKE ? OR LOWER(referrer_name) LIKE ? OR LOWER(recruiter_name) LIKE ?",
			p, p, p, p,
		)
	}
	if f.CompanyName != "" {
		q = q.Where("LOWER(company_name) LIKE ?", like(f.CompanyName))
	}
	if f.JobTitle != "" {
		q = q.Where("LOWER(job_title) LIKE ?", like(f.JobTitle))
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	return q
}

func like(term string) string {
	return "%" + strings.ToLower(term) + "%"
}

func (r *gormRepository) List(f Filter) ([]models.Application, int64, error) {
	var total int64
	if err := r.filtered(f).Count(&total).Error; err != nil {
		return nil, 0, apperrors.NewStorage("count applications", err)
	}

	q := r.filtered(f).Order("applied_date DESC")
	if f.Offset > 0 {
		q = q.Offset(f.Offset)
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}

	var apps []models.Application
	if err := q.Find(&apps).Error; err != nil {
		return nil, 0, apperrors.NewStorage("list applications", err)
	}
	return apps, total, nil
}

func (r *gormRepository) Update(app *models.Application) error {
	res := r.db.Model(&models.Application{}).Where("id = ?", app.ID).Updates(map[string]any{
		"status":          app.Status,
		"referrer_name":   app.ReferrerName,
		"referrer_email":  app.ReferrerEmail,
		"recruiter_name":  app.RecruiterName,
		"recruiter_email": app.RecruiterEmail,
		"is_tailored":     app.IsTailored,
		"my_location":     app.MyLocation,
	})
	if res.Error != nil {
		return apperrors.NewStorage("update application", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("application %s: %w", app.ID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *gormRepository) Delete(id string) error {
	res := r.db.Delete(&models.Application{}, "id = ?", id)
	if res.Error != nil {
		return apperrors.NewStorage("delete application", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("application %s: %w", id, apperrors.ErrNotFound)
	}
	return nil
}

package repository

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"jobtracker-api/internal/apperrors"
	"jobtracker-api/internal/models"
)

// memoryRepository is a map-backed ApplicationRepository with the same
// filtering and ordering semantics as the GORM one. It backs tests and
// makes the service layer runnable without a database file.
type memoryRepository struct {
	mu   sync.RWMutex
	apps map[string]models.Application
}

func NewMemory() ApplicationRepository {
	return &memoryRepository{apps: make(map[string]models.Application)}
}

var _ ApplicationRepository = (*memoryRepository)(nil)

func (r *memoryRepository) Create(app *models.Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.apps[app.ID]; ok {
		return apperrors.NewStorage("create application", fmt.Errorf("duplicate id %s", app.ID))
	}
	r.apps[app.ID] = *app
	return nil
}

func (r *memoryRepository) Get(id string) (*models.Application, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	app, ok := r.apps[id]
	if !ok {
		return nil, fmt.Errorf("application %s: %w", id, apperrors.ErrNotFound)
	}
	return &app, nil
}

func matches(app *models.Application, f Filter) bool {
	if f.Search != "" {
		s := strings.ToLower(f.Search)
		hit := strings.Contains(strings.ToLower(app.CompanyName), s) ||
			strings.Contains(strings.ToLower(app.JobTitle), s) ||
			strings.Contains(strings.ToLower(app.ReferrerName), s) ||
			strings.Contains(strings.ToLower(app.RecruiterName), s)
		if !hit {
			return false
		}
	}
	if f.CompanyName != "" && !strings.Contains(strings.ToLower(app.CompanyName), strings.ToLower(f.CompanyName)) {
		return false
	}
	if f.JobTitle != "" && !strings.Contains(strings.ToLower(app.JobTitle), strings.ToLower(f.JobTitle)) {
		return false
	}
	if f.Status != "" && app.Status != f.Status {
		return false
	}
	return true
}

func (r *memoryRepository) List(f Filter) ([]models.Application, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]models.Application, 0, len(r.apps))
	for _, app := range r.apps {
		if matches(&app, f) {
			all = append(all, app)
		}
	}
	sort.Slice(all, func(i, j int) bool {
		if !all[i].AppliedDate.Equal(all[j].AppliedDate) {
			return all[i].AppliedDate.After(all[j].AppliedDate)
		}
		return all[i].ID < all[j].ID
	})

	total := int64(len(all))
	if f.Offset > 0 {
		if f.Offset >= len(all) {
			return []models.Application{}, total, nil
		}
		all = all[f.Offset:]
	}
	if f.Limit > 0 && f.Limit < len(all) {
		all = all[:f.Limit]
	}
	return all, total, nil
}

func (r *memoryRepository) Update(app *models.Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.apps[app.ID]; !ok {
		return fmt.Errorf("application %s: %w", app.ID, apperrors.ErrNotFound)
	}
	r.apps[app.ID] = *app
	return nil
}

func (r *memoryRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.apps[id]; !ok {
		return fmt.Errorf("application %s: %w", id, apperrors.ErrNotFound)
	}
	delete(r.apps, id)
	return nil
}

package repository

import (
	"log"
	"path/filepath"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"jobtracker-api/internal/apperrors"
	"jobtracker-api/internal/models"
)

func newGormRepo(t *testing.T) ApplicationRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.New(log.Default(), logger.Config{LogLevel: logger.Silent}),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Application{}))
	return NewGorm(db)
}

// The GORM store and the in-memory fake must agree on semantics, so every
// scenario runs against both.
func eachRepo(t *testing.T, test func(t *testing.T, repo ApplicationRepository)) {
	t.Run("gorm", func(t *testing.T) { test(t, newGormRepo(t)) })
	t.Run("memory", func(t *testing.T) { test(t, NewMemory()) })
}

func seed(t *testing.T, repo ApplicationRepository, company, title string, status models.Status, applied time.Time) *models.Application {
	t.Helper()
	app := &models.Application{
		ID:          uuid.NewString(),
		CompanyName: company,
		JobTitle:    title,
		ResumePath:  "resumes/" + company + ".pdf",
		Status:      status,
		AppliedDate: applied,
	}
	require.NoError(t, repo.Create(app))
	return app
}

func TestCreateAndGet(t *testing.T) {
	eachRepo(t, func(t *testing.T, repo ApplicationRepository) {
		app := seed(t, repo, "Acme", "Backend Engineer", models.StatusApplied, time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))

		got, err := repo.Get(app.ID)
		require.NoError(t, err)
		assert.Equal(t, "Acme", got.CompanyName)
		assert.Equal(t, "Backend Engineer", got.JobTitle)
		assert.Equal(t, models.StatusApplied, got.Status)
	})
}

func TestGetMissing(t *testing.T) {
	eachRepo(t, func(t *testing.T, repo ApplicationRepository) {
		_, err := repo.Get("nope")
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestListOrdersByAppliedDateDesc(t *testing.T) {
	eachRepo(t, func(t *testing.T, repo ApplicationRepository) {
		old := seed(t, repo, "OldCo", "Engineer", models.StatusApplied, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
		newest := seed(t, repo, "NewCo", "Engineer", models.StatusApplied, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))
		mid := seed(t, repo, "MidCo", "Engineer", models.StatusApplied, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC))

		apps, total, err := repo.List(Filter{})
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		require.Len(t, apps, 3)
		assert.Equal(t, newest.ID, apps[0].ID)
		assert.Equal(t, mid.ID, apps[1].ID)
		assert.Equal(t, old.ID, apps[2].ID)
	})
}

func TestListFilters(t *testing.T) {
	eachRepo(t, func(t *testing.T, repo ApplicationRepository) {
		acme := seed(t, repo, "Acme", "Backend Engineer", models.StatusInterview, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))
		seed(t, repo, "Globex", "Frontend Engineer", models.StatusApplied, time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC))
		initech := seed(t, repo, "Initech", "Data Analyst", models.StatusInterview, time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC))

		t.Run("company partial match is case-insensitive", func(t *testing.T) {
			apps, total, err := repo.List(Filter{CompanyName: "acm"})
			require.NoError(t, err)
			assert.Equal(t, int64(1), total)
			require.Len(t, apps, 1)
			assert.Equal(t, acme.ID, apps[0].ID)
		})

		t.Run("job title partial match", func(t *testing.T) {
			_, total, err := repo.List(Filter{JobTitle: "engineer"})
			require.NoError(t, err)
			assert.Equal(t, int64(2), total)
		})

		t.Run("status exact match", func(t *testing.T) {
			apps, total, err := repo.List(Filter{Status: models.StatusInterview})
			require.NoError(t, err)
			assert.Equal(t, int64(2), total)
			require.Len(t, apps, 2)
			// Ordering still applies within a filtered list.
			assert.Equal(t, initech.ID, apps[0].ID)
			assert.Equal(t, acme.ID, apps[1].ID)
		})

		t.Run("no match", func(t *testing.T) {
			apps, total, err := repo.List(Filter{CompanyName: "Hooli"})
			require.NoError(t, err)
			assert.Zero(t, total)
			assert.Empty(t, apps)
		})
	})
}

func TestListSearchSpansPeople(t *testing.T) {
	eachRepo(t, func(t *testing.T, repo ApplicationRepository) {
		app := &models.Application{
			ID:            uuid.NewString(),
			CompanyName:   "Acme",
			JobTitle:      "Engineer",
			ResumePath:    "resumes/a.pdf",
			RecruiterName: "Dana Moore",
			Status:        models.StatusApplied,
			AppliedDate:   time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		}
		require.NoError(t, repo.Create(app))
		seed(t, repo, "Globex", "Engineer", models.StatusApplied, time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC))

		apps, total, err := repo.List(Filter{Search: "dana"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, apps, 1)
		assert.Equal(t, app.ID, apps[0].ID)
	})
}

func TestListPagination(t *testing.T) {
	eachRepo(t, func(t *testing.T, repo ApplicationRepository) {
		base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
		for i := 0; i < 5; i++ {
			seed(t, repo, "Acme", "Engineer", models.StatusApplied, base.AddDate(0, 0, i))
		}

		apps, total, err := repo.List(Filter{Offset: 1, Limit: 2})
		require.NoError(t, err)
		assert.Equal(t, int64(5), total, "total counts all matches, not the page")
		require.Len(t, apps, 2)
		assert.Equal(t, base.AddDate(0, 0, 3).Unix(), apps[0].AppliedDate.Unix())
		assert.Equal(t, base.AddDate(0, 0, 2).Unix(), apps[1].AppliedDate.Unix())

		apps, _, err = repo.List(Filter{Offset: 10})
		require.NoError(t, err)
		assert.Empty(t, apps)
	})
}

func TestUpdate(t *testing.T) {
	eachRepo(t, func(t *testing.T, repo ApplicationRepository) {
		app := seed(t, repo, "Acme", "Engineer", models.StatusApplied, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))

		app.Status = models.StatusOffer
		app.RecruiterName = "Sam"
		require.NoError(t, repo.Update(app))

		got, err := repo.Get(app.ID)
		require.NoError(t, err)
		assert.Equal(t, models.StatusOffer, got.Status)
		assert.Equal(t, "Sam", got.RecruiterName)
	})
}

func TestUpdateMissing(t *testing.T) {
	eachRepo(t, func(t *testing.T, repo ApplicationRepository) {
		err := repo.Update(&models.Application{ID: "nope", Status: models.StatusOffer})
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestDelete(t *testing.T) {
	eachRepo(t, func(t *testing.T, repo ApplicationRepository) {
		app := seed(t, repo, "Acme", "Engineer", models.StatusApplied, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))

		require.NoError(t, repo.Delete(app.ID))

		_, err := repo.Get(app.ID)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)

		assert.ErrorIs(t, repo.Delete(app.ID), apperrors.ErrNotFound)
	})
}

package services

import (
	"time"

	"jobtracker-api/internal/repository"
)

// Summary holds the dashboard counters.
type Summary struct {
	Total     int64 `json:"total"`
	Today     int   `json:"today"`
	ThisWeek  int   `json:"this_week"`
	ThisMonth int   `json:"this_month"`
}

// StatsService derives application counts from the repository's live record
// set on every call; nothing is cached.
//
// Boundary policy: "today" compares civil dates in local time, "this week"
// is the calendar week containing now starting on Monday, and "this month"
// is the calendar month containing now.
type StatsService struct {
	repo repository.ApplicationRepository
	now  func() time.Time
}

func NewStatsService(repo repository.ApplicationRepository) *StatsService {
	return &StatsService{repo: repo, now: time.Now}
}

func (s *StatsService) Summary() (*Summary, error) {
	apps, total, err := s.repo.List(repository.Filter{})
	if err != nil {
		return nil, err
	}

	now := s.now()
	weekStart := startOfWeek(now)
	weekEnd := weekStart.AddDate(0, 0, 7)

	sum := &Summary{Total: total}
	for i := range apps {
		d := apps[i].AppliedDate
		if sameDay(d, now) {
			sum.Today++
		}
		if !d.Before(weekStart) && d.Before(weekEnd) {
			sum.ThisWeek++
		}
		if d.Year() == now.Year() && d.Month() == now.Month() {
			sum.ThisMonth++
		}
	}
	return sum, nil
}

// startOfWeek returns midnight of the Monday of t's week, in t's location.
func startOfWeek(t time.Time) time.Time {
	wd := int(t.Weekday())
	if wd == 0 { // Sunday belongs to the week that started the previous Monday
		wd = 7
	}
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return day.AddDate(0, 0, -(wd - 1))
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

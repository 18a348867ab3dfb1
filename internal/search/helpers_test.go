package search

import (
	"time"

	"go-talent-backend/internal/domain"
)

var refNow = time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

func monthsAgo(n int) time.Time {
	return refNow.AddDate(0, -n, 0)
}

func ptr[T any](v T) *T {
	return &v
}

// talentWithExperience builds a talent whose single current job started n months ago
func talentWithExperience(id string, months int) domain.Talent {
	t := domain.Talent{
		ID:                  id,
		FullName:            "Talent " + id,
		ProfileCompleteness: 60,
		CreatedAt:           refNow.AddDate(0, 0, -months),
	}
	if months > 0 {
		t.WorkExperiences = []domain.WorkExperience{{
			CompanyName: "Acme",
			Position:    "Engineer",
			StartDate:   monthsAgo(months),
			IsCurrent:   true,
			WorkType:    domain.WorkTypeFullTime,
		}}
	}
	return t
}

func defaultCriteria() domain.SearchCriteria {
	return domain.SearchCriteria{
		Seniority: domain.SeniorityMid,
		SortBy:    domain.SortByRelevance,
		Page:      1,
		Limit:     20,
	}
}

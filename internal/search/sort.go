package search

import (
	"sort"

	"go-talent-backend/internal/domain"
)

// Sort orders ranked talents in place. Unknown keys fall back to relevance.
// The sort is stable so equal keys keep pool order.
func Sort(ranked []Ranked, sortBy domain.SortBy) {
	var less func(a, b *Ranked) bool

	switch sortBy {
	case domain.SortByExperience:
		less = func(a, b *Ranked) bool { return a.Talent.TotalExperienceMonths > b.Talent.TotalExperienceMonths }
	case domain.SortByProjects:
		less = func(a, b *Ranked) bool { return a.Talent.ProjectCount > b.Talent.ProjectCount }
	case domain.SortByEducation:
		less = func(a, b *Ranked) bool { return a.Talent.EducationLevel.Rank() > b.Talent.EducationLevel.Rank() }
	case domain.SortByNewest:
		less = func(a, b *Ranked) bool { return a.Talent.CreatedAt.After(b.Talent.CreatedAt) }
	default:
		less = func(a, b *Ranked) bool {
			if a.Score.TotalScore != b.Score.TotalScore {
				return a.Score.TotalScore > b.Score.TotalScore
			}
			return a.Priority < b.Priority
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return less(&ranked[i], &ranked[j])
	})
}

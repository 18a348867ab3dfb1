package search

import (
	"math"
	"time"

	"go-talent-backend/internal/domain"
)

// MonthsBetween returns the whole calendar months from start to end, never negative
func MonthsBetween(start, end time.Time) int {
	months := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
	if months < 0 {
		return 0
	}
	return months
}

// ExperienceMonths sums the spans of all work experiences. Current or open-ended
// positions run until now.
func ExperienceMonths(experiences []domain.WorkExperience, now time.Time) int {
	total := 0
	for _, exp := range experiences {
		if exp.StartDate.IsZero() {
			continue
		}
		end := now
		if !exp.IsCurrent && exp.EndDate != nil {
			end = *exp.EndDate
		}
		total += MonthsBetween(exp.StartDate, end)
	}
	return total
}

// ExperienceYears converts months to years rounded to one decimal
func ExperienceYears(months int) float64 {
	return round1(float64(months) / 12)
}

// Derive fills the per-request derived fields of a talent
func Derive(t *domain.Talent, now time.Time) {
	t.TotalExperienceMonths = ExperienceMonths(t.WorkExperiences, now)
	t.ProjectCount = len(t.Projects)
	t.ProfileCompleteness = min(max(t.ProfileCompleteness, 0), 100)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

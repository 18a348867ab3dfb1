package search

import (
	"testing"
	"time"

	"go-talent-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMonthsBetween(t *testing.T) {
	assert.Equal(t, 6, MonthsBetween(date(2023, 1, 15), date(2023, 7, 1)))
	assert.Equal(t, 14, MonthsBetween(date(2022, 11, 1), date(2024, 1, 1)))
	assert.Equal(t, 0, MonthsBetween(date(2024, 5, 1), date(2024, 5, 30)))
	assert.Equal(t, 0, MonthsBetween(date(2024, 5, 1), date(2023, 5, 1)))
}

func TestExperienceMonths(t *testing.T) {
	end := date(2024, 1, 1)
	experiences := []domain.WorkExperience{
		{StartDate: date(2023, 1, 1), EndDate: &end},
		{StartDate: date(2024, 7, 1), IsCurrent: true},
		{StartDate: date(2024, 1, 1)}, // open-ended without isCurrent
		{},                            // missing start date is ignored
	}

	assert.Equal(t, 12+6+12, ExperienceMonths(experiences, refNow))
}

func TestExperienceYears(t *testing.T) {
	assert.Equal(t, 2.5, ExperienceYears(30))
	assert.Equal(t, 0.6, ExperienceYears(7))
	assert.Equal(t, 0.0, ExperienceYears(0))
}

func TestDerive(t *testing.T) {
	talent := talentWithExperience("t1", 30)
	talent.Projects = []domain.Project{{ID: "a"}, {ID: "b"}}
	talent.ProfileCompleteness = 140

	Derive(&talent, refNow)

	assert.Equal(t, 30, talent.TotalExperienceMonths)
	assert.Equal(t, 2, talent.ProjectCount)
	assert.Equal(t, 100, talent.ProfileCompleteness)
}

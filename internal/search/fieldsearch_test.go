package search

import (
	"testing"

	"go-talent-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchKeywordsDedupes(t *testing.T) {
	criteria := domain.SearchCriteria{
		Skills:   []string{"React", " Go "},
		Keywords: []string{"react", "", "Docker", "go"},
	}
	assert.Equal(t, []string{"React", "Go", "Docker"}, SearchKeywords(criteria))
}

func TestSearchFieldsWithoutKeywords(t *testing.T) {
	talent := domain.Talent{
		ShortBio: "React developer",
		Skills:   "React, TypeScript",
		Projects: []domain.Project{{Title: "React app"}},
	}

	r := SearchFields(&talent, domain.SearchCriteria{})

	assert.Equal(t, 0.0, r.Bio.Score)
	assert.Equal(t, 0.0, r.Skills.Score)
	assert.Equal(t, 0.0, r.Department.Score)
	assert.Equal(t, 0.0, r.Languages.Score)
	assert.Equal(t, 0.0, r.Projects.Score)
	assert.Equal(t, 0.0, r.WorkExperiences.Score)
	assert.Nil(t, r.PositionRelevance)
}

func TestSearchFieldsProjects(t *testing.T) {
	talent := domain.Talent{
		Projects: []domain.Project{
			{ID: "p1", Title: "React Dashboard", Technologies: "React, Redux"},
			{ID: "p2", Title: "CLI tool", Description: "Written in Rust"},
		},
	}

	r := SearchFields(&talent, domain.SearchCriteria{Skills: []string{"react"}})

	require.Len(t, r.Projects.Details, 2)
	assert.Equal(t, "p1", r.Projects.Details[0].ProjectID)
	assert.InDelta(t, 60.0, r.Projects.Details[0].Score, 0.0001) // 100*0.4 + 0*0.4 + 100*0.2
	assert.InDelta(t, 0.0, r.Projects.Details[1].Score, 0.0001)
	assert.InDelta(t, 30.0, r.Projects.Score, 0.0001)
}

func TestSearchFieldsWorkExperiences(t *testing.T) {
	talent := domain.Talent{
		WorkExperiences: []domain.WorkExperience{{
			CompanyName: "Acme",
			Position:    "Frontend Developer",
			Description: "Built React apps",
		}},
	}

	r := SearchFields(&talent, domain.SearchCriteria{Keywords: []string{"react"}})

	require.Len(t, r.WorkExperiences.Details, 1)
	assert.InDelta(t, 40.0, r.WorkExperiences.Score, 0.0001) // description only
	assert.Equal(t, "Acme", r.WorkExperiences.Details[0].CompanyName)
}

func TestSearchFieldsPositionRelevance(t *testing.T) {
	talent := domain.Talent{
		Skills:   "React, TypeScript",
		ShortBio: "Frontend engineer",
		Projects: []domain.Project{{Title: "Shop", Technologies: "Next.js, Tailwind"}},
	}

	r := SearchFields(&talent, domain.SearchCriteria{Position: domain.PositionFrontend})

	require.NotNil(t, r.PositionRelevance)
	assert.Equal(t, domain.PositionFrontend, r.PositionRelevance.Position)
	assert.Greater(t, r.PositionRelevance.Skills.Score, 0.0)
	assert.Greater(t, r.PositionRelevance.Projects.Score, 0.0)
	assert.Equal(t, 0.0, r.PositionRelevance.WorkExperiences.Score)
	assert.Equal(t, 0.0, r.Skills.Score, "user keyword results stay zero without keywords")
}

func TestPositionKeywords(t *testing.T) {
	for _, p := range domain.ValidPositions() {
		kws := PositionKeywords(p)
		assert.GreaterOrEqual(t, len(kws), 10, p)
		assert.LessOrEqual(t, len(kws), 20, p)
	}
	assert.Empty(t, PositionKeywords("astronaut"))

	kws := PositionKeywords(domain.PositionBackend)
	kws[0] = "mutated"
	assert.NotEqual(t, "mutated", PositionKeywords(domain.PositionBackend)[0])
}

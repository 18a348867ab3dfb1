package search

import (
	"strings"

	"go-talent-backend/internal/domain"
)

// Per-field blend of project and work-experience matches
const (
	projectTitleWeight        = 0.4
	projectDescriptionWeight  = 0.4
	projectTechnologiesWeight = 0.2

	experiencePositionWeight    = 0.4
	experienceCompanyWeight     = 0.2
	experienceDescriptionWeight = 0.4
)

// SearchKeywords merges requested skills and keywords into one deduplicated list
func SearchKeywords(criteria domain.SearchCriteria) []string {
	return DedupeKeywords(criteria.Skills, criteria.Keywords)
}

// SearchFields runs the matcher across every searchable field of a talent.
// With no keywords every sub-result is zero. Position relevance is computed
// whenever a position is set, independently of the keywords.
func SearchFields(t *domain.Talent, criteria domain.SearchCriteria) domain.FieldSearchResult {
	keywords := SearchKeywords(criteria)

	result := emptyFieldSearch()
	if len(keywords) > 0 {
		result.Bio = MatchText(t.ShortBio, keywords)
		result.Skills = MatchText(t.Skills, keywords)
		result.Department = MatchText(t.Department, keywords)
		result.Languages = MatchText(t.Languages, keywords)
		result.Projects = searchProjects(t.Projects, keywords)
		result.WorkExperiences = searchExperiences(t.WorkExperiences, keywords)
	}

	if criteria.Position != "" {
		result.PositionRelevance = positionRelevance(t, criteria.Position)
	}
	return result
}

func emptyFieldSearch() domain.FieldSearchResult {
	return domain.FieldSearchResult{
		Bio:             emptyMatch(),
		Skills:          emptyMatch(),
		Department:      emptyMatch(),
		Languages:       emptyMatch(),
		Projects:        domain.ProjectsMatch{Score: 0, Details: []domain.ProjectMatch{}},
		WorkExperiences: domain.ExperiencesMatch{Score: 0, Details: []domain.ExperienceMatch{}},
	}
}

func searchProjects(projects []domain.Project, keywords []string) domain.ProjectsMatch {
	out := domain.ProjectsMatch{Score: 0, Details: make([]domain.ProjectMatch, 0, len(projects))}
	if len(projects) == 0 {
		return out
	}

	sum := 0.0
	for _, p := range projects {
		title := MatchText(p.Title, keywords)
		desc := MatchText(p.Description, keywords)
		tech := MatchText(p.Technologies, keywords)
		score := title.Score*projectTitleWeight + desc.Score*projectDescriptionWeight + tech.Score*projectTechnologiesWeight

		out.Details = append(out.Details, domain.ProjectMatch{
			ProjectID:    p.ID,
			Title:        p.Title,
			Score:        score,
			TitleMatch:   title,
			Description:  desc,
			Technologies: tech,
		})
		sum += score
	}
	out.Score = min(100, sum/float64(len(projects)))
	return out
}

func searchExperiences(experiences []domain.WorkExperience, keywords []string) domain.ExperiencesMatch {
	out := domain.ExperiencesMatch{Score: 0, Details: make([]domain.ExperienceMatch, 0, len(experiences))}
	if len(experiences) == 0 {
		return out
	}

	sum := 0.0
	for _, exp := range experiences {
		position := MatchText(exp.Position, keywords)
		company := MatchText(exp.CompanyName, keywords)
		desc := MatchText(exp.Description, keywords)
		score := position.Score*experiencePositionWeight + company.Score*experienceCompanyWeight + desc.Score*experienceDescriptionWeight

		out.Details = append(out.Details, domain.ExperienceMatch{
			CompanyName:   exp.CompanyName,
			Position:      exp.Position,
			Score:         score,
			PositionMatch: position,
			CompanyMatch:  company,
			Description:   desc,
		})
		sum += score
	}
	out.Score = min(100, sum/float64(len(experiences)))
	return out
}

// positionRelevance matches the position vocabulary against the talent. Projects and
// work experiences are matched per entry on their concatenated text and averaged.
func positionRelevance(t *domain.Talent, position domain.Position) *domain.PositionRelevance {
	vocabulary := PositionKeywords(position)
	rel := &domain.PositionRelevance{
		Position:        position,
		Bio:             MatchText(t.ShortBio, vocabulary),
		Skills:          MatchText(t.Skills, vocabulary),
		Department:      MatchText(t.Department, vocabulary),
		Projects:        emptyMatch(),
		WorkExperiences: emptyMatch(),
	}

	if len(t.Projects) > 0 {
		texts := make([]string, len(t.Projects))
		for i, p := range t.Projects {
			texts[i] = strings.Join([]string{p.Title, p.Description, p.Technologies}, " ")
		}
		rel.Projects = averageMatch(texts, vocabulary)
	}
	if len(t.WorkExperiences) > 0 {
		texts := make([]string, len(t.WorkExperiences))
		for i, exp := range t.WorkExperiences {
			texts[i] = strings.Join([]string{exp.Position, exp.CompanyName, exp.Description}, " ")
		}
		rel.WorkExperiences = averageMatch(texts, vocabulary)
	}
	return rel
}

// averageMatch matches each text and averages the scores, concatenating the matches
func averageMatch(texts []string, keywords []string) domain.MatchResult {
	out := emptyMatch()
	sum := 0.0
	for _, text := range texts {
		r := MatchText(text, keywords)
		sum += r.Score
		out.Matches = append(out.Matches, r.Matches...)
	}
	out.Score = min(100, sum/float64(len(texts)))
	return out
}

package search

import (
	"strings"

	"go-talent-backend/internal/domain"
)

// Ranked is a scored talent moving through the pipeline
type Ranked struct {
	Talent   *domain.Talent
	Score    domain.TalentScore
	Band     domain.MatchBand
	Priority int
}

// softFilter is one named post-score predicate
type softFilter struct {
	name string
	keep func(r *Ranked) bool
}

// softFilters returns the active post-score predicates in evaluation order
func softFilters(criteria domain.SearchCriteria) []softFilter {
	filters := []softFilter{{
		name: "min_score",
		keep: func(r *Ranked) bool { return float64(r.Score.TotalScore) >= criteria.MinScore },
	}}

	if len(criteria.Languages) > 0 {
		wanted := make([]string, 0, len(criteria.Languages))
		for _, lang := range criteria.Languages {
			if lang = normalize(lang); lang != "" {
				wanted = append(wanted, lang)
			}
		}
		if len(wanted) > 0 {
			filters = append(filters, softFilter{
				name: "languages",
				keep: func(r *Ranked) bool {
					have := strings.ToLower(r.Talent.Languages)
					for _, lang := range wanted {
						if strings.Contains(have, lang) {
							return true
						}
					}
					return false
				},
			})
		}
	}

	if criteria.MinExperienceMonths > 0 {
		filters = append(filters, softFilter{
			name: "min_experience_months",
			keep: func(r *Ranked) bool { return r.Talent.TotalExperienceMonths >= criteria.MinExperienceMonths },
		})
	}
	if criteria.HasGithub {
		filters = append(filters, softFilter{
			name: "has_github",
			keep: func(r *Ranked) bool { return r.Talent.HasGithub() },
		})
	}
	if criteria.HasLinkedin {
		filters = append(filters, softFilter{
			name: "has_linkedin",
			keep: func(r *Ranked) bool { return r.Talent.HasLinkedin() },
		})
	}
	if criteria.MinProjectCount > 0 {
		filters = append(filters, softFilter{
			name: "min_project_count",
			keep: func(r *Ranked) bool { return r.Talent.ProjectCount >= criteria.MinProjectCount },
		})
	}
	return filters
}

// ApplySoftFilters keeps the talents passing every predicate. Evaluation stops at
// the first failing predicate per talent; the returned map counts drops per predicate.
func ApplySoftFilters(ranked []Ranked, criteria domain.SearchCriteria) ([]Ranked, map[string]int) {
	filters := softFilters(criteria)
	dropped := make(map[string]int, len(filters))
	kept := make([]Ranked, 0, len(ranked))

	for i := range ranked {
		pass := true
		for _, f := range filters {
			if !f.keep(&ranked[i]) {
				dropped[f.name]++
				pass = false
				break
			}
		}
		if pass {
			kept = append(kept, ranked[i])
		}
	}
	return kept, dropped
}

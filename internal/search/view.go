package search

import (
	"log/slog"
	"sort"
	"time"

	"go-talent-backend/internal/domain"
)

// Highlight limits per area
const (
	bioHighlights        = 3
	skillHighlights      = 5
	departmentHighlights = 2
	projectHighlights    = 2
	experienceHighlights = 2
)

// Project shapes a ranked talent into its response view
func Project(r Ranked, log *slog.Logger) domain.TalentView {
	t := r.Talent
	details := r.Score.Breakdown.MatchDetails

	return domain.TalentView{
		ID:                    t.ID,
		FullName:              t.FullName,
		City:                  t.City,
		Age:                   t.Age,
		School:                t.School,
		EducationLevel:        t.EducationLevel,
		Department:            t.Department,
		ShortBio:              t.ShortBio,
		Skills:                SplitList(log, "skills", t.Skills),
		Languages:             SplitList(log, "languages", t.Languages),
		GithubProfile:         t.GithubProfile,
		LinkedinProfile:       t.LinkedinProfile,
		ProfileCompleteness:   t.ProfileCompleteness,
		CreatedAt:             t.CreatedAt.UTC().Format(time.RFC3339),
		TotalScore:            r.Score.TotalScore,
		MatchBand:             r.Band,
		MatchPriority:         r.Priority,
		ScoreBreakdown:        r.Score.Breakdown,
		HasGithub:             t.HasGithub(),
		HasLinkedin:           t.HasLinkedin(),
		TotalExperienceMonths: t.TotalExperienceMonths,
		ExperienceYears:       ExperienceYears(t.TotalExperienceMonths),
		ProjectCount:          t.ProjectCount,
		Highlights: domain.MatchHighlights{
			Bio:             topMatches(details.Bio, bioHighlights),
			Skills:          topMatches(details.Skills, skillHighlights),
			Department:      topMatches(details.Department, departmentHighlights),
			Projects:        topProjects(details.Projects, projectHighlights),
			WorkExperiences: topExperiences(details.WorkExperiences, experienceHighlights),
		},
	}
}

func topMatches(matches []domain.Match, n int) []domain.Match {
	out := make([]domain.Match, len(matches))
	copy(out, matches)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	if len(out) > n {
		out = out[:n]
	}
	return out
}

func topProjects(projects []domain.ProjectMatch, n int) []domain.ProjectMatch {
	out := make([]domain.ProjectMatch, 0, len(projects))
	for _, p := range projects {
		if p.Score > 0 {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	if len(out) > n {
		out = out[:n]
	}
	return out
}

func topExperiences(experiences []domain.ExperienceMatch, n int) []domain.ExperienceMatch {
	out := make([]domain.ExperienceMatch, 0, len(experiences))
	for _, e := range experiences {
		if e.Score > 0 {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	if len(out) > n {
		out = out[:n]
	}
	return out
}

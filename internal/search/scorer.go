package search

import (
	"math"
	"unicode/utf8"

	"go-talent-backend/internal/domain"
)

// neutralSkillScore is used when the query requests no skills
const neutralSkillScore = 50.0

// Skill blend. The area weights are normalized by their sum, so a perfect
// skills-field match alone already yields a high skill score.
const (
	skillFieldWeight      = 0.5
	skillBioWeight        = 0.3 * 0.1
	skillProjectWeight    = 0.4 * 0.25
	skillExperienceWeight = 0.3 * 0.15
)

var educationBonuses = map[domain.EducationLevel]float64{
	domain.EducationHighSchool: 0,
	domain.EducationUniversity: 5,
	domain.EducationMasters:    10,
	domain.EducationDoctorate:  15,
}

// Score computes the total score of a talent and its full breakdown.
// Derived fields on the talent must already be populated.
func Score(t *domain.Talent, criteria domain.SearchCriteria, weights domain.WeightVector) domain.TalentScore {
	fields := SearchFields(t, criteria)

	skill := skillScore(fields, len(criteria.Skills) > 0)
	experience := experienceScore(t, fields, criteria.WorkType)
	project := projectScore(t, fields)
	profile := profileScore(t, fields)
	education := educationBonus(t, fields)

	weighted := skill*float64(weights.Skills)/100 +
		experience*float64(weights.Experience)/100 +
		project*float64(weights.Projects)/100 +
		profile*float64(weights.Profile)/100 +
		education*0.1
	total := int(math.Round(clamp(weighted)))

	return domain.TalentScore{
		TotalScore: total,
		Breakdown: domain.ScoreBreakdown{
			SkillMatch:     roundInt(skill),
			Experience:     roundInt(experience),
			ProjectQuality: roundInt(project),
			ProfileQuality: roundInt(profile),
			EducationBonus: roundInt(education),
			MatchDetails: domain.MatchDetails{
				Bio:             fields.Bio.Matches,
				Skills:          fields.Skills.Matches,
				Department:      fields.Department.Matches,
				Languages:       fields.Languages.Matches,
				Projects:        fields.Projects.Details,
				WorkExperiences: fields.WorkExperiences.Details,
			},
			MatchScores: domain.MatchScores{
				Bio:             fields.Bio.Score,
				Skills:          fields.Skills.Score,
				Department:      fields.Department.Score,
				Languages:       fields.Languages.Score,
				Projects:        fields.Projects.Score,
				WorkExperiences: fields.WorkExperiences.Score,
			},
			PositionRelevance: summarizeRelevance(fields.PositionRelevance),
		},
	}
}

func skillScore(fields domain.FieldSearchResult, skillsRequested bool) float64 {
	score := neutralSkillScore
	if skillsRequested {
		blend := fields.Skills.Score*skillFieldWeight +
			fields.Bio.Score*skillBioWeight +
			fields.Projects.Score*skillProjectWeight +
			fields.WorkExperiences.Score*skillExperienceWeight
		score = blend / (skillFieldWeight + skillBioWeight + skillProjectWeight + skillExperienceWeight)

		if rel := fields.PositionRelevance; rel != nil {
			score = score*0.7 + relevanceBlend(rel)*0.3
		}
	}
	return clamp(score)
}

func relevanceBlend(rel *domain.PositionRelevance) float64 {
	return rel.Skills.Score*0.4 + rel.Projects.Score*0.3 + rel.WorkExperiences.Score*0.2 + rel.Bio.Score*0.1
}

func experienceScore(t *domain.Talent, fields domain.FieldSearchResult, workType domain.WorkType) float64 {
	var score float64
	switch months := t.TotalExperienceMonths; {
	case months <= 0:
		score = 30
	case months < 6:
		score = 50
	case months < 12:
		score = 70
	case months < 24:
		score = 85
	default:
		score = 100
	}

	score = math.Min(100, score+fields.WorkExperiences.Score*0.2)

	if workType != "" {
		for _, exp := range t.WorkExperiences {
			if exp.WorkType == workType {
				score = math.Min(100, score*1.1)
				break
			}
		}
	}
	return score
}

func projectScore(t *domain.Talent, fields domain.FieldSearchResult) float64 {
	var score float64
	switch t.ProjectCount {
	case 0:
		score = 20
	case 1:
		score = 50
	case 2:
		score = 70
	default:
		score = 85
	}

	score = math.Min(100, score+fields.Projects.Score*0.3)

	if t.HasGithub() {
		score = math.Min(100, score*1.1)
	}

	types := make(map[domain.ProjectType]bool)
	for _, p := range t.Projects {
		if p.ProjectType != "" {
			types[p.ProjectType] = true
		}
	}
	if len(types) > 1 {
		score = math.Min(100, score+float64(5*(len(types)-1)))
	}
	return score
}

func profileScore(t *domain.Talent, fields domain.FieldSearchResult) float64 {
	score := float64(t.ProfileCompleteness)
	if utf8.RuneCountInString(t.ShortBio) > 100 {
		score += 10
	}
	score += fields.Bio.Score * 0.15
	if t.HasGithub() {
		score += 5
	}
	if t.HasLinkedin() {
		score += 5
	}
	score += fields.Department.Score * 0.1
	return math.Min(100, score)
}

func educationBonus(t *domain.Talent, fields domain.FieldSearchResult) float64 {
	bonus := educationBonuses[t.EducationLevel]
	if fields.Department.Score > 50 {
		bonus += 5
	}
	return bonus
}

func summarizeRelevance(rel *domain.PositionRelevance) *domain.PositionRelevanceSummary {
	if rel == nil {
		return nil
	}
	return &domain.PositionRelevanceSummary{
		Position:        rel.Position,
		Bio:             roundInt(rel.Bio.Score),
		Skills:          roundInt(rel.Skills.Score),
		Department:      roundInt(rel.Department.Score),
		Projects:        roundInt(rel.Projects.Score),
		WorkExperiences: roundInt(rel.WorkExperiences.Score),
		Combined:        roundInt(relevanceBlend(rel)),
	}
}

func clamp(v float64) float64 {
	return math.Max(0, math.Min(100, v))
}

func roundInt(v float64) int {
	return int(math.Round(v))
}

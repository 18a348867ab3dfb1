package search

import (
	"log/slog"
	"sort"
	"strings"

	"go-talent-backend/internal/domain"
)

const topSkillsLimit = 10

// Aggregate computes statistics over the full filtered set
func Aggregate(ranked []Ranked, log *slog.Logger) domain.SearchStats {
	stats := domain.SearchStats{
		TotalCandidates: len(ranked),
		TopSkills:       []domain.SkillFrequency{},
	}
	if len(ranked) == 0 {
		return stats
	}

	var scoreSum, experienceSum, projectSum int
	for _, r := range ranked {
		score := r.Score.TotalScore
		scoreSum += score
		experienceSum += r.Talent.TotalExperienceMonths
		projectSum += r.Talent.ProjectCount

		switch r.Band {
		case domain.MatchBandExcellent:
			stats.ScoreDistribution.Excellent++
		case domain.MatchBandVeryGood:
			stats.ScoreDistribution.VeryGood++
		case domain.MatchBandGood:
			stats.ScoreDistribution.Good++
		case domain.MatchBandAverage:
			stats.ScoreDistribution.Average++
		default:
			stats.ScoreDistribution.Poor++
		}

		switch {
		case score >= 70:
			stats.QualityBuckets.High++
		case score >= 40:
			stats.QualityBuckets.Medium++
		default:
			stats.QualityBuckets.Low++
		}
	}

	n := float64(len(ranked))
	stats.AverageScore = round1(float64(scoreSum) / n)
	stats.AverageExperienceMonths = round1(float64(experienceSum) / n)
	stats.AverageProjectCount = round1(float64(projectSum) / n)
	stats.TopSkills = topSkills(ranked, log)
	return stats
}

// topSkills counts each skill once per talent, case-insensitively, and keeps the
// first spelling seen as the display name
func topSkills(ranked []Ranked, log *slog.Logger) []domain.SkillFrequency {
	counts := make(map[string]*domain.SkillFrequency)
	for _, r := range ranked {
		seen := make(map[string]bool)
		for _, skill := range SplitList(log, "skills", r.Talent.Skills) {
			key := strings.ToLower(skill)
			if seen[key] {
				continue
			}
			seen[key] = true
			if entry, ok := counts[key]; ok {
				entry.Count++
			} else {
				counts[key] = &domain.SkillFrequency{Skill: skill, Count: 1}
			}
		}
	}

	out := make([]domain.SkillFrequency, 0, len(counts))
	for _, entry := range counts {
		entry.Percentage = round1(float64(entry.Count) / float64(len(ranked)) * 100)
		out = append(out, *entry)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return strings.ToLower(out[i].Skill) < strings.ToLower(out[j].Skill)
	})
	if len(out) > topSkillsLimit {
		out = out[:topSkillsLimit]
	}
	return out
}

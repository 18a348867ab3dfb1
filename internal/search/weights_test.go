package search

import (
	"testing"

	"go-talent-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestResolveWeightsAlwaysSumTo100(t *testing.T) {
	positions := append(domain.ValidPositions(), "", "unknown")
	seniorities := append(domain.ValidSeniorities(), "")

	for _, p := range positions {
		for _, s := range seniorities {
			w := ResolveWeights(p, s)
			assert.Equal(t, 100, w.Sum(), "position=%q seniority=%q", p, s)
			assert.GreaterOrEqual(t, w.Skills, 0)
			assert.GreaterOrEqual(t, w.Experience, 0)
			assert.GreaterOrEqual(t, w.Projects, 0)
			assert.GreaterOrEqual(t, w.Profile, 0)
		}
	}
}

func TestResolveWeights(t *testing.T) {
	tests := []struct {
		name      string
		position  domain.Position
		seniority domain.Seniority
		want      domain.WeightVector
	}{
		{"default mid", "", domain.SeniorityMid, domain.WeightVector{Skills: 30, Experience: 25, Projects: 25, Profile: 20}},
		{"default junior", "", domain.SeniorityJunior, domain.WeightVector{Skills: 32, Experience: 20, Projects: 28, Profile: 20}},
		{"unknown position falls back", "blockchain", domain.SeniorityMid, domain.WeightVector{Skills: 30, Experience: 25, Projects: 25, Profile: 20}},
		{"frontend mid", domain.PositionFrontend, domain.SeniorityMid, domain.WeightVector{Skills: 35, Experience: 20, Projects: 30, Profile: 15}},
		{"devops senior", domain.PositionDevOps, domain.SenioritySenior, domain.WeightVector{Skills: 25, Experience: 55, Projects: 10, Profile: 10}},
		{"ui-ux intern", domain.PositionUIUX, domain.SeniorityIntern, domain.WeightVector{Skills: 25, Experience: 10, Projects: 45, Profile: 20}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveWeights(tt.position, tt.seniority))
		})
	}
}

func TestRenormalizeLargestRemainder(t *testing.T) {
	t.Run("Should distribute the rounding remainder", func(t *testing.T) {
		w := renormalize(domain.WeightVector{Skills: 10, Experience: 10, Projects: 10, Profile: 3})
		assert.Equal(t, domain.WeightVector{Skills: 31, Experience: 30, Projects: 30, Profile: 9}, w)
	})

	t.Run("Should scale down oversized vectors", func(t *testing.T) {
		w := renormalize(domain.WeightVector{Skills: 50, Experience: 50, Projects: 50, Profile: 50})
		assert.Equal(t, domain.WeightVector{Skills: 25, Experience: 25, Projects: 25, Profile: 25}, w)
	})

	t.Run("Should clamp negatives and fall back on zero", func(t *testing.T) {
		w := renormalize(domain.WeightVector{Skills: -5, Experience: 0, Projects: 0, Profile: 0})
		assert.Equal(t, DefaultWeights, w)
	})
}

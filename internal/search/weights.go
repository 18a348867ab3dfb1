package search

import (
	"math"
	"sort"

	"go-talent-backend/internal/domain"
)

// DefaultWeights is used when no position override applies
var DefaultWeights = domain.WeightVector{Skills: 30, Experience: 25, Projects: 25, Profile: 20}

var positionWeights = map[domain.Position]domain.WeightVector{
	domain.PositionFrontend:    {Skills: 35, Experience: 20, Projects: 30, Profile: 15},
	domain.PositionBackend:     {Skills: 35, Experience: 30, Projects: 20, Profile: 15},
	domain.PositionFullstack:   {Skills: 30, Experience: 25, Projects: 30, Profile: 15},
	domain.PositionMobile:      {Skills: 35, Experience: 20, Projects: 30, Profile: 15},
	domain.PositionDevOps:      {Skills: 30, Experience: 40, Projects: 15, Profile: 15},
	domain.PositionDataScience: {Skills: 35, Experience: 25, Projects: 25, Profile: 15},
	domain.PositionUIUX:        {Skills: 25, Experience: 20, Projects: 40, Profile: 15},
}

// ResolveWeights derives the weight vector for a position and seniority.
// The result always sums to exactly 100.
func ResolveWeights(position domain.Position, seniority domain.Seniority) domain.WeightVector {
	w := DefaultWeights
	if override, ok := positionWeights[position]; ok {
		w = override
	}

	switch seniority {
	case domain.SeniorityIntern:
		w.Experience -= 10
		w.Projects += 5
		w.Profile += 5
	case domain.SeniorityJunior:
		w.Experience = max(w.Experience-5, 5)
		w.Projects += 3
		w.Skills += 2
	case domain.SenioritySenior:
		w.Experience += 15
		w.Projects -= 5
		w.Profile -= 5
		w.Skills -= 5
	}

	return renormalize(w)
}

// renormalize scales the vector to sum 100 using the largest-remainder method.
// Negative dimensions are clamped to zero first.
func renormalize(w domain.WeightVector) domain.WeightVector {
	values := []int{max(w.Skills, 0), max(w.Experience, 0), max(w.Projects, 0), max(w.Profile, 0)}
	sum := 0
	for _, v := range values {
		sum += v
	}
	if sum == 100 {
		return domain.WeightVector{Skills: values[0], Experience: values[1], Projects: values[2], Profile: values[3]}
	}
	if sum == 0 {
		return DefaultWeights
	}

	type share struct {
		index     int
		floor     int
		remainder float64
	}
	shares := make([]share, len(values))
	allocated := 0
	for i, v := range values {
		exact := float64(v) * 100 / float64(sum)
		floor := int(math.Floor(exact))
		shares[i] = share{index: i, floor: floor, remainder: exact - float64(floor)}
		allocated += floor
	}

	// Ties go to the earlier dimension (skills, experience, projects, profile).
	sort.SliceStable(shares, func(a, b int) bool {
		return shares[a].remainder > shares[b].remainder
	})
	for i := 0; i < 100-allocated; i++ {
		shares[i%len(shares)].floor++
	}

	out := make([]int, len(values))
	for _, s := range shares {
		out[s.index] = s.floor
	}
	return domain.WeightVector{Skills: out[0], Experience: out[1], Projects: out[2], Profile: out[3]}
}

package search

import (
	"log/slog"
	"time"

	"go-talent-backend/internal/domain"
)

// AlgorithmVersion is reported in every search response
const AlgorithmVersion = "2.0"

// AreasSearched lists the talent fields the matcher runs over
var AreasSearched = []string{"bio", "skills", "department", "languages", "projects", "workExperiences"}

// Options carries the request-scoped environment of one ranking run
type Options struct {
	Now    time.Time
	Logger *slog.Logger
}

// Outcome is the full result of one ranking run
type Outcome struct {
	Weights    domain.WeightVector
	PoolSize   int
	Dropped    map[string]int
	Filtered   []Ranked // sorted, before pagination
	Page       []Ranked
	Pagination domain.Pagination
	Stats      domain.SearchStats
}

// Rank runs score -> soft filter -> sort -> aggregate -> paginate over a hard-filtered
// pool. Derived talent fields are populated in place. Criteria must be normalized.
func Rank(pool []domain.Talent, criteria domain.SearchCriteria, weights domain.WeightVector, opts Options) *Outcome {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	ranked := ScoreAll(pool, criteria, weights, now)

	filtered, dropped := ApplySoftFilters(ranked, criteria)
	log.Debug("soft filters applied",
		"pool", len(pool),
		"kept", len(filtered),
		"dropped", dropped,
	)

	Sort(filtered, criteria.SortBy)

	page, pagination := Paginate(filtered, criteria.Page, criteria.Limit)

	return &Outcome{
		Weights:    weights,
		PoolSize:   len(pool),
		Dropped:    dropped,
		Filtered:   filtered,
		Page:       page,
		Pagination: pagination,
		Stats:      Aggregate(filtered, log),
	}
}

// ScoreAll derives and scores every talent in the pool and attaches its match band
func ScoreAll(pool []domain.Talent, criteria domain.SearchCriteria, weights domain.WeightVector, now time.Time) []Ranked {
	ranked := make([]Ranked, 0, len(pool))
	for i := range pool {
		t := &pool[i]
		Derive(t, now)
		score := Score(t, criteria, weights)
		band, priority := domain.BandForScore(score.TotalScore)
		ranked = append(ranked, Ranked{Talent: t, Score: score, Band: band, Priority: priority})
	}
	return ranked
}

// Paginate slices [offset, offset+limit) out of the sorted set
func Paginate(ranked []Ranked, page, limit int) ([]Ranked, domain.Pagination) {
	if page < 1 {
		page = domain.DefaultPage
	}
	if limit < 1 {
		limit = domain.DefaultLimit
	}

	total := len(ranked)
	totalPages := total / limit
	if total%limit > 0 {
		totalPages++
	}

	pagination := domain.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}

	// Compared before multiplying so huge pages cannot overflow the offset
	if page-1 >= totalPages {
		return []Ranked{}, pagination
	}
	offset := (page - 1) * limit
	end := min(offset+limit, total)
	return ranked[offset:end], pagination
}

// Respond shapes an outcome into the search response payload
func Respond(outcome *Outcome, criteria domain.SearchCriteria, log *slog.Logger) *domain.SearchResponse {
	if log == nil {
		log = slog.Default()
	}
	talents := make([]domain.TalentView, 0, len(outcome.Page))
	for _, r := range outcome.Page {
		talents = append(talents, Project(r, log))
	}

	return &domain.SearchResponse{
		Talents:        talents,
		Pagination:     outcome.Pagination,
		Stats:          outcome.Stats,
		AppliedFilters: criteria,
		AlgorithmInfo:  algorithmInfo(outcome.Weights, criteria),
	}
}

// EmptyResponse is the successful response for an empty hard-filtered pool
func EmptyResponse(criteria domain.SearchCriteria, weights domain.WeightVector) *domain.SearchResponse {
	_, pagination := Paginate(nil, criteria.Page, criteria.Limit)
	return &domain.SearchResponse{
		Talents:        []domain.TalentView{},
		Pagination:     pagination,
		Stats:          domain.SearchStats{TopSkills: []domain.SkillFrequency{}},
		AppliedFilters: criteria,
		AlgorithmInfo:  algorithmInfo(weights, criteria),
	}
}

func algorithmInfo(weights domain.WeightVector, criteria domain.SearchCriteria) domain.AlgorithmInfo {
	areas := make([]string, len(AreasSearched))
	copy(areas, AreasSearched)
	return domain.AlgorithmInfo{
		Version:          AlgorithmVersion,
		WeightsUsed:      weights,
		AreasSearched:    areas,
		MatchingStrategy: "exact+fuzzy",
		FuzzyThresholds: domain.FuzzyThresholds{
			ContainmentRatio: ContainmentRatio,
			EditSimilarity:   EditSimilarityMinimum,
			ExactMatchPoints: ExactMatchPoints,
			FuzzyMatchPoints: FuzzyMatchPoints,
		},
		Position:  criteria.Position,
		Seniority: criteria.Seniority,
		Keywords:  SearchKeywords(criteria),
	}
}

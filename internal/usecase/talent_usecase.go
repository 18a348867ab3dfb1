package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"go-talent-backend/internal/domain"
	"go-talent-backend/internal/search"
	"go-talent-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

// SearchRecorder receives per-search measurements
type SearchRecorder interface {
	RecordSearch(position string, poolSize, matched int, dropped map[string]int, elapsed time.Duration)
	RecordSearchError(stage string)
	RecordExport(format string)
}

type nopRecorder struct{}

func (nopRecorder) RecordSearch(string, int, int, map[string]int, time.Duration) {}
func (nopRecorder) RecordSearchError(string)                                     {}
func (nopRecorder) RecordExport(string)                                          {}

// ExportArchiver stores copies of exported files
type ExportArchiver interface {
	Archive(ctx context.Context, requester, filename, contentType string, data []byte) (string, error)
}

// TalentUsecaseConfig tunes the talent usecase
type TalentUsecaseConfig struct {
	Limits        SearchLimits
	ExportMaxRows int
	// Archive receives every export when set
	Archive ExportArchiver
	// Now is the reference clock for experience durations. Defaults to time.Now.
	Now func() time.Time
}

type talentUsecase struct {
	repo     domain.TalentRepository
	validate *validator.Validate
	recorder SearchRecorder
	log      *slog.Logger
	cfg      TalentUsecaseConfig
}

// NewTalentUsecase creates a new talent search usecase instance. A nil recorder disables metrics.
func NewTalentUsecase(repo domain.TalentRepository, validate *validator.Validate, recorder SearchRecorder, log *slog.Logger, cfg TalentUsecaseConfig) domain.TalentUsecase {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	if log == nil {
		log = slog.Default()
	}
	if cfg.Limits.DefaultLimit < 1 {
		cfg.Limits = DefaultSearchLimits
	}
	if cfg.ExportMaxRows < 1 {
		cfg.ExportMaxRows = 10000
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &talentUsecase{repo: repo, validate: validate, recorder: recorder, log: log, cfg: cfg}
}

// Search fetches the hard-filtered pool once and ranks it
func (u *talentUsecase) Search(ctx context.Context, criteria domain.SearchCriteria) (*domain.SearchResponse, error) {
	criteria = u.normalize(criteria, u.cfg.Limits)
	weights := search.ResolveWeights(criteria.Position, criteria.Seniority)

	outcome, err := u.rank(ctx, criteria, weights)
	if err != nil {
		return nil, err
	}
	if outcome == nil {
		return search.EmptyResponse(criteria, weights), nil
	}
	return search.Respond(outcome, criteria, u.log), nil
}

// rank runs the pipeline. A nil outcome with nil error means the pool was empty.
func (u *talentUsecase) rank(ctx context.Context, criteria domain.SearchCriteria, weights domain.WeightVector) (*search.Outcome, error) {
	pool, err := u.repo.FetchPool(ctx, criteria.HardFilter())
	if err != nil {
		u.recorder.RecordSearchError("fetch")
		return nil, apperror.Internal(fmt.Errorf("failed to fetch talent pool: %w", err))
	}

	if len(pool) == 0 {
		u.log.Debug("talent search: empty pool after hard filters",
			"city", criteria.City,
			"education_level", criteria.EducationLevel,
			"department", criteria.Department,
		)
		u.recorder.RecordSearch(string(criteria.Position), 0, 0, nil, 0)
		return nil, nil
	}

	start := time.Now()
	outcome := search.Rank(pool, criteria, weights, search.Options{Now: u.cfg.Now(), Logger: u.log})
	elapsed := time.Since(start)

	u.recorder.RecordSearch(string(criteria.Position), outcome.PoolSize, len(outcome.Filtered), outcome.Dropped, elapsed)
	u.log.Debug("talent search completed",
		"pool", outcome.PoolSize,
		"matched", len(outcome.Filtered),
		"returned", len(outcome.Page),
		"position", criteria.Position,
		"seniority", criteria.Seniority,
		"elapsed_ms", elapsed.Milliseconds(),
	)
	return outcome, nil
}

func (u *talentUsecase) normalize(criteria domain.SearchCriteria, limits SearchLimits) domain.SearchCriteria {
	normalized, reset := NormalizeCriteria(criteria, u.validate, limits)
	if len(reset) > 0 {
		u.log.Debug("talent search: invalid criteria fields reset to defaults", "fields", reset)
	}
	return normalized
}

// GetTalent returns a single talent profile with derived totals
func (u *talentUsecase) GetTalent(ctx context.Context, id string) (*domain.TalentDetail, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, apperror.BadRequest("Talent ID is required")
	}

	talent, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrTalentNotFound) {
			return nil, apperror.NotFound("Talent not found")
		}
		return nil, apperror.Internal(fmt.Errorf("failed to fetch talent: %w", err))
	}

	search.Derive(talent, u.cfg.Now())

	technologies := make(map[string][]string, len(talent.Projects))
	for _, p := range talent.Projects {
		technologies[p.ID] = search.SplitList(u.log, "technologies", p.Technologies)
	}

	return &domain.TalentDetail{
		Talent:              *talent,
		ExperienceYears:     search.ExperienceYears(talent.TotalExperienceMonths),
		SkillList:           search.SplitList(u.log, "skills", talent.Skills),
		LanguageList:        search.SplitList(u.log, "languages", talent.Languages),
		ProjectTechnologies: technologies,
	}, nil
}

// GetFilterOptions returns distinct pool values plus the closed enumerations
func (u *talentUsecase) GetFilterOptions(ctx context.Context) (*domain.TalentFilterOptions, error) {
	raw, err := u.repo.GetFilterValues(ctx)
	if err != nil {
		return nil, apperror.Internal(fmt.Errorf("failed to fetch filter options: %w", err))
	}

	present := make(map[domain.EducationLevel]bool)
	for _, level := range raw.EducationLevels {
		present[domain.EducationLevel(canonical(level))] = true
	}
	levels := []domain.EducationLevel{}
	for _, level := range domain.ValidEducationLevels() {
		if present[level] {
			levels = append(levels, level)
		}
	}

	return &domain.TalentFilterOptions{
		Cities:          sortedDistinct(raw.Cities),
		EducationLevels: levels,
		Departments:     sortedDistinct(raw.Departments),
		Skills:          sortedDistinct(u.splitAll("skills", raw.Skills)),
		Languages:       sortedDistinct(u.splitAll("languages", raw.Languages)),
		Positions:       domain.ValidPositions(),
		Seniorities:     domain.ValidSeniorities(),
		WorkTypes:       domain.ValidWorkTypes(),
	}, nil
}

func (u *talentUsecase) splitAll(field string, values []string) []string {
	var out []string
	for _, v := range values {
		out = append(out, search.SplitList(u.log, field, v)...)
	}
	return out
}

// sortedDistinct dedupes case-insensitively, keeping the first spelling, and sorts
func sortedDistinct(values []string) []string {
	out := search.DedupeKeywords(values)
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i]) < strings.ToLower(out[j])
	})
	return out
}

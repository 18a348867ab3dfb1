package usecase

import (
	"strings"

	"go-talent-backend/internal/domain"
	"go-talent-backend/internal/search"
	"go-talent-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// Search limits applied during criteria normalization
type SearchLimits struct {
	DefaultLimit int
	MaxLimit     int
}

// DefaultSearchLimits mirrors the configuration defaults
var DefaultSearchLimits = SearchLimits{DefaultLimit: domain.DefaultLimit, MaxLimit: 100}

// NormalizeCriteria trims and canonicalizes a search query. Invalid optional
// fields are reset to their defaults rather than rejected; the names of the
// reset fields are returned for logging.
func NormalizeCriteria(c domain.SearchCriteria, validate *validator.Validate, limits SearchLimits) (domain.SearchCriteria, []string) {
	c.Skills = search.DedupeKeywords(c.Skills)
	c.Keywords = search.DedupeKeywords(c.Keywords)
	c.Languages = search.DedupeKeywords(c.Languages)

	c.City = strings.TrimSpace(c.City)
	c.Department = strings.TrimSpace(c.Department)
	c.EducationLevel = domain.EducationLevel(canonical(string(c.EducationLevel)))
	c.Position = domain.Position(canonical(string(c.Position)))
	c.Seniority = domain.Seniority(canonical(string(c.Seniority)))
	c.WorkType = domain.WorkType(canonical(string(c.WorkType)))
	c.SortBy = domain.SortBy(canonical(string(c.SortBy)))

	if c.Page < 1 {
		c.Page = domain.DefaultPage
	}
	if c.Limit < 1 {
		c.Limit = limits.DefaultLimit
	}
	if limits.MaxLimit > 0 && c.Limit > limits.MaxLimit {
		c.Limit = limits.MaxLimit
	}
	c.MinScore = max(0, min(100, c.MinScore))
	c.MinExperienceMonths = max(0, c.MinExperienceMonths)
	c.MinProjectCount = max(0, c.MinProjectCount)

	var reset []string
	if validate != nil {
		if err := validate.Struct(c); err != nil {
			reset = validation.FailedFields(err)
			for _, field := range reset {
				resetField(&c, field, limits)
			}
		}
	}

	if c.Seniority == "" {
		c.Seniority = domain.DefaultSeniority
	}
	if c.SortBy == "" {
		c.SortBy = domain.DefaultSortBy
	}
	if c.MinAge != nil && c.MaxAge != nil && *c.MinAge > *c.MaxAge {
		c.MinAge, c.MaxAge = c.MaxAge, c.MinAge
	}
	return c, reset
}

func resetField(c *domain.SearchCriteria, field string, limits SearchLimits) {
	switch field {
	case "EducationLevel":
		c.EducationLevel = ""
	case "MinAge":
		c.MinAge = nil
	case "MaxAge":
		c.MaxAge = nil
	case "Position":
		c.Position = ""
	case "Seniority":
		c.Seniority = domain.DefaultSeniority
	case "WorkType":
		c.WorkType = ""
	case "SortBy":
		c.SortBy = domain.DefaultSortBy
	case "MinExperienceMonths":
		c.MinExperienceMonths = 0
	case "MinProjectCount":
		c.MinProjectCount = 0
	case "MinScore":
		c.MinScore = 0
	case "Page":
		c.Page = domain.DefaultPage
	case "Limit":
		c.Limit = limits.DefaultLimit
	}
}

func canonical(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var ErrTalentNotFound = errors.New("talent not found")

// ============================================================================
// Talent Enumerations
// ============================================================================

// EducationLevel represents the highest completed education of a talent
type EducationLevel string

const (
	EducationHighSchool EducationLevel = "high_school"
	EducationUniversity EducationLevel = "university"
	EducationMasters    EducationLevel = "masters"
	EducationDoctorate  EducationLevel = "doctorate"
)

// ValidEducationLevels returns all valid education levels
func ValidEducationLevels() []EducationLevel {
	return []EducationLevel{EducationHighSchool, EducationUniversity, EducationMasters, EducationDoctorate}
}

// IsValid checks if the education level is known
func (e EducationLevel) IsValid() bool {
	for _, valid := range ValidEducationLevels() {
		if e == valid {
			return true
		}
	}
	return false
}

// Rank orders education levels for sorting (doctorate highest). Unknown levels rank 0.
func (e EducationLevel) Rank() int {
	switch e {
	case EducationDoctorate:
		return 4
	case EducationMasters:
		return 3
	case EducationUniversity:
		return 2
	case EducationHighSchool:
		return 1
	default:
		return 0
	}
}

// WorkType represents the engagement type of a work experience
type WorkType string

const (
	WorkTypeFullTime   WorkType = "full_time"
	WorkTypePartTime   WorkType = "part_time"
	WorkTypeContract   WorkType = "contract"
	WorkTypeFreelance  WorkType = "freelance"
	WorkTypeInternship WorkType = "internship"
	WorkTypeRemote     WorkType = "remote"
)

// ValidWorkTypes returns all valid work types
func ValidWorkTypes() []WorkType {
	return []WorkType{WorkTypeFullTime, WorkTypePartTime, WorkTypeContract, WorkTypeFreelance, WorkTypeInternship, WorkTypeRemote}
}

// IsValid checks if the work type is known
func (w WorkType) IsValid() bool {
	for _, valid := range ValidWorkTypes() {
		if w == valid {
			return true
		}
	}
	return false
}

// ProjectType classifies a portfolio project
type ProjectType string

const (
	ProjectTypePersonal     ProjectType = "personal"
	ProjectTypeAcademic     ProjectType = "academic"
	ProjectTypeProfessional ProjectType = "professional"
	ProjectTypeOpenSource   ProjectType = "open_source"
	ProjectTypeHackathon    ProjectType = "hackathon"
)

// ============================================================================
// Talent (Candidate) Snapshot
// ============================================================================

// Project is a portfolio entry owned by a talent
type Project struct {
	ID           string      `json:"id"`
	Title        string      `json:"title"`
	Description  string      `json:"description"`
	Technologies string      `json:"technologies"` // comma-separated
	ProjectType  ProjectType `json:"projectType"`
	GithubURL    string      `json:"githubUrl,omitempty"`
	LiveURL      string      `json:"liveUrl,omitempty"`
	CreatedAt    time.Time   `json:"createdAt"`
}

// WorkExperience is an employment record owned by a talent
type WorkExperience struct {
	CompanyName string     `json:"companyName"`
	Position    string     `json:"position"`
	Description string     `json:"description"`
	StartDate   time.Time  `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	IsCurrent   bool       `json:"isCurrent"`
	WorkType    WorkType   `json:"workType"`
}

// Talent is the candidate view the search engine operates on. It is populated by
// the data source adapter and treated as an immutable snapshot for one request.
type Talent struct {
	ID              string         `json:"id"`
	FullName        string         `json:"fullName"`
	City            string         `json:"city"`
	Age             *int           `json:"age,omitempty"`
	School          string         `json:"school"`
	EducationLevel  EducationLevel `json:"educationLevel"`
	Department      string         `json:"department"`
	ShortBio        string         `json:"shortBio"`
	Skills          string         `json:"skills"`    // comma-separated
	Languages       string         `json:"languages"` // free text
	GithubProfile   string         `json:"githubProfile,omitempty"`
	LinkedinProfile string         `json:"linkedinProfile,omitempty"`
	CreatedAt       time.Time      `json:"createdAt"`

	Projects        []Project        `json:"projects"`
	WorkExperiences []WorkExperience `json:"workExperiences"`

	// Derived per request
	TotalExperienceMonths int `json:"totalExperienceMonths"`
	ProjectCount          int `json:"projectCount"`
	ProfileCompleteness   int `json:"profileCompleteness"` // 0-100, supplied by the profile service
}

// HasGithub reports whether a GitHub profile link is present
func (t *Talent) HasGithub() bool {
	return t.GithubProfile != ""
}

// HasLinkedin reports whether a LinkedIn profile link is present
func (t *Talent) HasLinkedin() bool {
	return t.LinkedinProfile != ""
}

// ============================================================================
// Talent Detail & Filter Options
// ============================================================================

// TalentDetail is the single-talent read model with derived totals
type TalentDetail struct {
	Talent
	ExperienceYears     float64             `json:"experienceYears"`
	SkillList           []string            `json:"skillList"`
	LanguageList        []string            `json:"languageList"`
	ProjectTechnologies map[string][]string `json:"projectTechnologies"` // keyed by project id
}

// TalentFilterOptions contains distinct values drawn from the talent pool for the UI
type TalentFilterOptions struct {
	Cities          []string         `json:"cities"`
	EducationLevels []EducationLevel `json:"educationLevels"`
	Departments     []string         `json:"departments"`
	Skills          []string         `json:"skills"`
	Languages       []string         `json:"languages"`
	Positions       []Position       `json:"positions"`
	Seniorities     []Seniority      `json:"seniorities"`
	WorkTypes       []WorkType       `json:"workTypes"`
}

// RawFilterValues are the unsplit distinct columns the data source returns
type RawFilterValues struct {
	Cities          []string
	EducationLevels []string
	Departments     []string
	Skills          []string // comma-separated per talent
	Languages       []string // free text per talent
}

// ============================================================================
// Repository & Usecase Interfaces
// ============================================================================

// TalentRepository is the read-only candidate data source
type TalentRepository interface {
	// FetchPool returns every active, approved talent matching the hard filter with
	// projects and work experiences attached. Large document blobs are never loaded.
	FetchPool(ctx context.Context, filter HardFilter) ([]Talent, error)

	// GetByID returns one active, approved talent or ErrTalentNotFound
	GetByID(ctx context.Context, id string) (*Talent, error)

	// GetFilterValues returns distinct raw values for filter population
	GetFilterValues(ctx context.Context) (*RawFilterValues, error)
}

// TalentUsecase defines business logic for talent search
type TalentUsecase interface {
	// Search ranks the talent pool against the criteria
	Search(ctx context.Context, criteria SearchCriteria) (*SearchResponse, error)

	// GetTalent returns a single talent profile with derived totals
	GetTalent(ctx context.Context, id string) (*TalentDetail, error)

	// GetFilterOptions returns filter options for UI dropdowns
	GetFilterOptions(ctx context.Context) (*TalentFilterOptions, error)

	// Export ranks the pool and renders the result as file bytes
	Export(ctx context.Context, req TalentExportRequest) ([]byte, string, error)
}

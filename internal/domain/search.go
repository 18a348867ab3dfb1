package domain

// ============================================================================
// Search Enumerations
// ============================================================================

// Position is the target role a search optimises for
type Position string

const (
	PositionFrontend    Position = "frontend"
	PositionBackend     Position = "backend"
	PositionFullstack   Position = "fullstack"
	PositionMobile      Position = "mobile"
	PositionDevOps      Position = "devops"
	PositionDataScience Position = "data-science"
	PositionUIUX        Position = "ui-ux"
)

// ValidPositions returns all positions with a dedicated keyword table and weight override
func ValidPositions() []Position {
	return []Position{
		PositionFrontend, PositionBackend, PositionFullstack, PositionMobile,
		PositionDevOps, PositionDataScience, PositionUIUX,
	}
}

// IsValid checks if the position is known
func (p Position) IsValid() bool {
	for _, valid := range ValidPositions() {
		if p == valid {
			return true
		}
	}
	return false
}

// Seniority is the experience level a search optimises for
type Seniority string

const (
	SeniorityIntern Seniority = "intern"
	SeniorityJunior Seniority = "junior"
	SeniorityMid    Seniority = "mid"
	SenioritySenior Seniority = "senior"
)

// ValidSeniorities returns all valid seniority levels
func ValidSeniorities() []Seniority {
	return []Seniority{SeniorityIntern, SeniorityJunior, SeniorityMid, SenioritySenior}
}

// IsValid checks if the seniority is known
func (s Seniority) IsValid() bool {
	for _, valid := range ValidSeniorities() {
		if s == valid {
			return true
		}
	}
	return false
}

// SortBy selects the ordering of ranked talents
type SortBy string

const (
	SortByRelevance  SortBy = "relevance"
	SortByExperience SortBy = "experience"
	SortByProjects   SortBy = "projects"
	SortByEducation  SortBy = "education"
	SortByNewest     SortBy = "newest"
)

// ValidSortBy returns all valid sort keys
func ValidSortBy() []SortBy {
	return []SortBy{SortByRelevance, SortByExperience, SortByProjects, SortByEducation, SortByNewest}
}

// IsValid checks if the sort key is known
func (s SortBy) IsValid() bool {
	for _, valid := range ValidSortBy() {
		if s == valid {
			return true
		}
	}
	return false
}

// Search defaults
const (
	DefaultSeniority = SeniorityJunior
	DefaultSortBy    = SortByRelevance
	DefaultPage      = 1
	DefaultLimit     = 20
)

// ============================================================================
// Search Request
// ============================================================================

// SearchCriteria is the structured talent query. Every field is optional.
type SearchCriteria struct {
	Skills    []string `json:"skills,omitempty"`
	Keywords  []string `json:"keywords,omitempty"`
	Languages []string `json:"languages,omitempty"`

	// Hard filters (applied by the data source)
	City           string         `json:"city,omitempty"`
	EducationLevel EducationLevel `json:"educationLevel,omitempty" validate:"omitempty,education_level"`
	Department     string         `json:"department,omitempty"`
	MinAge         *int           `json:"minAge,omitempty" validate:"omitempty,min=0,max=120"`
	MaxAge         *int           `json:"maxAge,omitempty" validate:"omitempty,min=0,max=120"`

	// Weighting
	Position  Position  `json:"position,omitempty" validate:"omitempty,position"`
	Seniority Seniority `json:"seniority,omitempty" validate:"omitempty,seniority"`
	WorkType  WorkType  `json:"workType,omitempty" validate:"omitempty,work_type"`

	// Soft filters (applied after scoring)
	MinExperienceMonths int     `json:"minExperienceMonths,omitempty" validate:"min=0"`
	HasGithub           bool    `json:"hasGithub,omitempty"`
	HasLinkedin         bool    `json:"hasLinkedin,omitempty"`
	MinProjectCount     int     `json:"minProjectCount,omitempty" validate:"min=0"`
	MinScore            float64 `json:"minScore" validate:"min=0,max=100"`

	// Sorting & Pagination
	SortBy SortBy `json:"sortBy" validate:"omitempty,sort_by"`
	Page   int    `json:"page" validate:"min=1"`
	Limit  int    `json:"limit" validate:"min=1"`
}

// HardFilter holds the predicates pushed down to the data source
type HardFilter struct {
	City           string
	EducationLevel EducationLevel
	Department     string
	MinAge         *int
	MaxAge         *int
}

// HardFilter extracts the data-source predicates from the criteria
func (c SearchCriteria) HardFilter() HardFilter {
	return HardFilter{
		City:           c.City,
		EducationLevel: c.EducationLevel,
		Department:     c.Department,
		MinAge:         c.MinAge,
		MaxAge:         c.MaxAge,
	}
}

// ============================================================================
// Scoring Structures
// ============================================================================

// WeightVector splits 100 percentage points across the four score dimensions
type WeightVector struct {
	Skills     int `json:"skills"`
	Experience int `json:"experience"`
	Projects   int `json:"projects"`
	Profile    int `json:"profile"`
}

// Sum returns the total of all dimensions
func (w WeightVector) Sum() int {
	return w.Skills + w.Experience + w.Projects + w.Profile
}

// MatchType distinguishes exact substring hits from approximate ones
type MatchType string

const (
	MatchExact MatchType = "exact"
	MatchFuzzy MatchType = "fuzzy"
)

// Match is one keyword hit inside a block of text
type Match struct {
	Keyword string    `json:"keyword"`
	Type    MatchType `json:"type"`
	Score   int       `json:"score"`
}

// MatchResult is the outcome of matching one text block against a keyword set
type MatchResult struct {
	Score   float64 `json:"score"`
	Matches []Match `json:"matches"`
}

// ProjectMatch is the per-project audit record of a field search
type ProjectMatch struct {
	ProjectID    string      `json:"projectId"`
	Title        string      `json:"title"`
	Score        float64     `json:"score"`
	TitleMatch   MatchResult `json:"titleMatch"`
	Description  MatchResult `json:"descriptionMatch"`
	Technologies MatchResult `json:"technologiesMatch"`
}

// ProjectsMatch aggregates project scores for one talent
type ProjectsMatch struct {
	Score   float64        `json:"score"`
	Details []ProjectMatch `json:"details"`
}

// ExperienceMatch is the per-work-experience audit record of a field search
type ExperienceMatch struct {
	CompanyName   string      `json:"companyName"`
	Position      string      `json:"position"`
	Score         float64     `json:"score"`
	PositionMatch MatchResult `json:"positionMatch"`
	CompanyMatch  MatchResult `json:"companyMatch"`
	Description   MatchResult `json:"descriptionMatch"`
}

// ExperiencesMatch aggregates work-experience scores for one talent
type ExperiencesMatch struct {
	Score   float64           `json:"score"`
	Details []ExperienceMatch `json:"details"`
}

// PositionRelevance is the field search re-run with the position keyword table
type PositionRelevance struct {
	Position        Position    `json:"position"`
	Bio             MatchResult `json:"bio"`
	Skills          MatchResult `json:"skills"`
	Department      MatchResult `json:"department"`
	Projects        MatchResult `json:"projects"`
	WorkExperiences MatchResult `json:"workExperiences"`
}

// FieldSearchResult is the comprehensive search of every searchable talent field
type FieldSearchResult struct {
	Bio               MatchResult        `json:"bio"`
	Skills            MatchResult        `json:"skills"`
	Department        MatchResult        `json:"department"`
	Languages         MatchResult        `json:"languages"`
	Projects          ProjectsMatch      `json:"projects"`
	WorkExperiences   ExperiencesMatch   `json:"workExperiences"`
	PositionRelevance *PositionRelevance `json:"positionRelevance,omitempty"`
}

// MatchDetails carries the raw matches per searched area
type MatchDetails struct {
	Bio             []Match           `json:"bio"`
	Skills          []Match           `json:"skills"`
	Department      []Match           `json:"department"`
	Languages       []Match           `json:"languages"`
	Projects        []ProjectMatch    `json:"projects"`
	WorkExperiences []ExperienceMatch `json:"workExperiences"`
}

// MatchScores carries the raw match score per searched area
type MatchScores struct {
	Bio             float64 `json:"bio"`
	Skills          float64 `json:"skills"`
	Department      float64 `json:"department"`
	Languages       float64 `json:"languages"`
	Projects        float64 `json:"projects"`
	WorkExperiences float64 `json:"workExperiences"`
}

// PositionRelevanceSummary is the rounded position relevance per area
type PositionRelevanceSummary struct {
	Position        Position `json:"position"`
	Bio             int      `json:"bio"`
	Skills          int      `json:"skills"`
	Department      int      `json:"department"`
	Projects        int      `json:"projects"`
	WorkExperiences int      `json:"workExperiences"`
	Combined        int      `json:"combined"`
}

// ScoreBreakdown is the auditable decomposition of a talent's total score
type ScoreBreakdown struct {
	SkillMatch        int                       `json:"skillMatch"`
	Experience        int                       `json:"experience"`
	ProjectQuality    int                       `json:"projectQuality"`
	ProfileQuality    int                       `json:"profileQuality"`
	EducationBonus    int                       `json:"educationBonus"`
	MatchDetails      MatchDetails              `json:"matchDetails"`
	MatchScores       MatchScores               `json:"matchScores"`
	PositionRelevance *PositionRelevanceSummary `json:"positionRelevance"`
}

// TalentScore is the scorer output for one talent
type TalentScore struct {
	TotalScore int            `json:"totalScore"`
	Breakdown  ScoreBreakdown `json:"breakdown"`
}

// MatchBand is the qualitative label of a total score
type MatchBand string

const (
	MatchBandExcellent MatchBand = "excellent"
	MatchBandVeryGood  MatchBand = "veryGood"
	MatchBandGood      MatchBand = "good"
	MatchBandAverage   MatchBand = "average"
	MatchBandPoor      MatchBand = "poor"
)

// BandForScore maps a total score to its band and priority (1 = best)
func BandForScore(score int) (MatchBand, int) {
	switch {
	case score >= 85:
		return MatchBandExcellent, 1
	case score >= 70:
		return MatchBandVeryGood, 2
	case score >= 55:
		return MatchBandGood, 3
	case score >= 40:
		return MatchBandAverage, 4
	default:
		return MatchBandPoor, 5
	}
}

// ============================================================================
// Search Response
// ============================================================================

// MatchHighlights are the truncated match lists surfaced per talent
type MatchHighlights struct {
	Bio             []Match           `json:"bio"`
	Skills          []Match           `json:"skills"`
	Department      []Match           `json:"department"`
	Projects        []ProjectMatch    `json:"projects"`
	WorkExperiences []ExperienceMatch `json:"workExperiences"`
}

// TalentView is the response projection of one ranked talent
type TalentView struct {
	ID                    string          `json:"id"`
	FullName              string          `json:"fullName"`
	City                  string          `json:"city"`
	Age                   *int            `json:"age,omitempty"`
	School                string          `json:"school"`
	EducationLevel        EducationLevel  `json:"educationLevel"`
	Department            string          `json:"department"`
	ShortBio              string          `json:"shortBio"`
	Skills                []string        `json:"skills"`
	Languages             []string        `json:"languages"`
	GithubProfile         string          `json:"githubProfile,omitempty"`
	LinkedinProfile       string          `json:"linkedinProfile,omitempty"`
	ProfileCompleteness   int             `json:"profileCompleteness"`
	CreatedAt             string          `json:"createdAt"`
	TotalScore            int             `json:"totalScore"`
	MatchBand             MatchBand       `json:"matchBand"`
	MatchPriority         int             `json:"matchPriority"`
	ScoreBreakdown        ScoreBreakdown  `json:"scoreBreakdown"`
	Highlights            MatchHighlights `json:"highlights"`
	HasGithub             bool            `json:"hasGithub"`
	HasLinkedin           bool            `json:"hasLinkedin"`
	TotalExperienceMonths int             `json:"totalExperienceMonths"`
	ExperienceYears       float64         `json:"experienceYears"`
	ProjectCount          int             `json:"projectCount"`
}

// Pagination describes the page window over the filtered result set
type Pagination struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"totalPages"`
	HasNext    bool `json:"hasNext"`
	HasPrev    bool `json:"hasPrev"`
}

// ScoreDistribution counts talents per match band
type ScoreDistribution struct {
	Excellent int `json:"excellent"`
	VeryGood  int `json:"veryGood"`
	Good      int `json:"good"`
	Average   int `json:"average"`
	Poor      int `json:"poor"`
}

// QualityBuckets is the coarse high/medium/low split of total scores
type QualityBuckets struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

// SkillFrequency is one entry of the top-skills histogram
type SkillFrequency struct {
	Skill      string  `json:"skill"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// SearchStats aggregates the full filtered set before pagination
type SearchStats struct {
	TotalCandidates         int               `json:"totalCandidates"`
	AverageScore            float64           `json:"averageScore"`
	ScoreDistribution       ScoreDistribution `json:"scoreDistribution"`
	AverageExperienceMonths float64           `json:"averageExperienceMonths"`
	AverageProjectCount     float64           `json:"averageProjectCount"`
	TopSkills               []SkillFrequency  `json:"topSkills"`
	QualityBuckets          QualityBuckets    `json:"qualityBuckets"`
}

// FuzzyThresholds documents the matcher constants in the response
type FuzzyThresholds struct {
	ContainmentRatio float64 `json:"containmentRatio"`
	EditSimilarity   float64 `json:"editSimilarity"`
	ExactMatchPoints int     `json:"exactMatchPoints"`
	FuzzyMatchPoints int     `json:"fuzzyMatchPoints"`
}

// AlgorithmInfo describes how the ranking was produced
type AlgorithmInfo struct {
	Version          string          `json:"version"`
	WeightsUsed      WeightVector    `json:"weightsUsed"`
	AreasSearched    []string        `json:"areasSearched"`
	MatchingStrategy string          `json:"matchingStrategy"`
	FuzzyThresholds  FuzzyThresholds `json:"fuzzyThresholds"`
	Position         Position        `json:"position,omitempty"`
	Seniority        Seniority       `json:"seniority"`
	Keywords         []string        `json:"keywords"`
}

// SearchResponse is the data payload of a talent search
type SearchResponse struct {
	Talents        []TalentView   `json:"talents"`
	Pagination     Pagination     `json:"pagination"`
	Stats          SearchStats    `json:"stats"`
	AppliedFilters SearchCriteria `json:"appliedFilters"`
	AlgorithmInfo  AlgorithmInfo  `json:"algorithmInfo"`
}

// ============================================================================
// Export
// ============================================================================

// TalentExportRequest represents the export configuration
type TalentExportRequest struct {
	Criteria    SearchCriteria `json:"criteria"`
	Columns     []string       `json:"columns"`
	Format      string         `json:"format"` // "xlsx" or "csv"
	RequestedBy string         `json:"-"`      // authenticated user id, used for the export archive
}

// ExportableTalentColumns lists all columns that can be exported
var ExportableTalentColumns = []string{
	"rank",
	"full_name",
	"city",
	"age",
	"education_level",
	"school",
	"department",
	"skills",
	"languages",
	"total_score",
	"match_band",
	"skill_match",
	"experience_score",
	"project_score",
	"profile_score",
	"experience_years",
	"project_count",
	"github_profile",
	"linkedin_profile",
}

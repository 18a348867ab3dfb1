package postgres

import (
	"time"

	"go-talent-backend/internal/domain"

	"github.com/jackc/pgx/v5"
)

// talentRow mirrors the nullable talent_profiles columns
type talentRow struct {
	ID                  string
	FullName            string
	City                *string
	Age                 *int
	School              *string
	EducationLevel      *string
	Department          *string
	ShortBio            *string
	Skills              *string
	Languages           *string
	GithubProfile       *string
	LinkedinProfile     *string
	ProfileCompleteness *int
	CreatedAt           time.Time
}

func scanTalentRow(row pgx.Row) (talentRow, error) {
	var r talentRow
	err := row.Scan(
		&r.ID,
		&r.FullName,
		&r.City,
		&r.Age,
		&r.School,
		&r.EducationLevel,
		&r.Department,
		&r.ShortBio,
		&r.Skills,
		&r.Languages,
		&r.GithubProfile,
		&r.LinkedinProfile,
		&r.ProfileCompleteness,
		&r.CreatedAt,
	)
	return r, err
}

// toTalent adapts a stored row to the search candidate view
func (r talentRow) toTalent() domain.Talent {
	completeness := 0
	if r.ProfileCompleteness != nil {
		completeness = *r.ProfileCompleteness
	}
	return domain.Talent{
		ID:                  r.ID,
		FullName:            r.FullName,
		City:                deref(r.City),
		Age:                 r.Age,
		School:              deref(r.School),
		EducationLevel:      domain.EducationLevel(deref(r.EducationLevel)),
		Department:          deref(r.Department),
		ShortBio:            deref(r.ShortBio),
		Skills:              deref(r.Skills),
		Languages:           deref(r.Languages),
		GithubProfile:       deref(r.GithubProfile),
		LinkedinProfile:     deref(r.LinkedinProfile),
		CreatedAt:           r.CreatedAt,
		Projects:            []domain.Project{},
		WorkExperiences:     []domain.WorkExperience{},
		ProfileCompleteness: completeness,
	}
}

type projectRow struct {
	ID           string
	Title        string
	Description  *string
	Technologies *string
	ProjectType  *string
	GithubURL    *string
	LiveURL      *string
	CreatedAt    time.Time
}

func scanProjectRow(row pgx.Row, talentID *string) (projectRow, error) {
	var r projectRow
	err := row.Scan(talentID, &r.ID, &r.Title, &r.Description, &r.Technologies, &r.ProjectType, &r.GithubURL, &r.LiveURL, &r.CreatedAt)
	return r, err
}

func (r projectRow) toProject() domain.Project {
	return domain.Project{
		ID:           r.ID,
		Title:        r.Title,
		Description:  deref(r.Description),
		Technologies: deref(r.Technologies),
		ProjectType:  domain.ProjectType(deref(r.ProjectType)),
		GithubURL:    deref(r.GithubURL),
		LiveURL:      deref(r.LiveURL),
		CreatedAt:    r.CreatedAt,
	}
}

type experienceRow struct {
	CompanyName string
	Position    *string
	Description *string
	StartDate   *time.Time
	EndDate     *time.Time
	IsCurrent   bool
	WorkType    *string
}

func scanExperienceRow(row pgx.Row, talentID *string) (experienceRow, error) {
	var r experienceRow
	err := row.Scan(talentID, &r.CompanyName, &r.Position, &r.Description, &r.StartDate, &r.EndDate, &r.IsCurrent, &r.WorkType)
	return r, err
}

// toWorkExperience leaves StartDate zero when unknown; duration helpers skip such entries
func (r experienceRow) toWorkExperience() domain.WorkExperience {
	exp := domain.WorkExperience{
		CompanyName: r.CompanyName,
		Position:    deref(r.Position),
		Description: deref(r.Description),
		EndDate:     r.EndDate,
		IsCurrent:   r.IsCurrent,
		WorkType:    domain.WorkType(deref(r.WorkType)),
	}
	if r.StartDate != nil {
		exp.StartDate = *r.StartDate
	}
	return exp
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go-talent-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/lib/pq"
)

// Querier is the subset of pgxpool.Pool the repository uses
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type talentRepo struct {
	db  Querier
	now func() time.Time
}

// NewTalentRepository creates a new talent repository instance
func NewTalentRepository(db Querier) domain.TalentRepository {
	return &talentRepo{db: db, now: time.Now}
}

// searchableCondition limits every read to active, approved talents
const searchableCondition = "tp.status = 'active' AND tp.approval_status = 'approved'"

// talentColumns never includes cv_document
const talentColumns = `
	tp.id,
	tp.full_name,
	tp.city,
	EXTRACT(YEAR FROM AGE(tp.birth_date))::INT AS age,
	tp.school,
	tp.education_level,
	tp.department,
	tp.short_bio,
	tp.skills,
	tp.languages,
	tp.github_profile,
	tp.linkedin_profile,
	tp.profile_completeness,
	tp.created_at`

// buildPoolQuery builds the hard-filtered pool query
func buildPoolQuery(filter domain.HardFilter, now time.Time) (string, []interface{}) {
	conditions := []string{searchableCondition}
	args := []interface{}{}
	argIndex := 1

	if filter.City != "" {
		conditions = append(conditions, fmt.Sprintf("LOWER(tp.city) = LOWER($%d)", argIndex))
		args = append(args, filter.City)
		argIndex++
	}

	if filter.EducationLevel != "" {
		conditions = append(conditions, fmt.Sprintf("tp.education_level = $%d", argIndex))
		args = append(args, string(filter.EducationLevel))
		argIndex++
	}

	if filter.Department != "" {
		conditions = append(conditions, fmt.Sprintf("tp.department ILIKE $%d", argIndex))
		args = append(args, "%"+escapeLike(filter.Department)+"%")
		argIndex++
	}

	// Age bounds are converted to birth date bounds
	if filter.MinAge != nil {
		// Max birth date = today - min age years
		conditions = append(conditions, fmt.Sprintf("tp.birth_date <= $%d", argIndex))
		args = append(args, now.AddDate(-*filter.MinAge, 0, 0))
		argIndex++
	}

	if filter.MaxAge != nil {
		// Min birth date = today - (max age + 1) years
		conditions = append(conditions, fmt.Sprintf("tp.birth_date > $%d", argIndex))
		args = append(args, now.AddDate(-*filter.MaxAge-1, 0, 0))
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM talent_profiles tp
		WHERE %s
		ORDER BY tp.created_at DESC, tp.id
	`, talentColumns, strings.Join(conditions, " AND "))

	return query, args
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// FetchPool returns every searchable talent matching the hard filter with
// projects and work experiences attached in two batched queries
func (r *talentRepo) FetchPool(ctx context.Context, filter domain.HardFilter) ([]domain.Talent, error) {
	query, args := buildPoolQuery(filter, r.now())

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("talent pool query failed: %w", err)
	}
	defer rows.Close()

	talents := []domain.Talent{}
	for rows.Next() {
		row, err := scanTalentRow(rows)
		if err != nil {
			return nil, fmt.Errorf("talent pool scan failed: %w", err)
		}
		talents = append(talents, row.toTalent())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("talent pool rows failed: %w", err)
	}

	if err := r.attachChildren(ctx, talents); err != nil {
		return nil, err
	}
	return talents, nil
}

// GetByID returns one searchable talent or domain.ErrTalentNotFound
func (r *talentRepo) GetByID(ctx context.Context, id string) (*domain.Talent, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM talent_profiles tp
		WHERE tp.id::text = $1 AND %s
	`, talentColumns, searchableCondition)

	row, err := scanTalentRow(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTalentNotFound
		}
		return nil, fmt.Errorf("talent query failed: %w", err)
	}

	talents := []domain.Talent{row.toTalent()}
	if err := r.attachChildren(ctx, talents); err != nil {
		return nil, err
	}
	return &talents[0], nil
}

// GetFilterValues returns distinct raw values from searchable talents
func (r *talentRepo) GetFilterValues(ctx context.Context) (*domain.RawFilterValues, error) {
	values := &domain.RawFilterValues{}

	columns := []struct {
		column string
		dest   *[]string
	}{
		{"city", &values.Cities},
		{"education_level", &values.EducationLevels},
		{"department", &values.Departments},
		{"skills", &values.Skills},
		{"languages", &values.Languages},
	}

	for _, c := range columns {
		distinct, err := r.distinct(ctx, c.column)
		if err != nil {
			return nil, err
		}
		*c.dest = distinct
	}
	return values, nil
}

func (r *talentRepo) distinct(ctx context.Context, column string) ([]string, error) {
	query := fmt.Sprintf(`
		SELECT DISTINCT tp.%[1]s
		FROM talent_profiles tp
		WHERE %[2]s AND tp.%[1]s IS NOT NULL AND tp.%[1]s != ''
		ORDER BY tp.%[1]s
	`, column, searchableCondition)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("distinct %s query failed: %w", column, err)
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("distinct %s scan failed: %w", column, err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// attachChildren loads projects and work experiences for all talents at once
func (r *talentRepo) attachChildren(ctx context.Context, talents []domain.Talent) error {
	if len(talents) == 0 {
		return nil
	}

	ids := make([]string, len(talents))
	index := make(map[string]int, len(talents))
	for i, t := range talents {
		ids[i] = t.ID
		index[t.ID] = i
	}

	projects, err := r.db.Query(ctx, `
		SELECT talent_id::text, id::text, title, description, technologies, project_type, github_url, live_url, created_at
		FROM talent_projects
		WHERE talent_id = ANY($1::uuid[])
		ORDER BY created_at DESC, id
	`, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("talent projects query failed: %w", err)
	}
	defer projects.Close()

	for projects.Next() {
		var talentID string
		row, err := scanProjectRow(projects, &talentID)
		if err != nil {
			return fmt.Errorf("talent projects scan failed: %w", err)
		}
		if i, ok := index[talentID]; ok {
			talents[i].Projects = append(talents[i].Projects, row.toProject())
		}
	}
	if err := projects.Err(); err != nil {
		return fmt.Errorf("talent projects rows failed: %w", err)
	}

	experiences, err := r.db.Query(ctx, `
		SELECT talent_id::text, company_name, position, description, start_date, end_date, is_current, work_type
		FROM talent_work_experiences
		WHERE talent_id = ANY($1::uuid[])
		ORDER BY start_date DESC NULLS LAST, id
	`, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("talent work experiences query failed: %w", err)
	}
	defer experiences.Close()

	for experiences.Next() {
		var talentID string
		row, err := scanExperienceRow(experiences, &talentID)
		if err != nil {
			return fmt.Errorf("talent work experiences scan failed: %w", err)
		}
		if i, ok := index[talentID]; ok {
			talents[i].WorkExperiences = append(talents[i].WorkExperiences, row.toWorkExperience())
		}
	}
	if err := experiences.Err(); err != nil {
		return fmt.Errorf("talent work experiences rows failed: %w", err)
	}
	return nil
}

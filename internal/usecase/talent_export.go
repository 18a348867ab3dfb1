package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strings"
	"time"

	"go-talent-backend/internal/domain"
	"go-talent-backend/internal/search"
	"go-talent-backend/pkg/apperror"

	"github.com/xuri/excelize/v2"
)

// Column headers with friendly names
var talentExportHeaders = map[string]string{
	"rank":             "RANK",
	"full_name":        "FULL NAME",
	"city":             "CITY",
	"age":              "AGE",
	"education_level":  "EDUCATION",
	"school":           "SCHOOL",
	"department":       "DEPARTMENT",
	"skills":           "SKILLS",
	"languages":        "LANGUAGES",
	"total_score":      "TOTAL SCORE",
	"match_band":       "MATCH",
	"skill_match":      "SKILL SCORE",
	"experience_score": "EXPERIENCE SCORE",
	"project_score":    "PROJECT SCORE",
	"profile_score":    "PROFILE SCORE",
	"experience_years": "EXPERIENCE (YEARS)",
	"project_count":    "PROJECTS",
	"github_profile":   "GITHUB",
	"linkedin_profile": "LINKEDIN",
}

// Export ranks the pool and renders the result as xlsx or csv
func (u *talentUsecase) Export(ctx context.Context, req domain.TalentExportRequest) ([]byte, string, error) {
	format := canonical(req.Format)
	if format == "" {
		format = "xlsx"
	}
	if format != "xlsx" && format != "csv" {
		return nil, "", apperror.BadRequest(fmt.Sprintf("Unsupported export format: %s", req.Format))
	}

	columns, err := exportColumns(req.Columns)
	if err != nil {
		return nil, "", err
	}

	// Export always starts at the first page and is capped by ExportMaxRows
	criteria := req.Criteria
	criteria.Page = 1
	criteria.Limit = u.cfg.ExportMaxRows
	criteria = u.normalize(criteria, SearchLimits{DefaultLimit: u.cfg.ExportMaxRows, MaxLimit: u.cfg.ExportMaxRows})

	weights := search.ResolveWeights(criteria.Position, criteria.Seniority)
	outcome, err := u.rank(ctx, criteria, weights)
	if err != nil {
		return nil, "", err
	}
	var rows []search.Ranked
	if outcome != nil {
		rows = outcome.Page
	}

	u.recorder.RecordExport(format)

	var data []byte
	var filename string
	if format == "csv" {
		data, filename, err = u.exportCSV(rows, columns)
	} else {
		data, filename, err = u.exportExcel(rows, columns)
	}
	if err != nil {
		return nil, "", err
	}

	u.archive(ctx, req.RequestedBy, filename, format, data)
	return data, filename, nil
}

// archive stores a copy of the export. Failures never fail the download.
func (u *talentUsecase) archive(ctx context.Context, requester, filename, format string, data []byte) {
	if u.cfg.Archive == nil {
		return
	}
	key, err := u.cfg.Archive.Archive(ctx, requester, filename, ExportContentType(format), data)
	if err != nil {
		u.recorder.RecordSearchError("archive")
		u.log.Warn("Failed to archive talent export", "requester", requester, "file", filename, "error", err)
		return
	}
	u.log.Info("Talent export archived", "requester", requester, "key", key, "bytes", len(data))
}

// ExportContentType returns the MIME type for an export format
func ExportContentType(format string) string {
	if format == "csv" {
		return "text/csv"
	}
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// exportColumns dedupes the requested columns and rejects unknown ones. Empty selects all.
func exportColumns(requested []string) ([]string, error) {
	if len(requested) == 0 {
		out := make([]string, len(domain.ExportableTalentColumns))
		copy(out, domain.ExportableTalentColumns)
		return out, nil
	}

	valid := make(map[string]bool, len(domain.ExportableTalentColumns))
	for _, col := range domain.ExportableTalentColumns {
		valid[col] = true
	}

	seen := make(map[string]bool)
	columns := make([]string, 0, len(requested))
	for _, col := range requested {
		col = canonical(col)
		if col == "" || seen[col] {
			continue
		}
		if !valid[col] {
			return nil, apperror.BadRequest(fmt.Sprintf("Invalid export column: %s", col))
		}
		seen[col] = true
		columns = append(columns, col)
	}
	if len(columns) == 0 {
		return nil, apperror.BadRequest("No export columns selected")
	}
	return columns, nil
}

// exportExcel generates an Excel file from ranked talents
func (u *talentUsecase) exportExcel(rows []search.Ranked, columns []string) ([]byte, string, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Talents"
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, "", apperror.Internal(fmt.Errorf("failed to prepare sheet: %w", err))
	}

	for i, col := range columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheetName, cell, talentExportHeaders[col])
	}

	// Style headers - Dark Blue background with White text
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#1E3A5F"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	endCell, _ := excelize.CoordinatesToCellName(len(columns), 1)
	_ = f.SetCellStyle(sheetName, "A1", endCell, headerStyle)

	for rowIdx, r := range rows {
		for colIdx, col := range columns {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			_ = f.SetCellValue(sheetName, cell, u.talentFieldValue(rowIdx+1, r, col))
		}
	}

	for i := range columns {
		colName, _ := excelize.ColumnNumberToName(i + 1)
		_ = f.SetColWidth(sheetName, colName, colName, 20)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, "", apperror.Internal(fmt.Errorf("failed to write Excel file: %w", err))
	}

	return buf.Bytes(), exportFilename(u.cfg.Now(), "xlsx"), nil
}

// exportCSV generates a CSV file from ranked talents
func (u *talentUsecase) exportCSV(rows []search.Ranked, columns []string) ([]byte, string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := make([]string, len(columns))
	for i, col := range columns {
		header[i] = talentExportHeaders[col]
	}
	_ = w.Write(header)
	for i, r := range rows {
		record := make([]string, len(columns))
		for j, col := range columns {
			record[j] = fmt.Sprint(u.talentFieldValue(i+1, r, col))
		}
		_ = w.Write(record)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", apperror.Internal(fmt.Errorf("failed to write CSV file: %w", err))
	}

	return buf.Bytes(), exportFilename(u.cfg.Now(), "csv"), nil
}

// talentFieldValue extracts one export cell
func (u *talentUsecase) talentFieldValue(rank int, r search.Ranked, field string) interface{} {
	t := r.Talent
	b := r.Score.Breakdown

	switch field {
	case "rank":
		return rank
	case "full_name":
		return t.FullName
	case "city":
		return t.City
	case "age":
		if t.Age != nil {
			return *t.Age
		}
		return ""
	case "education_level":
		return string(t.EducationLevel)
	case "school":
		return t.School
	case "department":
		return t.Department
	case "skills":
		return strings.Join(search.SplitList(u.log, "skills", t.Skills), ", ")
	case "languages":
		return strings.Join(search.SplitList(u.log, "languages", t.Languages), ", ")
	case "total_score":
		return r.Score.TotalScore
	case "match_band":
		return string(r.Band)
	case "skill_match":
		return b.SkillMatch
	case "experience_score":
		return b.Experience
	case "project_score":
		return b.ProjectQuality
	case "profile_score":
		return b.ProfileQuality
	case "experience_years":
		return search.ExperienceYears(t.TotalExperienceMonths)
	case "project_count":
		return t.ProjectCount
	case "github_profile":
		return t.GithubProfile
	case "linkedin_profile":
		return t.LinkedinProfile
	default:
		return ""
	}
}

func exportFilename(now time.Time, ext string) string {
	return fmt.Sprintf("talent_search_%s.%s", now.Format("20060102_150405"), ext)
}

package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type enumProbe struct {
	EducationLevel string `validate:"omitempty,education_level"`
	SortBy         string `validate:"omitempty,sort_by"`
	WorkType       string `validate:"omitempty,work_type"`
	Seniority      string `validate:"omitempty,seniority"`
	Position       string `validate:"omitempty,position"`
	Format         string `validate:"export_format"`
	Page           int    `validate:"min=1"`
}

func TestCustomValidators(t *testing.T) {
	v := New()

	valid := enumProbe{
		EducationLevel: "masters",
		SortBy:         "newest",
		WorkType:       "remote",
		Seniority:      "senior",
		Position:       "data-science",
		Format:         "csv",
		Page:           1,
	}
	assert.NoError(t, v.Struct(valid))
	assert.NoError(t, v.Struct(enumProbe{Page: 1}), "empty optional enums are accepted")

	invalid := enumProbe{
		EducationLevel: "phd",
		SortBy:         "salary",
		WorkType:       "gig",
		Seniority:      "principal",
		Position:       "qa",
		Format:         "pdf",
		Page:           0,
	}
	err := v.Struct(invalid)
	assert.Error(t, err)
	assert.ElementsMatch(t,
		[]string{"EducationLevel", "SortBy", "WorkType", "Seniority", "Position", "Format", "Page"},
		FailedFields(err),
	)
}

func TestFormatValidationErrors(t *testing.T) {
	v := New()
	err := v.Struct(enumProbe{SortBy: "salary", Page: 0})

	messages := FormatValidationErrors(err)
	assert.Contains(t, messages, `Sort: unknown value "salary"`)
	assert.Contains(t, messages, "Page: must be at least 1")
}

func TestFormatValidationErrorsOtherError(t *testing.T) {
	assert.Equal(t, []string{"boom"}, FormatValidationErrors(assertErr("boom")))
	assert.Nil(t, FailedFields(assertErr("boom")))
}

func TestFormatCamelCase(t *testing.T) {
	assert.Equal(t, "Has Github", formatCamelCase("HasGithub"))
}

type assertErr string

func (e assertErr) Error() string { return string(e) }

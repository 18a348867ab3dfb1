package validation

import (
	"go-talent-backend/internal/domain"

	"github.com/go-playground/validator/v10"
)

// New returns a validator with every custom search validator registered
func New() *validator.Validate {
	v := validator.New()
	RegisterValidators(v)
	return v
}

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("education_level", ValidEducationLevel)
	_ = v.RegisterValidation("sort_by", ValidSortBy)
	_ = v.RegisterValidation("work_type", ValidWorkType)
	_ = v.RegisterValidation("seniority", ValidSeniority)
	_ = v.RegisterValidation("position", ValidPosition)
	_ = v.RegisterValidation("export_format", ValidExportFormat)
}

// ValidEducationLevel accepts the known education levels
func ValidEducationLevel(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true // Optional, use required if needed
	}
	return domain.EducationLevel(val).IsValid()
}

// ValidSortBy accepts the known sort keys
func ValidSortBy(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return domain.SortBy(val).IsValid()
}

// ValidWorkType accepts the known work types
func ValidWorkType(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return domain.WorkType(val).IsValid()
}

// ValidSeniority accepts the known seniority levels
func ValidSeniority(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return domain.Seniority(val).IsValid()
}

// ValidPosition accepts positions that have a keyword table
func ValidPosition(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return domain.Position(val).IsValid()
}

// ValidExportFormat accepts "xlsx" and "csv"
func ValidExportFormat(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "", "xlsx", "csv":
		return true
	}
	return false
}

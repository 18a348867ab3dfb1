package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to user-facing labels
var FieldLabels = map[string]string{
	"EducationLevel":      "Education level",
	"MinAge":              "Minimum age",
	"MaxAge":              "Maximum age",
	"Position":            "Position",
	"Seniority":           "Seniority",
	"WorkType":            "Work type",
	"MinExperienceMonths": "Minimum experience (months)",
	"MinProjectCount":     "Minimum project count",
	"MinScore":            "Minimum score",
	"SortBy":              "Sort",
	"Page":                "Page",
	"Limit":               "Limit",
	"Format":              "Export format",
}

// FormatValidationErrors converts validator.ValidationErrors to user-friendly messages
func FormatValidationErrors(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}
	return messages
}

// FailedFields returns the struct field names that failed validation
func FailedFields(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}
	fields := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		fields = append(fields, e.StructField())
	}
	return fields
}

func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.StructField())
	param := e.Param()

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s: is required", label)
	case "min":
		return fmt.Sprintf("%s: must be at least %s", label, param)
	case "max":
		return fmt.Sprintf("%s: must be at most %s", label, param)
	case "oneof":
		return fmt.Sprintf("%s: must be one of: %s", label, strings.ReplaceAll(param, " ", ", "))
	case "education_level", "sort_by", "work_type", "seniority", "position", "export_format":
		return fmt.Sprintf("%s: unknown value %q", label, fmt.Sprint(e.Value()))
	default:
		return fmt.Sprintf("%s: validation failed (%s)", label, e.Tag())
	}
}

func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	return formatCamelCase(fieldName)
}

// formatCamelCase converts CamelCase to spaced words
func formatCamelCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune(' ')
		}
		result.WriteRune(r)
	}
	return result.String()
}

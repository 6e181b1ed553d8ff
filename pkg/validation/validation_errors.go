package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps JSON field names to user-friendly labels
var FieldLabels = map[string]string{
	// Personal details
	"first_name":     "First name",
	"last_name":      "Last name",
	"email":          "Email",
	"mobile_number":  "Mobile number",
	"date_of_birth":  "Date of birth",
	"street_address": "Street address",
	"city":           "City",
	"state":          "State",
	"postal_code":    "Postal code",
	"country":        "Country",
	"title":          "Title",
	"marital_status": "Marital status",

	// Career preferences
	"preferred_work_type": "Preferred work type",
	"expected_salary":     "Expected salary",
	"availability_date":   "Availability date",

	// Child records
	"university_name": "University name",
	"degree_type":     "Degree type",
	"course_name":     "Course name",
	"job_title":       "Job title",
	"company_name":    "Company name",
	"start_date":      "Start date",
	"end_date":        "End date",
	"level":           "Skill level",
	"category":        "Category",
	"issuer":          "Issuer",
	"date_obtained":   "Date obtained",
	"expiry_date":     "Expiry date",
	"proficiency":     "Proficiency",
	"position":        "Position",
	"company":         "Company",
	"phone":           "Phone",
}

// FormatValidationErrors converts validator.ValidationErrors to user-friendly messages
func FormatValidationErrors(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		// Not a validation error, return generic message
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}
	return messages
}

// formatSingleError formats a single validation error as "<path>: <message>"
func formatSingleError(e validator.FieldError) string {
	path := fieldPath(e)
	label := getFieldLabel(e.Field())
	param := e.Param()

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s: %s is required", path, label)

	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s: %s must be at most %s characters", path, label, param)
		}
		return fmt.Sprintf("%s: %s must be at most %s", path, label, param)

	case "enum":
		return fmt.Sprintf("%s: %q is not an allowed value for %s", path, fmt.Sprint(e.Value()), label)

	case "notags":
		return fmt.Sprintf("%s: %s must not contain HTML markup", path, label)

	case "ymd":
		return fmt.Sprintf("%s: %s must be a date in YYYY-MM-DD format", path, label)

	default:
		return fmt.Sprintf("%s: %s failed validation (%s)", path, label, e.Tag())
	}
}

// fieldPath strips the root struct name from the namespace
// ("FormData.educations[0].course_name" -> "educations[0].course_name").
func fieldPath(e validator.FieldError) string {
	ns := e.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

// getFieldLabel returns the user-friendly label for a field
func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	return formatSnakeCase(fieldName)
}

// formatSnakeCase converts snake_case to a capitalised phrase
func formatSnakeCase(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

package validation_test

import (
	"errors"
	"testing"

	"form-data-backend/internal/domain"
	"form-data-backend/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validFormData() *domain.FormData {
	return &domain.FormData{
		FirstName:     "John",
		LastName:      "Doe",
		Email:         "john.doe@example.com",
		MobileNumber:  "+1234567890",
		DateOfBirth:   "1990-01-01",
		StreetAddress: "123 Main St",
		City:          "Anytown",
		State:         "NY",
		PostalCode:    "12345",
		Country:       "USA",
	}
}

func TestValidFormDataPasses(t *testing.T) {
	v := validation.New()

	fd := validFormData()
	fd.Title = domain.TitleMr
	fd.MaritalStatus = domain.MaritalSingle
	fd.PreferredWorkType = domain.WorkOnsite
	fd.Educations = []domain.EducationInput{{UniversityName: "MIT", CourseName: "CS", DegreeType: domain.DegreeBachelor}}
	fd.Languages = []domain.LanguageInput{{Name: "English"}}

	assert.NoError(t, v.Struct(fd))
}

func TestMissingRequiredFields(t *testing.T) {
	v := validation.New()

	err := v.Struct(&domain.FormData{FirstName: "John"})
	require.Error(t, err)

	msgs := validation.FormatValidationErrors(err)
	assert.Contains(t, msgs, "last_name: Last name is required")
	assert.Contains(t, msgs, "country: Country is required")
	assert.NotContains(t, msgs, "first_name: First name is required")
}

func TestInvalidEnumValues(t *testing.T) {
	v := validation.New()

	fd := validFormData()
	fd.Title = "InvalidTitle"
	fd.MaritalStatus = "InvalidStatus"

	err := v.Struct(fd)
	require.Error(t, err)

	msgs := validation.FormatValidationErrors(err)
	assert.Len(t, msgs, 2)
	assert.Contains(t, msgs, `title: "InvalidTitle" is not an allowed value for Title`)
}

func TestNestedChildValidation(t *testing.T) {
	v := validation.New()

	fd := validFormData()
	fd.Skills = []domain.SkillInput{
		{Name: "Go", Category: "Backend", Level: domain.SkillExpert},
		{Name: "Rust", Category: "Backend", Level: "Wizard"},
	}
	fd.JobExperiences = []domain.JobExperienceInput{{JobTitle: "Dev", CompanyName: "Acme", StartDate: "01/02/2020"}}

	err := v.Struct(fd)
	require.Error(t, err)

	msgs := validation.FormatValidationErrors(err)
	assert.Contains(t, msgs, `skills[1].level: "Wizard" is not an allowed value for Skill level`)
	assert.Contains(t, msgs, "job_experiences[0].start_date: Start date must be a date in YYYY-MM-DD format")
}

func TestDateShapeOnly(t *testing.T) {
	v := validation.New()

	fd := validFormData()
	fd.DateOfBirth = "1990-13-45" // shape is valid, calendar is not checked
	fd.AvailabilityDate = ""
	assert.NoError(t, v.Struct(fd))

	fd.AvailabilityDate = "soon"
	assert.Error(t, v.Struct(fd))
}

func TestMaxLength(t *testing.T) {
	v := validation.New()

	fd := validFormData()
	fd.References = []domain.ReferenceInput{{
		Name: "Jane", Position: "CTO", Company: "Acme", Email: "jane@acme.io",
		Phone: "+1234567890123456789012345",
	}}

	err := v.Struct(fd)
	require.Error(t, err)
	assert.Equal(t, []string{"references[0].phone: Phone must be at most 20 characters"}, validation.FormatValidationErrors(err))
}

func TestFormatNonValidationError(t *testing.T) {
	assert.Equal(t, []string{"boom"}, validation.FormatValidationErrors(errors.New("boom")))
}

func TestHasMarkup(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"plain", "John", false},
		{"empty", "", false},
		{"surrounding whitespace", "  John ", false},
		{"bare comparison", "a < b && c > d", false},
		{"less than digit", "x<3", false},
		{"ampersand and quotes", `R&D, O'Brien "Jr"`, false},
		{"escaped entities", "&lt;b&gt;bold&lt;/b&gt;", false},
		{"crlf text with comparison", "line one\r\nline < two", false},
		{"bold", "<b>John</b>", true},
		{"script", "<script>alert(1)</script>", true},
		{"generic angle brackets", "List<T> and Map<K,V>", true},
		{"inline tag", "a<b>c", true},
		{"comment", "hi <!-- x --> there", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validation.HasMarkup(tt.input))
		})
	}
}

func TestMarkupRejectedInFreeText(t *testing.T) {
	v := validation.New()

	fd := validFormData()
	fd.CareerGoals = "Lead <team> of 5"
	fd.References = []domain.ReferenceInput{{
		Name: "A <em>B</em>", Position: "CTO", Company: "Acme", Email: "a@b.c", Phone: "555",
	}}

	err := v.Struct(fd)
	require.Error(t, err)

	msgs := validation.FormatValidationErrors(err)
	assert.Len(t, msgs, 2)
	assert.Contains(t, msgs, "career_goals: Career goals must not contain HTML markup")
	assert.Contains(t, msgs, "references[0].name: Name must not contain HTML markup")
}

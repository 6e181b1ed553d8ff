package domain

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrCreateFailed = errors.New("error creating form data")
	ErrUpdateFailed = errors.New("error updating form data")
	ErrDeleteFailed = errors.New("error deleting form data")
)

// ============================================================================
// Input (validated request payload)
// ============================================================================

// FormData is the full profile submission. Updates replace the whole record,
// including every child collection.
type FormData struct {
	FirstName     string        `json:"first_name" validate:"required,max=100,notags"`
	LastName      string        `json:"last_name" validate:"required,max=100,notags"`
	Email         string        `json:"email" validate:"required,max=255,notags"`
	MobileNumber  string        `json:"mobile_number" validate:"required,max=20,notags"`
	DateOfBirth   string        `json:"date_of_birth" validate:"required,ymd"`
	StreetAddress string        `json:"street_address" validate:"required,notags"`
	City          string        `json:"city" validate:"required,max=100,notags"`
	State         string        `json:"state" validate:"required,max=100,notags"`
	PostalCode    string        `json:"postal_code" validate:"required,max=20,notags"`
	Country       string        `json:"country" validate:"required,max=100,notags"`
	Title         Title         `json:"title" validate:"omitempty,enum"`
	MaritalStatus MaritalStatus `json:"marital_status" validate:"omitempty,enum"`
	Developer     string        `json:"developer" validate:"max=255,notags"`
	Job           string        `json:"job" validate:"max=255,notags"`

	Educations     []EducationInput     `json:"educations" validate:"dive"`
	JobExperiences []JobExperienceInput `json:"job_experiences" validate:"dive"`
	Skills         []SkillInput         `json:"skills" validate:"dive"`
	Certifications []CertificationInput `json:"certifications" validate:"dive"`
	Languages      []LanguageInput      `json:"languages" validate:"dive"`
	Projects       []ProjectInput       `json:"projects" validate:"dive"`
	References     []ReferenceInput     `json:"references" validate:"dive"`

	PortfolioWebsite string `json:"portfolio_website" validate:"max=500,notags"`
	GithubURL        string `json:"github_url" validate:"max=500,notags"`
	LinkedinURL      string `json:"linkedin_url" validate:"max=500,notags"`

	PreferredWorkType WorkType `json:"preferred_work_type" validate:"omitempty,enum"`
	ExpectedSalary    string   `json:"expected_salary" validate:"max=50,notags"`
	PreferredLocation string   `json:"preferred_location" validate:"max=255,notags"`
	AvailabilityDate  string   `json:"availability_date" validate:"ymd"`
	CareerGoals       string   `json:"career_goals" validate:"notags"`

	ProfessionalSummary string `json:"professional_summary" validate:"notags"`
	Hobbies             string `json:"hobbies" validate:"notags"`
	VolunteerWork       string `json:"volunteer_work" validate:"notags"`
	AdditionalNotes     string `json:"additional_notes" validate:"notags"`
}

// Child inputs accept a client-side id (forms generate them for list keys);
// it is ignored and the server assigns its own.

type EducationInput struct {
	ID             string     `json:"id,omitempty"`
	UniversityName string     `json:"university_name" validate:"required,max=255,notags"`
	DegreeType     DegreeType `json:"degree_type" validate:"omitempty,enum"`
	CourseName     string     `json:"course_name" validate:"required,max=255,notags"`
}

type JobExperienceInput struct {
	ID           string `json:"id,omitempty"`
	JobTitle     string `json:"job_title" validate:"required,max=255,notags"`
	CompanyName  string `json:"company_name" validate:"required,max=255,notags"`
	StartDate    string `json:"start_date" validate:"required,ymd"`
	EndDate      string `json:"end_date" validate:"ymd"`
	IsPresentJob bool   `json:"is_present_job"`
	Description  string `json:"description" validate:"notags"`
}

type SkillInput struct {
	ID       string     `json:"id,omitempty"`
	Name     string     `json:"name" validate:"required,max=255,notags"`
	Level    SkillLevel `json:"level" validate:"omitempty,enum"`
	Category string     `json:"category" validate:"required,max=255,notags"`
}

type CertificationInput struct {
	ID           string `json:"id,omitempty"`
	Name         string `json:"name" validate:"required,max=255,notags"`
	Issuer       string `json:"issuer" validate:"required,max=255,notags"`
	DateObtained string `json:"date_obtained" validate:"required,ymd"`
	ExpiryDate   string `json:"expiry_date" validate:"ymd"`
	HasExpiry    *bool  `json:"has_expiry"`
}

// Expires reports has_expiry, which defaults to true when omitted.
func (c CertificationInput) Expires() bool {
	if c.HasExpiry == nil {
		return true
	}
	return *c.HasExpiry
}

type LanguageInput struct {
	ID          string           `json:"id,omitempty"`
	Name        string           `json:"name" validate:"required,max=255,notags"`
	Proficiency ProficiencyLevel `json:"proficiency" validate:"omitempty,enum"`
}

type ProjectInput struct {
	ID           string `json:"id,omitempty"`
	Title        string `json:"title" validate:"required,max=255,notags"`
	Description  string `json:"description" validate:"notags"`
	Technologies string `json:"technologies" validate:"notags"`
	Link         string `json:"link" validate:"max=500,notags"`
	StartDate    string `json:"start_date" validate:"required,ymd"`
	EndDate      string `json:"end_date" validate:"ymd"`
	IsOngoing    bool   `json:"is_ongoing"`
}

type ReferenceInput struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"name" validate:"required,max=255,notags"`
	Position string `json:"position" validate:"required,max=255,notags"`
	Company  string `json:"company" validate:"required,max=255,notags"`
	Email    string `json:"email" validate:"required,max=255,notags"`
	Phone    string `json:"phone" validate:"required,max=20,notags"`
}

// ============================================================================
// Persisted records
// ============================================================================

type FormDataRecord struct {
	ID                  uuid.UUID
	FirstName           string
	LastName            string
	Email               string
	MobileNumber        string
	DateOfBirth         string
	StreetAddress       string
	City                string
	State               string
	PostalCode          string
	Country             string
	Title               *string
	MaritalStatus       *string
	Developer           string
	Job                 string
	PortfolioWebsite    string
	GithubURL           string
	LinkedinURL         string
	PreferredWorkType   *string
	ExpectedSalary      string
	PreferredLocation   string
	AvailabilityDate    string
	CareerGoals         string
	ProfessionalSummary string
	Hobbies             string
	VolunteerWork       string
	AdditionalNotes     string
	CreatedAt           time.Time
	UpdatedAt           time.Time

	Educations     []EducationRecord
	JobExperiences []JobExperienceRecord
	Skills         []SkillRecord
	Certifications []CertificationRecord
	Languages      []LanguageRecord
	Projects       []ProjectRecord
	References     []ReferenceRecord
}

type EducationRecord struct {
	ID             uuid.UUID
	FormDataID     uuid.UUID
	UniversityName string
	DegreeType     *string
	CourseName     string
}

type JobExperienceRecord struct {
	ID           uuid.UUID
	FormDataID   uuid.UUID
	JobTitle     string
	CompanyName  string
	StartDate    string
	EndDate      string
	IsPresentJob bool
	Description  string
}

type SkillRecord struct {
	ID         uuid.UUID
	FormDataID uuid.UUID
	Name       string
	Level      *string
	Category   string
}

type CertificationRecord struct {
	ID           uuid.UUID
	FormDataID   uuid.UUID
	Name         string
	Issuer       string
	DateObtained string
	ExpiryDate   string
	HasExpiry    bool
}

type LanguageRecord struct {
	ID          uuid.UUID
	FormDataID  uuid.UUID
	Name        string
	Proficiency *string
}

type ProjectRecord struct {
	ID           uuid.UUID
	FormDataID   uuid.UUID
	Title        string
	Description  string
	Technologies string
	Link         string
	StartDate    string
	EndDate      string
	IsOngoing    bool
}

type ReferenceRecord struct {
	ID         uuid.UUID
	FormDataID uuid.UUID
	Name       string
	Position   string
	Company    string
	Email      string
	Phone      string
}

// ============================================================================
// Output
// ============================================================================

type FormDataResponse struct {
	ID                  string                  `json:"id"`
	FirstName           string                  `json:"first_name"`
	LastName            string                  `json:"last_name"`
	Email               string                  `json:"email"`
	MobileNumber        string                  `json:"mobile_number"`
	DateOfBirth         string                  `json:"date_of_birth"`
	StreetAddress       string                  `json:"street_address"`
	City                string                  `json:"city"`
	State               string                  `json:"state"`
	PostalCode          string                  `json:"postal_code"`
	Country             string                  `json:"country"`
	Title               *string                 `json:"title"`
	MaritalStatus       *string                 `json:"marital_status"`
	Developer           string                  `json:"developer"`
	Job                 string                  `json:"job"`
	PortfolioWebsite    string                  `json:"portfolio_website"`
	GithubURL           string                  `json:"github_url"`
	LinkedinURL         string                  `json:"linkedin_url"`
	PreferredWorkType   *string                 `json:"preferred_work_type"`
	ExpectedSalary      string                  `json:"expected_salary"`
	PreferredLocation   string                  `json:"preferred_location"`
	AvailabilityDate    string                  `json:"availability_date"`
	CareerGoals         string                  `json:"career_goals"`
	ProfessionalSummary string                  `json:"professional_summary"`
	Hobbies             string                  `json:"hobbies"`
	VolunteerWork       string                  `json:"volunteer_work"`
	AdditionalNotes     string                  `json:"additional_notes"`
	CreatedAt           *string                 `json:"created_at"`
	UpdatedAt           *string                 `json:"updated_at"`
	Educations          []EducationResponse     `json:"educations"`
	JobExperiences      []JobExperienceResponse `json:"job_experiences"`
	Skills              []SkillResponse         `json:"skills"`
	Certifications      []CertificationResponse `json:"certifications"`
	Languages           []LanguageResponse      `json:"languages"`
	Projects            []ProjectResponse       `json:"projects"`
	References          []ReferenceResponse     `json:"references"`
}

type EducationResponse struct {
	ID             string  `json:"id"`
	UniversityName string  `json:"university_name"`
	DegreeType     *string `json:"degree_type"`
	CourseName     string  `json:"course_name"`
}

type JobExperienceResponse struct {
	ID           string `json:"id"`
	JobTitle     string `json:"job_title"`
	CompanyName  string `json:"company_name"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	IsPresentJob bool   `json:"is_present_job"`
	Description  string `json:"description"`
}

type SkillResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Level    *string `json:"level"`
	Category string  `json:"category"`
}

type CertificationResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Issuer       string `json:"issuer"`
	DateObtained string `json:"date_obtained"`
	ExpiryDate   string `json:"expiry_date"`
	HasExpiry    bool   `json:"has_expiry"`
}

type LanguageResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Proficiency *string `json:"proficiency"`
}

type ProjectResponse struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Technologies string `json:"technologies"`
	Link         string `json:"link"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	IsOngoing    bool   `json:"is_ongoing"`
}

type ReferenceResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position"`
	Company  string `json:"company"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// CreateResponse is returned by the create endpoint
type CreateResponse struct {
	ID string `json:"id"`
}

// ============================================================================
// Search, storage info, export
// ============================================================================

// SearchFilter holds optional case-insensitive substring filters, combined with AND.
// Empty fields are not applied.
type SearchFilter struct {
	FirstName string
	LastName  string
	Email     string
	JobTitle  string
}

// IsEmpty reports whether no filter is set
func (f SearchFilter) IsEmpty() bool {
	return f.FirstName == "" && f.LastName == "" && f.Email == "" && f.JobTitle == ""
}

// StorageCounts is the raw row count per table
type StorageCounts struct {
	FormData    int64
	Collections map[string]int64
}

type StorageInfo struct {
	TotalEntries   int64            `json:"total_entries"`
	StorageType    string           `json:"storage_type"`
	DatabaseEngine string           `json:"database_engine"`
	Collections    map[string]int64 `json:"collections"`
}

const (
	ExportFormatXLSX = "xlsx"
	ExportFormatCSV  = "csv"
)

type ExportRequest struct {
	Filter SearchFilter
	Format string
}

// ============================================================================
// Interfaces
// ============================================================================

// FormDataRepository persists profiles with their child collections.
// Lookups return found=false (and a nil error) for malformed or unknown ids.
type FormDataRepository interface {
	Create(ctx context.Context, input *FormData) (*FormDataRecord, error)
	GetByID(ctx context.Context, id string) (*FormDataRecord, bool, error)
	GetAll(ctx context.Context) ([]FormDataRecord, error)
	Search(ctx context.Context, filter SearchFilter) ([]FormDataRecord, error)
	Update(ctx context.Context, id string, input *FormData) (*FormDataRecord, bool, error)
	Delete(ctx context.Context, id string) (*FormDataRecord, bool, error)
	Count(ctx context.Context) (*StorageCounts, error)
}

type FormDataUsecase interface {
	CreateFormData(ctx context.Context, input *FormData) (*FormDataResponse, error)
	GetFormData(ctx context.Context, id string) (*FormDataResponse, bool, error)
	GetAllFormData(ctx context.Context) ([]FormDataResponse, error)
	SearchFormData(ctx context.Context, filter SearchFilter) ([]FormDataResponse, error)
	UpdateFormData(ctx context.Context, id string, input *FormData) (*FormDataResponse, bool, error)
	DeleteFormData(ctx context.Context, id string) (*FormDataResponse, bool, error)
	GetStorageInfo(ctx context.Context) (*StorageInfo, error)
	ExportFormData(ctx context.Context, req ExportRequest) ([]byte, string, error)
}

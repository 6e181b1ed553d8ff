// Package mapper converts persisted profile records into API responses.
package mapper

import (
	"time"

	"form-data-backend/internal/domain"
)

func formatTime(t time.Time) *string {
	if t.IsZero() {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}

// ToResponse maps a record and all of its collections. A nil record maps to nil.
func ToResponse(rec *domain.FormDataRecord) *domain.FormDataResponse {
	if rec == nil {
		return nil
	}

	resp := &domain.FormDataResponse{
		ID:                  rec.ID.String(),
		FirstName:           rec.FirstName,
		LastName:            rec.LastName,
		Email:               rec.Email,
		MobileNumber:        rec.MobileNumber,
		DateOfBirth:         rec.DateOfBirth,
		StreetAddress:       rec.StreetAddress,
		City:                rec.City,
		State:               rec.State,
		PostalCode:          rec.PostalCode,
		Country:             rec.Country,
		Title:               rec.Title,
		MaritalStatus:       rec.MaritalStatus,
		Developer:           rec.Developer,
		Job:                 rec.Job,
		PortfolioWebsite:    rec.PortfolioWebsite,
		GithubURL:           rec.GithubURL,
		LinkedinURL:         rec.LinkedinURL,
		PreferredWorkType:   rec.PreferredWorkType,
		ExpectedSalary:      rec.ExpectedSalary,
		PreferredLocation:   rec.PreferredLocation,
		AvailabilityDate:    rec.AvailabilityDate,
		CareerGoals:         rec.CareerGoals,
		ProfessionalSummary: rec.ProfessionalSummary,
		Hobbies:             rec.Hobbies,
		VolunteerWork:       rec.VolunteerWork,
		AdditionalNotes:     rec.AdditionalNotes,
		CreatedAt:           formatTime(rec.CreatedAt),
		UpdatedAt:           formatTime(rec.UpdatedAt),

		Educations:     make([]domain.EducationResponse, 0, len(rec.Educations)),
		JobExperiences: make([]domain.JobExperienceResponse, 0, len(rec.JobExperiences)),
		Skills:         make([]domain.SkillResponse, 0, len(rec.Skills)),
		Certifications: make([]domain.CertificationResponse, 0, len(rec.Certifications)),
		Languages:      make([]domain.LanguageResponse, 0, len(rec.Languages)),
		Projects:       make([]domain.ProjectResponse, 0, len(rec.Projects)),
		References:     make([]domain.ReferenceResponse, 0, len(rec.References)),
	}

	for _, e := range rec.Educations {
		resp.Educations = append(resp.Educations, domain.EducationResponse{
			ID:             e.ID.String(),
			UniversityName: e.UniversityName,
			DegreeType:     e.DegreeType,
			CourseName:     e.CourseName,
		})
	}
	for _, j := range rec.JobExperiences {
		resp.JobExperiences = append(resp.JobExperiences, domain.JobExperienceResponse{
			ID:           j.ID.String(),
			JobTitle:     j.JobTitle,
			CompanyName:  j.CompanyName,
			StartDate:    j.StartDate,
			EndDate:      j.EndDate,
			IsPresentJob: j.IsPresentJob,
			Description:  j.Description,
		})
	}
	for _, s := range rec.Skills {
		resp.Skills = append(resp.Skills, domain.SkillResponse{
			ID:       s.ID.String(),
			Name:     s.Name,
			Level:    s.Level,
			Category: s.Category,
		})
	}
	for _, c := range rec.Certifications {
		resp.Certifications = append(resp.Certifications, domain.CertificationResponse{
			ID:           c.ID.String(),
			Name:         c.Name,
			Issuer:       c.Issuer,
			DateObtained: c.DateObtained,
			ExpiryDate:   c.ExpiryDate,
			HasExpiry:    c.HasExpiry,
		})
	}
	for _, l := range rec.Languages {
		resp.Languages = append(resp.Languages, domain.LanguageResponse{
			ID:          l.ID.String(),
			Name:        l.Name,
			Proficiency: l.Proficiency,
		})
	}
	for _, p := range rec.Projects {
		resp.Projects = append(resp.Projects, domain.ProjectResponse{
			ID:           p.ID.String(),
			Title:        p.Title,
			Description:  p.Description,
			Technologies: p.Technologies,
			Link:         p.Link,
			StartDate:    p.StartDate,
			EndDate:      p.EndDate,
			IsOngoing:    p.IsOngoing,
		})
	}
	for _, r := range rec.References {
		resp.References = append(resp.References, domain.ReferenceResponse{
			ID:       r.ID.String(),
			Name:     r.Name,
			Position: r.Position,
			Company:  r.Company,
			Email:    r.Email,
			Phone:    r.Phone,
		})
	}

	return resp
}

// ToResponseList maps records in order; the result is never nil.
func ToResponseList(recs []domain.FormDataRecord) []domain.FormDataResponse {
	out := make([]domain.FormDataResponse, 0, len(recs))
	for i := range recs {
		out = append(out, *ToResponse(&recs[i]))
	}
	return out
}

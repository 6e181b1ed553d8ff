package postgres

import (
	"context"
	"fmt"
	"strings"

	"form-data-backend/internal/domain"

	"github.com/google/uuid"
)

// Data columns of each child table in insert and scan order. Every child row
// also carries id, form_data_id and sort_order.
var childColumns = map[string][]string{
	"educations":      {"university_name", "degree_type", "course_name"},
	"job_experiences": {"job_title", "company_name", "start_date", "end_date", "is_present_job", "description"},
	"skills":          {"name", "level", "category"},
	"certifications":  {"name", "issuer", "date_obtained", "expiry_date", "has_expiry"},
	"languages":       {"name", "proficiency"},
	"projects":        {"title", "description", "technologies", "link", "start_date", "end_date", "is_ongoing"},
	"references":      {"name", "position", "company", "email", "phone"},
}

func insertChildSQL(name string) string {
	cols := append([]string{"id", "form_data_id", "sort_order"}, childColumns[name]...)
	placeholders := make([]string, len(cols))
	for i := range cols {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		table(name), strings.Join(cols, ", "), strings.Join(placeholders, ", "))
}

func selectChildSQL(name string) string {
	return fmt.Sprintf(
		"SELECT id, form_data_id, %s FROM %s WHERE form_data_id = ANY($1::uuid[]) ORDER BY form_data_id, sort_order",
		strings.Join(childColumns[name], ", "), table(name))
}

func initChildren(f *domain.FormDataRecord) {
	f.Educations = []domain.EducationRecord{}
	f.JobExperiences = []domain.JobExperienceRecord{}
	f.Skills = []domain.SkillRecord{}
	f.Certifications = []domain.CertificationRecord{}
	f.Languages = []domain.LanguageRecord{}
	f.Projects = []domain.ProjectRecord{}
	f.References = []domain.ReferenceRecord{}
}

// deleteChildren clears every collection of one profile.
func deleteChildren(ctx context.Context, q querier, formDataID uuid.UUID) error {
	for _, name := range childTables {
		if _, err := q.Exec(ctx, `DELETE FROM `+table(name)+` WHERE form_data_id = $1`, formDataID); err != nil {
			return fmt.Errorf("clear %s: %w", name, err)
		}
	}
	return nil
}

// insertChildren writes every collection of the input with fresh ids.
// Client-supplied child ids are ignored.
func insertChildren(ctx context.Context, q querier, formDataID uuid.UUID, in *domain.FormData) error {
	for i, e := range in.Educations {
		_, err := q.Exec(ctx, insertChildSQL("educations"),
			uuid.New(), formDataID, i, e.UniversityName, e.DegreeType.Canonical(), e.CourseName)
		if err != nil {
			return fmt.Errorf("insert education: %w", err)
		}
	}

	for i, j := range in.JobExperiences {
		_, err := q.Exec(ctx, insertChildSQL("job_experiences"),
			uuid.New(), formDataID, i, j.JobTitle, j.CompanyName, j.StartDate, j.EndDate, j.IsPresentJob, j.Description)
		if err != nil {
			return fmt.Errorf("insert job experience: %w", err)
		}
	}

	for i, s := range in.Skills {
		_, err := q.Exec(ctx, insertChildSQL("skills"),
			uuid.New(), formDataID, i, s.Name, s.Level.Canonical(), s.Category)
		if err != nil {
			return fmt.Errorf("insert skill: %w", err)
		}
	}

	for i, c := range in.Certifications {
		_, err := q.Exec(ctx, insertChildSQL("certifications"),
			uuid.New(), formDataID, i, c.Name, c.Issuer, c.DateObtained, c.ExpiryDate, c.Expires())
		if err != nil {
			return fmt.Errorf("insert certification: %w", err)
		}
	}

	for i, l := range in.Languages {
		_, err := q.Exec(ctx, insertChildSQL("languages"),
			uuid.New(), formDataID, i, l.Name, l.Proficiency.Canonical())
		if err != nil {
			return fmt.Errorf("insert language: %w", err)
		}
	}

	for i, p := range in.Projects {
		_, err := q.Exec(ctx, insertChildSQL("projects"),
			uuid.New(), formDataID, i, p.Title, p.Description, p.Technologies, p.Link, p.StartDate, p.EndDate, p.IsOngoing)
		if err != nil {
			return fmt.Errorf("insert project: %w", err)
		}
	}

	for i, ref := range in.References {
		_, err := q.Exec(ctx, insertChildSQL("references"),
			uuid.New(), formDataID, i, ref.Name, ref.Position, ref.Company, ref.Email, ref.Phone)
		if err != nil {
			return fmt.Errorf("insert reference: %w", err)
		}
	}

	return nil
}

// loadChildren fills the collections of records with one query per child table.
func loadChildren(ctx context.Context, q querier, records []domain.FormDataRecord) error {
	index := make(map[uuid.UUID]int, len(records))
	ids := make([]string, 0, len(records))
	for i := range records {
		index[records[i].ID] = i
		ids = append(ids, records[i].ID.String())
		initChildren(&records[i])
	}

	// Educations
	rows, err := q.Query(ctx, selectChildSQL("educations"), ids)
	if err != nil {
		return fmt.Errorf("load educations: %w", err)
	}
	for rows.Next() {
		var e domain.EducationRecord
		if err := rows.Scan(&e.ID, &e.FormDataID, &e.UniversityName, &e.DegreeType, &e.CourseName); err != nil {
			rows.Close()
			return fmt.Errorf("scan education: %w", err)
		}
		p := &records[index[e.FormDataID]]
		p.Educations = append(p.Educations, e)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("load educations: %w", err)
	}

	// Job experiences
	rows, err = q.Query(ctx, selectChildSQL("job_experiences"), ids)
	if err != nil {
		return fmt.Errorf("load job experiences: %w", err)
	}
	for rows.Next() {
		var j domain.JobExperienceRecord
		if err := rows.Scan(&j.ID, &j.FormDataID, &j.JobTitle, &j.CompanyName, &j.StartDate, &j.EndDate, &j.IsPresentJob, &j.Description); err != nil {
			rows.Close()
			return fmt.Errorf("scan job experience: %w", err)
		}
		p := &records[index[j.FormDataID]]
		p.JobExperiences = append(p.JobExperiences, j)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("load job experiences: %w", err)
	}

	// Skills
	rows, err = q.Query(ctx, selectChildSQL("skills"), ids)
	if err != nil {
		return fmt.Errorf("load skills: %w", err)
	}
	for rows.Next() {
		var s domain.SkillRecord
		if err := rows.Scan(&s.ID, &s.FormDataID, &s.Name, &s.Level, &s.Category); err != nil {
			rows.Close()
			return fmt.Errorf("scan skill: %w", err)
		}
		p := &records[index[s.FormDataID]]
		p.Skills = append(p.Skills, s)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("load skills: %w", err)
	}

	// Certifications
	rows, err = q.Query(ctx, selectChildSQL("certifications"), ids)
	if err != nil {
		return fmt.Errorf("load certifications: %w", err)
	}
	for rows.Next() {
		var c domain.CertificationRecord
		if err := rows.Scan(&c.ID, &c.FormDataID, &c.Name, &c.Issuer, &c.DateObtained, &c.ExpiryDate, &c.HasExpiry); err != nil {
			rows.Close()
			return fmt.Errorf("scan certification: %w", err)
		}
		p := &records[index[c.FormDataID]]
		p.Certifications = append(p.Certifications, c)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("load certifications: %w", err)
	}

	// Languages
	rows, err = q.Query(ctx, selectChildSQL("languages"), ids)
	if err != nil {
		return fmt.Errorf("load languages: %w", err)
	}
	for rows.Next() {
		var l domain.LanguageRecord
		if err := rows.Scan(&l.ID, &l.FormDataID, &l.Name, &l.Proficiency); err != nil {
			rows.Close()
			return fmt.Errorf("scan language: %w", err)
		}
		p := &records[index[l.FormDataID]]
		p.Languages = append(p.Languages, l)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("load languages: %w", err)
	}

	// Projects
	rows, err = q.Query(ctx, selectChildSQL("projects"), ids)
	if err != nil {
		return fmt.Errorf("load projects: %w", err)
	}
	for rows.Next() {
		var pr domain.ProjectRecord
		if err := rows.Scan(&pr.ID, &pr.FormDataID, &pr.Title, &pr.Description, &pr.Technologies, &pr.Link, &pr.StartDate, &pr.EndDate, &pr.IsOngoing); err != nil {
			rows.Close()
			return fmt.Errorf("scan project: %w", err)
		}
		p := &records[index[pr.FormDataID]]
		p.Projects = append(p.Projects, pr)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("load projects: %w", err)
	}

	// References
	rows, err = q.Query(ctx, selectChildSQL("references"), ids)
	if err != nil {
		return fmt.Errorf("load references: %w", err)
	}
	for rows.Next() {
		var ref domain.ReferenceRecord
		if err := rows.Scan(&ref.ID, &ref.FormDataID, &ref.Name, &ref.Position, &ref.Company, &ref.Email, &ref.Phone); err != nil {
			rows.Close()
			return fmt.Errorf("scan reference: %w", err)
		}
		p := &records[index[ref.FormDataID]]
		p.References = append(p.References, ref)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("load references: %w", err)
	}

	return nil
}

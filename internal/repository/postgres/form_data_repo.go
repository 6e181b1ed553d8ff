package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"form-data-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// querier is satisfied by both the pool and a transaction, so the aggregate
// loaders run the same way inside and outside a write.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Scalar columns in the order produced by scalarArgs.
var formDataScalarColumns = []string{
	"first_name", "last_name", "email", "mobile_number", "date_of_birth",
	"street_address", "city", "state", "postal_code", "country",
	"title", "marital_status", "developer", "job",
	"portfolio_website", "github_url", "linkedin_url",
	"preferred_work_type", "expected_salary", "preferred_location", "availability_date", "career_goals",
	"professional_summary", "hobbies", "volunteer_work", "additional_notes",
}

var (
	formDataSelectColumns = "id, " + strings.Join(formDataScalarColumns, ", ") + ", created_at, updated_at"
	insertFormDataSQL     = buildInsertFormData()
	updateFormDataSQL     = buildUpdateFormData()
)

func buildInsertFormData() string {
	placeholders := make([]string, 0, len(formDataScalarColumns)+1)
	for i := 0; i <= len(formDataScalarColumns); i++ {
		placeholders = append(placeholders, fmt.Sprintf("$%d", i+1))
	}
	return fmt.Sprintf(
		`INSERT INTO form_data (id, %s, created_at, updated_at) VALUES (%s, NOW(), NOW())`,
		strings.Join(formDataScalarColumns, ", "),
		strings.Join(placeholders, ", "),
	)
}

func buildUpdateFormData() string {
	sets := make([]string, 0, len(formDataScalarColumns)+1)
	for i, col := range formDataScalarColumns {
		sets = append(sets, fmt.Sprintf("%s = $%d", col, i+1))
	}
	sets = append(sets, "updated_at = NOW()")
	return fmt.Sprintf(`UPDATE form_data SET %s WHERE id = $%d`,
		strings.Join(sets, ", "), len(formDataScalarColumns)+1)
}

func scalarArgs(in *domain.FormData) []any {
	return []any{
		in.FirstName, in.LastName, in.Email, in.MobileNumber, in.DateOfBirth,
		in.StreetAddress, in.City, in.State, in.PostalCode, in.Country,
		in.Title.Canonical(), in.MaritalStatus.Canonical(), in.Developer, in.Job,
		in.PortfolioWebsite, in.GithubURL, in.LinkedinURL,
		in.PreferredWorkType.Canonical(), in.ExpectedSalary, in.PreferredLocation, in.AvailabilityDate, in.CareerGoals,
		in.ProfessionalSummary, in.Hobbies, in.VolunteerWork, in.AdditionalNotes,
	}
}

type formDataRepository struct {
	db *pgxpool.Pool
}

func NewFormDataRepository(db *pgxpool.Pool) domain.FormDataRepository {
	return &formDataRepository{db: db}
}

// =================================================================================================
// Writes
// =================================================================================================

func (r *formDataRepository) Create(ctx context.Context, input *domain.FormData) (*domain.FormDataRecord, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrCreateFailed, err)
	}
	defer tx.Rollback(ctx)

	id := uuid.New()
	args := append([]any{id}, scalarArgs(input)...)
	if _, err := tx.Exec(ctx, insertFormDataSQL, args...); err != nil {
		return nil, fmt.Errorf("%w: insert form data: %w", domain.ErrCreateFailed, err)
	}

	if err := insertChildren(ctx, tx, id, input); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrCreateFailed, err)
	}

	rec, found, err := loadOne(ctx, tx, id, false)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrCreateFailed, err)
	}
	if !found {
		return nil, fmt.Errorf("%w: created row not visible", domain.ErrCreateFailed)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%w: commit: %w", domain.ErrCreateFailed, err)
	}
	return rec, nil
}

func (r *formDataRepository) Update(ctx context.Context, id string, input *domain.FormData) (*domain.FormDataRecord, bool, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, false, nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %w", domain.ErrUpdateFailed, err)
	}
	defer tx.Rollback(ctx)

	args := append(scalarArgs(input), uid)
	tag, err := tx.Exec(ctx, updateFormDataSQL, args...)
	if err != nil {
		return nil, false, fmt.Errorf("%w: update form data: %w", domain.ErrUpdateFailed, err)
	}
	if tag.RowsAffected() == 0 {
		return nil, false, nil
	}

	// Children are replaced wholesale: clear every collection, then re-insert.
	if err := deleteChildren(ctx, tx, uid); err != nil {
		return nil, false, fmt.Errorf("%w: %w", domain.ErrUpdateFailed, err)
	}
	if err := insertChildren(ctx, tx, uid, input); err != nil {
		return nil, false, fmt.Errorf("%w: %w", domain.ErrUpdateFailed, err)
	}

	rec, found, err := loadOne(ctx, tx, uid, false)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %w", domain.ErrUpdateFailed, err)
	}
	if !found {
		return nil, false, nil
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, false, fmt.Errorf("%w: commit: %w", domain.ErrUpdateFailed, err)
	}
	return rec, true, nil
}

func (r *formDataRepository) Delete(ctx context.Context, id string) (*domain.FormDataRecord, bool, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, false, nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %w", domain.ErrDeleteFailed, err)
	}
	defer tx.Rollback(ctx)

	snapshot, found, err := loadOne(ctx, tx, uid, true)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %w", domain.ErrDeleteFailed, err)
	}
	if !found {
		return nil, false, nil
	}

	// Child rows go with the parent via ON DELETE CASCADE
	if _, err := tx.Exec(ctx, `DELETE FROM form_data WHERE id = $1`, uid); err != nil {
		return nil, false, fmt.Errorf("%w: delete form data: %w", domain.ErrDeleteFailed, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, false, fmt.Errorf("%w: commit: %w", domain.ErrDeleteFailed, err)
	}
	return snapshot, true, nil
}

// =================================================================================================
// Reads
// =================================================================================================

func (r *formDataRepository) GetByID(ctx context.Context, id string) (*domain.FormDataRecord, bool, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, false, nil
	}
	return loadOne(ctx, r.db, uid, false)
}

func (r *formDataRepository) GetAll(ctx context.Context) ([]domain.FormDataRecord, error) {
	query := `SELECT ` + formDataSelectColumns + ` FROM form_data ORDER BY created_at ASC, id ASC`
	return loadMany(ctx, r.db, query)
}

func (r *formDataRepository) Search(ctx context.Context, filter domain.SearchFilter) ([]domain.FormDataRecord, error) {
	if filter.IsEmpty() {
		return r.GetAll(ctx)
	}

	var conds []string
	var args []any

	add := func(column, value string) {
		if value == "" {
			return
		}
		args = append(args, "%"+escapeLike(value)+"%")
		conds = append(conds, fmt.Sprintf("%s ILIKE $%d", column, len(args)))
	}
	add("first_name", filter.FirstName)
	add("last_name", filter.LastName)
	add("email", filter.Email)
	add("job", filter.JobTitle)

	query := `SELECT ` + formDataSelectColumns + ` FROM form_data WHERE ` +
		strings.Join(conds, " AND ") + ` ORDER BY created_at ASC, id ASC`

	return loadMany(ctx, r.db, query, args...)
}

func (r *formDataRepository) Count(ctx context.Context) (*domain.StorageCounts, error) {
	counts := &domain.StorageCounts{Collections: make(map[string]int64, len(childTables))}

	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM form_data`).Scan(&counts.FormData); err != nil {
		return nil, fmt.Errorf("count form_data: %w", err)
	}

	for _, name := range childTables {
		var n int64
		if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM `+table(name)).Scan(&n); err != nil {
			return nil, fmt.Errorf("count %s: %w", name, err)
		}
		counts.Collections[name] = n
	}
	return counts, nil
}

// escapeLike makes LIKE metacharacters in user input match literally.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// =================================================================================================
// Aggregate loading
// =================================================================================================

func scanFormData(row pgx.Row) (*domain.FormDataRecord, error) {
	var f domain.FormDataRecord
	err := row.Scan(
		&f.ID,
		&f.FirstName, &f.LastName, &f.Email, &f.MobileNumber, &f.DateOfBirth,
		&f.StreetAddress, &f.City, &f.State, &f.PostalCode, &f.Country,
		&f.Title, &f.MaritalStatus, &f.Developer, &f.Job,
		&f.PortfolioWebsite, &f.GithubURL, &f.LinkedinURL,
		&f.PreferredWorkType, &f.ExpectedSalary, &f.PreferredLocation, &f.AvailabilityDate, &f.CareerGoals,
		&f.ProfessionalSummary, &f.Hobbies, &f.VolunteerWork, &f.AdditionalNotes,
		&f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	initChildren(&f)
	return &f, nil
}

// loadOne reads one parent row and its collections. lock adds FOR UPDATE.
func loadOne(ctx context.Context, q querier, id uuid.UUID, lock bool) (*domain.FormDataRecord, bool, error) {
	query := `SELECT ` + formDataSelectColumns + ` FROM form_data WHERE id = $1`
	if lock {
		query += ` FOR UPDATE`
	}

	rec, err := scanFormData(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("load form data: %w", err)
	}

	records := []domain.FormDataRecord{*rec}
	if err := loadChildren(ctx, q, records); err != nil {
		return nil, false, err
	}
	return &records[0], true, nil
}

// loadMany runs a parent query and batches child loading per table.
func loadMany(ctx context.Context, q querier, query string, args ...any) ([]domain.FormDataRecord, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query form data: %w", err)
	}
	defer rows.Close()

	records := []domain.FormDataRecord{}
	for rows.Next() {
		rec, err := scanFormData(rows)
		if err != nil {
			return nil, fmt.Errorf("scan form data: %w", err)
		}
		records = append(records, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate form data: %w", err)
	}
	rows.Close()

	if len(records) == 0 {
		return records, nil
	}
	if err := loadChildren(ctx, q, records); err != nil {
		return nil, err
	}
	return records, nil
}

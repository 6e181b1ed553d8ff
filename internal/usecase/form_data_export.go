package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"form-data-backend/internal/domain"
	"form-data-backend/pkg/apperror"

	"github.com/xuri/excelize/v2"
)

// exportColumn is one column of the profile export
type exportColumn struct {
	header string
	value  func(r *domain.FormDataRecord) interface{}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

var exportColumns = []exportColumn{
	{"ID", func(r *domain.FormDataRecord) interface{} { return r.ID.String() }},
	{"FIRST NAME", func(r *domain.FormDataRecord) interface{} { return r.FirstName }},
	{"LAST NAME", func(r *domain.FormDataRecord) interface{} { return r.LastName }},
	{"EMAIL", func(r *domain.FormDataRecord) interface{} { return r.Email }},
	{"MOBILE NUMBER", func(r *domain.FormDataRecord) interface{} { return r.MobileNumber }},
	{"DATE OF BIRTH", func(r *domain.FormDataRecord) interface{} { return r.DateOfBirth }},
	{"CITY", func(r *domain.FormDataRecord) interface{} { return r.City }},
	{"COUNTRY", func(r *domain.FormDataRecord) interface{} { return r.Country }},
	{"TITLE", func(r *domain.FormDataRecord) interface{} { return deref(r.Title) }},
	{"MARITAL STATUS", func(r *domain.FormDataRecord) interface{} { return deref(r.MaritalStatus) }},
	{"JOB TITLE", func(r *domain.FormDataRecord) interface{} { return r.Job }},
	{"PREFERRED WORK TYPE", func(r *domain.FormDataRecord) interface{} { return deref(r.PreferredWorkType) }},
	{"EXPECTED SALARY", func(r *domain.FormDataRecord) interface{} { return r.ExpectedSalary }},
	{"AVAILABILITY DATE", func(r *domain.FormDataRecord) interface{} { return r.AvailabilityDate }},
	{"SKILLS", func(r *domain.FormDataRecord) interface{} {
		names := make([]string, 0, len(r.Skills))
		for _, s := range r.Skills {
			names = append(names, s.Name)
		}
		return strings.Join(names, ", ")
	}},
	{"EDUCATIONS", func(r *domain.FormDataRecord) interface{} { return len(r.Educations) }},
	{"JOB EXPERIENCES", func(r *domain.FormDataRecord) interface{} { return len(r.JobExperiences) }},
	{"CERTIFICATIONS", func(r *domain.FormDataRecord) interface{} { return len(r.Certifications) }},
	{"LANGUAGES", func(r *domain.FormDataRecord) interface{} { return len(r.Languages) }},
	{"PROJECTS", func(r *domain.FormDataRecord) interface{} { return len(r.Projects) }},
	{"REFERENCES", func(r *domain.FormDataRecord) interface{} { return len(r.References) }},
	{"CREATED AT", func(r *domain.FormDataRecord) interface{} { return r.CreatedAt.UTC().Format(time.RFC3339) }},
}

// ExportFormData renders the profiles matching the filter as a spreadsheet
// (default) or CSV file and returns the bytes with a timestamped file name.
func (u *formDataUsecase) ExportFormData(ctx context.Context, req domain.ExportRequest) ([]byte, string, error) {
	switch req.Format {
	case domain.ExportFormatXLSX, "", domain.ExportFormatCSV:
	default:
		return nil, "", apperror.BadRequest(fmt.Sprintf("unsupported export format: %s", req.Format))
	}

	recs, err := u.repo.Search(ctx, req.Filter)
	if err != nil {
		return nil, "", apperror.Internal(fmt.Errorf("failed to load form data for export: %w", err))
	}

	if req.Format == domain.ExportFormatCSV {
		return exportCSV(recs)
	}
	return exportExcel(recs)
}

func exportFilename(ext string) string {
	return fmt.Sprintf("form_data_%s.%s", time.Now().Format("20060102_150405"), ext)
}

func exportExcel(recs []domain.FormDataRecord) ([]byte, string, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Profiles"
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, "", fmt.Errorf("failed to name sheet: %w", err)
	}

	for i, col := range exportColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, col.header)
	}

	// Header row: white bold text on dark blue
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#1E3A5F"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, "", fmt.Errorf("failed to create header style: %w", err)
	}
	endCell, _ := excelize.CoordinatesToCellName(len(exportColumns), 1)
	f.SetCellStyle(sheetName, "A1", endCell, headerStyle)

	for rowIdx := range recs {
		for colIdx, col := range exportColumns {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(sheetName, cell, col.value(&recs[rowIdx]))
		}
	}

	for i := range exportColumns {
		colName, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheetName, colName, colName, 20)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, "", fmt.Errorf("failed to write Excel file: %w", err)
	}
	return buf.Bytes(), exportFilename(domain.ExportFormatXLSX), nil
}

func exportCSV(recs []domain.FormDataRecord) ([]byte, string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := make([]string, 0, len(exportColumns))
	for _, col := range exportColumns {
		header = append(header, col.header)
	}
	if err := w.Write(header); err != nil {
		return nil, "", fmt.Errorf("failed to write CSV header: %w", err)
	}

	for i := range recs {
		row := make([]string, 0, len(exportColumns))
		for _, col := range exportColumns {
			switch v := col.value(&recs[i]).(type) {
			case int:
				row = append(row, strconv.Itoa(v))
			case string:
				row = append(row, v)
			default:
				row = append(row, fmt.Sprint(v))
			}
		}
		if err := w.Write(row); err != nil {
			return nil, "", fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", fmt.Errorf("failed to flush CSV: %w", err)
	}
	return buf.Bytes(), exportFilename(domain.ExportFormatCSV), nil
}

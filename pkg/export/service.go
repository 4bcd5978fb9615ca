// Package export renders lead lists as downloadable files.
package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/salesflowhq/salesflow/ent"
	"github.com/salesflowhq/salesflow/pkg/leads"
	"github.com/xuri/excelize/v2"
)

// Service exports leads to CSV or XLSX.
type Service struct {
	leads *leads.Service
}

// NewService creates a new export service.
func NewService(leadService *leads.Service) *Service {
	return &Service{leads: leadService}
}

var headers = []string{
	"ID", "Email", "First Name", "Last Name", "Company", "Job Title",
	"Phone", "LinkedIn", "Source", "Status", "Score", "Created At",
}

func row(l *ent.Lead) []string {
	return []string{
		strconv.Itoa(l.ID),
		l.Email,
		l.FirstName,
		l.LastName,
		l.CompanyName,
		l.JobTitle,
		l.Phone,
		l.LinkedinURL,
		string(l.Source),
		string(l.Status),
		strconv.Itoa(l.Score),
		l.CreatedAt.Format(time.RFC3339),
	}
}

// CSV exports the leads matching the filters as CSV bytes.
func (s *Service) CSV(ctx context.Context, companyID int, req leads.ListLeadsRequest) ([]byte, error) {
	items, err := s.leads.ListAll(ctx, companyID, req)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}
	for _, l := range items {
		if err := w.Write(row(l)); err != nil {
			return nil, fmt.Errorf("failed to write row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

// Excel exports the leads matching the filters as an XLSX workbook.
func (s *Service) Excel(ctx context.Context, companyID int, req leads.ListLeadsRequest) ([]byte, error) {
	items, err := s.leads.ListAll(ctx, companyID, req)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Leads"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.DeleteSheet("Sheet1")

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create style: %w", err)
	}

	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for rowIdx, l := range items {
		for colIdx, value := range row(l) {
			cell := fmt.Sprintf("%c%d", 'A'+colIdx, rowIdx+2)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	for i := range headers {
		col := string(rune('A' + i))
		f.SetColWidth(sheetName, col, col, 18)
	}

	f.SetActiveSheet(index)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

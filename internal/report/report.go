// Package report renders the employee list as an Excel workbook.
package report

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/workplace/internal/models"
	"github.com/xuri/excelize/v2"
)

// SheetName is the name of the single sheet of the workbook.
const SheetName = "Employees"

var ErrNoEmployees = errors.New("failed to generate report, 0 employees were provided")

var headers = []string{"ID", "Name", "Contact", "Email"}

// Generator holds the state of one workbook being written.
type Generator struct {
	file *excelize.File
}

// NewGenerator creates a new report generator.
func NewGenerator() *Generator {
	return &Generator{file: excelize.NewFile()}
}

// GenerateEmployeeReport writes employees, in the given order, to a workbook
// with a styled header row and an auto-filter table. generatedAt is recorded
// in the document properties.
func GenerateEmployeeReport(employees []models.Employee, generatedAt time.Time) (*bytes.Buffer, error) {
	if len(employees) == 0 {
		return nil, ErrNoEmployees
	}

	gen := NewGenerator()
	defer gen.file.Close()

	if err := gen.file.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("failed to rename default sheet: %w", err)
	}
	if err := gen.setupSheet(len(employees)); err != nil {
		return nil, fmt.Errorf("failed to setup sheet: %w", err)
	}

	const headerRows = 1
	for i, e := range employees {
		if err := gen.addRow(i+headerRows+1, e); err != nil {
			return nil, fmt.Errorf("failed to add row '%d': %w", i+headerRows+1, err)
		}
	}

	if err := gen.file.SetDocProps(&excelize.DocProperties{
		Title:   "Employees",
		Created: generatedAt.UTC().Format(time.RFC3339),
	}); err != nil {
		return nil, fmt.Errorf("failed to set document properties: %w", err)
	}

	buffer, err := gen.file.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buffer, nil
}

// setupSheet writes the header row, its style, column widths and a table
// covering rowCount data rows.
func (g *Generator) setupSheet(rowCount int) error {
	headerStyle, err := g.file.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Vertical: "center", Horizontal: "center"},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	if err = g.file.SetSheetRow(SheetName, "A1", &headers); err != nil {
		return fmt.Errorf("failed to set header row: %w", err)
	}
	if err = g.file.SetCellStyle(SheetName, "A1", "D1", headerStyle); err != nil {
		return fmt.Errorf("failed to set header style: %w", err)
	}

	widths := map[string]float64{"A": 14, "B": 32, "C": 20, "D": 34} //nolint:mnd // column widths
	for col, width := range widths {
		if err = g.file.SetColWidth(SheetName, col, col, width); err != nil {
			return fmt.Errorf("failed to set column width: %w", err)
		}
	}

	if err = g.file.AddTable(SheetName, &excelize.Table{
		Range:     fmt.Sprintf("A1:D%d", rowCount+1),
		Name:      "employees",
		StyleName: "TableStyleMedium9",
	}); err != nil {
		return fmt.Errorf("failed to add table: %w", err)
	}
	return nil
}

// addRow writes one employee at row rowNum. Every value is stored as text so
// ids and phone numbers keep their leading zeros.
func (g *Generator) addRow(rowNum int, e models.Employee) error {
	row := []any{e.ID, e.Name, e.Contact, e.Email}
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	return g.file.SetSheetRow(SheetName, cell, &row)
}

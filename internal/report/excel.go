// Package report renders a search result as an Excel workbook: a Jobs sheet
// with the fixed eleven-column layout downstream consumers depend on, and a
// Notes sheet carrying the run diagnostics.
package report

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/seetoh/jobscout/internal/types"
)

// Sheet names.
const (
	JobsSheet  = "Jobs"
	NotesSheet = "Notes"
)

// JobsColumns is the column contract, in order. Downstream spreadsheet
// consumers depend on this exact order; do not reorder.
var JobsColumns = []string{
	"Job title available",
	"employer",
	"job post url link",
	"job post from what source",
	"date job post was posted",
	"application closing date",
	"key job requirement",
	"estimated salary",
	"job full-time or part-time",
	"Relevance score",
	"Closing date passed? (Y/N)",
}

const (
	urlColumn      = 3 // 1-based index of the hyperlink column
	headerFill     = "1F4E79"
	maxColumnWidth = 60
	minColumnWidth = 10
	notesColAWidth = 38
	notesColBWidth = 120
)

// Write renders the result and saves the workbook to path.
func Write(result *types.SearchResult, path string) error {
	f, err := Build(result)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save report to %s: %w", path, err)
	}
	return nil
}

// Build renders the result into an in-memory workbook. Sentinel strings are
// substituted here; this is the serialization boundary where absent fields
// become "Not stated"/"Unverified".
func Build(result *types.SearchResult) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", JobsSheet); err != nil {
		return nil, fmt.Errorf("failed to create jobs sheet: %w", err)
	}

	if err := writeJobs(f, result.Final); err != nil {
		return nil, err
	}
	if err := writeNotes(f, result.Diagnostics); err != nil {
		return nil, err
	}
	return f, nil
}

// row converts one scored posting into its eleven cell values, in column
// order.
func row(r types.ScoredPosting) []any {
	return []any{
		r.Title.Or(types.SentinelNotStated),
		r.Employer.Or(types.SentinelNotStated),
		r.URL,
		r.Source,
		r.Posted.Or(types.SentinelUnverified),
		r.Closing.Or(types.SentinelNotStated),
		r.RequirementsText(),
		r.Salary.Or(types.SentinelNotStated),
		r.Type.String(),
		r.RelevanceScore,
		string(r.ClosingPassed),
	}
}

func writeJobs(f *excelize.File, records []types.ScoredPosting) error {
	header := make([]any, len(JobsColumns))
	for i, c := range JobsColumns {
		header[i] = c
	}
	if err := f.SetSheetRow(JobsSheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}

	for i, r := range records {
		cells := row(r)
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to locate row %d: %w", i+2, err)
		}
		if err := f.SetSheetRow(JobsSheet, cell, &cells); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if err := styleJobs(f, records); err != nil {
		return err
	}
	return nil
}

func styleJobs(f *excelize.File, records []types.ScoredPosting) error {
	headerStyle, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{headerFill}},
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	endCol, err := excelize.ColumnNumberToName(len(JobsColumns))
	if err != nil {
		return fmt.Errorf("failed to resolve last column: %w", err)
	}
	if err := f.SetCellStyle(JobsSheet, "A1", endCol+"1", headerStyle); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}

	if err := f.SetPanes(JobsSheet, &excelize.Panes{
		Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft",
	}); err != nil {
		return fmt.Errorf("failed to freeze header: %w", err)
	}

	linkStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Color: "0000EE", Underline: "single"},
	})
	if err != nil {
		return fmt.Errorf("failed to create hyperlink style: %w", err)
	}
	for i, r := range records {
		if !strings.HasPrefix(r.URL, "http") {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(urlColumn, i+2)
		if err != nil {
			return fmt.Errorf("failed to locate url cell: %w", err)
		}
		if err := f.SetCellHyperLink(JobsSheet, cell, r.URL, "External"); err != nil {
			return fmt.Errorf("failed to set hyperlink: %w", err)
		}
		if err := f.SetCellStyle(JobsSheet, cell, cell, linkStyle); err != nil {
			return fmt.Errorf("failed to style hyperlink: %w", err)
		}
	}

	// An Excel table needs at least one data row.
	if len(records) > 0 {
		if err := f.AddTable(JobsSheet, &excelize.Table{
			Range:           fmt.Sprintf("A1:%s%d", endCol, len(records)+1),
			Name:            "JobsTable",
			StyleName:       "TableStyleMedium9",
			ShowRowStripes:  boolPtr(true),
			ShowFirstColumn: false,
		}); err != nil {
			return fmt.Errorf("failed to add jobs table: %w", err)
		}
	}

	return autoWidth(f, records)
}

// autoWidth sizes each column to its longest cell value over the first 200
// rows, capped so requirement text does not blow up the layout.
func autoWidth(f *excelize.File, records []types.ScoredPosting) error {
	rows := records
	if len(rows) > 200 {
		rows = rows[:200]
	}
	for col := range JobsColumns {
		width := minColumnWidth
		if l := len(JobsColumns[col]); l > width {
			width = l
		}
		for _, r := range rows {
			for _, line := range strings.Split(fmt.Sprint(row(r)[col]), "\n") {
				if len(line) > width {
					width = len(line)
				}
			}
		}
		if width > maxColumnWidth {
			width = maxColumnWidth
		}
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return fmt.Errorf("failed to resolve column %d: %w", col+1, err)
		}
		if err := f.SetColWidth(JobsSheet, name, name, float64(width+2)); err != nil {
			return fmt.Errorf("failed to set column width: %w", err)
		}
	}
	return nil
}

func writeNotes(f *excelize.File, notes []types.Note) error {
	if _, err := f.NewSheet(NotesSheet); err != nil {
		return fmt.Errorf("failed to create notes sheet: %w", err)
	}

	header := []any{"Item", "Value"}
	if err := f.SetSheetRow(NotesSheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write notes header: %w", err)
	}
	boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create notes header style: %w", err)
	}
	if err := f.SetCellStyle(NotesSheet, "A1", "B1", boldStyle); err != nil {
		return fmt.Errorf("failed to style notes header: %w", err)
	}

	for i, n := range notes {
		cells := []any{n.Label, n.Value}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to locate notes row %d: %w", i+2, err)
		}
		if err := f.SetSheetRow(NotesSheet, cell, &cells); err != nil {
			return fmt.Errorf("failed to write notes row %d: %w", i+2, err)
		}
	}

	if err := f.SetColWidth(NotesSheet, "A", "A", notesColAWidth); err != nil {
		return fmt.Errorf("failed to size notes label column: %w", err)
	}
	if err := f.SetColWidth(NotesSheet, "B", "B", notesColBWidth); err != nil {
		return fmt.Errorf("failed to size notes value column: %w", err)
	}
	if err := f.SetPanes(NotesSheet, &excelize.Panes{
		Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft",
	}); err != nil {
		return fmt.Errorf("failed to freeze notes header: %w", err)
	}
	return nil
}

func boolPtr(b bool) *bool { return &b }

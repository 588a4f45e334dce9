package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/Bharu-A/fittronix-cli/internal/model"
)

const sheetName = "Report"

type workbookStyles struct {
	title        int
	sectionTitle int
	label        int
	value        int
}

// WriteWorkbook renders a report as a single-sheet XLSX workbook: the
// report type as a heading, then each section as a titled label/value
// block.
func WriteWorkbook(report *model.Report, path string) error {
	if report == nil {
		return fmt.Errorf("report is required")
	}
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("rename report sheet: %w", err)
	}
	styles, err := createWorkbookStyles(f)
	if err != nil {
		return err
	}
	if err := f.SetColWidth(sheetName, "A", "A", 24); err != nil {
		return fmt.Errorf("set label column width: %w", err)
	}
	if err := f.SetColWidth(sheetName, "B", "B", 52); err != nil {
		return fmt.Errorf("set value column width: %w", err)
	}

	row := 1
	if err := setStyledCell(f, row, "A", fmt.Sprintf("FitTronix %s report", report.Type), styles.title); err != nil {
		return err
	}
	row += 2

	for _, section := range report.Sections {
		if err := setStyledCell(f, row, "A", section.Title, styles.sectionTitle); err != nil {
			return err
		}
		row++
		for _, r := range section.Rows {
			if err := setStyledCell(f, row, "A", r[0], styles.label); err != nil {
				return err
			}
			if err := setStyledCell(f, row, "B", r[1], styles.value); err != nil {
				return err
			}
			row++
		}
		row++
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook %s: %w", path, err)
	}
	return nil
}

func createWorkbookStyles(f *excelize.File) (*workbookStyles, error) {
	styles := &workbookStyles{}
	var err error

	styles.title, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}
	styles.sectionTitle, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#16213e"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("create section title style: %w", err)
	}
	styles.label, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return nil, fmt.Errorf("create label style: %w", err)
	}
	styles.value, err = f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "left"},
	})
	if err != nil {
		return nil, fmt.Errorf("create value style: %w", err)
	}
	return styles, nil
}

func setStyledCell(f *excelize.File, row int, col, value string, style int) error {
	cell := fmt.Sprintf("%s%d", col, row)
	if err := f.SetCellValue(sheetName, cell, value); err != nil {
		return fmt.Errorf("set cell %s: %w", cell, err)
	}
	if err := f.SetCellStyle(sheetName, cell, cell, style); err != nil {
		return fmt.Errorf("style cell %s: %w", cell, err)
	}
	return nil
}

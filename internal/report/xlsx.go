package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/alexanderramin/prodplan/internal/domain"
	"github.com/xuri/excelize/v2"
)

// SheetName is the single worksheet of an XLSX report.
const SheetName = "Production Planning"

var xlsxStatusFont = map[domain.StatusBucket]string{
	domain.StatusLate:     "C00000",
	domain.StatusDueToday: "D65D0E",
	domain.StatusDueSoon:  "D65D0E",
	domain.StatusOnTrack:  "008000",
}

// XLSXRenderer writes the table to one worksheet: a title row, the
// generation time, a bold header row frozen in place, then one row per plan.
type XLSXRenderer struct{}

func (XLSXRenderer) Render(w io.Writer, t *Table) (err error) {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if err = f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}
	if err = writeXLSX(f, t); err != nil {
		return fmt.Errorf("rendering xlsx: %w", err)
	}
	if err = f.Write(w); err != nil {
		return fmt.Errorf("writing xlsx: %w", err)
	}
	return nil
}

const xlsxHeaderRow = 3

func writeXLSX(f *excelize.File, t *Table) error {
	titleStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
	if err != nil {
		return err
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"29417A"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return err
	}
	stripeStyle, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"EEF2F8"}},
	})
	if err != nil {
		return err
	}

	if err := f.SetCellValue(SheetName, "A1", t.Title); err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetName, "A1", "A1", titleStyle); err != nil {
		return err
	}
	if err := f.SetCellValue(SheetName, "A2", t.GeneratedLabel()); err != nil {
		return err
	}

	for c, col := range t.Columns {
		cell, err := excelize.CoordinatesToCellName(c+1, xlsxHeaderRow)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(SheetName, cell, col.Title); err != nil {
			return err
		}
		name, err := excelize.ColumnNumberToName(c + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(SheetName, name, name, col.Width/1.6); err != nil {
			return err
		}
	}
	first, _ := excelize.CoordinatesToCellName(1, xlsxHeaderRow)
	last, _ := excelize.CoordinatesToCellName(len(t.Columns), xlsxHeaderRow)
	if err := f.SetCellStyle(SheetName, first, last, headerStyle); err != nil {
		return err
	}

	statusStyles := make(map[domain.StatusBucket]int, len(xlsxStatusFont))
	for bucket, color := range xlsxStatusFont {
		id, err := f.NewStyle(&excelize.Style{
			Font:      &excelize.Font{Bold: true, Color: color},
			Alignment: &excelize.Alignment{Horizontal: "center"},
		})
		if err != nil {
			return err
		}
		statusStyles[bucket] = id
	}

	for i, row := range t.Rows {
		r := xlsxHeaderRow + 1 + i
		if i%2 == 1 {
			from, _ := excelize.CoordinatesToCellName(1, r)
			to, _ := excelize.CoordinatesToCellName(len(t.Columns), r)
			if err := f.SetCellStyle(SheetName, from, to, stripeStyle); err != nil {
				return err
			}
		}
		for c, col := range t.Columns {
			cell, err := excelize.CoordinatesToCellName(c+1, r)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(SheetName, cell, cellValue(col, row.Cells[c])); err != nil {
				return err
			}
			if col.Title == "Days Left" {
				if err := f.SetCellStyle(SheetName, cell, cell, statusStyles[row.Status.Bucket]); err != nil {
					return err
				}
			}
		}
	}

	if err := f.SetPanes(SheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      xlsxHeaderRow,
		TopLeftCell: fmt.Sprintf("A%d", xlsxHeaderRow+1),
		ActivePane:  "bottomLeft",
	}); err != nil {
		return err
	}

	orientation := "landscape"
	if err := f.SetPageLayout(SheetName, &excelize.PageLayoutOptions{Orientation: &orientation}); err != nil {
		return err
	}
	return f.SetHeaderFooter(SheetName, &excelize.HeaderFooterOptions{
		OddHeader: "&C&B" + t.Title,
		OddFooter: "&L" + t.GeneratedLabel() + "&RPage &P/&N",
	})
}

func cellValue(col Column, text string) any {
	if col.Numeric {
		if n, err := strconv.Atoi(text); err == nil {
			return n
		}
	}
	return text
}

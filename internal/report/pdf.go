package report

import (
	"fmt"
	"io"

	"github.com/alexanderramin/prodplan/internal/domain"
	"github.com/go-pdf/fpdf"
)

const (
	pdfMargin    = 10.0
	pdfRowHeight = 7.0
)

type rgb struct{ r, g, b int }

var (
	pdfHeaderFill = rgb{41, 65, 122}
	pdfStripeFill = rgb{238, 242, 248}
	pdfStatusText = map[domain.StatusBucket]rgb{
		domain.StatusLate:     {192, 0, 0},
		domain.StatusDueToday: {214, 93, 14},
		domain.StatusDueSoon:  {214, 93, 14},
		domain.StatusOnTrack:  {0, 128, 0},
	}
)

// PDFRenderer lays the table out on A4 landscape pages. The title and the
// column header repeat on every page; the footer carries the generation
// time and "Page n/N".
type PDFRenderer struct{}

func (PDFRenderer) Render(w io.Writer, t *Table) error {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, 15)
	pdf.SetTitle(t.Title, true)
	pdf.SetCreator("prodplan", true)
	pdf.SetCreationDate(t.GeneratedAt)
	pdf.AliasNbPages("")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetHeaderFunc(func() {
		pdf.SetFont("Helvetica", "B", 14)
		pdf.SetTextColor(0, 0, 0)
		pdf.CellFormat(0, 8, tr(t.Title), "", 1, "C", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.CellFormat(0, 5, tr(t.GeneratedLabel()), "", 1, "C", false, 0, "")
		pdf.Ln(3)

		pdf.SetFont("Helvetica", "B", 8)
		pdf.SetFillColor(pdfHeaderFill.r, pdfHeaderFill.g, pdfHeaderFill.b)
		pdf.SetTextColor(255, 255, 255)
		for _, col := range t.Columns {
			pdf.CellFormat(col.Width, pdfRowHeight, tr(col.Title), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
	})

	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(110, 110, 110)
		pdf.CellFormat(0, 5, tr(t.GeneratedLabel()), "", 0, "L", false, 0, "")
		pdf.SetX(pdfMargin)
		pdf.CellFormat(0, 5, fmt.Sprintf("Page %d/{nb}", pdf.PageNo()), "", 0, "R", false, 0, "")
	})

	pdf.AddPage()
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetDrawColor(200, 200, 200)
	for i, row := range t.Rows {
		striped := i%2 == 1
		pdf.SetFillColor(pdfStripeFill.r, pdfStripeFill.g, pdfStripeFill.b)
		for c, col := range t.Columns {
			text := tr(row.Cells[c])
			if col.Title == "Days Left" {
				color := pdfStatusText[row.Status.Bucket]
				pdf.SetTextColor(color.r, color.g, color.b)
			} else {
				pdf.SetTextColor(0, 0, 0)
			}
			pdf.CellFormat(col.Width, pdfRowHeight, fitText(pdf, text, col.Width-2), "1", 0, string(col.Align), striped, 0, "")
		}
		pdf.Ln(-1)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("rendering pdf: %w", err)
	}
	return nil
}

// fitText shortens s with an ellipsis until it fits width at the current font.
func fitText(pdf *fpdf.Fpdf, s string, width float64) string {
	if pdf.GetStringWidth(s) <= width {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && pdf.GetStringWidth(string(r)+"...") > width {
		r = r[:len(r)-1]
	}
	return string(r) + "..."
}

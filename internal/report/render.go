package report

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrUnknownFormat is returned for a report format other than pdf or xlsx.
var ErrUnknownFormat = errors.New("unknown report format")

// Format is a report output format; its value doubles as the file extension.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatXLSX Format = "xlsx"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatPDF, nil
	case FormatPDF, FormatXLSX:
		return f, nil
	default:
		return "", fmt.Errorf("%q: %w (use pdf or xlsx)", s, ErrUnknownFormat)
	}
}

// Renderer writes a table as a finished document.
type Renderer interface {
	Render(w io.Writer, t *Table) error
}

func NewRenderer(f Format) (Renderer, error) {
	switch f {
	case FormatPDF:
		return PDFRenderer{}, nil
	case FormatXLSX:
		return XLSXRenderer{}, nil
	default:
		return nil, fmt.Errorf("%q: %w", f, ErrUnknownFormat)
	}
}

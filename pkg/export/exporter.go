package export

import "fmt"

type Format string

const (
	CSV Format = "csv"
	PDF Format = "pdf"
)

// Exporter renders a dataset into a document. Formats without a notion of title ignore it
type Exporter interface {
	Render(data Dataset, title string) ([]byte, error)
}

func New(format Format) (Exporter, error) {
	switch format {
	case CSV:
		return NewCsvExporter(), nil
	case PDF:
		return NewPdfExporter(), nil
	default:
		return nil, fmt.Errorf("unsupported export format \"%v\"", format)
	}
}

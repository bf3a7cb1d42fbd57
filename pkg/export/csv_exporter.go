package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

type csvExporter struct{}

func NewCsvExporter() Exporter {
	return &csvExporter{}
}

func (exporter *csvExporter) Render(data Dataset, _ string) ([]byte, error) {
	if len(data.Headers) == 0 {
		return nil, fmt.Errorf("render csv: %w", ErrEmptyDataset)
	}

	buffer := &bytes.Buffer{}
	if err := csv.NewWriter(buffer).WriteAll(append([][]string{data.Headers}, data.Records()...)); err != nil {
		return nil, fmt.Errorf("render csv: %w", err)
	}
	return buffer.Bytes(), nil
}

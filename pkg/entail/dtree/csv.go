package dtree

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/cognicore/entail/pkg/entail/internalerr"
)

// ReadCSV reads header-first CSV data into rows keyed by column name.
func ReadCSV(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty CSV input: %w", internalerr.ErrInvalidInput)
	}
	if err != nil {
		return nil, err
	}

	var rows []Row
	for {
		record, err := reader.Read()
		if err == io.EOF {
			return rows, nil
		}
		if err != nil {
			return nil, err
		}
		row := make(Row, len(header))
		for i, name := range header {
			row[name] = record[i]
		}
		rows = append(rows, row)
	}
}

// ReadCSVFile reads a CSV file into rows.
func ReadCSVFile(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadCSV(f)
}

package iopipeline

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/herbdata/herbario/pkg/species"
)

// writeTable writes the simplified rows as the final CSV artifact, one
// column per Header() entry.
func writeTable(path string, rows []species.Simplified) error {
	file, err := os.Create(path)
	if err != nil {
		return TableWriteError(path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err = writer.Write(species.Header()); err != nil {
		return TableWriteError(path, err)
	}
	for _, row := range rows {
		if err = writer.Write(row.Row()); err != nil {
			return TableWriteError(path, err)
		}
	}
	writer.Flush()
	if err = writer.Error(); err != nil {
		return TableWriteError(path, err)
	}
	return nil
}

// readTable loads a previously written final table. The column layout is
// the fixed Header() order.
func readTable(path string) ([]species.Simplified, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, TableReadError(path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	header, err := reader.Read()
	if err != nil {
		return nil, TableReadError(path, err)
	}
	want := species.Header()
	if len(header) != len(want) {
		return nil, TableReadError(
			path,
			fmt.Errorf("expected %d columns, got %d", len(want), len(header)),
		)
	}

	var rows []species.Simplified
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, TableReadError(path, err)
		}

		id, err := strconv.Atoi(record[0])
		if err != nil {
			return nil, TableReadError(path, err)
		}
		row := species.Simplified{
			ID:                id,
			ScientificName:    record[1],
			Habit:             record[2],
			Status:            record[3],
			ConservationState: record[4],
			Regions:           make(map[string]int, len(species.Regions)),
		}
		for i, reg := range species.Regions {
			presence, err := strconv.Atoi(record[5+i])
			if err != nil {
				return nil, TableReadError(path, err)
			}
			row.Regions[reg.Canonical] = presence
		}
		rows = append(rows, row)
	}
	return rows, nil
}

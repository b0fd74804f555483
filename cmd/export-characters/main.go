package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/thesavant42/rickdex/internal/db"
	"github.com/thesavant42/rickdex/internal/ui"
)

var header = []string{"id", "name", "status", "species", "gender", "origin", "location"}

func main() {
	dbPath := flag.String("db", "rickdex.db", "Path to a snapshot written with --save")
	outputPath := flag.String("output", "characters.csv", "Output CSV file")
	flag.Parse()

	count, err := export(*dbPath, *outputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	ui.PrintSuccess(os.Stdout, fmt.Sprintf("Exported %d characters to %s", count, *outputPath))
}

// export writes every saved character to a CSV file and returns how many rows were written
func export(dbPath, outputPath string) (int, error) {
	store, err := db.New(dbPath, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to open database: %w", err)
	}
	defer store.Close()

	rows, err := store.CharacterRows()
	if err != nil {
		return 0, fmt.Errorf("failed to query database: %w", err)
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return 0, fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return 0, fmt.Errorf("failed to write header: %w", err)
	}

	count := 0
	for _, r := range rows {
		record := []string{
			strconv.FormatInt(r.ID, 10),
			r.Name,
			r.Status,
			r.Species,
			r.Gender,
			r.OriginName,
			r.LocationName,
		}
		if err := w.Write(record); err != nil {
			return count, fmt.Errorf("failed to write row %d: %w", r.ID, err)
		}
		count++
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return count, fmt.Errorf("failed to flush output: %w", err)
	}
	if err := f.Close(); err != nil {
		return count, fmt.Errorf("failed to close output file: %w", err)
	}
	return count, nil
}

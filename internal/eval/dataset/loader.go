package dataset

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/parquet-go/parquet-go"
)

// Loader handles loading of labeled brandboard datasets
type Loader struct {
	datasetPath string
}

// NewLoader creates a new dataset loader
func NewLoader(datasetPath string) *Loader {
	return &Loader{
		datasetPath: datasetPath,
	}
}

// Load loads all records from a dataset file (JSONL or Parquet)
func (l *Loader) Load() ([]BrandRecord, error) {
	return l.load(0)
}

// LoadSample loads a limited number of records (useful for quick runs)
func (l *Loader) LoadSample(limit int) ([]BrandRecord, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("sample limit must be positive, got %d", limit)
	}
	return l.load(limit)
}

// load reads records up to limit; limit 0 means everything.
func (l *Loader) load(limit int) ([]BrandRecord, error) {
	ext := strings.ToLower(filepath.Ext(l.datasetPath))

	switch ext {
	case ".parquet":
		return l.loadParquet(limit)
	case ".jsonl", ".json":
		return l.loadJSONL(limit)
	default:
		return nil, fmt.Errorf("unsupported file format: %s (supported: .parquet, .jsonl)", ext)
	}
}

func (l *Loader) loadJSONL(limit int) ([]BrandRecord, error) {
	slog.Debug("Opening JSONL dataset", "path", l.datasetPath)

	file, err := os.Open(l.datasetPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset file: %w", err)
	}
	defer file.Close()

	var records []BrandRecord
	scanner := bufio.NewScanner(file)

	lineNum := 0
	for scanner.Scan() {
		if limit > 0 && len(records) >= limit {
			break
		}
		lineNum++
		line := scanner.Bytes()

		if len(line) == 0 {
			continue
		}

		var record BrandRecord
		if err := json.Unmarshal(line, &record); err != nil {
			return nil, fmt.Errorf("failed to parse JSON at line %d: %w", lineNum, err)
		}

		records = append(records, record)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading dataset: %w", err)
	}

	slog.Debug("Finished reading JSONL dataset", "total_records", len(records))

	return records, nil
}

func (l *Loader) loadParquet(limit int) ([]BrandRecord, error) {
	slog.Debug("Opening Parquet dataset", "path", l.datasetPath)

	file, err := os.Open(l.datasetPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	pf, err := parquet.OpenFile(file, info.Size())
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet: %w", err)
	}

	slog.Debug("Parquet dataset opened", "num_rows", pf.NumRows(), "num_row_groups", len(pf.RowGroups()))

	reader := parquet.NewGenericReader[BrandRecord](pf)
	defer reader.Close()

	var records []BrandRecord
	rows := make([]BrandRecord, 128) // Read in batches

	for {
		if limit > 0 && len(records) >= limit {
			break
		}
		n, err := reader.Read(rows)
		if n > 0 {
			records = append(records, rows[:n]...)
		}
		if err != nil {
			break
		}
	}

	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}

	slog.Debug("Finished reading Parquet dataset", "total_records", len(records))

	return records, nil
}

package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Writer stores experiment results as CSV files in a timestamped directory.
type Writer struct {
	baseDir string
}

// NewWriter creates the output directory for one named experiment run.
func NewWriter(name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join("results", name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{baseDir: baseDir}, nil
}

// BaseDir is the directory this writer stores files in.
func (w *Writer) BaseDir() string {
	return w.baseDir
}

func (w *Writer) writeCSV(filename string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, filename)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filename, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", filename, err)
	}
	for _, row := range rows {
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write %s row: %w", filename, err)
		}
	}
	return nil
}

// WriteConfigs stores the configurations under test.
func (w *Writer) WriteConfigs(configs []SearcherConfig) error {
	header := []string{"id", "min_iterations", "duration", "exploration", "expansion_threshold", "selection_threshold"}
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			strconv.Itoa(config.MinIterations),
			config.Duration.String(),
			strconv.FormatFloat(config.Exploration, 'f', -1, 64),
			strconv.Itoa(config.ExpansionThreshold),
			strconv.Itoa(config.SelectionThreshold),
		})
	}
	return w.writeCSV("configs.csv", header, rows)
}

// WriteGameRecords stores one row per game played.
func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"config", "game", "seed", "score", "duration"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Config),
			strconv.Itoa(record.Game),
			strconv.FormatInt(record.Seed, 10),
			strconv.FormatFloat(record.Score, 'f', -1, 64),
			record.Duration.String(),
		})
	}
	return w.writeCSV("games.csv", header, rows)
}

// WriteSearchRecords stores one row per search.
func (w *Writer) WriteSearchRecords(records []SearchRecord) error {
	header := []string{"config", "game", "move", "duration", "iterations", "expansions", "playouts", "terminal_hits", "max_depth", "tree_size"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Config),
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Move),
			record.SearchMetric.Duration.String(),
			strconv.Itoa(record.Iterations),
			strconv.Itoa(record.Expansions),
			strconv.Itoa(record.Playouts),
			strconv.Itoa(record.TerminalHits),
			strconv.Itoa(record.MaxDepth),
			strconv.Itoa(record.TreeSize),
		})
	}
	return w.writeCSV("searches.csv", header, rows)
}

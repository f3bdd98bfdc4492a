package metrics

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"

	"montyhall/game"
)

type Setup struct {
	Name       string        `json:"name"`
	Iterations int           `json:"iterations"`
	Doors      int           `json:"doors"`
	Seed       uint64        `json:"seed"`
	StartTime  time.Time     `json:"startTime"`
	EndTime    time.Time     `json:"endTime"`
	Duration   time.Duration `json:"duration"`
}

type Writer struct {
	baseDir string
}

// NewWriter creates <root>/<name>/<timestamp>-<id> to hold one run's files.
func NewWriter(root, name string) (*Writer, error) {
	// Create a subfolder named by current timestamp
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	id := uuid.New().String()[:8]
	baseDir := filepath.Join(root, name, timestamp+"-"+id)
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteSetup(setup Setup) error {
	path := filepath.Join(w.baseDir, "setup.json")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create setup file: %w", err)
	}
	defer f.Close()

	encoder := json.NewEncoder(f)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(setup); err != nil {
		return fmt.Errorf("failed to write setup: %w", err)
	}

	return nil
}

func (w *Writer) WriteGameRecords(records []game.Record) error {
	header := []string{"game", "strategy", "outcome"}
	rows := make([][]string, len(records))
	for i, record := range records {
		rows[i] = []string{
			strconv.Itoa(i + 1),
			record.Strategy.String(),
			record.Outcome.String(),
		}
	}
	return w.writeCSV("game_records.csv", header, rows)
}

func (w *Writer) WriteWinRates(rates []WinRate) error {
	header := []string{"total", "percent", "strategy"}
	rows := make([][]string, len(rates))
	for i, rate := range rates {
		rows[i] = []string{
			strconv.Itoa(rate.Game),
			strconv.FormatFloat(rate.Rate, 'f', 6, 64),
			rate.Strategy.String(),
		}
	}
	return w.writeCSV("win_rates.csv", header, rows)
}

func (w *Writer) writeCSV(name string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	// Write header
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}

	// Write each row
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write %s row: %w", name, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", name, err)
	}
	return nil
}

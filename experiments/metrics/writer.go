package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// TimestampLayout names output directories. It has no colons so the
// directories are valid on every platform.
const TimestampLayout = "20060102T150405Z"

type Writer struct {
	baseDir string
}

// NewWriter creates dir/name/<timestamp> and writes every file there.
func NewWriter(dir, name string) (*Writer, error) {
	// Create a subfolder named by current timestamp
	timestamp := time.Now().UTC().Format(TimestampLayout)
	baseDir := filepath.Join(dir, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "seed", "winner", "total_moves", "log_length", "reveals", "start_time", "end_time", "duration"}
	rows := make([][]string, len(records))
	for i, record := range records {
		rows[i] = []string{
			strconv.Itoa(record.ID),
			strconv.FormatUint(record.Seed, 10),
			string(record.Winner),
			strconv.Itoa(record.TotalMoves),
			strconv.Itoa(record.LogLength),
			strconv.Itoa(record.Reveals),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
		}
	}
	return w.write("game_records.csv", header, rows)
}

func (w *Writer) WriteSummary(s Summary) error {
	header := []string{"scenario", "games", "fugitive_wins", "tracker_wins", "undecided", "mean_moves", "mean_duration"}
	row := []string{
		s.Scenario,
		strconv.Itoa(s.Games),
		strconv.Itoa(s.FugitiveWins),
		strconv.Itoa(s.TrackerWins),
		strconv.Itoa(s.Undecided),
		strconv.FormatFloat(s.MeanMoves, 'f', 2, 64),
		s.MeanDuration.String(),
	}
	return w.write("summary.csv", header, [][]string{row})
}

func (w *Writer) write(name string, header []string, rows [][]string) error {
	// Create a file
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	for _, row := range rows {
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write %s row: %w", name, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

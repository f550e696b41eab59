package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// BatchRecord is one estimator batch of an experiment.
type BatchRecord struct {
	ID    string // batch uuid
	Seed  uint64
	Ply   int
	WinsA int
	WinsB int
	Draws int
	BatchMetric
}

type GameRecord struct {
	ID   int
	Seed uint64 // seed of the random players
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates root/name/<timestamp> and writes every file there.
func NewWriter(root, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(root, name, timestamp)
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

func (w *Writer) WriteBatchRecords(records []BatchRecord) error {
	header := []string{"id", "seed", "ply", "wins_a", "wins_b", "draws", "simulations", "cutoff", "duration", "playouts", "full_playouts", "plies"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			record.ID,
			strconv.FormatUint(record.Seed, 10),
			strconv.Itoa(record.Ply),
			strconv.Itoa(record.WinsA),
			strconv.Itoa(record.WinsB),
			strconv.Itoa(record.Draws),
			strconv.Itoa(record.Simulations),
			strconv.Itoa(record.Cutoff),
			record.Duration.String(),
			strconv.Itoa(record.Playouts),
			strconv.Itoa(record.FullPlayouts),
			strconv.Itoa(record.Plies),
		})
	}
	return w.write("batch_records.csv", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "seed", "starting_player", "winner", "start_time", "end_time", "duration", "total_moves"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			strconv.FormatUint(record.Seed, 10),
			record.StartingPlayer,
			record.Winner,
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
			strconv.Itoa(record.TotalMoves),
		})
	}
	return w.write("game_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "player", "wins_a", "wins_b", "draws", "total"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			record.Player,
			strconv.Itoa(record.WinsA),
			strconv.Itoa(record.WinsB),
			strconv.Itoa(record.Draws),
			strconv.Itoa(record.Total),
		})
	}
	return w.write("move_records.csv", header, rows)
}

func (w *Writer) write(name string, header []string, rows [][]string) error {
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
	err = writer.WriteAll(rows)
	if err != nil {
		return fmt.Errorf("failed to write %s rows: %w", name, err)
	}
	return nil
}

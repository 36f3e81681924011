// Package storage persists run summaries under a data directory, one
// subdirectory per run: metadata.json plus the final array as CSV.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/sortlab/internal/engine"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID          string    `json:"id"`
	Algorithm   string    `json:"algorithm"`
	Timestamp   time.Time `json:"timestamp"`
	Speed       int       `json:"speed"`
	Mode        string    `json:"mode"`
	Size        int       `json:"size"`
	Seed        int64     `json:"seed"`
	Success     bool      `json:"success"`
	Comparisons int64     `json:"comparisons"`
	Swaps       int64     `json:"swaps"`
	Accesses    int64     `json:"accesses"`
	ElapsedMS   int64     `json:"elapsed_ms"`
}

func (s *Store) Save(speed int, mode string, seed int64, result *engine.Result) (string, error) {
	runID := fmt.Sprintf("%s_%d", result.Algorithm, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:          runID,
		Algorithm:   result.Algorithm,
		Timestamp:   time.Now(),
		Speed:       speed,
		Mode:        mode,
		Size:        len(result.Final),
		Seed:        seed,
		Success:     result.Success,
		Comparisons: result.Comparisons,
		Swaps:       result.Swaps,
		Accesses:    result.Accesses,
		ElapsedMS:   result.Elapsed.Milliseconds(),
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "array.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"index", "value"}); err != nil {
		return "", err
	}
	for i, v := range result.Final {
		if err := w.Write([]string{strconv.Itoa(i), strconv.Itoa(v)}); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var runs []RunMetadata
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		meta, err := s.Load(e.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

func (s *Store) LoadArray(runID string) ([]int, error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, "array.csv"))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 1 {
		return nil, fmt.Errorf("storage: empty array file for %s", runID)
	}

	values := make([]int, 0, len(records)-1)
	for _, rec := range records[1:] {
		if len(rec) < 2 {
			continue
		}
		v, err := strconv.Atoi(rec[1])
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

// ExportJSON writes a run's metadata to w as indented JSON.
func (s *Store) ExportJSON(w io.Writer, runID string) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

// ExportCSV writes a run's final array to w as CSV.
func (s *Store) ExportCSV(w io.Writer, runID string) error {
	values, err := s.LoadArray(runID)
	if err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"index", "value"}); err != nil {
		return err
	}
	for i, v := range values {
		if err := cw.Write([]string{strconv.Itoa(i), strconv.Itoa(v)}); err != nil {
			return err
		}
	}
	return nil
}

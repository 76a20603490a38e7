package record

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"
)

const DefaultMax = 10

type Record struct {
	SessionID  string
	Score      int32
	Length     int32
	Ticks      int32
	FinishedAt time.Time
}

// Store keeps the best records in a single file. Safe for concurrent use.
type Store struct {
	path string
	max  int

	mu sync.Mutex
}

func NewStore(path string, max int) *Store {
	if max <= 0 {
		max = DefaultMax
	}
	return &Store{
		path: path,
		max:  max,
	}
}

func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to find config dir: %w", err)
	}
	return filepath.Join(dir, "habiter", "records.pb"), nil
}

func (s *Store) Path() string {
	return s.path
}

// Load returns the records best first. A missing file is an empty table.
func (s *Store) Load() ([]Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadUnlocked()
}

func (s *Store) Best() (Record, bool, error) {
	records, err := s.Load()
	if err != nil || len(records) == 0 {
		return Record{}, false, err
	}
	return records[0], true, nil
}

// Add inserts r and returns its 1-based rank, or 0 when it did not make the
// table.
func (s *Store) Add(r Record) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.loadUnlocked()
	if err != nil {
		return 0, err
	}

	records = append(records, r)
	sortRecords(records)

	rank := 0
	for i, existing := range records {
		if existing.SessionID == r.SessionID && existing.FinishedAt.Equal(r.FinishedAt) {
			rank = i + 1
			break
		}
	}
	if rank > s.max {
		rank = 0
	}
	if len(records) > s.max {
		records = records[:s.max]
	}

	if err := s.saveUnlocked(records); err != nil {
		return 0, err
	}
	return rank, nil
}

func (s *Store) loadUnlocked() ([]Record, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return make([]Record, 0), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read records: %w", err)
	}

	records, err := Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", s.path, err)
	}
	sortRecords(records)
	return records, nil
}

func (s *Store) saveUnlocked(records []Record) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create records dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".records-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(Marshal(records)); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write records: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close records: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("failed to replace records: %w", err)
	}
	return nil
}

func sortRecords(records []Record) {
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Score != records[j].Score {
			return records[i].Score > records[j].Score
		}
		return records[i].FinishedAt.Before(records[j].FinishedAt)
	})
}

// Package store persists the best score between runs.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"gridsnake/internal/game"
)

// ErrNoRecord is returned by Load when no best score has been saved yet.
var ErrNoRecord = errors.New("no best score recorded")

// Record is the on-disk form of the best score.
type Record struct {
	Best    int       `json:"best"`
	Round   string    `json:"round,omitempty"`
	Updated time.Time `json:"updated,omitempty"`
}

// Store reads and writes a single best-score file.
type Store struct {
	path string

	mu   sync.Mutex
	best int
	now  func() time.Time
}

// DefaultPath returns best.json under the user's config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(dir, "gridsnake", "best.json"), nil
}

func New(path string) *Store {
	return &Store{path: path, now: time.Now}
}

func (s *Store) Path() string { return s.path }

// Load reads the saved best score. A missing file yields 0 and ErrNoRecord;
// an unreadable or malformed file yields 0 and a descriptive error.
// Either way the returned score is usable.
func (s *Store) Load() (int, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, ErrNoRecord
	}
	if err != nil {
		return 0, fmt.Errorf("read best score: %w", err)
	}
	best, err := parse(data)
	if err != nil {
		return 0, fmt.Errorf("parse best score %s: %w", s.path, err)
	}

	s.mu.Lock()
	s.best = best
	s.mu.Unlock()
	return best, nil
}

// parse accepts the JSON record or a bare integer.
func parse(data []byte) (int, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return 0, errors.New("empty file")
	}
	var best int
	if data[0] == '{' {
		var r Record
		if err := json.Unmarshal(data, &r); err != nil {
			return 0, err
		}
		best = r.Best
	} else {
		n, err := strconv.Atoi(string(data))
		if err != nil {
			return 0, err
		}
		best = n
	}
	if best < 0 {
		return 0, fmt.Errorf("negative score %d", best)
	}
	return best, nil
}

// Save writes best if it beats what the store has seen. It reports whether
// the file was written.
func (s *Store) Save(best int, round string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if best <= s.best {
		return false, nil
	}

	data, err := json.MarshalIndent(Record{Best: best, Round: round, Updated: s.now().UTC()}, "", "  ")
	if err != nil {
		return false, err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return false, fmt.Errorf("create best score dir: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, append(data, '\n'), 0o644); err != nil {
		return false, fmt.Errorf("write best score: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return false, fmt.Errorf("replace best score: %w", err)
	}
	s.best = best
	return true, nil
}

// Watch saves every new best published on bus. Failures are logged.
func (s *Store) Watch(bus *game.EventBus) {
	bus.Subscribe(game.EventNewBest, func(e game.Event) {
		if _, err := s.Save(e.Best, e.Round); err != nil {
			log.Printf("best score not saved: %v", err)
		}
	})
}

// Package progress persists the player's long-lived state: best score,
// unlocked achievements, and discovered secrets. The profile lives in a
// small YAML file keyed by fixed string identifiers; a missing file or
// missing key falls back to a documented default and never fails the game.
package progress

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Fixed identifiers used by the simulation's gamification hook. Readers of
// the profile file key off these exact strings:
//
//	best_score: highest session score, default 0
//	achievements: "first-blood", "powered-up", "survivor-60"
//	secrets: "secret-max-combo"

// Profile is the on-disk document.
type Profile struct {
	// ID is assigned once when the profile is first created.
	ID string `yaml:"id"`

	// BestScore is the highest session score ever recorded. Default 0.
	BestScore int `yaml:"best_score"`

	// TotalPoints accumulates every point ever awarded. Default 0.
	TotalPoints int `yaml:"total_points"`

	// Achievements maps fixed achievement ids to true once unlocked.
	// Absent ids are locked.
	Achievements map[string]bool `yaml:"achievements"`

	// Secrets maps fixed secret ids to true once discovered.
	Secrets map[string]bool `yaml:"secrets"`
}

// Store loads, mutates, and saves a profile. It is used only from the one
// goroutine driving the game loop.
type Store struct {
	path    string
	profile Profile
}

// DefaultPath returns the profile location under the user config dir.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "survivorlike-profile.yaml"
	}
	return filepath.Join(dir, "survivorlike", "profile.yaml")
}

// Open reads the profile at path, creating a fresh one (with a new id) if
// the file is absent or unreadable. Open never returns an error for a
// missing or corrupt file; the game runs fine without persistence.
func Open(path string) *Store {
	s := &Store{
		path: path,
		profile: Profile{
			ID:           uuid.NewString(),
			Achievements: make(map[string]bool),
			Secrets:      make(map[string]bool),
		},
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("progress: read %s: %v", path, err)
		}
		return s
	}

	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		log.Printf("progress: parse %s: %v, starting fresh", path, err)
		return s
	}

	// Fill defaults for keys the file predates.
	if p.ID == "" {
		p.ID = s.profile.ID
	}
	if p.Achievements == nil {
		p.Achievements = make(map[string]bool)
	}
	if p.Secrets == nil {
		p.Secrets = make(map[string]bool)
	}
	s.profile = p
	return s
}

// BestScore returns the recorded best, 0 when never set.
func (s *Store) BestScore() int {
	return s.profile.BestScore
}

// TotalPoints returns the lifetime point total, 0 when never set.
func (s *Store) TotalPoints() int {
	return s.profile.TotalPoints
}

// AddPoints accumulates lifetime points.
func (s *Store) AddPoints(amount int) {
	if amount > 0 {
		s.profile.TotalPoints += amount
	}
}

// RecordScore stores score if it beats the best. Returns true on a new
// best, persisting immediately.
func (s *Store) RecordScore(score int) bool {
	if score <= s.profile.BestScore {
		return false
	}
	s.profile.BestScore = score
	s.save()
	return true
}

// Unlock marks an achievement id earned. Repeat calls are no-ops.
func (s *Store) Unlock(id string) {
	if s.profile.Achievements[id] {
		return
	}
	s.profile.Achievements[id] = true
	s.save()
}

// Unlocked reports whether an achievement id has been earned.
func (s *Store) Unlocked(id string) bool {
	return s.profile.Achievements[id]
}

// DiscoverSecret marks a secret id found. Repeat calls are no-ops.
func (s *Store) DiscoverSecret(id string) {
	if s.profile.Secrets[id] {
		return
	}
	s.profile.Secrets[id] = true
	s.save()
}

// Discovered reports whether a secret id has been found.
func (s *Store) Discovered(id string) bool {
	return s.profile.Secrets[id]
}

// Save writes the profile out. Exposed for shutdown; all mutating calls
// already persist as they go.
func (s *Store) Save() error {
	return s.write()
}

func (s *Store) save() {
	if err := s.write(); err != nil {
		log.Printf("progress: %v", err)
	}
}

func (s *Store) write() error {
	data, err := yaml.Marshal(s.profile)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create profile dir: %w", err)
		}
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write profile: %w", err)
	}
	return nil
}

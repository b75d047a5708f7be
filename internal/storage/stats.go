package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/vovakirdan/space-explorer/internal/config"
)

// Stat key prefixes. The difficulty suffix is appended to each.
const (
	highScoreKey = "highScore"
	lastScoreKey = "lastScore"
)

// StatKey returns the stored key for a stat and difficulty:
// "" for easy, "2" for medium and "3" for hard, so easy's high score is
// "highScore" and hard's last score is "lastScore3".
func StatKey(prefix string, d config.Difficulty) string {
	switch d {
	case config.DifficultyMedium:
		return prefix + "2"
	case config.DifficultyHard:
		return prefix + "3"
	default:
		return prefix
	}
}

// AllStatKeys returns the six stat keys.
func AllStatKeys() []string {
	var keys []string
	for _, prefix := range []string{highScoreKey, lastScoreKey} {
		for _, d := range config.Difficulties() {
			keys = append(keys, StatKey(prefix, d))
		}
	}
	return keys
}

// queryer is satisfied by *sql.DB and *sql.Tx.
type queryer interface {
	QueryRow(query string, args ...any) *sql.Row
	Exec(query string, args ...any) (sql.Result, error)
}

func getStat(q queryer, key string) (int, error) {
	var v int
	err := q.QueryRow("SELECT value FROM stats WHERE key = ?", key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot read %s: %w", key, err)
	}
	return v, nil
}

func setStat(q queryer, key string, v int) error {
	_, err := q.Exec(
		`INSERT INTO stats (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, v,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot write %s: %w", key, err)
	}
	return nil
}

// HighScore returns the stored high score for a difficulty. Missing keys read as 0.
func (s *Store) HighScore(d config.Difficulty) (int, error) {
	return getStat(s.db, StatKey(highScoreKey, d))
}

// LastScore returns the stored last score for a difficulty.
func (s *Store) LastScore(d config.Difficulty) (int, error) {
	return getStat(s.db, StatKey(lastScoreKey, d))
}

// SaveHighScore stores a high score.
func (s *Store) SaveHighScore(d config.Difficulty, score int) error {
	return setStat(s.db, StatKey(highScoreKey, d), score)
}

// SaveLastScore stores a last score.
func (s *Store) SaveLastScore(d config.Difficulty, score int) error {
	return setStat(s.db, StatKey(lastScoreKey, d), score)
}

// ClearStats resets all six stat keys to 0. Score history is kept.
func (s *Store) ClearStats() error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, key := range AllStatKeys() {
		if err := setStat(tx, key, 0); err != nil {
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit: %w", err)
	}
	return nil
}

// Result is the outcome of recording a finished run.
// PrevLast and PrevHigh are the values stored before the run was saved.
type Result struct {
	PrevLast int
	PrevHigh int
	NewHigh  bool
}

// RecordResult saves a finished run: the score becomes the last score, and
// the high score if strictly greater than the stored one. The run is also
// appended to the score history.
func (s *Store) RecordResult(d config.Difficulty, score int) (Result, error) {
	var res Result

	tx, err := s.db.Begin()
	if err != nil {
		return res, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	if res.PrevLast, err = getStat(tx, StatKey(lastScoreKey, d)); err != nil {
		return res, err
	}
	if res.PrevHigh, err = getStat(tx, StatKey(highScoreKey, d)); err != nil {
		return res, err
	}

	if err := setStat(tx, StatKey(lastScoreKey, d), score); err != nil {
		return res, err
	}
	if score > res.PrevHigh {
		if err := setStat(tx, StatKey(highScoreKey, d), score); err != nil {
			return res, err
		}
		res.NewHigh = true
	}

	if _, err := tx.Exec("INSERT INTO scores (difficulty, score) VALUES (?, ?)", string(d), score); err != nil {
		return res, fmt.Errorf("storage: cannot save score: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return res, fmt.Errorf("storage: cannot commit: %w", err)
	}
	return res, nil
}

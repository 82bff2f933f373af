package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/petarvukov/ttliga/internal/league"
)

// stateKey mirrors the storage key the original browser app kept its
// localStorage blob under.
const stateKey = "tournaments"

// StateStore keeps the whole tournament list as a single JSON document in one
// row of the app_state table.
type StateStore struct {
	db *sqlx.DB
}

func NewStateStore(db *sqlx.DB) *StateStore {
	return &StateStore{db: db}
}

func (s *StateStore) Load(ctx context.Context) ([]league.Tournament, error) {
	var raw []byte
	err := s.db.GetContext(ctx, &raw, "SELECT data FROM app_state WHERE key = ?", stateKey)
	if errors.Is(err, sql.ErrNoRows) {
		// Absent storage reads as an empty list, never as an error.
		return []league.Tournament{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load tournament state: %w", err)
	}

	var tournaments []league.Tournament
	if err := json.Unmarshal(raw, &tournaments); err != nil {
		return nil, fmt.Errorf("failed to decode tournament state: %w", err)
	}
	return tournaments, nil
}

func (s *StateStore) Save(ctx context.Context, tournaments []league.Tournament) error {
	raw, err := json.Marshal(tournaments)
	if err != nil {
		return fmt.Errorf("failed to encode tournament state: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `INSERT INTO app_state (key, data) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET data = excluded.data`, stateKey, raw)
	if err != nil {
		return fmt.Errorf("failed to save tournament state: %w", err)
	}
	return nil
}

package store

import (
	"context"

	"github.com/petarvukov/ttliga/internal/league"
)

// Store persists the full tournament list as one blob. Every mutation goes
// through a whole load-mutate-save cycle; there is no partial write.
type Store interface {
	Load(ctx context.Context) ([]league.Tournament, error)
	Save(ctx context.Context, tournaments []league.Tournament) error
}

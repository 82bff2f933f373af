package store

import (
	"context"
	"testing"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/petarvukov/ttliga/internal/league"
	"github.com/petarvukov/ttliga/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates an in-memory SQLite database and applies migrations
func setupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	database, err := sqlx.Connect("sqlite3", "file::memory:")
	require.NoError(t, err, "Failed to connect to in-memory DB")

	driver, err := sqlite3.WithInstance(database.DB, &sqlite3.Config{})
	require.NoError(t, err, "Failed to create migrate driver instance")

	m, err := migrate.NewWithDatabaseInstance(
		"file://../../migrations",
		"sqlite3",
		driver,
	)
	require.NoError(t, err, "Failed to create migrate instance")

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		require.NoError(t, err, "Failed to apply migrations")
	}

	return database
}

// sampleTournaments is a graph shaped the way the documented operations
// produce it: resolved player ids, padded slots, derived fields recomputed.
func sampleTournaments() []league.Tournament {
	return []league.Tournament{{
		ID:     "t1",
		Name:   "Spring League",
		Format: league.RoundRobin,
		Teams: []league.Team{
			{ID: "a", Name: "Raptors", Players: []league.Player{{ID: "p1", Name: "Ana"}}},
			{ID: "b", Name: "Eagles", Players: []league.Player{{ID: "p2", Name: "Petra"}}},
		},
		Matches: []league.TeamMatch{{
			ID:      "m1",
			Team1ID: "a",
			Team2ID: "b",
			Played:  false,
			IndividualMatches: []league.IndividualMatch{{
				Player1ID:   "p1",
				Player2ID:   "p2",
				Player1Name: "Ana",
				Player2Name: "Petra",
				Player1Sets: []*int{utils.Ptr(11), utils.Ptr(9), nil, nil, nil},
				Player2Sets: []*int{utils.Ptr(7), utils.Ptr(11), nil, nil, nil},
				Winner:      league.WinnerUndecided,
			}},
		}},
	}}
}

func TestStateStore_LoadEmpty(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	st := NewStateStore(db)

	tournaments, err := st.Load(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, tournaments)
	assert.Empty(t, tournaments)
}

func TestStateStore_RoundTrip(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	st := NewStateStore(db)
	ctx := context.Background()

	saved := sampleTournaments()
	require.NoError(t, st.Save(ctx, saved))

	loaded, err := st.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}

func TestStateStore_SaveOverwrites(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	st := NewStateStore(db)
	ctx := context.Background()

	require.NoError(t, st.Save(ctx, sampleTournaments()))
	require.NoError(t, st.Save(ctx, []league.Tournament{{ID: "t2", Name: "Autumn League"}}))

	loaded, err := st.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "t2", loaded[0].ID)
}

func TestMemoryStore_RoundTrip(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()

	tournaments, err := st.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, tournaments)

	saved := sampleTournaments()
	require.NoError(t, st.Save(ctx, saved))

	loaded, err := st.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)

	// The store never hands back shared state
	loaded[0].Name = "changed"
	again, err := st.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Spring League", again[0].Name)
}

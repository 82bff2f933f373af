package service

import (
	"context"
	"testing"

	"github.com/petarvukov/ttliga/internal/league"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedMatch builds a tournament with two staffed teams and a generated
// schedule, returning the ids needed by the result-recording tests.
func seedMatch(t *testing.T, svc *TournamentService) (tournamentID, matchID string, team1, team2 *league.Team) {
	t.Helper()
	ctx := context.Background()

	tournament, err := svc.Create(ctx, "Spring League", league.RoundRobin)
	require.NoError(t, err)

	team1, err = svc.AddTeam(ctx, tournament.ID, "Raptors")
	require.NoError(t, err)
	team2, err = svc.AddTeam(ctx, tournament.ID, "Eagles")
	require.NoError(t, err)

	for _, name := range []string{"Ana", "Ivan", "Marko"} {
		_, err := svc.AddPlayer(ctx, tournament.ID, team1.ID, name)
		require.NoError(t, err)
	}
	for _, name := range []string{"Petra", "Luka", "Sara"} {
		_, err := svc.AddPlayer(ctx, tournament.ID, team2.ID, name)
		require.NoError(t, err)
	}

	matches, err := svc.GenerateMatches(ctx, tournament.ID, false)
	require.NoError(t, err)
	require.Len(t, matches, 1)

	loaded, err := svc.Get(ctx, tournament.ID)
	require.NoError(t, err)
	return tournament.ID, matches[0].ID, loaded.Team(team1.ID), loaded.Team(team2.ID)
}

func TestEditor_PadsWithoutPersisting(t *testing.T) {
	svc, _ := newTestService(t)
	matchSvc := NewMatchService(svc)
	ctx := context.Background()

	tournamentID, matchID, team1, team2 := seedMatch(t, svc)

	editor, err := matchSvc.Editor(ctx, tournamentID, matchID)
	require.NoError(t, err)
	require.Len(t, editor.Match.IndividualMatches, league.IndividualMatchSlots)
	assert.Equal(t, team1.ID, editor.Team1.ID)
	assert.Equal(t, team2.ID, editor.Team2.ID)
	for _, im := range editor.Match.IndividualMatches {
		assert.Len(t, im.Player1Sets, league.MaxSets)
		assert.Len(t, im.Player2Sets, league.MaxSets)
		assert.Equal(t, league.WinnerUndecided, im.Winner)
	}

	// Padding is a view concern; nothing was saved
	loaded, err := svc.Get(ctx, tournamentID)
	require.NoError(t, err)
	assert.Empty(t, loaded.Match(matchID).IndividualMatches)

	_, err = matchSvc.Editor(ctx, tournamentID, "missing")
	assert.ErrorIs(t, err, ErrMatchNotFound)
}

func TestSaveResults(t *testing.T) {
	svc, _ := newTestService(t)
	matchSvc := NewMatchService(svc)
	ctx := context.Background()

	tournamentID, matchID, team1, team2 := seedMatch(t, svc)

	rows := []IndividualResultInput{
		{Player1Name: "Ana", Player2Name: "Petra", Sets: []string{"11:9", "11:7", "11:5"}},
		{Player1Name: "Ivan", Player2Name: "Luka", Sets: []string{"9:11", "7:11", "na", "5:11"}},
		{Player1Name: "Marko", Player2Name: "Sara", Sets: []string{"11:8", "8:11", "11:9", "12:10"}},
		{Player1Name: "Ana", Player2Name: "Luka", Sets: []string{"11:3", "11:4", "11:5"}},
	}

	match, err := matchSvc.SaveResults(ctx, tournamentID, matchID, rows)
	require.NoError(t, err)

	require.Len(t, match.IndividualMatches, league.IndividualMatchSlots)
	assert.Equal(t, league.WinnerPlayer1, match.IndividualMatches[0].Winner)
	assert.Equal(t, league.WinnerPlayer2, match.IndividualMatches[1].Winner)
	assert.Equal(t, league.WinnerPlayer1, match.IndividualMatches[2].Winner)
	assert.Equal(t, league.WinnerPlayer1, match.IndividualMatches[3].Winner)
	assert.Equal(t, league.WinnerUndecided, match.IndividualMatches[4].Winner)

	assert.Equal(t, 3, match.Team1Sets)
	assert.Equal(t, 1, match.Team2Sets)
	assert.True(t, match.Played)

	// Selected names resolved against the rosters
	assert.Equal(t, team1.Players[0].ID, match.IndividualMatches[0].Player1ID)
	assert.Equal(t, team2.Players[0].ID, match.IndividualMatches[0].Player2ID)

	// The "na" slot was ignored for both sides
	assert.Nil(t, match.IndividualMatches[1].Player1Sets[2])
	assert.Nil(t, match.IndividualMatches[1].Player2Sets[2])

	loaded, err := svc.Get(ctx, tournamentID)
	require.NoError(t, err)
	assert.True(t, loaded.Match(matchID).Played)
}

func TestSaveResults_UndecidedMatchStaysUnplayed(t *testing.T) {
	svc, _ := newTestService(t)
	matchSvc := NewMatchService(svc)
	ctx := context.Background()

	tournamentID, matchID, _, _ := seedMatch(t, svc)

	rows := []IndividualResultInput{
		{Player1Name: "Ana", Player2Name: "Petra", Sets: []string{"11:9", "11:7", "11:5"}},
		{Player1Name: "Ivan", Player2Name: "Luka", Sets: []string{"11:9", "7:11"}},
	}

	match, err := matchSvc.SaveResults(ctx, tournamentID, matchID, rows)
	require.NoError(t, err)
	assert.Equal(t, 1, match.Team1Sets)
	assert.Equal(t, 0, match.Team2Sets)
	assert.False(t, match.Played)
}

func TestSaveResults_ReSaveOverwrites(t *testing.T) {
	svc, _ := newTestService(t)
	matchSvc := NewMatchService(svc)
	ctx := context.Background()

	tournamentID, matchID, _, _ := seedMatch(t, svc)

	rows := []IndividualResultInput{
		{Player1Name: "Ana", Player2Name: "Petra", Sets: []string{"11:9", "11:7", "11:5"}},
	}
	_, err := matchSvc.SaveResults(ctx, tournamentID, matchID, rows)
	require.NoError(t, err)

	// A partial edit clears the first row again
	rows[0].Sets = []string{"11:9"}
	match, err := matchSvc.SaveResults(ctx, tournamentID, matchID, rows)
	require.NoError(t, err)
	assert.Equal(t, league.WinnerUndecided, match.IndividualMatches[0].Winner)
	assert.Zero(t, match.Team1Sets)
	assert.False(t, match.Played)
}

func TestSaveResults_NotFound(t *testing.T) {
	svc, _ := newTestService(t)
	matchSvc := NewMatchService(svc)
	ctx := context.Background()

	tournamentID, _, _, _ := seedMatch(t, svc)

	_, err := matchSvc.SaveResults(ctx, "missing", "m", nil)
	assert.ErrorIs(t, err, ErrTournamentNotFound)

	_, err = matchSvc.SaveResults(ctx, tournamentID, "missing", nil)
	assert.ErrorIs(t, err, ErrMatchNotFound)
}

func TestEnterSets(t *testing.T) {
	svc, _ := newTestService(t)
	matchSvc := NewMatchService(svc)
	ctx := context.Background()

	tournamentID, matchID, _, _ := seedMatch(t, svc)

	match, err := matchSvc.EnterSets(ctx, matchID, 0, "11-8, 6-11, 11-7, 11-5")
	require.NoError(t, err)

	im := match.IndividualMatches[0]
	require.Len(t, im.Player1Sets, 4)
	assert.Equal(t, league.WinnerPlayer1, im.Winner)
	assert.Equal(t, 1, match.Team1Sets)
	assert.False(t, match.Played)

	loaded, err := svc.Get(ctx, tournamentID)
	require.NoError(t, err)
	assert.Equal(t, league.WinnerPlayer1, loaded.Match(matchID).IndividualMatches[0].Winner)
}

func TestEnterSets_EmptyInputIsANoOp(t *testing.T) {
	svc, _ := newTestService(t)
	matchSvc := NewMatchService(svc)
	ctx := context.Background()

	tournamentID, matchID, _, _ := seedMatch(t, svc)

	match, err := matchSvc.EnterSets(ctx, matchID, 0, "   ")
	require.NoError(t, err)
	assert.Empty(t, match.IndividualMatches)

	loaded, err := svc.Get(ctx, tournamentID)
	require.NoError(t, err)
	assert.Empty(t, loaded.Match(matchID).IndividualMatches)
}

func TestEnterSets_Errors(t *testing.T) {
	svc, _ := newTestService(t)
	matchSvc := NewMatchService(svc)
	ctx := context.Background()

	_, matchID, _, _ := seedMatch(t, svc)

	_, err := matchSvc.EnterSets(ctx, "missing", 0, "11-8")
	assert.ErrorIs(t, err, ErrMatchNotFound)

	_, err = matchSvc.EnterSets(ctx, matchID, 7, "11-8")
	assert.ErrorIs(t, err, ErrIndividualMatchIndex)

	_, err = matchSvc.EnterSets(ctx, matchID, -1, "11-8")
	assert.ErrorIs(t, err, ErrIndividualMatchIndex)
}

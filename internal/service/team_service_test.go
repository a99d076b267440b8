package service_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/alexdoyle/rivals-team-builder/internal/analysis"
	"github.com/alexdoyle/rivals-team-builder/internal/broadcast"
	"github.com/alexdoyle/rivals-team-builder/internal/domain"
	"github.com/alexdoyle/rivals-team-builder/internal/repository"
	repoPostgres "github.com/alexdoyle/rivals-team-builder/internal/repository/postgres"
	"github.com/alexdoyle/rivals-team-builder/internal/service"
	"github.com/alexdoyle/rivals-team-builder/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTeamService(testDB *testutil.TestDB) (*service.TeamService, *repository.Repositories) {
	repos := repoPostgres.NewRepositories(testDB.DB)
	heroService := service.NewHeroService(repos.Hero)
	layer := broadcast.NewMemoryLayer()
	teamService := service.NewTeamService(repos.Team, repos.Vote, repos.Comment, repos.User, heroService, layer)
	return teamService, repos
}

func rosterOf(heroes []*domain.Hero) []analysis.RosterSlot {
	slots := make([]analysis.RosterSlot, len(heroes))
	for i, hero := range heroes {
		slots[i] = analysis.RosterSlot{HeroID: hero.ID, Position: i + 1}
	}
	return slots
}

func TestTeamService_CreateTeam(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	teamService, _ := newTeamService(testDB)
	ctx := context.Background()

	owner, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	heroes := testutil.SeedBalancedRoster(t, testDB.DB)

	team, err := teamService.CreateTeam(ctx, owner.ID, service.CreateTeamInput{
		Name:        "Dive Comp",
		Description: "All-in on the backline",
		Members:     rosterOf(heroes),
	})
	require.NoError(t, err)

	assert.Equal(t, "Dive Comp", team.Name)
	assert.Equal(t, owner.ID, team.OwnerID)
	assert.Len(t, team.Members, 6)
	assert.NotEmpty(t, team.Slug)
	assert.GreaterOrEqual(t, team.CompositionScore, 0)
	assert.LessOrEqual(t, team.CompositionScore, 100)
	assert.NotEmpty(t, team.AnalysisData)

	var result analysis.Result
	require.NoError(t, json.Unmarshal(team.AnalysisData, &result))
	assert.Equal(t, team.CompositionScore, result.Score)
	assert.Equal(t, 2, result.RoleBalance["VANGUARD"])
	assert.Equal(t, 2, result.RoleBalance["DUELIST"])
	assert.Equal(t, 2, result.RoleBalance["STRATEGIST"])
}

func TestTeamService_CreateTeam_RosterValidation(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	teamService, _ := newTeamService(testDB)
	ctx := context.Background()

	owner, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	heroes := testutil.SeedBalancedRoster(t, testDB.DB)

	t.Run("rejects five members", func(t *testing.T) {
		_, err := teamService.CreateTeam(ctx, owner.ID, service.CreateTeamInput{
			Name:    "Short Team",
			Members: rosterOf(heroes[:5]),
		})
		var verr *analysis.ValidationError
		require.ErrorAs(t, err, &verr)
	})

	t.Run("rejects duplicate hero", func(t *testing.T) {
		slots := rosterOf(heroes)
		slots[5].HeroID = slots[0].HeroID
		_, err := teamService.CreateTeam(ctx, owner.ID, service.CreateTeamInput{
			Name:    "Doubled Up",
			Members: slots,
		})
		var verr *analysis.ValidationError
		require.ErrorAs(t, err, &verr)
	})

	t.Run("rejects duplicate position", func(t *testing.T) {
		slots := rosterOf(heroes)
		slots[5].Position = slots[0].Position
		_, err := teamService.CreateTeam(ctx, owner.ID, service.CreateTeamInput{
			Name:    "Crowded Slot",
			Members: slots,
		})
		var verr *analysis.ValidationError
		require.ErrorAs(t, err, &verr)
	})
}

func TestTeamService_UpdateTeam_OwnerOnly(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	teamService, _ := newTeamService(testDB)
	ctx := context.Background()

	owner, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	stranger, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	heroes := testutil.SeedBalancedRoster(t, testDB.DB)

	team, err := teamService.CreateTeam(ctx, owner.ID, service.CreateTeamInput{
		Name:    "Original Name",
		Members: rosterOf(heroes),
	})
	require.NoError(t, err)

	hijacked := "Hijacked"
	_, err = teamService.UpdateTeam(ctx, stranger.ID, team.Slug, service.UpdateTeamInput{
		Name: &hijacked,
	})
	assert.ErrorIs(t, err, domain.ErrNotTeamOwner)

	renamed := "Renamed"
	desc := "Still the same six"
	updated, err := teamService.UpdateTeam(ctx, owner.ID, team.Slug, service.UpdateTeamInput{
		Name:        &renamed,
		Description: &desc,
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, team.Slug, updated.Slug, "slug must survive a rename")
	assert.Len(t, updated.Members, 6)
}

func TestTeamService_DeleteTeam_OwnerOnly(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	teamService, _ := newTeamService(testDB)
	ctx := context.Background()

	owner, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	stranger, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	heroes := testutil.SeedBalancedRoster(t, testDB.DB)

	team, err := teamService.CreateTeam(ctx, owner.ID, service.CreateTeamInput{
		Name:    "Doomed Team",
		Members: rosterOf(heroes),
	})
	require.NoError(t, err)

	err = teamService.DeleteTeam(ctx, stranger.ID, team.Slug)
	assert.ErrorIs(t, err, domain.ErrNotTeamOwner)

	require.NoError(t, teamService.DeleteTeam(ctx, owner.ID, team.Slug))

	_, err = teamService.GetTeam(ctx, team.Slug)
	assert.ErrorIs(t, err, domain.ErrTeamNotFound)
}

func TestTeamService_GetTeam_CountsViews(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	teamService, _ := newTeamService(testDB)
	ctx := context.Background()

	owner, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	heroes := testutil.SeedBalancedRoster(t, testDB.DB)

	team, err := teamService.CreateTeam(ctx, owner.ID, service.CreateTeamInput{
		Name:    "Watched Team",
		Members: rosterOf(heroes),
	})
	require.NoError(t, err)

	first, err := teamService.GetTeam(ctx, team.Slug)
	require.NoError(t, err)
	second, err := teamService.GetTeam(ctx, team.Slug)
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.Views)
	assert.Equal(t, int64(2), second.Views)
}

func TestTeamService_ToggleVote(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	teamService, _ := newTeamService(testDB)
	ctx := context.Background()

	owner, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	voter, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	heroes := testutil.SeedBalancedRoster(t, testDB.DB)

	team, err := teamService.CreateTeam(ctx, owner.ID, service.CreateTeamInput{
		Name:    "Voted Team",
		Members: rosterOf(heroes),
	})
	require.NoError(t, err)

	voted, upvotes, err := teamService.ToggleVote(ctx, voter.ID, team.Slug)
	require.NoError(t, err)
	assert.True(t, voted)
	assert.Equal(t, int64(1), upvotes)

	voted, upvotes, err = teamService.ToggleVote(ctx, voter.ID, team.Slug)
	require.NoError(t, err)
	assert.False(t, voted)
	assert.Equal(t, int64(0), upvotes)

	// A second voter's toggle is independent of the first.
	voted, upvotes, err = teamService.ToggleVote(ctx, owner.ID, team.Slug)
	require.NoError(t, err)
	assert.True(t, voted)
	assert.Equal(t, int64(1), upvotes)
}

func TestTeamService_ListTeams_PopularOrdering(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	teamService, _ := newTeamService(testDB)
	ctx := context.Background()

	owner, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	voterA, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	voterB, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	heroes := testutil.SeedBalancedRoster(t, testDB.DB)

	quiet, err := teamService.CreateTeam(ctx, owner.ID, service.CreateTeamInput{
		Name:    "Quiet Team",
		Members: rosterOf(heroes),
	})
	require.NoError(t, err)
	popular, err := teamService.CreateTeam(ctx, owner.ID, service.CreateTeamInput{
		Name:    "Popular Team",
		Members: rosterOf(heroes),
	})
	require.NoError(t, err)

	for _, voter := range []*domain.User{voterA, voterB} {
		_, _, err := teamService.ToggleVote(ctx, voter.ID, popular.Slug)
		require.NoError(t, err)
	}

	teams, err := teamService.ListTeams(ctx, repository.TeamListFilter{Ordering: "popular"})
	require.NoError(t, err)
	require.Len(t, teams, 2)
	assert.Equal(t, popular.ID, teams[0].ID)
	assert.Equal(t, quiet.ID, teams[1].ID)

	// Newest ordering flips it: the second-created team leads.
	teams, err = teamService.ListTeams(ctx, repository.TeamListFilter{})
	require.NoError(t, err)
	require.Len(t, teams, 2)
	assert.Equal(t, popular.ID, teams[0].ID)

	// Owner filter narrows the listing.
	otherOwner, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	teams, err = teamService.ListTeams(ctx, repository.TeamListFilter{OwnerID: &otherOwner.ID})
	require.NoError(t, err)
	assert.Empty(t, teams)
}

func TestTeamService_TeamMeta(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	teamService, _ := newTeamService(testDB)
	ctx := context.Background()

	owner, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	voter, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	heroes := testutil.SeedBalancedRoster(t, testDB.DB)

	team, err := teamService.CreateTeam(ctx, owner.ID, service.CreateTeamInput{
		Name:    "Measured Team",
		Members: rosterOf(heroes),
	})
	require.NoError(t, err)

	_, _, err = teamService.ToggleVote(ctx, voter.ID, team.Slug)
	require.NoError(t, err)

	counts, voted, err := teamService.TeamMeta(ctx, []uuid.UUID{team.ID}, &voter.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), counts[team.ID])
	assert.True(t, voted[team.ID])

	counts, voted, err = teamService.TeamMeta(ctx, []uuid.UUID{team.ID}, &owner.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), counts[team.ID])
	assert.False(t, voted[team.ID])
}

func TestTeamService_Comments(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	teamService, _ := newTeamService(testDB)
	ctx := context.Background()

	owner, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	heroes := testutil.SeedBalancedRoster(t, testDB.DB)

	team, err := teamService.CreateTeam(ctx, owner.ID, service.CreateTeamInput{
		Name:    "Discussed Team",
		Members: rosterOf(heroes),
	})
	require.NoError(t, err)

	_, err = teamService.CreateComment(ctx, owner.ID, team.Slug, "   ")
	var verr *analysis.ValidationError
	require.ErrorAs(t, err, &verr)

	comment, err := teamService.CreateComment(ctx, owner.ID, team.Slug, "  solid frontline  ")
	require.NoError(t, err)
	assert.Equal(t, "solid frontline", comment.Text)
	require.NotNil(t, comment.User)
	assert.Equal(t, owner.DisplayName, comment.User.DisplayName)

	comments, err := teamService.ListComments(ctx, team.Slug)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, comment.ID, comments[0].ID)
}

// unavailableLayer models a broadcast layer whose broker is down:
// every operation silently no-ops.
type unavailableLayer struct{}

func (unavailableLayer) GroupAdd(string, broadcast.Subscriber)     {}
func (unavailableLayer) GroupDiscard(string, broadcast.Subscriber) {}
func (unavailableLayer) GroupSend(context.Context, string, []byte) {}
func (unavailableLayer) Close() error                              { return nil }

func TestTeamService_CommentSurvivesBrokerOutage(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := repoPostgres.NewRepositories(testDB.DB)
	heroService := service.NewHeroService(repos.Hero)
	teamService := service.NewTeamService(repos.Team, repos.Vote, repos.Comment, repos.User, heroService, unavailableLayer{})
	ctx := context.Background()

	owner, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	heroes := testutil.SeedBalancedRoster(t, testDB.DB)

	team, err := teamService.CreateTeam(ctx, owner.ID, service.CreateTeamInput{
		Name:    "Quiet Team",
		Members: rosterOf(heroes),
	})
	require.NoError(t, err)

	comment, err := teamService.CreateComment(ctx, owner.ID, team.Slug, "nobody hears this live")
	require.NoError(t, err, "a dead broadcast layer must not fail the write")

	comments, err := teamService.ListComments(ctx, team.Slug)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, comment.ID, comments[0].ID)
}

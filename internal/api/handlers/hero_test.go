package handlers_test

import (
	"net/http"
	"testing"

	"github.com/alexdoyle/rivals-team-builder/internal/api/handlers"
	"github.com/alexdoyle/rivals-team-builder/internal/domain"
	"github.com/alexdoyle/rivals-team-builder/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeroAPI_ListAndDetail(t *testing.T) {
	ts := testutil.NewTestServer(t)

	tank := testutil.NewHeroBuilder().WithName("Anchor").WithRole(domain.RoleVanguard).Build(t, ts.DB.DB)
	dps := testutil.NewHeroBuilder().WithName("Blade Dancer").WithRole(domain.RoleDuelist).Build(t, ts.DB.DB)
	healer := testutil.NewHeroBuilder().WithName("Mender").WithRole(domain.RoleStrategist).Build(t, ts.DB.DB)

	testutil.AddSynergy(t, ts.DB.DB, tank, healer)
	testutil.AddCounter(t, ts.DB.DB, dps, tank)

	resp, err := http.Get(ts.APIURL("/heroes"))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var items []handlers.HeroListItem
	testutil.AssertJSONResponse(t, resp, &items)
	require.Len(t, items, 3)

	byName := map[string]handlers.HeroListItem{}
	for _, item := range items {
		byName[item.Name] = item
	}
	assert.Equal(t, []string{"Mender"}, byName["Anchor"].Synergies)
	assert.Equal(t, []string{"Anchor"}, byName["Blade Dancer"].Counters)
	assert.Empty(t, byName["Mender"].Counters)

	t.Run("detail includes reverse counters", func(t *testing.T) {
		resp, err := http.Get(ts.APIURL("/heroes/" + tank.ID.String()))
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var detail handlers.HeroDetailResponse
		testutil.AssertJSONResponse(t, resp, &detail)
		require.Len(t, detail.Synergies, 1)
		assert.Equal(t, healer.ID, detail.Synergies[0].ID)
		require.Len(t, detail.CounteredBy, 1)
		assert.Equal(t, dps.ID, detail.CounteredBy[0].ID)
		assert.Empty(t, detail.Counters)
	})

	t.Run("search narrows the list", func(t *testing.T) {
		resp, err := http.Get(ts.APIURL("/heroes?search=blade"))
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var found []handlers.HeroListItem
		testutil.AssertJSONResponse(t, resp, &found)
		require.Len(t, found, 1)
		assert.Equal(t, "Blade Dancer", found[0].Name)
	})

	t.Run("unknown id is 404", func(t *testing.T) {
		resp, err := http.Get(ts.APIURL("/heroes/00000000-0000-0000-0000-000000000001"))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestHeroAPI_ByRole(t *testing.T) {
	ts := testutil.NewTestServer(t)

	testutil.NewHeroBuilder().WithName("Anchor").WithRole(domain.RoleVanguard).Build(t, ts.DB.DB)
	testutil.NewHeroBuilder().WithName("Mender").WithRole(domain.RoleStrategist).Build(t, ts.DB.DB)

	resp, err := http.Get(ts.APIURL("/heroes/role/vanguard"))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var summaries []domain.HeroSummary
	testutil.AssertJSONResponse(t, resp, &summaries)
	require.Len(t, summaries, 1)
	assert.Equal(t, "Anchor", summaries[0].Name)

	t.Run("unknown role is 400", func(t *testing.T) {
		resp, err := http.Get(ts.APIURL("/heroes/role/assassin"))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

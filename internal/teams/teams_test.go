package teams

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pfsn365/transfer-portal-tracker-sub001/internal/slug"
)

func TestNew_TableIsConsistent(t *testing.T) {
	r := New()
	require.Greater(t, r.Len(), 50)

	seenIDs := map[string]bool{}
	for _, team := range r.All() {
		assert.False(t, seenIDs[team.ID], "duplicate id %s", team.ID)
		seenIDs[team.ID] = true

		assert.NotEmpty(t, team.ConferenceName, team.Slug)
		assert.Equal(t, slug.Make(team.Slug), team.Slug)
		assert.Contains(t, team.Logo, team.ID)
	}
}

func TestLookup(t *testing.T) {
	r := New()

	bama, err := r.BySlug("alabama")
	require.NoError(t, err)
	assert.Equal(t, "333", bama.ID)
	assert.Equal(t, "Alabama Crimson Tide", bama.Name)
	assert.Equal(t, "sec", bama.Conference)

	byID, err := r.ByID("194")
	require.NoError(t, err)
	assert.Equal(t, "ohio-state", byID.Slug)

	_, err = r.BySlug("hogwarts")
	assert.ErrorIs(t, err, ErrTeamNotFound)
	_, err = r.ByID("0")
	assert.ErrorIs(t, err, ErrTeamNotFound)
}

func TestResolve(t *testing.T) {
	r := New()

	for _, name := range []string{"texas-am", "TA&M", "Texas A&M", "Texas A&M Aggies"} {
		team, ok := r.Resolve(name)
		require.True(t, ok, name)
		assert.Equal(t, "245", team.ID, name)
	}

	_, ok := r.Resolve("Nowhere State")
	assert.False(t, ok)
}

func TestConferences(t *testing.T) {
	r := New()

	assert.Equal(t, []string{"acc", "big-12", "big-ten", "independent", "sec"}, r.Conferences())
	assert.Len(t, r.ByConference("sec"), 16)
	assert.Empty(t, r.ByConference("pac-12"))
}

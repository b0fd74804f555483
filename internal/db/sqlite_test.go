package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thesavant42/rickdex/internal/models"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	d, err := New(filepath.Join(t.TempDir(), "snap", "rickdex.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { d.Close() })
	return d
}

func TestSavePageCharactersUpsert(t *testing.T) {
	d := newTestDB(t)

	page := &models.CharacterPage{Results: []models.Character{
		{ID: 1, Name: "Rick Sanchez", Status: models.StatusAlive, Species: models.SpeciesHuman, Gender: models.GenderMale,
			Origin: models.Reference{Name: "Earth (C-137)"}, Location: models.Reference{Name: "Citadel of Ricks"},
			Episode: []string{"https://rickandmortyapi.com/api/episode/1"}},
		{ID: 2, Name: "Morty Smith", Status: models.StatusAlive, Species: models.SpeciesHuman, Gender: models.GenderMale},
	}}

	n, err := d.SavePage(page)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	page.Results[0].Status = models.StatusDead
	_, err = d.SavePage(page)
	require.NoError(t, err)

	count, err := d.Count("characters")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	rows, err := d.CharacterRows()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, CharacterRow{
		ID: 1, Name: "Rick Sanchez", Status: "Dead", Species: "Human", Gender: "Male",
		OriginName: "Earth (C-137)", LocationName: "Citadel of Ricks",
	}, rows[0])
	assert.Equal(t, "Morty Smith", rows[1].Name)
}

func TestSavePageEpisodesAndLocations(t *testing.T) {
	d := newTestDB(t)

	_, err := d.SavePage(&models.EpisodePage{Results: []models.Episode{{ID: 1, Name: "Pilot", Episode: "S01E01"}}})
	require.NoError(t, err)
	_, err = d.SavePage(&models.LocationPage{Results: []models.Location{{ID: 1, Name: "Earth (C-137)"}, {ID: 2, Name: "Abadango"}}})
	require.NoError(t, err)

	episodes, err := d.Count("episodes")
	require.NoError(t, err)
	assert.Equal(t, 1, episodes)

	locations, err := d.Count("locations")
	require.NoError(t, err)
	assert.Equal(t, 2, locations)
}

func TestSavePageRejectsUnknownType(t *testing.T) {
	d := newTestDB(t)
	_, err := d.SavePage(42)
	assert.Error(t, err)

	_, err = d.Count("commits")
	assert.Error(t, err)
}

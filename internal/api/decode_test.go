package api

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thesavant42/rickdex/internal/models"
)

func readFixture(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return data
}

func TestDecodeCharacters(t *testing.T) {
	page, err := DecodeCharacters(readFixture(t, "characters.json"), DecodeOptions{})
	require.NoError(t, err)

	assert.Equal(t, 1, page.Info.Count)
	assert.Equal(t, 1, page.Info.Pages)
	assert.Equal(t, "", page.Info.Next)
	assert.Nil(t, page.Info.Prev)

	require.Len(t, page.Results, 1)
	rick := page.Results[0]
	assert.Equal(t, int64(1), rick.ID)
	assert.Equal(t, "Rick Sanchez", rick.Name)
	assert.Equal(t, models.StatusAlive, rick.Status)
	assert.Equal(t, models.SpeciesHuman, rick.Species)
	assert.Equal(t, models.GenderMale, rick.Gender)
	assert.Equal(t, "Earth (C-137)", rick.Origin.Name)
	assert.Equal(t, "2017-11-04T18:48:46.250Z", rick.Created)
	assert.Len(t, rick.Episode, 2)
}

func TestDecodeEpisodesAndLocations(t *testing.T) {
	episodes, err := DecodeEpisodes(readFixture(t, "episodes.json"), DecodeOptions{})
	require.NoError(t, err)
	require.Len(t, episodes.Results, 1)
	assert.Equal(t, "S01E01", episodes.Results[0].Episode)
	assert.Equal(t, "December 2, 2013", episodes.Results[0].AirDate)
	assert.Equal(t, "https://rickandmortyapi.com/api/episode?page=2", episodes.Info.Next)

	locations, err := DecodeLocations(readFixture(t, "locations.json"), DecodeOptions{})
	require.NoError(t, err)
	require.Len(t, locations.Results, 1)
	assert.Equal(t, "Dimension C-137", locations.Results[0].Dimension)
	assert.Equal(t, "Planet", locations.Results[0].Type)
}

func TestDecodeDispatchesOnKind(t *testing.T) {
	v, err := Decode(KindEpisodes, readFixture(t, "episodes.json"), DecodeOptions{})
	require.NoError(t, err)
	assert.IsType(t, &models.EpisodePage{}, v)

	_, err = Decode(Kind(9), nil, DecodeOptions{})
	assert.True(t, errors.Is(err, ErrUnknownKind))
}

func TestDecodeEmptyResults(t *testing.T) {
	page, err := DecodeCharacters([]byte(`{"info":{"count":0,"pages":0,"next":null,"prev":null},"results":[]}`), DecodeOptions{})
	require.NoError(t, err)
	assert.Empty(t, page.Results)
}

func TestDecodeStrictFailures(t *testing.T) {
	fixture := string(readFixture(t, "characters.json"))

	tests := []struct {
		name    string
		body    string
		wantMsg string
		// lenientOK marks the enum cases lenient mode accepts
		lenientOK bool
	}{
		{"malformed json", `{"info":`, "failed to parse JSON", false},
		{"unknown species", strings.Replace(fixture, `"Human"`, `"Robot"`, 1), `species value "Robot"`, true},
		{"unknown status", strings.Replace(fixture, `"Alive"`, `"Undead"`, 1), `status value "Undead"`, true},
		{"unknown gender", strings.Replace(fixture, `"Male"`, `"Genderless"`, 1), `gender value "Genderless"`, true},
		{"missing record field", strings.Replace(fixture, `"image":`, `"picture":`, 1), `missing field "image"`, false},
		{"missing info", `{"results":[]}`, `missing field "info"`, false},
		{"missing results", `{"info":{"count":0,"pages":0,"next":""}}`, `missing field "results"`, false},
		{"negative count", `{"info":{"count":-1,"pages":0,"next":""},"results":[]}`, "info.count", false},
		{"wrong type", strings.Replace(fixture, `"id": 1`, `"id": "one"`, 1), "failed to parse JSON", false},
		{"null id", strings.Replace(fixture, `"id": 1`, `"id": null`, 1), `field "id" is null`, false},
		{"null name", strings.Replace(fixture, `"name": "Rick Sanchez"`, `"name": null`, 1), `field "name" is null`, false},
		{"null episode list", strings.Replace(fixture, `"episode": [`, `"episode": null, "x": [`, 1), `field "episode" is null`, false},
		{"null origin", strings.Replace(fixture, `"origin": {`, `"origin": null, "x": {`, 1), `field "origin" is null`, false},
		{"null count", `{"info":{"count":null,"pages":0,"next":null},"results":[]}`, `info: field "count" is null`, false},
		{"origin missing url", strings.Replace(fixture, `"url": "https://rickandmortyapi.com/api/location/1"`, `"href": "https://rickandmortyapi.com/api/location/1"`, 1), `results[0].origin: missing field "url"`, false},
		{"error body", `{"error":"There is nothing here"}`, `missing field "info"`, false},
	}

	for _, tt := range tests {
		for _, lenient := range []bool{false, true} {
			t.Run(fmt.Sprintf("%s/lenient=%v", tt.name, lenient), func(t *testing.T) {
				_, err := DecodeCharacters([]byte(tt.body), DecodeOptions{Lenient: lenient})
				if lenient && tt.lenientOK {
					require.NoError(t, err)
					return
				}
				require.Error(t, err)

				var decodeErr *DecodeError
				require.True(t, errors.As(err, &decodeErr), "want *DecodeError, got %T", err)
				assert.Equal(t, KindCharacters, decodeErr.Kind)
				assert.Contains(t, err.Error(), tt.wantMsg)
			})
		}
	}
}

func TestDecodeLenientStillChecksInfo(t *testing.T) {
	body := `{"info":{"count":-5,"pages":-1,"next":null,"prev":null},"results":[]}`
	_, err := DecodeLocations([]byte(body), DecodeOptions{Lenient: true})

	var decodeErr *DecodeError
	require.True(t, errors.As(err, &decodeErr))
	assert.Equal(t, KindLocations, decodeErr.Kind)
	assert.Contains(t, err.Error(), "info.count")
}

func TestDecodeNullNextIsAllowed(t *testing.T) {
	body := `{"info":{"count":0,"pages":0,"next":null},"results":[]}`
	page, err := DecodeEpisodes([]byte(body), DecodeOptions{})
	require.NoError(t, err)
	assert.Equal(t, "", page.Info.Next)
}

func TestDecodeUnknownEnumIsEnumError(t *testing.T) {
	body := strings.Replace(string(readFixture(t, "characters.json")), `"Human"`, `"Robot"`, 1)
	_, err := DecodeCharacters([]byte(body), DecodeOptions{})

	var enumErr *models.EnumError
	require.True(t, errors.As(err, &enumErr))
	assert.Equal(t, "species", enumErr.Field)
	assert.Equal(t, "Robot", enumErr.Value)
}

func TestDecodeLenientKeepsUnknownValues(t *testing.T) {
	body := strings.Replace(string(readFixture(t, "characters.json")), `"Human"`, `"Robot"`, 1)
	page, err := DecodeCharacters([]byte(body), DecodeOptions{Lenient: true})
	require.NoError(t, err)

	species := page.Results[0].Species
	assert.Equal(t, models.Species("Robot"), species)
	assert.False(t, species.Known())
}

package api

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/thesavant42/rickdex/internal/models"
)

// Kind selects which envelope shape a payload decodes into
type Kind int

const (
	KindCharacters Kind = iota
	KindEpisodes
	KindLocations
)

func (k Kind) String() string {
	switch k {
	case KindCharacters:
		return "characters"
	case KindEpisodes:
		return "episodes"
	case KindLocations:
		return "locations"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// DecodeOptions controls how strictly payloads are checked
type DecodeOptions struct {
	// Lenient keeps enum values outside the closed sets as unknown values
	// instead of failing. Required fields and info counters are still checked.
	Lenient bool
}

// Required keys per record kind, in declaration order
var (
	infoFields      = []string{"count", "pages", "next"}
	characterFields = []string{"id", "name", "status", "species", "type", "gender", "origin", "location", "image", "episode", "url", "created"}
	episodeFields   = []string{"id", "name", "air_date", "episode", "characters", "url", "created"}
	locationFields  = []string{"id", "name", "type", "dimension", "residents", "url", "created"}

	// Nested {name, url} objects inside a character
	referenceFields = []string{"origin", "location"}
	referenceKeys   = []string{"name", "url"}
)

// Decode parses body into the page type matching kind.
// The returned value is a *models.CharacterPage, *models.EpisodePage or *models.LocationPage.
func Decode(kind Kind, body []byte, opts DecodeOptions) (any, error) {
	switch kind {
	case KindCharacters:
		return DecodeCharacters(body, opts)
	case KindEpisodes:
		return DecodeEpisodes(body, opts)
	case KindLocations:
		return DecodeLocations(body, opts)
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
}

// DecodeCharacters parses a characters collection or search response
func DecodeCharacters(body []byte, opts DecodeOptions) (*models.CharacterPage, error) {
	return decodePage[models.Character](KindCharacters, body, characterFields, opts)
}

// DecodeEpisodes parses an episodes collection response
func DecodeEpisodes(body []byte, opts DecodeOptions) (*models.EpisodePage, error) {
	return decodePage[models.Episode](KindEpisodes, body, episodeFields, opts)
}

// DecodeLocations parses a locations collection response
func DecodeLocations(body []byte, opts DecodeOptions) (*models.LocationPage, error) {
	return decodePage[models.Location](KindLocations, body, locationFields, opts)
}

func decodePage[T models.Record](kind Kind, body []byte, fields []string, opts DecodeOptions) (*models.Page[T], error) {
	var page models.Page[T]
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, &DecodeError{Kind: kind, Err: fmt.Errorf("failed to parse JSON: %w", err)}
	}

	if err := checkRequired(body, fields); err != nil {
		return nil, &DecodeError{Kind: kind, Err: err}
	}

	// Lenient mode only relaxes the closed-set check on record enums
	validate := page.Validate
	if opts.Lenient {
		validate = page.Info.Validate
	}
	if err := validate(); err != nil {
		return nil, &DecodeError{Kind: kind, Err: err}
	}

	return &page, nil
}

// checkRequired verifies every required key is present and not null in the info
// block and each record, including the name and url of nested references.
// prev is optional and next may be null.
func checkRequired(body []byte, fields []string) error {
	var raw struct {
		Info    map[string]json.RawMessage   `json:"info"`
		Results []map[string]json.RawMessage `json:"results"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return fmt.Errorf("failed to parse JSON: %w", err)
	}

	if raw.Info == nil {
		return fmt.Errorf("missing field %q", "info")
	}
	for _, f := range infoFields {
		v, ok := raw.Info[f]
		if !ok {
			return fmt.Errorf("info: missing field %q", f)
		}
		if isNull(v) && f != "next" {
			return fmt.Errorf("info: field %q is null", f)
		}
	}

	if raw.Results == nil {
		return fmt.Errorf("missing field %q", "results")
	}
	for i, rec := range raw.Results {
		if err := requireFields(rec, fields); err != nil {
			return fmt.Errorf("results[%d]: %w", i, err)
		}
		for _, f := range referenceFields {
			v, ok := rec[f]
			if !ok {
				continue
			}
			var ref map[string]json.RawMessage
			if err := json.Unmarshal(v, &ref); err != nil {
				return fmt.Errorf("results[%d].%s: %w", i, f, err)
			}
			if err := requireFields(ref, referenceKeys); err != nil {
				return fmt.Errorf("results[%d].%s: %w", i, f, err)
			}
		}
	}

	return nil
}

func requireFields(obj map[string]json.RawMessage, fields []string) error {
	for _, f := range fields {
		v, ok := obj[f]
		if !ok {
			return fmt.Errorf("missing field %q", f)
		}
		if isNull(v) {
			return fmt.Errorf("field %q is null", f)
		}
	}
	return nil
}

func isNull(v json.RawMessage) bool {
	return string(bytes.TrimSpace(v)) == "null"
}

package api

import (
	"fmt"
	"net/url"
	"strings"
)

const (
	// DefaultBaseURL is the public Rick and Morty API root
	DefaultBaseURL = "https://rickandmortyapi.com/api"

	CharactersURL = DefaultBaseURL + "/character"
	EpisodesURL   = DefaultBaseURL + "/episode"
	LocationsURL  = DefaultBaseURL + "/location"
)

// Action is one of the four fixed menu entries
type Action int

const (
	ActionCharacters Action = iota
	ActionEpisodes
	ActionLocations
	ActionSearch
)

// Actions lists every action in menu order
var Actions = []Action{ActionCharacters, ActionEpisodes, ActionLocations, ActionSearch}

// Label returns the menu text for the action
func (a Action) Label() string {
	switch a {
	case ActionCharacters:
		return "Get all characters"
	case ActionEpisodes:
		return "Get all episodes"
	case ActionLocations:
		return "Get all locations"
	case ActionSearch:
		return "Search a character by his name"
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// Kind returns the envelope shape the action's response decodes into
func (a Action) Kind() Kind {
	switch a {
	case ActionEpisodes:
		return KindEpisodes
	case ActionLocations:
		return KindLocations
	default:
		return KindCharacters
	}
}

// NeedsName reports whether the action takes a free-text name
func (a Action) NeedsName() bool {
	return a == ActionSearch
}

// Valid reports whether a is one of the four known actions
func (a Action) Valid() bool {
	return a >= ActionCharacters && a <= ActionSearch
}

// BuildURL returns the single URL an action requests.
// The search name is not validated; it is percent-encoded with spaces as %20.
func BuildURL(baseURL string, action Action, name string) (string, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	baseURL = strings.TrimSuffix(baseURL, "/")

	switch action {
	case ActionCharacters:
		return baseURL + "/character", nil
	case ActionEpisodes:
		return baseURL + "/episode", nil
	case ActionLocations:
		return baseURL + "/location", nil
	case ActionSearch:
		return baseURL + "/character/?name=" + escapeQuery(name), nil
	}
	return "", fmt.Errorf("%w: %d", ErrUnknownAction, int(action))
}

// escapeQuery encodes s for use as a query value, using %20 rather than '+' for spaces
func escapeQuery(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

package models

import (
	"encoding/json"
	"fmt"
)

// PageInfo is the pagination block attached to every collection response.
// Next and Prev are captured as served; the client never follows them.
type PageInfo struct {
	Count int              `json:"count"`
	Pages int              `json:"pages"`
	Next  string           `json:"next"` // null on the last page, decoded as ""
	Prev  *json.RawMessage `json:"prev"` // nil when null or absent, otherwise opaque
}

// HasPrev reports whether the API sent a non-null prev value
func (p PageInfo) HasPrev() bool {
	return p.Prev != nil
}

// Validate checks the counters are non-negative
func (p PageInfo) Validate() error {
	if p.Count < 0 {
		return fmt.Errorf("info.count must be >= 0, got %d", p.Count)
	}
	if p.Pages < 0 {
		return fmt.Errorf("info.pages must be >= 0, got %d", p.Pages)
	}
	return nil
}

// Record is implemented by every entity that can appear in a results list
type Record interface {
	Validate() error
}

// Page is the envelope wrapping pagination info and one page of results
type Page[T Record] struct {
	Info    PageInfo `json:"info"`
	Results []T      `json:"results"`
}

// Validate checks the info block and every record, stopping at the first failure
func (p Page[T]) Validate() error {
	if err := p.Info.Validate(); err != nil {
		return err
	}
	for i, r := range p.Results {
		if err := r.Validate(); err != nil {
			return fmt.Errorf("results[%d]: %w", i, err)
		}
	}
	return nil
}

// Len returns the number of decoded records
func (p Page[T]) Len() int {
	return len(p.Results)
}

type (
	CharacterPage = Page[Character]
	EpisodePage   = Page[Episode]
	LocationPage  = Page[Location]
)

package models

// Episode represents one entry of /api/episode
type Episode struct {
	ID         int64    `json:"id"`
	Name       string   `json:"name"`
	AirDate    string   `json:"air_date"` // passed through uninterpreted, e.g. "December 2, 2013"
	Episode    string   `json:"episode"`  // season/episode code, e.g. "S01E01"
	Characters []string `json:"characters"`
	URL        string   `json:"url"`
	Created    string   `json:"created"`
}

// Validate is a no-op: episodes carry no closed enums
func (e Episode) Validate() error {
	return nil
}

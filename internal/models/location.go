package models

// Location represents one entry of /api/location
type Location struct {
	ID        int64    `json:"id"`
	Name      string   `json:"name"`
	Type      string   `json:"type"`
	Dimension string   `json:"dimension"`
	Residents []string `json:"residents"`
	URL       string   `json:"url"`
	Created   string   `json:"created"`
}

// Validate is a no-op: locations carry no closed enums
func (l Location) Validate() error {
	return nil
}

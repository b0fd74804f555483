package models

// Reference is a weak link to another resource. The URL is never dereferenced.
type Reference struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Character represents one entry of /api/character
type Character struct {
	ID       int64     `json:"id"`
	Name     string    `json:"name"`
	Status   Status    `json:"status"`
	Species  Species   `json:"species"`
	Type     string    `json:"type"` // free-text subtype, often empty
	Gender   Gender    `json:"gender"`
	Origin   Reference `json:"origin"`
	Location Reference `json:"location"`
	Image    string    `json:"image"`
	Episode  []string  `json:"episode"`
	URL      string    `json:"url"`
	Created  string    `json:"created"`
}

// Validate rejects enum values outside their closed sets
func (c Character) Validate() error {
	if !c.Status.Known() {
		return &EnumError{Field: "status", Value: string(c.Status)}
	}
	if !c.Species.Known() {
		return &EnumError{Field: "species", Value: string(c.Species)}
	}
	if !c.Gender.Known() {
		return &EnumError{Field: "gender", Value: string(c.Gender)}
	}
	return nil
}

package models

import "fmt"

// The three closed enums below are plain strings carrying the raw wire value.
// A value outside the closed set is the "unknown" arm of the variant: it keeps
// its raw text, Known() returns false and Validate() rejects it. Note that
// StatusUnknown and GenderUnknown are members of the set (the API sends the
// literal "unknown"); they are not the unknown arm.

// Status is a character's life status
type Status string

const (
	StatusAlive   Status = "Alive"
	StatusDead    Status = "Dead"
	StatusUnknown Status = "unknown"
)

// Known reports whether s is one of the values the client understands
func (s Status) Known() bool {
	switch s {
	case StatusAlive, StatusDead, StatusUnknown:
		return true
	}
	return false
}

// Species is a character's species
type Species string

const (
	SpeciesAlien      Species = "Alien"
	SpeciesCronenberg Species = "Cronenberg"
	SpeciesHuman      Species = "Human"
	SpeciesHumanoid   Species = "Humanoid"
)

// Known reports whether s is one of the values the client understands
func (s Species) Known() bool {
	switch s {
	case SpeciesAlien, SpeciesCronenberg, SpeciesHuman, SpeciesHumanoid:
		return true
	}
	return false
}

// Gender is a character's gender
type Gender string

const (
	GenderFemale  Gender = "Female"
	GenderMale    Gender = "Male"
	GenderUnknown Gender = "unknown"
)

// Known reports whether g is one of the values the client understands
func (g Gender) Known() bool {
	switch g {
	case GenderFemale, GenderMale, GenderUnknown:
		return true
	}
	return false
}

// EnumError reports a value outside a closed enum
type EnumError struct {
	Field string
	Value string
}

func (e *EnumError) Error() string {
	return fmt.Sprintf("unknown %s value %q", e.Field, e.Value)
}

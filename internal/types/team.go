package types

import "time"

// Team is a sports team record.
//
// Unlike Student, Team enforces no field invariants: any name, sport,
// date, stadium or roster size is accepted as given.
type Team struct {
	ID            int64
	Name          string
	SportType     string
	FoundedDate   time.Time
	HomeStadium   string
	MaxRosterSize int
}

// NewTeam builds a Team with a zero identifier.
func NewTeam(name, sportType string, foundedDate time.Time, homeStadium string, maxRosterSize int) Team {
	return Team{
		Name:          name,
		SportType:     sportType,
		FoundedDate:   foundedDate,
		HomeStadium:   homeStadium,
		MaxRosterSize: maxRosterSize,
	}
}

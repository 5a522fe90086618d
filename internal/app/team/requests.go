// Package team holds the team request variants and their handlers. It
// mirrors package student one-for-one, except that teams carry no field
// invariants: every input is accepted as given.
package team

import (
	"time"

	"github.com/aanand-mishra/roster-api/internal/dispatch"
	"github.com/aanand-mishra/roster-api/internal/types"
)

const (
	KindCreate  dispatch.Kind = "team.create"
	KindGetByID dispatch.Kind = "team.get"
	KindList    dispatch.Kind = "team.list"
	KindUpdate  dispatch.Kind = "team.update"
	KindDelete  dispatch.Kind = "team.delete"
)

// Kinds is the closed set of team request kinds.
func Kinds() []dispatch.Kind {
	return []dispatch.Kind{KindCreate, KindGetByID, KindList, KindUpdate, KindDelete}
}

type Create struct {
	Name          string
	SportType     string
	FoundedDate   time.Time
	HomeStadium   string
	MaxRosterSize int
}

type GetByID struct {
	ID int64
}

type List struct{}

// Update replaces every mutable field of the team with ID.
type Update struct {
	ID            int64
	Name          string
	SportType     string
	FoundedDate   time.Time
	HomeStadium   string
	MaxRosterSize int
}

type Delete struct {
	ID int64
}

func (Create) Kind() dispatch.Kind  { return KindCreate }
func (GetByID) Kind() dispatch.Kind { return KindGetByID }
func (List) Kind() dispatch.Kind    { return KindList }
func (Update) Kind() dispatch.Kind  { return KindUpdate }
func (Delete) Kind() dispatch.Kind  { return KindDelete }

// Record is the output form of a team.
type Record struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	SportType     string    `json:"sportType"`
	FoundedDate   time.Time `json:"foundedDate"`
	HomeStadium   string    `json:"homeStadium"`
	MaxRosterSize int       `json:"maxRosterSize"`
}

// Lookup is the result of GetByID; Found=false means absent, not an error.
type Lookup struct {
	Record Record
	Found  bool
}

func toRecord(t types.Team) Record {
	return Record{
		ID:            t.ID,
		Name:          t.Name,
		SportType:     t.SportType,
		FoundedDate:   t.FoundedDate,
		HomeStadium:   t.HomeStadium,
		MaxRosterSize: t.MaxRosterSize,
	}
}

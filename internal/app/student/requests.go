// Package student holds the student request variants and the handlers that
// serve them. Each variant is a plain value carrying its own payload; its
// Kind method is the routing key the dispatcher uses.
package student

import (
	"github.com/aanand-mishra/roster-api/internal/dispatch"
	"github.com/aanand-mishra/roster-api/internal/types"
)

const (
	KindCreate  dispatch.Kind = "student.create"
	KindGetByID dispatch.Kind = "student.get"
	KindList    dispatch.Kind = "student.list"
	KindUpdate  dispatch.Kind = "student.update"
	KindDelete  dispatch.Kind = "student.delete"
)

// Kinds is the closed set of student request kinds. Every one of them must
// have a handler before the dispatcher is allowed to start.
func Kinds() []dispatch.Kind {
	return []dispatch.Kind{KindCreate, KindGetByID, KindList, KindUpdate, KindDelete}
}

type Create struct {
	FirstName string
	LastName  string
	Age       int
}

type GetByID struct {
	ID int64
}

type List struct{}

// Update replaces every mutable field of the student with ID.
type Update struct {
	ID        int64
	FirstName string
	LastName  string
	Age       int
}

type Delete struct {
	ID int64
}

func (Create) Kind() dispatch.Kind  { return KindCreate }
func (GetByID) Kind() dispatch.Kind { return KindGetByID }
func (List) Kind() dispatch.Kind    { return KindList }
func (Update) Kind() dispatch.Kind  { return KindUpdate }
func (Delete) Kind() dispatch.Kind  { return KindDelete }

// Record is the output form of a student.
type Record struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Age       int    `json:"age"`
}

// Lookup is the result of GetByID. Found=false is the "absent" outcome and
// is not an error.
type Lookup struct {
	Record Record
	Found  bool
}

func toRecord(s types.Student) Record {
	return Record{
		ID:        s.ID(),
		FirstName: s.FirstName(),
		LastName:  s.LastName(),
		Age:       s.Age(),
	}
}

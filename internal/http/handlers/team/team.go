// Package team contains the HTTP handlers for the Team resource. They
// follow the same factory pattern as package student.
package team

import (
	"errors"
	"net/http"
	"time"

	teamapp "github.com/aanand-mishra/roster-api/internal/app/team"
	"github.com/aanand-mishra/roster-api/internal/dispatch"
	"github.com/aanand-mishra/roster-api/internal/utils/request"
	"github.com/aanand-mishra/roster-api/internal/utils/response"
)

// body is the JSON shape accepted by POST and PUT. foundedDate is RFC 3339,
// e.g. "2024-01-01T00:00:00Z".
type body struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	SportType     string    `json:"sportType"`
	FoundedDate   time.Time `json:"foundedDate"`
	HomeStadium   string    `json:"homeStadium"`
	MaxRosterSize int       `json:"maxRosterSize"`
}

// New handles POST /api/teams → 201 Created with the stored team.
func New(d dispatch.Sender) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in body
		if err := request.DecodeJSON(r, &in); err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		created, err := dispatch.Send[teamapp.Record](r.Context(), d, teamapp.Create{
			Name:          in.Name,
			SportType:     in.SportType,
			FoundedDate:   in.FoundedDate,
			HomeStadium:   in.HomeStadium,
			MaxRosterSize: in.MaxRosterSize,
		})
		if err != nil {
			response.WriteError(w, err)
			return
		}

		response.WriteJSON(w, http.StatusCreated, created)
	}
}

// GetByID handles GET /api/teams/{id} → 200 with the team, or 404.
func GetByID(d dispatch.Sender) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := request.PathID(r)
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		lookup, err := dispatch.Send[teamapp.Lookup](r.Context(), d, teamapp.GetByID{ID: id})
		if err != nil {
			response.WriteError(w, err)
			return
		}
		if !lookup.Found {
			response.NotFound(w, "team")
			return
		}

		response.WriteJSON(w, http.StatusOK, lookup.Record)
	}
}

// GetList handles GET /api/teams → 200 with a JSON array ([] when empty).
func GetList(d dispatch.Sender) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teams, err := dispatch.Send[[]teamapp.Record](r.Context(), d, teamapp.List{})
		if err != nil {
			response.WriteError(w, err)
			return
		}

		response.WriteJSON(w, http.StatusOK, teams)
	}
}

// Update handles PUT /api/teams/{id} → 204 No Content.
//
// The id in the path and the id in the body must match; a mismatch is
// rejected with 400 before anything is dispatched.
func Update(d dispatch.Sender) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := request.PathID(r)
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		var in body
		if err := request.DecodeJSON(r, &in); err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		if in.ID != id {
			response.WriteJSON(w, http.StatusBadRequest,
				response.GeneralError(errors.New("id in path and body do not match")))
			return
		}

		err = dispatch.Exec(r.Context(), d, teamapp.Update{
			ID:            id,
			Name:          in.Name,
			SportType:     in.SportType,
			FoundedDate:   in.FoundedDate,
			HomeStadium:   in.HomeStadium,
			MaxRosterSize: in.MaxRosterSize,
		})
		if err != nil {
			response.WriteError(w, err)
			return
		}

		response.NoContent(w)
	}
}

// Delete handles DELETE /api/teams/{id} → 204 No Content, whether or not
// the team existed.
func Delete(d dispatch.Sender) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := request.PathID(r)
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		if err := dispatch.Exec(r.Context(), d, teamapp.Delete{ID: id}); err != nil {
			response.WriteError(w, err)
			return
		}

		response.NoContent(w)
	}
}

// Package student contains the HTTP handlers for the Student resource.
//
// HANDLER PATTERN USED HERE — THE CLOSURE / FACTORY PATTERN:
// ────────────────────────────────────────────────────────────
// The router expects handler functions with the signature:
//
//	func(http.ResponseWriter, *http.Request)
//
// To inject the dispatcher we use factories that accept it once at startup
// and return the function the router calls on every request:
//
//	r.Post("/", student.New(dispatcher))
//
// The handlers only translate: HTTP in → request value → dispatcher →
// status code out. Validation and persistence live behind the dispatcher.
package student

import (
	"errors"
	"net/http"

	studentapp "github.com/aanand-mishra/roster-api/internal/app/student"
	"github.com/aanand-mishra/roster-api/internal/dispatch"
	"github.com/aanand-mishra/roster-api/internal/utils/request"
	"github.com/aanand-mishra/roster-api/internal/utils/response"
)

// body is the JSON shape accepted by POST and PUT.
//
//	{ "id": 1, "firstName": "John", "lastName": "Doe", "age": 20 }
//
// id is ignored on POST and must equal the path id on PUT.
type body struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Age       int    `json:"age"`
}

// New handles POST /api/students → 201 Created with the stored student.
func New(d dispatch.Sender) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in body
		if err := request.DecodeJSON(r, &in); err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		created, err := dispatch.Send[studentapp.Record](r.Context(), d, studentapp.Create{
			FirstName: in.FirstName,
			LastName:  in.LastName,
			Age:       in.Age,
		})
		if err != nil {
			response.WriteError(w, err)
			return
		}

		response.WriteJSON(w, http.StatusCreated, created)
	}
}

// GetByID handles GET /api/students/{id} → 200 with the student, or 404.
func GetByID(d dispatch.Sender) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := request.PathID(r)
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		lookup, err := dispatch.Send[studentapp.Lookup](r.Context(), d, studentapp.GetByID{ID: id})
		if err != nil {
			response.WriteError(w, err)
			return
		}
		if !lookup.Found {
			response.NotFound(w, "student")
			return
		}

		response.WriteJSON(w, http.StatusOK, lookup.Record)
	}
}

// GetList handles GET /api/students → 200 with a JSON array ([] when empty).
func GetList(d dispatch.Sender) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		students, err := dispatch.Send[[]studentapp.Record](r.Context(), d, studentapp.List{})
		if err != nil {
			response.WriteError(w, err)
			return
		}

		response.WriteJSON(w, http.StatusOK, students)
	}
}

// Update handles PUT /api/students/{id} → 204 No Content.
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

		err = dispatch.Exec(r.Context(), d, studentapp.Update{
			ID:        id,
			FirstName: in.FirstName,
			LastName:  in.LastName,
			Age:       in.Age,
		})
		if err != nil {
			response.WriteError(w, err)
			return
		}

		response.NoContent(w)
	}
}

// Delete handles DELETE /api/students/{id} → 204 No Content, whether or not
// the student existed.
func Delete(d dispatch.Sender) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := request.PathID(r)
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		if err := dispatch.Exec(r.Context(), d, studentapp.Delete{ID: id}); err != nil {
			response.WriteError(w, err)
			return
		}

		response.NoContent(w)
	}
}

// Package request holds the small parsing helpers shared by the HTTP
// handlers: decoding JSON bodies and reading the {id} path parameter.
package request

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	jsoniter "github.com/json-iterator/go"
)

var (
	ErrEmptyBody = errors.New("request body is empty")
	ErrInvalidID = errors.New("invalid id: must be an integer")
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// DecodeJSON decodes the body of r into v. An empty body is reported as
// ErrEmptyBody so the caller can say so instead of echoing "EOF".
func DecodeJSON(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return ErrEmptyBody
	}
	if err != nil {
		return fmt.Errorf("malformed JSON body: %w", err)
	}
	return nil
}

// PathID parses the {id} URL parameter captured by the chi router.
func PathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, ErrInvalidID
	}
	return id, nil
}

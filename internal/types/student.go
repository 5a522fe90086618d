package types

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// studentFields mirrors the mutable part of a Student so the invariants can
// be expressed as validate:"..." struct tags and checked in one call.
//
//   - notblank: not empty and not whitespace-only
//   - gte=0: zero is a valid age, negatives are not
type studentFields struct {
	FirstName string `json:"firstName" validate:"notblank"`
	LastName  string `json:"lastName"  validate:"notblank"`
	Age       int    `json:"age"       validate:"gte=0"`
}

// validate is built once; a *validator.Validate caches struct metadata and
// is safe for concurrent use after its validations are registered.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their json name instead of the Go field name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(fmt.Sprintf("types: register notblank validation: %v", err))
	}

	return v
}

// Student is a validated student record.
//
// The fields are unexported on purpose: the only ways to obtain a Student
// are NewStudent (which validates) and WithID (which only touches the
// identifier), so a half-valid Student can never be observed.
type Student struct {
	id        int64
	firstName string
	lastName  string
	age       int
}

// NewStudent builds a Student or fails with a *ValidationError naming the
// first offending field. The identifier stays zero until storage assigns one.
func NewStudent(firstName, lastName string, age int) (Student, error) {
	fields := studentFields{FirstName: firstName, LastName: lastName, Age: age}

	if err := validate.Struct(fields); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
			return Student{}, fmt.Errorf("types.NewStudent: %w", err)
		}
		return Student{}, toValidationError(fieldErrs[0])
	}

	return Student{firstName: firstName, lastName: lastName, age: age}, nil
}

// WithID returns a copy of s carrying the storage-assigned identifier.
func (s Student) WithID(id int64) Student {
	s.id = id
	return s
}

func (s Student) ID() int64         { return s.id }
func (s Student) FirstName() string { return s.firstName }
func (s Student) LastName() string  { return s.lastName }
func (s Student) Age() int          { return s.age }

func toValidationError(fe validator.FieldError) *ValidationError {
	switch fe.Tag() {
	case "notblank":
		return &ValidationError{Field: fe.Field(), Reason: "cannot be empty or whitespace"}
	case "gte":
		return &ValidationError{Field: fe.Field(), Reason: "cannot be negative"}
	default:
		return &ValidationError{Field: fe.Field(), Reason: "is invalid"}
	}
}

package apierror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse abstracts all API error responses to the user.
//
// This interface does not implement `error`, since its only purpose
// is to be used for API responses and not for logging circumstances.
//
// In general, the whole ErrorResponse can be sent for serialization.
type ErrorResponse interface {
	// Code is the HTTP status code to be returned.
	Code() int
}

type APIError struct {
	Message string `json:"error"`
	Status  int    `json:"-"`
}

func (a *APIError) Code() int {
	return a.Status
}

type StructuredError struct {
	Errors map[string][]string `json:"errors"`
	Status int                 `json:"-"`
}

func (s *StructuredError) Code() int {
	return s.Status
}

func (s *StructuredError) Add(field, problem string) {
	s.Errors[field] = append(s.Errors[field], problem)
}

var (
	MalformedBodyError  = NewSimple(400, "Malformed request body")
	InternalServerError = NewSimple(500, "Internal server error")

	NotFoundError     = NewSimple(404, "Resource not found")
	UnauthorizedError = NewSimple(401, "Missing or invalid credentials")
	InvalidTokenError = NewSimple(401, "Invalid or expired access token")

	NotAMemberError = NewSimple(403, "You are not a member of this space")
	OwnerOnlyError  = NewSimple(403, "Only the owner can perform this action")

	DuplicateInviteError   = NewSimple(409, "This user has already been invited to this space")
	InviteAlreadyUsedError = NewSimple(409, "This invitation has already been answered")

	OwnerImmutableError = NewSimple(403, "The owner of a space cannot be removed or demoted")
)

func FromValidationError(err error) *StructuredError {
	var ve validator.ValidationErrors
	ok := errors.As(err, &ve)
	if !ok {
		return nil
	}

	problems := map[string][]string{}
	for _, fe := range ve {
		field := strings.ToLower(fe.Field())

		switch fe.Tag() {
		case "required":
			problems[field] = append(problems[field], "This field is required")
		case "min":
			problems[field] = append(problems[field], "Value is too short, min: "+fe.Param())
		case "max":
			problems[field] = append(problems[field], "Value is too long, max: "+fe.Param())
		case "oneof":
			problems[field] = append(problems[field], "Value must be one of: "+fe.Param())
		case "notblank":
			problems[field] = append(problems[field], "Value cannot be blank")
		case "nodupes":
			problems[field] = append(problems[field], "Value cannot contain duplicates")
		case "hexcolor":
			problems[field] = append(problems[field], "Value must be a hex color, like #7c3aed")
		case "email":
			problems[field] = append(problems[field], "Value must be a valid email address")
		case "datadate":
			problems[field] = append(problems[field], "Value must be a date formatted as YYYY-MM-DD")
		case "daytime":
			problems[field] = append(problems[field], "Value must be a time formatted as HH:MM")

		default:
			problems[field] = append(problems[field], "Invalid value provided")
		}
	}

	return &StructuredError{
		Errors: problems,
		Status: http.StatusBadRequest,
	}
}

func NewSimple(status int, msg string, args ...any) *APIError {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	return &APIError{Status: status, Message: msg}
}

func NewStructured(code int) *StructuredError {
	return &StructuredError{
		Errors: make(map[string][]string),
		Status: code,
	}
}

func NewForbiddenError(msg string) *APIError {
	return NewSimple(http.StatusForbidden, msg)
}

func NewConflictError(msg string) *APIError {
	return NewSimple(http.StatusConflict, msg)
}

func NewMissingParamError(name string) *APIError {
	return NewSimple(http.StatusBadRequest, "Parameter '%s' is required", name)
}

func NewInvalidParamTypeError(name, dataType string) *APIError {
	return NewSimple(http.StatusBadRequest, "Parameter '%s' has invalid type, expected: %s", name, dataType)
}

package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Kind classifies an error for the result envelope returned to clients
type Kind string

const (
	KindValidation          Kind = "validation"
	KindUnauthorized        Kind = "unauthorized"
	KindNotFoundOrForbidden Kind = "not_found_or_forbidden"
	KindConflict            Kind = "conflict"
	KindUnexpected          Kind = "unexpected"
	KindRateLimited         Kind = "rate_limited"
)

// UnexpectedMessage is the only text ever shown for unexpected failures
const UnexpectedMessage = "An unexpected error occurred."

// NotFoundOrForbiddenError is returned when an entity does not exist or is not
// owned by the caller. Both cases share one value so callers cannot tell them apart.
type NotFoundOrForbiddenError struct {
	Entity string
}

func (e *NotFoundOrForbiddenError) Error() string {
	return fmt.Sprintf("%s not found or permission denied", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundOrForbiddenError
func (e *NotFoundOrForbiddenError) Is(target error) bool {
	t, ok := target.(*NotFoundOrForbiddenError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "with this email"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents rejected input. Fields maps a field name to its message.
type ValidationError struct {
	Field   string
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	if len(e.Fields) > 0 {
		names := make([]string, 0, len(e.Fields))
		for name := range e.Fields {
			names = append(names, name)
		}
		sort.Strings(names)
		return fmt.Sprintf("validation error: %s", strings.Join(names, ", "))
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// FieldMessages returns every field-level message, including the single Field form
func (e *ValidationError) FieldMessages() map[string]string {
	out := make(map[string]string, len(e.Fields)+1)
	for k, v := range e.Fields {
		out[k] = v
	}
	if e.Field != "" {
		out[e.Field] = e.Message
	}
	return out
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// Not found or forbidden
var (
	ErrCompanyNotFoundOrForbidden = &NotFoundOrForbiddenError{Entity: "company"}
	ErrUserNotFound               = &NotFoundOrForbiddenError{Entity: "user"}
)

// Already exists
var (
	ErrUserExists = &AlreadyExistsError{Entity: "user", Context: "with this email"}
)

// Validation
var (
	ErrInvalidStatus      = &ValidationError{Field: "status", Message: "must be one of lead, negotiating, won, lost"}
	ErrEmptyInteraction   = &ValidationError{Field: "content", Message: "Interaction content cannot be empty."}
	ErrInvalidImageUpload = &ValidationError{Field: "image", Message: "image must be a png, jpeg, gif or webp file"}
	ErrInvalidDropTarget  = &ValidationError{Field: "over_id", Message: "must be a company or a pipeline column"}
)

// Authentication
var (
	ErrUnauthorized       = &AuthenticationError{Message: "Unauthorized"}
	ErrInvalidCredentials = &AuthenticationError{Message: "Invalid email or password."}
)

// Storage
var (
	ErrUploadFailed = errors.New("avatar upload failed")
)

// IsNotFoundOrForbidden checks if an error is a NotFoundOrForbiddenError
func IsNotFoundOrForbidden(err error) bool {
	var target *NotFoundOrForbiddenError
	return errors.As(err, &target)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// KindOf maps an error to the kind reported to clients. Anything unrecognised is unexpected.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return ""
	case IsValidation(err):
		return KindValidation
	case IsAuthentication(err):
		return KindUnauthorized
	case IsNotFoundOrForbidden(err):
		return KindNotFoundOrForbidden
	case IsAlreadyExists(err):
		return KindConflict
	default:
		return KindUnexpected
	}
}

// Describe returns the kind of err with the message and field messages a
// client may see. Unexpected errors always get UnexpectedMessage.
func Describe(err error) (Kind, string, map[string]string) {
	kind := KindOf(err)
	switch kind {
	case KindValidation:
		var v *ValidationError
		errors.As(err, &v)
		message := v.Message
		if v.Field == "" && len(v.Fields) > 0 {
			message = "Invalid data provided."
		}
		return kind, message, v.FieldMessages()
	case KindUnauthorized:
		var a *AuthenticationError
		errors.As(err, &a)
		return kind, a.Message, nil
	case KindNotFoundOrForbidden:
		var nf *NotFoundOrForbiddenError
		errors.As(err, &nf)
		return kind, capitalize(nf.Error()) + ".", nil
	case KindConflict:
		var ae *AlreadyExistsError
		errors.As(err, &ae)
		if ae.Context != "" {
			return kind, capitalize(ae.Entity) + " " + ae.Context + " already exists.", nil
		}
		return kind, capitalize(ae.Entity) + " already exists.", nil
	case "":
		return "", "", nil
	default:
		return KindUnexpected, UnexpectedMessage, nil
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// NewNotFoundOrForbiddenError creates a NotFoundOrForbiddenError for a custom entity
func NewNotFoundOrForbiddenError(entity string) error {
	return &NotFoundOrForbiddenError{Entity: entity}
}

// NewValidationError creates a new single-field ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewFieldsValidationError creates a ValidationError carrying several field messages
func NewFieldsValidationError(fields map[string]string) error {
	return &ValidationError{Message: "Invalid data provided.", Fields: fields}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundOrForbiddenError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundOrForbiddenError{Entity: "company"}
		assert.Equal(t, "company not found or permission denied", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		assert.True(t, errors.Is(&NotFoundOrForbiddenError{Entity: "company"}, ErrCompanyNotFoundOrForbidden))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		assert.False(t, errors.Is(ErrCompanyNotFoundOrForbidden, ErrUserNotFound))
	})

	t.Run("IsNotFoundOrForbidden through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("update status: %w", ErrCompanyNotFoundOrForbidden)
		assert.True(t, IsNotFoundOrForbidden(wrapped))
		assert.False(t, IsNotFoundOrForbidden(ErrUserExists))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		assert.Equal(t, "user already exists with this email", ErrUserExists.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "user"}
		assert.Equal(t, "user already exists", err.Error())
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrUserExists))
		assert.False(t, IsAlreadyExists(ErrUnauthorized))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Single field", func(t *testing.T) {
		err := NewValidationError("name", "is required")
		assert.Equal(t, "validation error: name - is required", err.Error())
		assert.True(t, IsValidation(err))
	})

	t.Run("Several fields are listed in order", func(t *testing.T) {
		err := NewFieldsValidationError(map[string]string{"phone": "Invalid phone number", "name": "Name is required"})
		assert.Equal(t, "validation error: name, phone", err.Error())

		var v *ValidationError
		assert.True(t, errors.As(err, &v))
		assert.Len(t, v.FieldMessages(), 2)
	})

	t.Run("FieldMessages includes the single field form", func(t *testing.T) {
		assert.Equal(t, map[string]string{"content": "Interaction content cannot be empty."}, ErrEmptyInteraction.FieldMessages())
	})
}

func TestKindOf(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want Kind
	}{
		{"nil", nil, ""},
		{"validation", ErrInvalidStatus, KindValidation},
		{"unauthorized", ErrUnauthorized, KindUnauthorized},
		{"bad credentials", ErrInvalidCredentials, KindUnauthorized},
		{"not found or forbidden", fmt.Errorf("delete: %w", ErrCompanyNotFoundOrForbidden), KindNotFoundOrForbidden},
		{"conflict", ErrUserExists, KindConflict},
		{"anything else", errors.New("connection refused"), KindUnexpected},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, KindOf(tc.err))
		})
	}
}

func TestDescribe(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		kind    Kind
		message string
	}{
		{"not found", fmt.Errorf("get: %w", ErrCompanyNotFoundOrForbidden), KindNotFoundOrForbidden, "Company not found or permission denied."},
		{"conflict", ErrUserExists, KindConflict, "User with this email already exists."},
		{"credentials", ErrInvalidCredentials, KindUnauthorized, "Invalid email or password."},
		{"single field", ErrEmptyInteraction, KindValidation, "Interaction content cannot be empty."},
		{"several fields", NewFieldsValidationError(map[string]string{"name": "is required"}), KindValidation, "Invalid data provided."},
		{"hidden cause", errors.New("pq: relation does not exist"), KindUnexpected, UnexpectedMessage},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			kind, message, _ := Describe(tc.err)
			assert.Equal(t, tc.kind, kind)
			assert.Equal(t, tc.message, message)
		})
	}
}

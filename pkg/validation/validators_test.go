package validation_test

import (
	"testing"

	"stepfault-backend/internal/domain"
	"stepfault-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidator() *validator.Validate {
	v := validator.New()
	validation.RegisterValidators(v)
	return v
}

func TestContactEmail(t *testing.T) {
	v := newValidator()

	cases := []struct {
		email string
		valid bool
	}{
		{"john.doe@example.com", true},
		{"a@b.com", true},
		{"user+tag@domain.co.uk", true},
		{"not-an-email", false},
		{"a@b", false},              // no dot in domain
		{"@example.com", false},     // no local part
		{"a b@example.com", false},  // space fails the address parse
		{"a@@example.com", false},   // double @ fails the address parse
		{"", false},
	}

	for _, tc := range cases {
		t.Run(tc.email, func(t *testing.T) {
			err := v.Var(tc.email, "contact_email")
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestFieldMessage(t *testing.T) {
	v := newValidator()

	firstError := func(req *domain.ContactRequest) validator.FieldError {
		err := v.Struct(req)
		require.Error(t, err)
		verrs, ok := err.(validator.ValidationErrors)
		require.True(t, ok)
		require.NotEmpty(t, verrs)
		return verrs[0]
	}

	t.Run("empty name", func(t *testing.T) {
		fe := firstError(&domain.ContactRequest{Email: "a@b.com", Message: "1234567890"})
		assert.Equal(t, "Name cannot be empty", validation.FieldMessage(fe))
	})

	t.Run("name too long", func(t *testing.T) {
		name := make([]byte, 101)
		for i := range name {
			name[i] = 'a'
		}
		fe := firstError(&domain.ContactRequest{Name: string(name), Email: "a@b.com", Message: "1234567890"})
		assert.Equal(t, "Name must be 100 characters or less", validation.FieldMessage(fe))
	})

	t.Run("bad email", func(t *testing.T) {
		fe := firstError(&domain.ContactRequest{Name: "A", Email: "nope", Message: "1234567890"})
		assert.Equal(t, "Please provide a valid email address", validation.FieldMessage(fe))
	})

	t.Run("short message", func(t *testing.T) {
		fe := firstError(&domain.ContactRequest{Name: "A", Email: "a@b.com", Message: "short"})
		assert.Equal(t, "Message must be at least 10 characters long", validation.FieldMessage(fe))
	})
}

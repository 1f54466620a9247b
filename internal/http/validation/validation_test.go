package validation

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
)

type settingsInput struct {
	Title        string `form:"title" validate:"max=5"`
	ContactEmail string `form:"contact_email,omitempty" validate:"omitempty,email"`
	Password     string `validate:"required"`
}

func TestFromBindError(t *testing.T) {
	in := settingsInput{Title: "too long title", ContactEmail: "nope"}
	err := validator.New().Struct(&in)
	require.Error(t, err)

	errs := FromBindError(err, &in)
	require.Equal(t, FieldErrors{
		"title":         "At most 5 characters.",
		"contact_email": "Enter a valid email address.",
		"password":      "This field is required.",
	}, errs)
	require.Equal(t, "contact_email: Enter a valid email address.", First(errs))
}

func TestFromBindErrorOther(t *testing.T) {
	errs := FromBindError(errors.New("strconv: bad"), &settingsInput{})
	require.Equal(t, FieldErrors{"_": "Invalid form data."}, errs)
	require.Equal(t, "Invalid form data.", First(errs))
	require.Equal(t, "", First(FieldErrors{}))
}

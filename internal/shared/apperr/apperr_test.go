package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{InvalidErr("bad", nil), http.StatusBadRequest},
		{NotFoundErr("gone"), http.StatusNotFound},
		{UnauthorizedErr("login"), http.StatusUnauthorized},
		{ForbiddenErr("no"), http.StatusForbidden},
		{Wrap(errors.New("boom")), http.StatusInternalServerError},
		{errors.New("plain"), http.StatusInternalServerError},
		{fmt.Errorf("ctx: %w", NotFoundErr("gone")), http.StatusNotFound},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, HTTPStatus(tc.err), tc.err.Error())
	}
}

func TestWrapKeepsAppError(t *testing.T) {
	inner := InvalidErr("Name is required.", map[string]string{"name": "required"})
	wrapped := Wrap(fmt.Errorf("add product: %w", inner))

	require.Same(t, inner, wrapped)
	require.True(t, IsKind(wrapped, Invalid))
	require.Equal(t, "Name is required.", PublicMessage(wrapped))
}

func TestPublicMessageHidesInternal(t *testing.T) {
	err := Wrap(errors.New("dial tcp: connection refused"))
	require.Equal(t, defaultPublicMsg, PublicMessage(err))
	require.ErrorContains(t, err, "connection refused")
}

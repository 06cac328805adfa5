package errorbank_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zahid1995j/Somahar-Order-Management-App/pkg/errorbank"
)

func TestConstructorsSetKind(t *testing.T) {
	t.Parallel()

	cases := []struct {
		err  *errorbank.AppError
		kind errorbank.Kind
	}{
		{errorbank.Configuration("bad base url"), errorbank.KindConfiguration},
		{errorbank.Auth("invalid API key"), errorbank.KindAuth},
		{errorbank.NotFound("endpoint not found"), errorbank.KindNotFound},
		{errorbank.API("boom"), errorbank.KindAPI},
		{errorbank.Transport("blocked"), errorbank.KindTransport},
		{errorbank.Internal("oops"), errorbank.KindInternal},
	}
	for _, tc := range cases {
		require.Equal(t, tc.kind, tc.err.Kind())
	}
}

func TestStatusCodeMapping(t *testing.T) {
	t.Parallel()

	require.Equal(t, http.StatusBadRequest, errorbank.Configuration("x").StatusCode())
	require.Equal(t, http.StatusUnauthorized, errorbank.Auth("x").StatusCode())
	require.Equal(t, http.StatusNotFound, errorbank.NotFound("x").StatusCode())
	require.Equal(t, http.StatusBadGateway, errorbank.API("x").StatusCode())
	require.Equal(t, http.StatusServiceUnavailable, errorbank.Transport("x").StatusCode())
	require.Equal(t, http.StatusInternalServerError, errorbank.Internal("x").StatusCode())
}

func TestWithCauseUnwraps(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	err := errorbank.Transport("request blocked", errorbank.WithCause(cause))

	require.ErrorIs(t, err, cause)
	require.Contains(t, err.Error(), "request blocked")
	require.Contains(t, err.Error(), "connection refused")
}

func TestWithDetail(t *testing.T) {
	t.Parallel()

	err := errorbank.API("API request failed", errorbank.WithDetail("status_code", 502))
	require.Equal(t, 502, err.Details()["status_code"])
}

func TestFrom(t *testing.T) {
	t.Parallel()

	appErr := errorbank.Auth("nope")
	require.Same(t, appErr, errorbank.From(appErr))

	wrapped := fmt.Errorf("fetch app config: %w", appErr)
	require.Equal(t, errorbank.KindAuth, errorbank.From(wrapped).Kind())

	plain := errors.New("surprise")
	require.Equal(t, errorbank.KindInternal, errorbank.From(plain).Kind())

	require.Nil(t, errorbank.From(nil))
}

func TestEmptyMessageFallsBackToKind(t *testing.T) {
	t.Parallel()

	err := errorbank.New(errorbank.KindTransport, "")
	require.Equal(t, "transport", err.Message())
}

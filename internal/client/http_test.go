package client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/zahid1995j/Somahar-Order-Management-App/internal/client"
	"github.com/zahid1995j/Somahar-Order-Management-App/internal/config"
	"github.com/zahid1995j/Somahar-Order-Management-App/internal/entity"
	"github.com/zahid1995j/Somahar-Order-Management-App/pkg/errorbank"
)

func apiSettings(baseURL, key string) config.API {
	return config.API{BaseURL: baseURL, Key: key, Timeout: 5 * time.Second}
}

func TestDo_AttachesKeyHeader(t *testing.T) {
	t.Parallel()

	var gotKey string
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get(client.APIKeyHeader)
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"orders":[],"pagination":{"current_page":1,"total_pages":1,"total_items":0}}`))
	}))
	defer srv.Close()

	// Trailing slash on the base URL must be stripped before concatenation.
	d := client.NewHTTPDispatcher(apiSettings(srv.URL+"/", "sekret"), zap.NewNop())

	var page entity.OrdersResponse
	req := client.Request{Method: http.MethodGet, Path: "/orders", Query: url.Values{"page": {"1"}}}
	require.NoError(t, d.Do(context.Background(), req, &page))

	require.Equal(t, "sekret", gotKey)
	require.Equal(t, "/orders", gotPath)
}

func TestDo_OmitsKeyHeaderWhenUnconfigured(t *testing.T) {
	t.Parallel()

	var headerPresent bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, headerPresent = r.Header[client.APIKeyHeader]
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	d := client.NewHTTPDispatcher(apiSettings(srv.URL, ""), zap.NewNop())
	req := client.Request{Method: http.MethodGet, Path: "/orders"}
	require.NoError(t, d.Do(context.Background(), req, nil))
	require.False(t, headerPresent, "header must be omitted entirely, not sent empty")
}

func TestDo_OmitsKeyHeaderOnPublicEndpoints(t *testing.T) {
	t.Parallel()

	var headerPresent bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, headerPresent = r.Header[client.APIKeyHeader]
		_, _ = w.Write([]byte(`{"delivery_partners":[],"quick_statuses":[]}`))
	}))
	defer srv.Close()

	d := client.NewHTTPDispatcher(apiSettings(srv.URL, "sekret"), zap.NewNop())
	req := client.Request{Method: http.MethodGet, Path: "/app-config", Public: true}
	require.NoError(t, d.Do(context.Background(), req, &entity.AppConfig{}))
	require.False(t, headerPresent)
}

func TestDo_RejectsPlaceholderBaseURL(t *testing.T) {
	t.Parallel()

	for _, base := range []string{"", config.PlaceholderBaseURL, config.PlaceholderBaseURL + "/"} {
		d := client.NewHTTPDispatcher(apiSettings(base, ""), zap.NewNop())
		err := d.Do(context.Background(), client.Request{Method: http.MethodGet, Path: "/orders"}, nil)
		require.Error(t, err)
		require.Equal(t, errorbank.KindConfiguration, errorbank.From(err).Kind())
	}
}

func TestDo_StatusNormalization(t *testing.T) {
	t.Parallel()

	cases := []struct {
		status int
		kind   errorbank.Kind
	}{
		{http.StatusUnauthorized, errorbank.KindAuth},
		{http.StatusNotFound, errorbank.KindNotFound},
		{http.StatusInternalServerError, errorbank.KindAPI},
		{http.StatusForbidden, errorbank.KindAPI},
	}

	for _, tc := range cases {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.status)
		}))

		d := client.NewHTTPDispatcher(apiSettings(srv.URL, "k"), zap.NewNop())
		err := d.Do(context.Background(), client.Request{Method: http.MethodGet, Path: "/orders"}, nil)
		srv.Close()

		require.Error(t, err)
		require.Equal(t, tc.kind, errorbank.From(err).Kind(), "status %d", tc.status)
	}
}

func TestDo_APIErrorCarriesStatusCode(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	d := client.NewHTTPDispatcher(apiSettings(srv.URL, ""), zap.NewNop())
	err := d.Do(context.Background(), client.Request{Method: http.MethodGet, Path: "/orders"}, nil)

	appErr := errorbank.From(err)
	require.Equal(t, errorbank.KindAPI, appErr.Kind())
	require.Equal(t, http.StatusBadGateway, appErr.Details()["status_code"])
}

func TestDo_TransportBlocked(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	d := client.NewHTTPDispatcher(apiSettings(srv.URL, ""), zap.NewNop())
	err := d.Do(context.Background(), client.Request{Method: http.MethodGet, Path: "/orders"}, nil)

	require.Error(t, err)
	require.Equal(t, errorbank.KindTransport, errorbank.From(err).Kind())
	require.Contains(t, err.Error(), "request blocked")
}

func TestDo_ProtocolMismatch(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	// Speaking TLS to a plain-HTTP listener fails the handshake.
	secureURL := "https" + strings.TrimPrefix(srv.URL, "http")
	d := client.NewHTTPDispatcher(apiSettings(secureURL, ""), zap.NewNop())
	err := d.Do(context.Background(), client.Request{Method: http.MethodGet, Path: "/orders"}, nil)

	require.Error(t, err)
	require.Equal(t, errorbank.KindTransport, errorbank.From(err).Kind())
	require.Contains(t, err.Error(), "protocol mismatch")
}

func TestDo_InvalidResponsePayload(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	d := client.NewHTTPDispatcher(apiSettings(srv.URL, ""), zap.NewNop())
	var page entity.OrdersResponse
	err := d.Do(context.Background(), client.Request{Method: http.MethodGet, Path: "/orders"}, &page)

	require.Error(t, err)
	require.Equal(t, errorbank.KindAPI, errorbank.From(err).Kind())
}

func TestDo_ContextCancellationPropagates(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	d := client.NewHTTPDispatcher(apiSettings(srv.URL, ""), zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := d.Do(ctx, client.Request{Method: http.MethodGet, Path: "/orders"}, nil)
	require.ErrorIs(t, err, context.Canceled)
}

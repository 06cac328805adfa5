package mockapi_test

import (
	"context"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/zahid1995j/Somahar-Order-Management-App/internal/client"
	"github.com/zahid1995j/Somahar-Order-Management-App/internal/config"
	"github.com/zahid1995j/Somahar-Order-Management-App/internal/dto"
	"github.com/zahid1995j/Somahar-Order-Management-App/internal/entity"
	"github.com/zahid1995j/Somahar-Order-Management-App/internal/mockapi"
	"github.com/zahid1995j/Somahar-Order-Management-App/pkg/errorbank"
)

func newResponder(t *testing.T, latency time.Duration) *mockapi.Responder {
	t.Helper()
	cfg := config.Mock{Seed: 7, Latency: latency, Orders: 45}
	return mockapi.NewResponder(cfg, zap.NewNop())
}

func TestResponder_AppConfig(t *testing.T) {
	t.Parallel()

	r := newResponder(t, 0)

	var cfg entity.AppConfig
	req := client.Request{Method: http.MethodGet, Path: "/app-config", Public: true}
	require.NoError(t, r.Do(context.Background(), req, &cfg))

	require.Equal(t, mockapi.DeliveryPartners, cfg.DeliveryPartners)
	require.Equal(t, mockapi.QuickStatuses, cfg.QuickStatuses)
}

func TestResponder_Orders(t *testing.T) {
	t.Parallel()

	r := newResponder(t, 0)

	query := url.Values{}
	query.Set("page", "1")

	var page entity.OrdersResponse
	req := client.Request{Method: http.MethodGet, Path: "/orders", Query: query}
	require.NoError(t, r.Do(context.Background(), req, &page))

	require.Len(t, page.Orders, 20)
	require.Equal(t, 1, page.Pagination.CurrentPage)
	require.Equal(t, 3, page.Pagination.TotalPages)
	require.Equal(t, 45, page.Pagination.TotalItems)
}

func TestResponder_OrdersFiltered(t *testing.T) {
	t.Parallel()

	r := newResponder(t, 0)

	query := url.Values{}
	query.Set("page", "2")
	query.Set("delivery_partner", "RedX")
	query.Set("status", "Delivered")

	var page entity.OrdersResponse
	req := client.Request{Method: http.MethodGet, Path: "/orders", Query: query}
	require.NoError(t, r.Do(context.Background(), req, &page))

	require.Equal(t, 2, page.Pagination.CurrentPage)
	for _, order := range page.Orders {
		require.Equal(t, "RedX", order.DeliveryPartner)
		require.Equal(t, "Delivered", order.Status)
	}
	require.Less(t, page.Pagination.TotalItems, 45)
}

func TestResponder_MutationsSucceedWithoutPersisting(t *testing.T) {
	t.Parallel()

	r := newResponder(t, 0)
	ctx := context.Background()

	var created dto.SubmitResult
	addReq := client.Request{
		Method: http.MethodPost,
		Path:   "/add-order",
		Body:   dto.NewOrder{CustomerName: "Rahim Uddin", DeliveryPartner: "RedX"},
	}
	require.NoError(t, r.Do(ctx, addReq, &created))
	require.True(t, created.Success)
	require.Regexp(t, `^TRK-\d{6}$`, created.TrackingCode)
	require.EqualValues(t, 46, created.OrderID)

	var updated dto.UpdateResult
	statusReq := client.Request{
		Method: http.MethodPost,
		Path:   "/update-status",
		Body:   dto.StatusUpdate{OrderID: 1, Status: "Delivered"},
	}
	require.NoError(t, r.Do(ctx, statusReq, &updated))
	require.True(t, updated.Success)

	detailsReq := client.Request{
		Method: http.MethodPost,
		Path:   "/update-details",
		Body:   dto.DetailsUpdate{OrderID: 1, RiderName: "Sumon Ali"},
	}
	require.NoError(t, r.Do(ctx, detailsReq, &updated))
	require.True(t, updated.Success)

	// The listing is unchanged: mock mutations acknowledge but never persist.
	var page entity.OrdersResponse
	listReq := client.Request{Method: http.MethodGet, Path: "/orders", Query: url.Values{}}
	require.NoError(t, r.Do(ctx, listReq, &page))
	require.Equal(t, 45, page.Pagination.TotalItems)
}

func TestResponder_UnknownPath(t *testing.T) {
	t.Parallel()

	r := newResponder(t, 0)
	req := client.Request{Method: http.MethodGet, Path: "/nope"}

	err := r.Do(context.Background(), req, nil)
	require.Error(t, err)
	require.Equal(t, errorbank.KindNotFound, errorbank.From(err).Kind())
}

func TestResponder_LatencyHonorsContext(t *testing.T) {
	t.Parallel()

	r := newResponder(t, time.Minute)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	req := client.Request{Method: http.MethodGet, Path: "/app-config", Public: true}
	err := r.Do(ctx, req, &entity.AppConfig{})
	require.ErrorIs(t, err, context.Canceled)
}

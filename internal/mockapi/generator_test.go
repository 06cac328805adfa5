package mockapi_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/zahid1995j/Somahar-Order-Management-App/internal/mockapi"
)

var testBase = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

func TestOrders_DeterministicBySeed(t *testing.T) {
	t.Parallel()

	first := mockapi.NewGeneratorAt(7, testBase).Orders(45)
	second := mockapi.NewGeneratorAt(7, testBase).Orders(45)
	require.Equal(t, first, second)

	other := mockapi.NewGeneratorAt(8, testBase).Orders(45)
	require.NotEqual(t, first, other)
}

func TestOrders_Shape(t *testing.T) {
	t.Parallel()

	orders := mockapi.NewGeneratorAt(7, testBase).Orders(45)
	require.Len(t, orders, 45)

	seenPartners := map[string]bool{}
	seenStatuses := map[string]bool{}
	seenCodes := map[string]bool{}

	for _, order := range orders {
		require.Positive(t, order.ID)
		require.True(t, strings.HasPrefix(order.TrackingCode, "TRK-"))
		require.False(t, seenCodes[order.TrackingCode], "tracking codes must be unique")
		seenCodes[order.TrackingCode] = true

		require.Contains(t, mockapi.DeliveryPartners, order.DeliveryPartner)
		require.Contains(t, mockapi.QuickStatuses, order.Status)
		require.True(t, strings.HasPrefix(order.CustomerPhone, "01"))
		require.NotEmpty(t, order.CustomerName)
		require.NotEmpty(t, order.PoliceStation)
		require.GreaterOrEqual(t, order.Amount, 500.0)

		if order.Status == "Pending" {
			require.Empty(t, order.RiderName)
			require.Empty(t, order.RiderPhone)
		} else {
			require.NotEmpty(t, order.RiderName)
			require.NotEmpty(t, order.RiderPhone)
		}

		seenPartners[order.DeliveryPartner] = true
		seenStatuses[order.Status] = true
	}

	require.Len(t, seenPartners, len(mockapi.DeliveryPartners))
	require.Len(t, seenStatuses, len(mockapi.QuickStatuses))
}

func TestTrackingCode_Format(t *testing.T) {
	t.Parallel()

	gen := mockapi.NewGeneratorAt(7, testBase)
	code := gen.TrackingCode()
	require.Regexp(t, `^TRK-\d{6}$`, code)
}

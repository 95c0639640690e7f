package analytics_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/order-desk/internal/application/analytics"
	"github.com/jhoicas/order-desk/internal/domain/entity"
)

type fakeReader struct {
	list []entity.Order
	err  error
}

func (f fakeReader) QueryAll(context.Context) ([]entity.Order, error) { return f.list, f.err }

var now = time.Date(2026, 10, 15, 11, 0, 0, 0, time.FixedZone("KST", 9*60*60))

func TestGetSummary(t *testing.T) {
	reader := fakeReader{list: []entity.Order{
		{ID: "A", Manager: "김정진", Quantity: 1000, UnitPrice: 500, DeliveryDate: "2026-10-16"},
		{ID: "B", Manager: "이민호", Quantity: 2, UnitPrice: 250000, DeliveryDate: "2026-10-15"},
		{ID: "C", Manager: "김정진", Quantity: 1, UnitPrice: 1, DeliveryDate: "2026-09-30"},
	}}
	uc := analytics.NewStatsUseCase(reader, func() time.Time { return now })

	got, err := uc.GetSummary(context.Background(), "김정진")
	require.NoError(t, err)

	assert.Equal(t, 3, got.TotalOrders)
	assert.Equal(t, 2, got.UpcomingOrders)
	assert.Equal(t, 1, got.TodayDeliveries)
	assert.Equal(t, 1, got.MyOrders)
	assert.True(t, got.UpcomingAmount.Equal(decimal.NewFromInt(1000000)))
	assert.True(t, got.MyAmount.Equal(decimal.NewFromInt(500000)))
	assert.Equal(t, "1,000,000원", got.UpcomingAmountLabel)
	assert.Equal(t, "2026년 10월 15일", got.DateLabel)
}

func TestGetSummary_ColeccionVacia(t *testing.T) {
	uc := analytics.NewStatsUseCase(fakeReader{}, func() time.Time { return now })
	got, err := uc.GetSummary(context.Background(), "")
	require.NoError(t, err)
	assert.Zero(t, got.TotalOrders)
	assert.True(t, got.UpcomingAmount.IsZero())
	assert.Equal(t, "0원", got.UpcomingAmountLabel)
}

func TestGetSummary_ErrorDeLectura(t *testing.T) {
	uc := analytics.NewStatsUseCase(fakeReader{err: errors.New("detenido")}, nil)
	_, err := uc.GetSummary(context.Background(), "김정진")
	assert.Error(t, err)
}

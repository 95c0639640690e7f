package orders_test

import (
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/order-desk/internal/domain/entity"
	"github.com/jhoicas/order-desk/internal/domain/orders"
)

var (
	seoul    = time.FixedZone("KST", 9*60*60)
	testNow  = time.Date(2026, 10, 15, 10, 0, 0, 0, seoul)
	today    = "2026-10-15"
	tomorrow = "2026-10-16"
	lastWeek = "2026-10-08"
)

func order(id, manager, date string, createdMin int) entity.Order {
	return entity.Order{
		ID:           id,
		Manager:      manager,
		Seller:       "대한제과",
		Destination:  "물류센터",
		Category:     "설탕",
		Product:      "KBS_25KG",
		Quantity:     10,
		UnitPrice:    100,
		TotalAmount:  "1,000원",
		DeliveryDate: date,
		DeliveryTime: "09:00",
		CreatedAt:    testNow.Add(time.Duration(createdMin) * time.Minute),
		CreatedBy:    "관리자",
		Status:       entity.OrderStatusPending,
	}
}

func ids(list []orders.Projected) []string {
	out := make([]string, 0, len(list))
	for _, p := range list {
		out = append(out, p.Order.ID)
	}
	return out
}

func TestIsPast(t *testing.T) {
	assert.True(t, orders.IsPast(order("a", "x", lastWeek, 0), testNow))
	assert.False(t, orders.IsPast(order("a", "x", today, 0), testNow), "hoy no es pasado")
	assert.False(t, orders.IsPast(order("a", "x", tomorrow, 0), testNow))
	assert.True(t, orders.IsToday(order("a", "x", today, 0), testNow))
}

func TestProject_ModosDeVista(t *testing.T) {
	list := []entity.Order{
		order("mine-future", "김정진", tomorrow, 3),
		order("other-future", "이민호", tomorrow, 2),
		order("mine-past", "김정진", lastWeek, 1),
		order("mine-today", "김정진", today, 0),
	}

	assert.Equal(t, []string{"mine-future", "other-future", "mine-today"},
		ids(orders.Project(list, entity.ViewUpcoming, "김정진", testNow)))
	assert.Equal(t, []string{"mine-future", "other-future", "mine-past", "mine-today"},
		ids(orders.Project(list, entity.ViewAll, "김정진", testNow)))
	assert.Equal(t, []string{"mine-future", "mine-today"},
		ids(orders.Project(list, entity.ViewMine, "김정진", testNow)))
	assert.Equal(t, []string{"mine-future", "mine-past", "mine-today"},
		ids(orders.Project(list, entity.ViewMineAll, "김정진", testNow)))
	assert.Empty(t, orders.Project(list, entity.ViewMine, "박서연", testNow))
}

func TestProject_MiFiltraPorEncargadoNoPorCreador(t *testing.T) {
	o := order("a", "이민호", tomorrow, 0)
	o.CreatedBy = "김정진"
	assert.Empty(t, orders.Project([]entity.Order{o}, entity.ViewMine, "김정진", testNow))
}

func TestProject_OrdenDescendenteEstable(t *testing.T) {
	list := []entity.Order{
		order("old", "김정진", tomorrow, 0),
		order("tie-1", "김정진", tomorrow, 5),
		order("new", "김정진", tomorrow, 10),
		order("tie-2", "김정진", tomorrow, 5),
	}
	assert.Equal(t, []string{"new", "tie-1", "tie-2", "old"},
		ids(orders.Project(list, entity.ViewAll, "", testNow)))
}

func TestProject_Editable(t *testing.T) {
	list := []entity.Order{order("past", "x", lastWeek, 0), order("future", "x", tomorrow, 1)}
	got := orders.Project(list, entity.ViewAll, "", testNow)
	require.Len(t, got, 2)
	assert.True(t, got[0].Editable)
	assert.False(t, got[1].Editable)
}

func TestSearch_CualquierCampoSinMayusculas(t *testing.T) {
	a := order("ORD-1", "김정진", lastWeek, 0)
	b := order("ORD-2", "이민호", tomorrow, 5)
	b.Product = "kbs_15kg"
	list := []entity.Order{a, b}

	assert.Equal(t, []string{"ORD-2"}, ids(orders.Search(list, "KBS_15", testNow)))
	assert.Equal(t, []string{"ORD-1"}, ids(orders.Search(list, "김정진", testNow)),
		"la búsqueda ignora el modo de vista e incluye pasados")
	assert.Equal(t, []string{"ORD-1", "ORD-2"}, ids(orders.Search(list, "1,000원", testNow)),
		"orden natural de la colección, sin reordenar por fecha")
	assert.Empty(t, orders.Search(list, "없음", testNow))
}

func TestAmountFormat(t *testing.T) {
	assert.Equal(t, "500,000원", orders.TotalAmount(1000, 500))
	assert.Equal(t, "900원", orders.TotalAmount(3, 300))
	assert.Equal(t, "1,234,567,000원", orders.TotalAmount(1234567, 1000))
	assert.Equal(t, "0원", orders.FormatAmount(decimal.Zero))
	assert.Equal(t, "-1,500원", orders.FormatAmount(decimal.NewFromInt(-1500)))
}

func TestAmountFormat_FueraDeRangoInt64(t *testing.T) {
	assert.Equal(t, "100,000,000,000,000,000,000원", orders.TotalAmount(10_000_000_000, 10_000_000_000))
	assert.Equal(t, "85,070,591,730,234,615,847,396,907,784,232,501,249원",
		orders.TotalAmount(math.MaxInt64, math.MaxInt64))

	sum := orders.Amount(math.MaxInt64, 1).Add(orders.Amount(math.MaxInt64, 1))
	assert.Equal(t, "18,446,744,073,709,551,614원", orders.FormatAmount(sum), "la suma de importes tampoco se trunca")
}

func TestNewID_UnicoEnElMismoSegundo(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 500; i++ {
		id := orders.NewID(testNow)
		assert.False(t, seen[id], "ID repetido: %s", id)
		seen[id] = true
	}
	assert.Regexp(t, `^ORD-20261015100000000-[0-9a-f]{8}$`, orders.NewID(testNow))
}

func TestSummarize(t *testing.T) {
	list := []entity.Order{
		order("a", "김정진", tomorrow, 0),
		order("b", "이민호", today, 1),
		order("c", "김정진", lastWeek, 2),
	}
	s := orders.Summarize(list, "김정진", testNow)
	assert.Equal(t, 3, s.Total)
	assert.Equal(t, 2, s.Upcoming)
	assert.Equal(t, 1, s.Today)
	assert.Equal(t, 1, s.Mine)
	assert.True(t, s.UpcomingAmount.Equal(decimal.NewFromInt(2000)))
	assert.True(t, s.MineAmount.Equal(decimal.NewFromInt(1000)))
}

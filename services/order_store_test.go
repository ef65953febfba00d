package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"matsal-partner-api/entity"
)

type stubOrderSource struct {
	orders []entity.Order
	calls  int
}

func (s *stubOrderSource) LoadOrders(_ context.Context) ([]entity.Order, error) {
	s.calls++
	out := make([]entity.Order, len(s.orders))
	copy(out, s.orders)
	return out, nil
}

var testNow = time.Date(2026, 9, 1, 14, 0, 0, 0, time.Local)

func orderFixture() []entity.Order {
	yesterday := testNow.Add(-24 * time.Hour)
	completedToday := testNow.Add(-2 * time.Hour)
	return []entity.Order{
		{ID: "o1", OrderNumber: 1042, Status: entity.OrderIncoming, Customer: entity.Customer{Name: "Aset Magomadov"}, TotalPrice: 1130, CreatedAt: testNow.Add(-3 * time.Minute)},
		{ID: "o2", OrderNumber: 1040, Status: entity.OrderPreparing, Customer: entity.Customer{Name: "Zarema Khasanova"}, TotalPrice: 1210, CreatedAt: testNow.Add(-25 * time.Minute)},
		{ID: "o3", OrderNumber: 1039, Status: entity.OrderReady, Customer: entity.Customer{Name: "Ibragim Dudaev"}, TotalPrice: 1010, CreatedAt: testNow.Add(-40 * time.Minute)},
		{ID: "o4", OrderNumber: 1038, Status: entity.OrderCompleted, Customer: entity.Customer{Name: "Amina Suleymanova"}, TotalPrice: 630, CreatedAt: completedToday.Add(-time.Hour), CompletedAt: &completedToday},
		{ID: "o5", OrderNumber: 1037, Status: entity.OrderCompleted, Customer: entity.Customer{Name: "Khasan Musaev"}, TotalPrice: 500, CreatedAt: yesterday.Add(-time.Hour), CompletedAt: &yesterday},
	}
}

func newTestOrderStore(t *testing.T, orders []entity.Order) (*OrderStore, *stubOrderSource) {
	t.Helper()
	src := &stubOrderSource{orders: orders}
	store := NewOrderStore(src, zap.NewNop())
	store.now = func() time.Time { return testNow }
	require.NoError(t, store.Load(context.Background(), false))
	return store, src
}

func TestAcceptOnlyFromIncoming(t *testing.T) {
	store, _ := newTestOrderStore(t, orderFixture())

	assert.True(t, store.Accept("o1"))
	got, _ := store.Get("o1")
	assert.Equal(t, entity.OrderPreparing, got.Status)
	require.NotNil(t, got.AcceptedAt)
	assert.Equal(t, testNow, *got.AcceptedAt)

	// already past incoming: no mutation
	for _, id := range []string{"o2", "o3", "o4", "o5"} {
		before, _ := store.Get(id)
		assert.False(t, store.Accept(id), "accept should fail for %s", id)
		after, _ := store.Get(id)
		assert.Equal(t, before, after)
	}
}

func TestHappyPathTimestampsMonotonic(t *testing.T) {
	store, _ := newTestOrderStore(t, orderFixture())

	require.True(t, store.Accept("o1"))
	first, _ := store.Get("o1")
	accepted := *first.AcceptedAt

	// re-running earlier transitions never clears or rewrites stamps
	assert.False(t, store.Accept("o1"))

	require.True(t, store.MarkReady("o1"))
	require.True(t, store.MarkPickedUp("o1"))

	final, _ := store.Get("o1")
	assert.Equal(t, entity.OrderCompleted, final.Status)
	assert.Equal(t, accepted, *final.AcceptedAt)
	require.NotNil(t, final.ReadyAt)
	require.NotNil(t, final.CompletedAt)
	assert.Nil(t, final.RejectedAt)

	// terminal: nothing applies anymore
	assert.False(t, store.MarkPickedUp("o1"))
	assert.False(t, store.Reject("o1", "late"))
}

func TestRejectIsTerminalAndExclusive(t *testing.T) {
	store, _ := newTestOrderStore(t, orderFixture())

	require.True(t, store.Reject("o1", "kitchen closed"))
	got, _ := store.Get("o1")
	assert.Equal(t, entity.OrderRejected, got.Status)
	require.NotNil(t, got.RejectedAt)
	assert.Equal(t, "kitchen closed", got.RejectReason)
	assert.Nil(t, got.AcceptedAt)

	// the accepted path is closed off
	assert.False(t, store.Accept("o1"))
	assert.False(t, store.MarkReady("o1"))
	assert.False(t, store.MarkPickedUp("o1"))

	// and an accepted order cannot be rejected
	assert.False(t, store.Reject("o2", "too busy"))
	o2, _ := store.Get("o2")
	assert.Equal(t, entity.OrderPreparing, o2.Status)
}

func TestUnknownIDIsNoop(t *testing.T) {
	store, _ := newTestOrderStore(t, orderFixture())
	before := store.Orders()

	assert.False(t, store.Accept("missing"))
	assert.False(t, store.Reject("missing", "x"))
	assert.False(t, store.MarkReady("missing"))
	assert.False(t, store.MarkPickedUp("missing"))

	assert.Equal(t, before, store.Orders())
}

func TestFilteredByStatusAndSearch(t *testing.T) {
	store, _ := newTestOrderStore(t, orderFixture())

	got := store.Filtered("preparing", "1040")
	require.Len(t, got, 1)
	assert.Equal(t, "o2", got[0].ID)

	// search matches customer name case-insensitively
	got = store.Filtered(FilterAll, "zaREMa")
	require.Len(t, got, 1)
	assert.Equal(t, "o2", got[0].ID)

	// no status filter: everything, newest first
	got = store.Filtered(FilterAll, "")
	require.Len(t, got, 5)
	for i := 1; i < len(got); i++ {
		assert.False(t, got[i].CreatedAt.After(got[i-1].CreatedAt))
	}
}

func TestFilteredOrdersUsesStoredFilter(t *testing.T) {
	store, _ := newTestOrderStore(t, orderFixture())
	store.SetStatusFilter("ready")
	store.SetSearchQuery("")

	got := store.FilteredOrders()
	require.Len(t, got, 1)
	assert.Equal(t, "o3", got[0].ID)
}

func TestTodayRevenueExcludesYesterday(t *testing.T) {
	store, _ := newTestOrderStore(t, orderFixture())

	// o4 completed today (630), o5 completed yesterday (excluded)
	assert.Equal(t, int64(630), store.TodayRevenue())

	// completing a ready order today adds it
	require.True(t, store.MarkPickedUp("o3"))
	assert.Equal(t, int64(630+1010), store.TodayRevenue())
}

func TestTodayOrdersCount(t *testing.T) {
	store, _ := newTestOrderStore(t, orderFixture())
	// o5 was created yesterday; the other four today, status irrelevant
	assert.Equal(t, 4, store.TodayOrdersCount())
}

func TestStatusPartitionsAndCounts(t *testing.T) {
	store, _ := newTestOrderStore(t, orderFixture())

	assert.Len(t, store.ByStatus(entity.OrderIncoming), 1)
	assert.Len(t, store.ByStatus(entity.OrderCompleted), 2)
	assert.Equal(t, 1, store.IncomingCount())

	counts := store.StatusCounts()
	assert.Equal(t, 1, counts[entity.OrderIncoming])
	assert.Equal(t, 1, counts[entity.OrderPreparing])
	assert.Equal(t, 2, counts[entity.OrderCompleted])
	assert.Equal(t, 0, counts[entity.OrderRejected])
}

func TestLoadIdempotentUnlessForced(t *testing.T) {
	store, src := newTestOrderStore(t, orderFixture())
	assert.Equal(t, 1, src.calls)
	assert.False(t, store.Loading())

	// populated store skips the round-trip
	require.NoError(t, store.Load(context.Background(), false))
	assert.Equal(t, 1, src.calls)

	// force reloads and resets local mutations
	require.True(t, store.Accept("o1"))
	require.NoError(t, store.Load(context.Background(), true))
	assert.Equal(t, 2, src.calls)
	got, _ := store.Get("o1")
	assert.Equal(t, entity.OrderIncoming, got.Status)
}

func TestSelection(t *testing.T) {
	store, _ := newTestOrderStore(t, orderFixture())

	_, ok := store.Selected()
	assert.False(t, ok)

	store.Select("o2")
	sel, ok := store.Selected()
	require.True(t, ok)
	assert.Equal(t, "o2", sel.ID)
}

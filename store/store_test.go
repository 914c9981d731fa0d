package store

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"smartduka/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memPersister is the in-memory stand-in for Redis in tests.
type memPersister struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemPersister() *memPersister {
	return &memPersister{data: make(map[string][]byte)}
}

func (p *memPersister) Load(_ context.Context, session string) (Snapshot, bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	raw, ok := p.data[session]
	if !ok {
		return Snapshot{}, false, nil
	}
	var snap Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return Snapshot{}, false, err
	}
	return snap, true, nil
}

func (p *memPersister) Save(_ context.Context, session string, snap Snapshot) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.data[session] = raw
	return nil
}

func (p *memPersister) Delete(_ context.Context, session string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.data, session)
	return nil
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := New(context.Background(), "sess1", newMemPersister(), nil)
	require.NoError(t, err)
	return st
}

func tv() models.Product {
	return models.Product{ProductID: "prd_a", Slug: "tv-a", Name: "TV A", Category: "TVs", Price: 54500}
}

func phone() models.Product {
	return models.Product{ProductID: "prd_b", Slug: "phone-b", Name: "Phone B", Category: "Phones", Price: 165000}
}

func assertTotalConsistent(t *testing.T, snap Snapshot) {
	t.Helper()
	var want int64
	for _, it := range snap.Items {
		want += it.Price * int64(it.Quantity)
	}
	assert.Equal(t, want, snap.Total, "total must equal sum(price*quantity)")
}

func TestAddItemMergesByProductID(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	st.AddItem(ctx, tv())
	snap := st.AddItem(ctx, tv())

	require.Len(t, snap.Items, 1)
	assert.Equal(t, 2, snap.Items[0].Quantity)
	assert.Equal(t, int64(109000), snap.Total)
	assertTotalConsistent(t, snap)
}

func TestUpdateQuantityFloorsAtOne(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	st.AddItem(ctx, tv())
	st.AddItem(ctx, tv())
	snap := st.UpdateQuantity(ctx, "prd_a", -5)

	require.Len(t, snap.Items, 1)
	assert.Equal(t, 1, snap.Items[0].Quantity)
	assert.Equal(t, int64(54500), snap.Total)
	assertTotalConsistent(t, snap)
}

func TestTotalStaysConsistentAcrossMutations(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	assertTotalConsistent(t, st.AddItem(ctx, tv()))
	assertTotalConsistent(t, st.AddItem(ctx, phone()))
	assertTotalConsistent(t, st.UpdateQuantity(ctx, "prd_b", 3))
	assertTotalConsistent(t, st.RemoveItem(ctx, "prd_a"))
	assertTotalConsistent(t, st.UpdateQuantity(ctx, "prd_b", -10))
	snap := st.ClearCart(ctx)
	assertTotalConsistent(t, snap)
	assert.Equal(t, int64(0), snap.Total)
	assert.Empty(t, snap.Items)
}

func TestRemoveUnknownIDIsNoOp(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	st.AddItem(ctx, tv())
	snap := st.RemoveItem(ctx, "no-such-id")

	require.Len(t, snap.Items, 1)
	assert.Equal(t, int64(54500), snap.Total)
}

func TestUpdateQuantityUnknownIDIsNoOp(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	st.AddItem(ctx, tv())
	snap := st.UpdateQuantity(ctx, "no-such-id", 4)

	require.Len(t, snap.Items, 1)
	assert.Equal(t, 1, snap.Items[0].Quantity)
}

func TestCompareListCeiling(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	st.ToggleCompare(ctx, "a")
	st.ToggleCompare(ctx, "b")
	st.ToggleCompare(ctx, "c")
	snap := st.ToggleCompare(ctx, "d")

	assert.Equal(t, []string{"a", "b", "c"}, snap.CompareList, "4th id is silently rejected")

	// toggling a member off still works at the ceiling
	snap = st.ToggleCompare(ctx, "b")
	assert.Equal(t, []string{"a", "c"}, snap.CompareList)

	snap = st.ToggleCompare(ctx, "d")
	assert.Equal(t, []string{"a", "c", "d"}, snap.CompareList)
}

func TestWishlistToggleIsUnbounded(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c", "d", "e"} {
		st.ToggleWishlist(ctx, id)
	}
	snap := st.ToggleWishlist(ctx, "c")

	assert.Equal(t, []string{"a", "b", "d", "e"}, snap.Wishlist)
}

func TestAddOrderToHistoryPrependsAndTracksSpend(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	st.AddOrderToHistory(ctx, models.Order{OrderID: "ORD1", TotalAmount: 54500})
	snap := st.AddOrderToHistory(ctx, models.Order{OrderID: "ORD2", TotalAmount: 8500})

	require.Len(t, snap.OrderHistory, 2)
	assert.Equal(t, "ORD2", snap.OrderHistory[0].OrderID, "most recent first")
	assert.Equal(t, int64(63000), snap.LifetimeSpend)

	var sum int64
	for _, o := range snap.OrderHistory {
		sum += o.TotalAmount
	}
	assert.Equal(t, sum, snap.LifetimeSpend, "lifetime spend tracks history exactly")
}

func TestApplyOrderStatusLastWriteWins(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	st.AddOrderToHistory(ctx, models.Order{OrderID: "ORD1", TotalAmount: 100, Status: models.OrderPending})

	st.ApplyOrderStatus(ctx, "ORD1", models.OrderShipped)
	// an out-of-order older status still applies: newest event wins
	snap := st.ApplyOrderStatus(ctx, "ORD1", models.OrderPaid)
	assert.Equal(t, models.OrderPaid, snap.OrderHistory[0].Status)

	// unknown order ids are discarded
	snap = st.ApplyOrderStatus(ctx, "ORD404", models.OrderDelivered)
	assert.Equal(t, models.OrderPaid, snap.OrderHistory[0].Status)
	require.Len(t, snap.OrderHistory, 1)
}

func TestSetUserDerivesAuthFlag(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	snap := st.SetUser(ctx, &models.User{UserID: "u1", Name: "Wanjiru"})
	assert.True(t, snap.IsAuthenticated)

	snap = st.SetUser(ctx, nil)
	assert.False(t, snap.IsAuthenticated)
	assert.Nil(t, snap.User)
}

func TestLogoutWipesEverything(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	st.SetUser(ctx, &models.User{UserID: "u1"})
	st.AddItem(ctx, tv())
	st.ToggleWishlist(ctx, "w1")
	st.ToggleCompare(ctx, "c1")
	st.AddOrderToHistory(ctx, models.Order{OrderID: "ORD1", TotalAmount: 54500})

	snap := st.Logout(ctx)

	assert.Empty(t, snap.Items)
	assert.Equal(t, int64(0), snap.Total)
	assert.Empty(t, snap.OrderHistory)
	assert.Equal(t, int64(0), snap.LifetimeSpend)
	assert.Empty(t, snap.Wishlist)
	assert.Empty(t, snap.CompareList)
	assert.Nil(t, snap.User)
	assert.False(t, snap.IsAuthenticated)
}

func TestUpdateProfileShallowMerge(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	// no-op without a user
	snap := st.UpdateProfile(ctx, models.ProfilePatch{Name: strptr("X")})
	assert.Nil(t, snap.User)

	st.SetUser(ctx, &models.User{UserID: "u1", Name: "Old", Email: "old@example.com"})
	snap = st.UpdateProfile(ctx, models.ProfilePatch{Name: strptr("New")})

	assert.Equal(t, "New", snap.User.Name)
	assert.Equal(t, "old@example.com", snap.User.Email, "unpatched fields survive")
}

func TestCartOpenedEventForGuests(t *testing.T) {
	var events []string
	p := newMemPersister()
	st, err := New(context.Background(), "sess1", p, func(session, event string) {
		events = append(events, event)
	})
	require.NoError(t, err)
	ctx := context.Background()

	st.AddItem(ctx, tv())
	assert.Equal(t, []string{EventCartOpened}, events, "guest add opens the drawer")

	// once signed in with the drawer closed again, no event fires
	st.Logout(ctx)
	events = nil
	st.SetUser(ctx, &models.User{UserID: "u1"})
	st.AddItem(ctx, tv())
	assert.Empty(t, events)
}

func TestRehydrationAndMigration(t *testing.T) {
	p := newMemPersister()
	ctx := context.Background()

	st, err := New(ctx, "sess1", p, nil)
	require.NoError(t, err)
	st.AddItem(ctx, tv())
	st.AddItem(ctx, tv())

	// a second store for the same session sees the persisted snapshot
	reloaded, err := New(ctx, "sess1", p, nil)
	require.NoError(t, err)
	snap := reloaded.State()
	require.Len(t, snap.Items, 1)
	assert.Equal(t, 2, snap.Items[0].Quantity)
	assert.Equal(t, int64(109000), snap.Total)

	// a pre-versioning snapshot with missing fields gets defaulted
	raw, _ := json.Marshal(map[string]any{
		"items": []models.CartItem{{ProductID: "x", Price: 100, Quantity: 2}},
		"total": 999, // stale on disk; recomputed during migration
	})
	p.mu.Lock()
	p.data["legacy"] = raw
	p.mu.Unlock()

	legacy, err := New(ctx, "legacy", p, nil)
	require.NoError(t, err)
	snap = legacy.State()
	assert.Equal(t, int64(200), snap.Total)
	assert.Equal(t, 1, snap.CheckoutStep)
	assert.Equal(t, "mpesa", snap.PaymentMethod)
	assert.NotNil(t, snap.Wishlist)
	assert.NotNil(t, snap.OrderHistory)
	assert.Equal(t, snapshotVersion, snap.Version)
}

func strptr(s string) *string { return &s }

package store

import (
	"context"
	"log"
	"sync"

	"smartduka/models"
)

// Events emitted to the presentation layer. The store never touches UI
// state directly; it publishes a notification and moves on.
const EventCartOpened = "cart-opened"

// Listener observes store events. May be nil.
type Listener func(session, event string)

// Store is the per-session state container. All mutators apply a pure
// transition under one lock and persist the resulting snapshot before
// returning, so the persisted state always matches the in-memory state.
type Store struct {
	mu        sync.Mutex
	session   string
	state     Snapshot
	persister Persister
	listener  Listener

	// drawerOpen is a presentation hint, deliberately not persisted.
	drawerOpen bool
}

// New rehydrates the session snapshot before the store is usable.
func New(ctx context.Context, session string, p Persister, l Listener) (*Store, error) {
	st := &Store{session: session, persister: p, listener: l, state: emptySnapshot()}

	snap, found, err := p.Load(ctx, session)
	if err != nil {
		return nil, err
	}
	if found {
		st.state = migrate(snap)
	}
	return st, nil
}

// State returns a copy of the current snapshot.
func (st *Store) State() Snapshot {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.state
}

func (st *Store) apply(ctx context.Context, fn func(Snapshot) Snapshot) Snapshot {
	st.mu.Lock()
	st.state = fn(st.state)
	snap := st.state
	st.mu.Unlock()

	if err := st.persister.Save(ctx, st.session, snap); err != nil {
		log.Printf("store: persist failed for session %s: %v", st.session, err)
	}
	return snap
}

func (st *Store) emit(event string) {
	if st.listener != nil {
		st.listener(st.session, event)
	}
}

// AddItem inserts the product at quantity 1 or increments the existing
// line. When the shopper is not signed in, or the drawer is already
// open, a cart-opened event is emitted for the presentation layer.
func (st *Store) AddItem(ctx context.Context, p models.Product) Snapshot {
	st.mu.Lock()
	openDrawer := !st.state.IsAuthenticated || st.drawerOpen
	if openDrawer {
		st.drawerOpen = true
	}
	st.mu.Unlock()

	snap := st.apply(ctx, func(s Snapshot) Snapshot { return addItem(s, p) })
	if openDrawer {
		st.emit(EventCartOpened)
	}
	return snap
}

func (st *Store) RemoveItem(ctx context.Context, id string) Snapshot {
	return st.apply(ctx, func(s Snapshot) Snapshot { return removeItem(s, id) })
}

func (st *Store) UpdateQuantity(ctx context.Context, id string, delta int) Snapshot {
	return st.apply(ctx, func(s Snapshot) Snapshot { return updateQuantity(s, id, delta) })
}

func (st *Store) ClearCart(ctx context.Context) Snapshot {
	return st.apply(ctx, clearCart)
}

func (st *Store) ToggleWishlist(ctx context.Context, id string) Snapshot {
	return st.apply(ctx, func(s Snapshot) Snapshot { return toggleWishlist(s, id) })
}

func (st *Store) ToggleCompare(ctx context.Context, id string) Snapshot {
	return st.apply(ctx, func(s Snapshot) Snapshot { return toggleCompare(s, id) })
}

func (st *Store) ClearCompare(ctx context.Context) Snapshot {
	return st.apply(ctx, clearCompare)
}

func (st *Store) SetCheckoutStep(ctx context.Context, step int) Snapshot {
	return st.apply(ctx, func(s Snapshot) Snapshot { s.CheckoutStep = step; return s })
}

func (st *Store) SetPaymentMethod(ctx context.Context, method string) Snapshot {
	return st.apply(ctx, func(s Snapshot) Snapshot { s.PaymentMethod = method; return s })
}

func (st *Store) SetInstallationTier(ctx context.Context, tier string) Snapshot {
	return st.apply(ctx, func(s Snapshot) Snapshot { s.InstallationTier = tier; return s })
}

func (st *Store) SetUser(ctx context.Context, u *models.User) Snapshot {
	return st.apply(ctx, func(s Snapshot) Snapshot { return setUser(s, u) })
}

func (st *Store) UpdateProfile(ctx context.Context, patch models.ProfilePatch) Snapshot {
	return st.apply(ctx, func(s Snapshot) Snapshot { return updateProfile(s, patch) })
}

func (st *Store) AddOrderToHistory(ctx context.Context, o models.Order) Snapshot {
	return st.apply(ctx, func(s Snapshot) Snapshot { return addOrderToHistory(s, o) })
}

// ApplyOrderStatus folds a realtime status event into order history.
// Last write wins; events for unknown order ids are ignored.
func (st *Store) ApplyOrderStatus(ctx context.Context, orderID, status string) Snapshot {
	return st.apply(ctx, func(s Snapshot) Snapshot { return applyOrderStatus(s, orderID, status) })
}

// Logout wipes the entire session: user, cart, history, lifetime spend,
// wishlist and compare list.
func (st *Store) Logout(ctx context.Context) Snapshot {
	st.mu.Lock()
	st.drawerOpen = false
	st.mu.Unlock()
	return st.apply(ctx, logout)
}

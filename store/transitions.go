package store

import "smartduka/models"

// Pure transition functions: (Snapshot, action) -> Snapshot. Every
// mutator is total over its input domain; unknown ids are no-ops.
// Total is recomputed synchronously inside every cart transition so it
// can never go stale.

const maxCompare = 3

func cartTotal(items []models.CartItem) int64 {
	var total int64
	for _, it := range items {
		total += it.Price * int64(it.Quantity)
	}
	return total
}

func addItem(s Snapshot, p models.Product) Snapshot {
	items := make([]models.CartItem, len(s.Items))
	copy(items, s.Items)

	found := false
	for i := range items {
		if items[i].ProductID == p.ProductID {
			items[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		items = append(items, models.NewCartItem(p))
	}

	s.Items = items
	s.Total = cartTotal(items)
	return s
}

func removeItem(s Snapshot, id string) Snapshot {
	items := make([]models.CartItem, 0, len(s.Items))
	for _, it := range s.Items {
		if it.ProductID != id {
			items = append(items, it)
		}
	}
	s.Items = items
	s.Total = cartTotal(items)
	return s
}

// updateQuantity floors at 1; removeItem is the only way to delete.
func updateQuantity(s Snapshot, id string, delta int) Snapshot {
	items := make([]models.CartItem, len(s.Items))
	copy(items, s.Items)

	for i := range items {
		if items[i].ProductID == id {
			items[i].Quantity = max(1, items[i].Quantity+delta)
			break
		}
	}
	s.Items = items
	s.Total = cartTotal(items)
	return s
}

func clearCart(s Snapshot) Snapshot {
	s.Items = []models.CartItem{}
	s.Total = 0
	return s
}

func toggleWishlist(s Snapshot, id string) Snapshot {
	s.Wishlist = toggleID(s.Wishlist, id, 0)
	return s
}

// toggleCompare enforces the 3-item ceiling: a 4th distinct id is
// silently rejected.
func toggleCompare(s Snapshot, id string) Snapshot {
	s.CompareList = toggleID(s.CompareList, id, maxCompare)
	return s
}

func clearCompare(s Snapshot) Snapshot {
	s.CompareList = []string{}
	return s
}

// toggleID is a symmetric-difference toggle with an optional ceiling
// (0 = unbounded) applied to additions only.
func toggleID(list []string, id string, ceiling int) []string {
	for i, v := range list {
		if v == id {
			out := make([]string, 0, len(list)-1)
			out = append(out, list[:i]...)
			return append(out, list[i+1:]...)
		}
	}
	if ceiling > 0 && len(list) >= ceiling {
		return list
	}
	out := make([]string, len(list), len(list)+1)
	copy(out, list)
	return append(out, id)
}

// setUser is the sole source of truth for auth state.
func setUser(s Snapshot, u *models.User) Snapshot {
	s.User = u
	s.IsAuthenticated = u != nil
	return s
}

// logout is a full session teardown, not an auth flag flip.
func logout(s Snapshot) Snapshot {
	return emptySnapshot()
}

// addOrderToHistory prepends the order and bumps lifetime spend in the
// same transition; the two must never diverge.
func addOrderToHistory(s Snapshot, o models.Order) Snapshot {
	history := make([]models.Order, 0, len(s.OrderHistory)+1)
	history = append(history, o)
	history = append(history, s.OrderHistory...)
	s.OrderHistory = history
	s.LifetimeSpend += o.TotalAmount
	return s
}

// applyOrderStatus folds a status event: newest wins unconditionally,
// unknown order ids are discarded.
func applyOrderStatus(s Snapshot, orderID, status string) Snapshot {
	history := make([]models.Order, len(s.OrderHistory))
	copy(history, s.OrderHistory)
	for i := range history {
		if history[i].OrderID == orderID {
			history[i].Status = status
			break
		}
	}
	s.OrderHistory = history
	return s
}

func updateProfile(s Snapshot, patch models.ProfilePatch) Snapshot {
	if s.User == nil {
		return s
	}
	u := *s.User
	if patch.Name != nil {
		u.Name = *patch.Name
	}
	if patch.Email != nil {
		u.Email = *patch.Email
	}
	if patch.Phone != nil {
		u.Phone = *patch.Phone
	}
	if patch.Avatar != nil {
		u.Avatar = *patch.Avatar
	}
	if patch.Addr != nil {
		addr := *patch.Addr
		u.Address = &addr
	}
	s.User = &u
	return s
}

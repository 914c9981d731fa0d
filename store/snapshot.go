package store

import "smartduka/models"

// snapshotVersion is bumped whenever the persisted shape changes; older
// snapshots go through migrate before use.
const snapshotVersion = 1

// Namespace prefixes every persisted snapshot key.
const Namespace = "smart-duka-storage"

// Snapshot is the entire session state. It is the unit of persistence:
// the whole value is serialized under one namespaced key after every
// mutation and rehydrated before first use.
type Snapshot struct {
	Version          int               `json:"version"`
	Items            []models.CartItem `json:"items"`
	Total            int64             `json:"total"`
	Wishlist         []string          `json:"wishlist"`
	CompareList      []string          `json:"compareList"`
	CheckoutStep     int               `json:"checkoutStep"`
	PaymentMethod    string            `json:"paymentMethod"`
	InstallationTier string            `json:"installationTier"`
	User             *models.User      `json:"user"`
	IsAuthenticated  bool              `json:"isAuthenticated"`
	LifetimeSpend    int64             `json:"lifetimeSpend"`
	OrderHistory     []models.Order    `json:"orderHistory"`
}

func emptySnapshot() Snapshot {
	return Snapshot{
		Version:          snapshotVersion,
		Items:            []models.CartItem{},
		Wishlist:         []string{},
		CompareList:      []string{},
		CheckoutStep:     1,
		PaymentMethod:    "mpesa",
		InstallationTier: "basic",
		OrderHistory:     []models.Order{},
	}
}

// migrate defaults fields that older snapshot versions may lack instead
// of assuming every old snapshot deserializes into the current shape.
func migrate(s Snapshot) Snapshot {
	if s.Items == nil {
		s.Items = []models.CartItem{}
	}
	if s.Wishlist == nil {
		s.Wishlist = []string{}
	}
	if s.CompareList == nil {
		s.CompareList = []string{}
	}
	if s.OrderHistory == nil {
		s.OrderHistory = []models.Order{}
	}
	if s.CheckoutStep < 1 {
		s.CheckoutStep = 1
	}
	if s.PaymentMethod == "" {
		s.PaymentMethod = "mpesa"
	}
	if s.InstallationTier == "" {
		s.InstallationTier = "basic"
	}
	// auth flag is derived from the user pointer, never trusted from disk
	s.IsAuthenticated = s.User != nil
	s.Total = cartTotal(s.Items)
	s.Version = snapshotVersion
	return s
}

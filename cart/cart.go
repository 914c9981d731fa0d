package cart

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"smartduka/db"
	"smartduka/models"
	"smartduka/store"
	"smartduka/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// Handler serves cart, wishlist, compare and checkout-state operations
// against the per-session store.
type Handler struct {
	Mgr *store.Manager
}

func NewHandler(mgr *store.Manager) *Handler {
	return &Handler{Mgr: mgr}
}

// session resolves the request's store, echoing the session id so guest
// clients can keep it across requests.
func (h *Handler) session(w http.ResponseWriter, r *http.Request) (*store.Store, error) {
	key := utils.SessionKey(r)
	w.Header().Set("X-Session-ID", key)
	return h.Mgr.Get(r.Context(), key)
}

// GetState returns the whole session snapshot.
func (h *Handler) GetState(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	st, err := h.session(w, r)
	if err != nil {
		log.Println("GetState session error:", err)
		http.Error(w, "Could not load session", http.StatusInternalServerError)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, st.State())
}

// AddToCart inserts the product at quantity 1 or increments the
// existing line.
func (h *Handler) AddToCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var payload struct {
		ProductID string `json:"productId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.ProductID == "" {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	var product models.Product
	if err := db.ProductsCollection.FindOne(ctx, bson.M{"productid": payload.ProductID}).Decode(&product); err != nil {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	st, err := h.session(w, r)
	if err != nil {
		http.Error(w, "Could not load session", http.StatusInternalServerError)
		return
	}
	snap := st.AddItem(ctx, product)
	utils.RespondWithJSON(w, http.StatusCreated, snap)
}

// RemoveFromCart deletes the line; unknown ids are a no-op.
func (h *Handler) RemoveFromCart(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	st, err := h.session(w, r)
	if err != nil {
		http.Error(w, "Could not load session", http.StatusInternalServerError)
		return
	}
	snap := st.RemoveItem(r.Context(), ps.ByName("productid"))
	utils.RespondWithJSON(w, http.StatusOK, snap)
}

// UpdateQuantity applies a delta to an existing line; quantity floors
// at 1.
func (h *Handler) UpdateQuantity(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var payload struct {
		ProductID string `json:"productId"`
		Delta     int    `json:"delta"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.ProductID == "" {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	st, err := h.session(w, r)
	if err != nil {
		http.Error(w, "Could not load session", http.StatusInternalServerError)
		return
	}
	snap := st.UpdateQuantity(r.Context(), payload.ProductID, payload.Delta)
	utils.RespondWithJSON(w, http.StatusOK, snap)
}

func (h *Handler) ClearCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	st, err := h.session(w, r)
	if err != nil {
		http.Error(w, "Could not load session", http.StatusInternalServerError)
		return
	}
	snap := st.ClearCart(r.Context())
	utils.RespondWithJSON(w, http.StatusOK, snap)
}

func (h *Handler) ToggleWishlist(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	st, err := h.session(w, r)
	if err != nil {
		http.Error(w, "Could not load session", http.StatusInternalServerError)
		return
	}
	snap := st.ToggleWishlist(r.Context(), ps.ByName("productid"))
	utils.RespondWithJSON(w, http.StatusOK, snap)
}

func (h *Handler) ToggleCompare(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	st, err := h.session(w, r)
	if err != nil {
		http.Error(w, "Could not load session", http.StatusInternalServerError)
		return
	}
	snap := st.ToggleCompare(r.Context(), ps.ByName("productid"))
	utils.RespondWithJSON(w, http.StatusOK, snap)
}

func (h *Handler) ClearCompare(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	st, err := h.session(w, r)
	if err != nil {
		http.Error(w, "Could not load session", http.StatusInternalServerError)
		return
	}
	snap := st.ClearCompare(r.Context())
	utils.RespondWithJSON(w, http.StatusOK, snap)
}

// UpdateCheckoutState sets step, payment method and installation tier;
// only supplied fields change.
func (h *Handler) UpdateCheckoutState(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var payload struct {
		CheckoutStep     *int    `json:"checkoutStep"`
		PaymentMethod    *string `json:"paymentMethod"`
		InstallationTier *string `json:"installationTier"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	st, err := h.session(w, r)
	if err != nil {
		http.Error(w, "Could not load session", http.StatusInternalServerError)
		return
	}

	ctx := r.Context()
	snap := st.State()
	if payload.CheckoutStep != nil {
		snap = st.SetCheckoutStep(ctx, *payload.CheckoutStep)
	}
	if payload.PaymentMethod != nil {
		snap = st.SetPaymentMethod(ctx, *payload.PaymentMethod)
	}
	if payload.InstallationTier != nil {
		snap = st.SetInstallationTier(ctx, *payload.InstallationTier)
	}
	utils.RespondWithJSON(w, http.StatusOK, snap)
}

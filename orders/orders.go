package orders

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"smartduka/db"
	"smartduka/models"
	"smartduka/mq"
	"smartduka/pay"
	"smartduka/pricing"
	"smartduka/store"
	"smartduka/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var ErrTerminalStatus = errors.New("order is in a terminal state")

// Handler owns the order lifecycle. Orders enter history only through
// PlaceOrder; status transitions flow through UpdateStatus so every
// change reaches the realtime channel.
type Handler struct {
	Mgr *store.Manager
	Pay *pay.Service
}

func NewHandler(mgr *store.Manager) *Handler {
	return &Handler{Mgr: mgr}
}

type placeOrderPayload struct {
	GuestName       string  `json:"guestName,omitempty"`
	Phone           string  `json:"phone"`
	DeliveryAddress string  `json:"delivery_address"`
	DeliveryLat     float64 `json:"delivery_lat,omitempty"`
	DeliveryLng     float64 `json:"delivery_lng,omitempty"`
	PaymentMethod   string  `json:"payment_method"`
	TVTier          string  `json:"tvInstallationTier"`
	KitchenInstall  bool    `json:"kitchenInstall"`
	Notes           string  `json:"notes,omitempty"`
}

// PlaceOrder snapshots the session cart into a pending order, persists
// it, prepends it to order history and clears the cart. For M-Pesa
// checkouts the STK push is initiated with the normalized MSISDN.
func (h *Handler) PlaceOrder(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var payload placeOrderPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Println("PlaceOrder decode error:", err)
		http.Error(w, "Invalid order payload", http.StatusBadRequest)
		return
	}

	session := utils.SessionKey(r)
	w.Header().Set("X-Session-ID", session)

	st, err := h.Mgr.Get(ctx, session)
	if err != nil {
		http.Error(w, "Could not load session", http.StatusInternalServerError)
		return
	}
	state := st.State()

	// validation gaps block progression without mutating state
	if len(state.Items) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Cart is empty")
		return
	}
	if payload.Phone == "" || (!state.IsAuthenticated && payload.GuestName == "") {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing required checkout fields")
		return
	}

	tier := payload.TVTier
	if tier == "" {
		tier = state.InstallationTier
	}
	totals := pricing.ComputeOrderTotal(state.Items, tier, payload.KitchenInstall)

	userID := utils.GetUserIDFromRequest(r)
	order := models.Order{
		OrderID:         "ORD" + strconv.FormatInt(time.Now().UnixNano()%1e6, 10) + utils.GenerateRandomDigitString(3),
		SessionID:       session,
		UserID:          userID,
		TotalAmount:     totals.FinalTotal,
		Status:          models.OrderPending,
		Items:           state.Items,
		DeliveryAddress: payload.DeliveryAddress,
		DeliveryLat:     payload.DeliveryLat,
		DeliveryLng:     payload.DeliveryLng,
		PaymentMethod:   payload.PaymentMethod,
		Notes:           payload.Notes,
		CreatedAt:       time.Now(),
	}

	if _, err := db.OrdersCollection.InsertOne(ctx, order); err != nil {
		log.Println("PlaceOrder InsertOne error:", err)
		http.Error(w, "Order creation failed", http.StatusInternalServerError)
		return
	}

	st.AddOrderToHistory(ctx, order)
	st.ClearCart(ctx)

	var push *pay.STKPushResponse
	if payload.PaymentMethod == "mpesa" && h.Pay != nil {
		resp, err := h.Pay.InitiatePush(ctx, pay.STKPushRequest{
			OrderID:     order.OrderID,
			PhoneNumber: pay.NormalizeMSISDN(payload.Phone),
			Amount:      order.TotalAmount,
		})
		if err != nil {
			log.Println("PlaceOrder STK push error:", err)
		} else {
			push = &resp
		}
	}

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"order":   order,
		"totals":  totals,
		"payment": push,
	})
}

// GetOrder renders an empty fallback for unknown ids, never a crash.
func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var order models.Order
	err := db.OrdersCollection.FindOne(r.Context(), bson.M{"orderid": ps.ByName("orderid")}).Decode(&order)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Order not found")
		return
	}
	if err != nil {
		log.Println("GetOrder error:", err)
		http.Error(w, "Could not retrieve order", http.StatusInternalServerError)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, order)
}

// GetHistory returns the session's order history, most recent first.
func (h *Handler) GetHistory(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	session := utils.SessionKey(r)
	w.Header().Set("X-Session-ID", session)

	st, err := h.Mgr.Get(r.Context(), session)
	if err != nil {
		http.Error(w, "Could not load session", http.StatusInternalServerError)
		return
	}
	state := st.State()
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"orders":        state.OrderHistory,
		"lifetimeSpend": state.LifetimeSpend,
	})
}

// UpdateStatus persists a status transition and publishes it. Terminal
// orders reject further transitions.
func (h *Handler) UpdateStatus(ctx context.Context, orderID, status string) error {
	var order models.Order
	err := db.OrdersCollection.FindOne(ctx, bson.M{"orderid": orderID}).Decode(&order)
	if err != nil {
		return err
	}
	if models.TerminalStatus(order.Status) {
		return ErrTerminalStatus
	}

	_, err = db.OrdersCollection.UpdateOne(ctx,
		bson.M{"orderid": orderID},
		bson.M{"$set": bson.M{"status": status}},
	)
	if err != nil {
		return err
	}

	mq.EmitStatus(ctx, orderID, status)
	return nil
}

// Fold applies a broadcast status event to the owning session's store.
// Events for unknown order ids are discarded.
func (h *Handler) Fold(ctx context.Context, orderID, status string) {
	var order models.Order
	err := db.OrdersCollection.FindOne(ctx, bson.M{"orderid": orderID}).Decode(&order)
	if err != nil {
		return
	}
	st, err := h.Mgr.Get(ctx, order.SessionID)
	if err != nil {
		log.Println("Fold session error:", err)
		return
	}
	st.ApplyOrderStatus(ctx, orderID, status)
}

// DispatchOrder marks an order shipped.
func (h *Handler) DispatchOrder(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	h.transition(w, r, ps.ByName("orderid"), models.OrderShipped)
}

// MarkDelivered marks an order delivered (terminal).
func (h *Handler) MarkDelivered(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	h.transition(w, r, ps.ByName("orderid"), models.OrderDelivered)
}

func (h *Handler) transition(w http.ResponseWriter, r *http.Request, orderID, status string) {
	err := h.UpdateStatus(r.Context(), orderID, status)
	switch {
	case err == mongo.ErrNoDocuments:
		utils.RespondWithError(w, http.StatusNotFound, "Order not found")
	case errors.Is(err, ErrTerminalStatus):
		utils.RespondWithError(w, http.StatusConflict, "Order already finalized")
	case err != nil:
		log.Println("transition error:", err)
		http.Error(w, "Status update failed", http.StatusInternalServerError)
	default:
		utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": status})
	}
}

package pay

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"smartduka/models"
	"smartduka/utils"

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
	"github.com/redis/go-redis/v9"
)

// StatusUpdater moves an order through its payment transitions.
type StatusUpdater interface {
	UpdateStatus(ctx context.Context, orderID, status string) error
}

// Service simulates the Safaricom Daraja STK push flow.
type Service struct {
	rdx    *redis.Client
	orders StatusUpdater
}

func NewService(rdx *redis.Client, orders StatusUpdater) *Service {
	return &Service{rdx: rdx, orders: orders}
}

const idempotencyTTL = 15 * time.Minute

type STKPushRequest struct {
	OrderID     string `json:"orderId"`
	PhoneNumber string `json:"phoneNumber"`
	Amount      int64  `json:"amount"`
}

type STKPushResponse struct {
	Success             bool   `json:"success"`
	MerchantRequestID   string `json:"MerchantRequestID,omitempty"`
	CheckoutRequestID   string `json:"CheckoutRequestID,omitempty"`
	ResponseCode        string `json:"ResponseCode,omitempty"`
	ResponseDescription string `json:"ResponseDescription,omitempty"`
	Message             string `json:"message"`
}

// InitiatePush validates and normalizes the MSISDN, then simulates a
// push. An order that already has an in-flight push gets the original
// response back instead of a second prompt.
func (s *Service) InitiatePush(ctx context.Context, req STKPushRequest) (STKPushResponse, error) {
	phone := NormalizeMSISDN(req.PhoneNumber)
	if !ValidMSISDN(phone) {
		return STKPushResponse{Success: false, Message: "Invalid phone number"}, nil
	}
	if req.OrderID == "" || req.Amount <= 0 {
		return STKPushResponse{Success: false, Message: "Missing order or amount"}, nil
	}

	key := "stk:order:" + req.OrderID

	resp := STKPushResponse{
		Success:             true,
		MerchantRequestID:   uuid.NewString(),
		CheckoutRequestID:   "ws_CO_" + strings.ToUpper(utils.GenerateRandomString(9)),
		ResponseCode:        "0",
		ResponseDescription: "Success. Request accepted for processing",
		Message:             "STK Push Initiated",
	}
	data, err := json.Marshal(resp)
	if err != nil {
		return STKPushResponse{}, err
	}

	set, err := s.rdx.SetNX(ctx, key, data, idempotencyTTL).Result()
	if err != nil {
		return STKPushResponse{}, err
	}
	if !set {
		// replay of a double-submitted push
		prev, err := s.rdx.Get(ctx, key).Bytes()
		if err == nil {
			var cached STKPushResponse
			if json.Unmarshal(prev, &cached) == nil {
				return cached, nil
			}
		}
	}
	return resp, nil
}

// TriggerSTKPush is the HTTP surface of InitiatePush.
func (s *Service) TriggerSTKPush(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req STKPushRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Println("TriggerSTKPush decode error:", err)
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	resp, err := s.InitiatePush(r.Context(), req)
	if err != nil {
		log.Println("TriggerSTKPush error:", err)
		utils.RespondWithJSON(w, http.StatusInternalServerError, STKPushResponse{
			Success: false,
			Message: "Payment initiation failed",
		})
		return
	}
	if !resp.Success {
		utils.RespondWithJSON(w, http.StatusBadRequest, resp)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

type callbackPayload struct {
	OrderID    string `json:"orderId"`
	ResultCode int    `json:"resultCode"`
	Receipt    string `json:"receipt,omitempty"`
}

// PaymentCallback is the simulated Daraja result hook: result code 0
// marks the order Paid, anything else Payment Failed. Either way the
// status change is published to live tracking views.
func (s *Service) PaymentCallback(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var payload callbackPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Println("PaymentCallback decode error:", err)
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}
	if payload.OrderID == "" {
		http.Error(w, "Missing order id", http.StatusBadRequest)
		return
	}

	status := models.OrderPaid
	if payload.ResultCode != 0 {
		status = models.OrderPaymentFailed
	}

	if err := s.orders.UpdateStatus(r.Context(), payload.OrderID, status); err != nil {
		log.Println("PaymentCallback status update error:", err)
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": status})
}

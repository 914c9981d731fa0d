package booking

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"smartduka/db"
	"smartduka/pricing"
	"smartduka/utils"

	"github.com/julienschmidt/httprouter"
)

// GetQuote prices an installation selection. Pure recomputation — the
// same selection always quotes the same figures.
func GetQuote(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var sel pricing.InstallationSelection
	if err := json.NewDecoder(r.Body).Decode(&sel); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, pricing.ComputeQuotation(sel))
}

// Booking is an installation appointment with its quotation frozen at
// submission time.
type Booking struct {
	BookingID     string                        `json:"bookingId" bson:"bookingid"`
	FullName      string                        `json:"fullName" bson:"fullname"`
	Phone         string                        `json:"phone" bson:"phone"`
	Email         string                        `json:"email,omitempty" bson:"email,omitempty"`
	Location      string                        `json:"location" bson:"location"`
	PreferredDate string                        `json:"preferredDate" bson:"preferred_date"`
	PreferredHour string                        `json:"preferredHour" bson:"preferred_hour"`
	Selection     pricing.InstallationSelection `json:"selection" bson:"selection"`
	Quotation     pricing.Quotation             `json:"quotation" bson:"quotation"`
	Notes         string                        `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt     time.Time                     `json:"createdAt" bson:"created_at"`
}

// CreateBooking records an installation appointment. The quotation is
// recomputed server-side; client-supplied totals are ignored.
func CreateBooking(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var b Booking
	if err := json.NewDecoder(r.Body).Decode(&b); err != nil {
		log.Println("CreateBooking decode error:", err)
		http.Error(w, "Invalid booking payload", http.StatusBadRequest)
		return
	}
	if b.FullName == "" || b.Phone == "" || b.Location == "" || b.PreferredDate == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing required booking fields")
		return
	}

	b.BookingID = "BKG" + utils.GenerateRandomDigitString(6)
	b.Quotation = pricing.ComputeQuotation(b.Selection)
	b.CreatedAt = time.Now()

	if _, err := db.BookingsCollection.InsertOne(ctx, b); err != nil {
		log.Println("CreateBooking InsertOne error:", err)
		http.Error(w, "Booking creation failed", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, b)
}

package orders

import (
	"log"
	"net/http"
	"os"

	"smartduka/db"

	"github.com/julienschmidt/httprouter"
	qrcode "github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson"
)

// TrackingQR serves a PNG QR code pointing at the live tracking page
// for the order.
func (h *Handler) TrackingQR(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	orderID := ps.ByName("orderid")

	count, err := db.OrdersCollection.CountDocuments(r.Context(), bson.M{"orderid": orderID})
	if err != nil || count == 0 {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}

	base := os.Getenv("PUBLIC_URL")
	if base == "" {
		base = "http://localhost:8080"
	}

	png, err := qrcode.Encode(base+"/track/"+orderID, qrcode.Medium, 256)
	if err != nil {
		log.Println("TrackingQR encode error:", err)
		http.Error(w, "QR generation failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}

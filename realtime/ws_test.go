package realtime

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
)

func TestTrackOrderFailedUpgradeWritesOneResponse(t *testing.T) {
	h := NewHandler(NewHub())

	// plain GET without upgrade headers: the upgrader rejects it and
	// writes the error response itself
	req := httptest.NewRequest(http.MethodGet, "/ws/orders/ORD1", nil)
	rec := httptest.NewRecorder()

	h.TrackOrder(rec, req, httprouter.Params{{Key: "orderid", Value: "ORD1"}})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 from the upgrader, got %d", rec.Code)
	}
}

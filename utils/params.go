package utils

import (
	"net/http"

	"smartduka/globals"

	"github.com/google/uuid"
)

// GetUserIDFromRequest returns the authenticated user id, or "" for guests.
func GetUserIDFromRequest(r *http.Request) string {
	if id, ok := r.Context().Value(globals.UserIDKey).(string); ok {
		return id
	}
	return ""
}

// SessionKey resolves the store session for a request: the user id when
// authenticated, otherwise the client-supplied X-Session-ID header.
// Guests without a header get a fresh id (echoed back so the client can
// keep it).
func SessionKey(r *http.Request) string {
	if id := GetUserIDFromRequest(r); id != "" {
		return id
	}
	if sid := r.Header.Get("X-Session-ID"); sid != "" {
		return sid
	}
	return "guest_" + uuid.NewString()
}

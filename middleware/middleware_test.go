package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"smartduka/globals"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, userID string) string {
	t.Helper()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			Subject:   userID,
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(globals.JwtSecret)
	require.NoError(t, err)
	return token
}

func protected(called *bool, gotUserID *string) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		*called = true
		if id, ok := r.Context().Value(globals.UserIDKey).(string); ok {
			*gotUserID = id
		}
		w.WriteHeader(http.StatusOK)
	}
}

func TestAuthenticateRejectsMissingToken(t *testing.T) {
	var called bool
	var userID string
	handler := Authenticate(protected(&called, &userID))

	req := httptest.NewRequest(http.MethodPost, "/api/admin/orders/ORD1/dispatch", nil)
	rec := httptest.NewRecorder()
	handler(rec, req, nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called, "handler must not run without a token")
}

func TestAuthenticateRejectsSpoofedUpgradeHeaders(t *testing.T) {
	var called bool
	var userID string
	handler := Authenticate(protected(&called, &userID))

	// upgrade headers alone must not stand in for a token
	req := httptest.NewRequest(http.MethodPost, "/api/admin/orders/ORD1/dispatch", nil)
	req.Header.Set("Connection", "Upgrade")
	req.Header.Set("Upgrade", "websocket")
	rec := httptest.NewRecorder()
	handler(rec, req, nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called, "handler must not run without a token")
}

func TestAuthenticateAcceptsValidToken(t *testing.T) {
	var called bool
	var userID string
	handler := Authenticate(protected(&called, &userID))

	req := httptest.NewRequest(http.MethodPost, "/api/admin/orders/ORD1/dispatch", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, "u1"))
	rec := httptest.NewRecorder()
	handler(rec, req, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
	assert.Equal(t, "u1", userID, "user id must reach the handler context")
}

func TestAuthenticateRejectsBadSignature(t *testing.T) {
	var called bool
	var userID string
	handler := Authenticate(protected(&called, &userID))

	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{UserID: "u1"}).
		SignedString([]byte("wrong-secret"))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/orders/ORD1/dispatch", nil)
	req.Header.Set("Authorization", "Bearer "+forged)
	rec := httptest.NewRecorder()
	handler(rec, req, nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestOptionalAuthLetsGuestsThrough(t *testing.T) {
	var called bool
	var userID string
	handler := OptionalAuth(protected(&called, &userID))

	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	rec := httptest.NewRecorder()
	handler(rec, req, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
	assert.Empty(t, userID)
}

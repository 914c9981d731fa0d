package auth

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"smartduka/db"
	"smartduka/globals"
	"smartduka/middleware"
	"smartduka/models"
	"smartduka/store"
	"smartduka/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

const accessTokenTTL = 24 * time.Hour

// Handler wires account operations to the session store: sign-in seeds
// the store's user, sign-out tears the whole session down.
type Handler struct {
	Mgr *store.Manager
}

func NewHandler(mgr *store.Manager) *Handler {
	return &Handler{Mgr: mgr}
}

func generateAccessToken(u models.User) (string, error) {
	claims := middleware.Claims{
		Email:  u.Email,
		UserID: u.UserID,
		Tier:   u.Tier,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(accessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Subject:   u.UserID,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(globals.JwtSecret)
}

// Register creates an account at the Standard tier and signs it in.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var input struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Phone    string `json:"phone,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}
	if input.Name == "" || input.Email == "" || input.Password == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Name, email and password are required")
		return
	}

	count, err := db.UserCollection.CountDocuments(ctx, bson.M{"email": input.Email})
	if err != nil {
		http.Error(w, "Registration failed", http.StatusInternalServerError)
		return
	}
	if count > 0 {
		utils.RespondWithError(w, http.StatusConflict, "Email already registered")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		http.Error(w, "Registration failed", http.StatusInternalServerError)
		return
	}

	user := models.User{
		UserID:       "usr_" + uuid.NewString(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		Phone:        input.Phone,
		Tier:         models.TierStandard,
		CreatedAt:    time.Now(),
		LastLogin:    time.Now(),
	}
	if _, err := db.UserCollection.InsertOne(ctx, user); err != nil {
		log.Println("Register InsertOne error:", err)
		http.Error(w, "Registration failed", http.StatusInternalServerError)
		return
	}

	h.signIn(ctx, w, user)
}

// Login verifies credentials and seeds the session store with the user.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	var user models.User
	err := db.UserCollection.FindOne(ctx, bson.M{"email": input.Email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	if err != nil {
		http.Error(w, "Login failed", http.StatusInternalServerError)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	_, _ = db.UserCollection.UpdateOne(ctx,
		bson.M{"userid": user.UserID},
		bson.M{"$set": bson.M{"last_login": time.Now()}},
	)

	h.signIn(ctx, w, user)
}

func (h *Handler) signIn(ctx context.Context, w http.ResponseWriter, user models.User) {
	token, err := generateAccessToken(user)
	if err != nil {
		http.Error(w, "Failed to generate token", http.StatusInternalServerError)
		return
	}

	st, err := h.Mgr.Get(ctx, user.UserID)
	if err != nil {
		http.Error(w, "Could not load session", http.StatusInternalServerError)
		return
	}
	u := user
	u.PasswordHash = ""
	st.SetUser(ctx, &u)

	utils.SendResponse(w, http.StatusOK, utils.M{
		"token": token,
		"user":  u,
	}, "Signed in", nil)
}

// Logout wipes the entire session — cart, history, lifetime spend,
// wishlist and compare list go with the user, and the persisted
// snapshot is deleted.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	st, err := h.Mgr.Get(r.Context(), userID)
	if err != nil {
		http.Error(w, "Could not load session", http.StatusInternalServerError)
		return
	}
	st.Logout(r.Context())

	if err := h.Mgr.Drop(r.Context(), userID); err != nil {
		log.Println("Logout snapshot delete error:", err)
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "signed out"})
}

// UpdateProfile shallow-merges the patch into the signed-in user, both
// in Mongo and in the session snapshot.
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var patch models.ProfilePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	set := bson.M{}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Email != nil {
		set["email"] = *patch.Email
	}
	if patch.Phone != nil {
		set["phone"] = *patch.Phone
	}
	if patch.Avatar != nil {
		set["avatar"] = *patch.Avatar
	}
	if patch.Addr != nil {
		set["address"] = *patch.Addr
	}
	if len(set) > 0 {
		if _, err := db.UserCollection.UpdateOne(ctx, bson.M{"userid": userID}, bson.M{"$set": set}); err != nil {
			log.Println("UpdateProfile error:", err)
			http.Error(w, "Profile update failed", http.StatusInternalServerError)
			return
		}
	}

	st, err := h.Mgr.Get(ctx, userID)
	if err != nil {
		http.Error(w, "Could not load session", http.StatusInternalServerError)
		return
	}
	snap := st.UpdateProfile(ctx, patch)

	utils.RespondWithJSON(w, http.StatusOK, snap.User)
}

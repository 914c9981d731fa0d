package models

import "time"

// Customer tiers
const (
	TierStandard   = "Standard"
	TierGoldVIP    = "Gold VIP"
	TierElite      = "Elite"
	TierAmbassador = "Ambassador"
)

type AddressMetadata struct {
	Estate  string  `json:"estate,omitempty" bson:"estate,omitempty"`
	HouseNo string  `json:"house_no,omitempty" bson:"house_no,omitempty"`
	Lat     float64 `json:"lat,omitempty" bson:"lat,omitempty"`
	Lng     float64 `json:"lng,omitempty" bson:"lng,omitempty"`
}

type User struct {
	UserID       string           `json:"id" bson:"userid"`
	Name         string           `json:"name" bson:"name"`
	Email        string           `json:"email" bson:"email"`
	PasswordHash string           `json:"-" bson:"password_hash"`
	Avatar       string           `json:"avatar,omitempty" bson:"avatar,omitempty"`
	Phone        string           `json:"phone,omitempty" bson:"phone,omitempty"`
	Tier         string           `json:"tier" bson:"tier"`
	IsVerified   bool             `json:"is_verified" bson:"is_verified"`
	Address      *AddressMetadata `json:"address_metadata,omitempty" bson:"address,omitempty"`
	CreatedAt    time.Time        `json:"created_at" bson:"created_at"`
	LastLogin    time.Time        `json:"last_login" bson:"last_login"`
}

// ProfilePatch is a partial profile update; nil fields are left untouched.
type ProfilePatch struct {
	Name   *string          `json:"name,omitempty"`
	Email  *string          `json:"email,omitempty"`
	Phone  *string          `json:"phone,omitempty"`
	Avatar *string          `json:"avatar,omitempty"`
	Addr   *AddressMetadata `json:"address_metadata,omitempty"`
}

// internal/domain/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a staff account. Email is the login identifier, stored
// lowercase; EmailCI carries the case/diacritic-folded form the unique index
// matches on.
type User struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FullName   string             `bson:"full_name" json:"name"`
	Email      string             `bson:"email" json:"email"`
	EmailCI    string             `bson:"email_ci" json:"-"`
	AuthMethod string             `bson:"auth_method" json:"-"` // password, google

	PasswordHash *string `bson:"password_hash,omitempty" json:"-"`

	Role          string `bson:"role" json:"role"`                         // user, admin
	Status        string `bson:"status,omitempty" json:"status,omitempty"` // active, disabled
	EmailVerified bool   `bson:"email_verified" json:"emailVerified"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// User roles.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Authentication methods.
const (
	AuthMethodPassword = "password"
	AuthMethodGoogle   = "google"
)

// AllRoles returns all valid user roles.
func AllRoles() []string {
	return []string{RoleUser, RoleAdmin}
}

// IsValidRole checks if a role is valid.
func IsValidRole(role string) bool {
	for _, r := range AllRoles() {
		if r == role {
			return true
		}
	}
	return false
}

// User statuses.
const (
	StatusActive   = "active"
	StatusDisabled = "disabled"
)

// IsBanned reports whether the account is blocked from signing in.
func (u *User) IsBanned() bool {
	return u.Status == StatusDisabled
}

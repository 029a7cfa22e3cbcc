package models

import "time"

// Roles recognised by the platform.
const (
	RoleCustomer = "customer"
	RoleProvider = "provider"
	RoleAdmin    = "admin"
)

// User is a platform account: a customer, a provider, or an admin.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Role         string    `bson:"role" json:"role"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	Phone        string    `bson:"phone,omitempty" json:"phone,omitempty"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updatedAt"`
}

// Principal is the authenticated identity attached to a request by the auth
// middleware. Ownership checks in the booking service run against it.
type Principal struct {
	ID   string `json:"id"`
	Role string `json:"role"`
}

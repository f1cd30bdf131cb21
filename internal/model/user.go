package model

import "time"

// User is the minimal identity this core needs: booking attribution,
// role gating and the loyalty balance.  Authentication proper is a
// thin surface over it; the core trusts a pre-validated identity.
//
// Fields:
//  ID            – primary key identifier.
//  Email         – unique login email.
//  PasswordHash  – bcrypt hash, never serialized.
//  Role          – ADMIN or CUSTOMER.
//  LoyaltyPoints – accrued points, 1 per 100 currency units spent.
type User struct {
	ID            uint64    `json:"id"`
	Email         string    `json:"email"`
	PasswordHash  string    `json:"-"`
	Role          string    `json:"role"`
	LoyaltyPoints uint32    `json:"loyalty_points"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Roles stored in the users.role column and the JWT role claim.
const (
	RoleAdmin    = "ADMIN"
	RoleCustomer = "CUSTOMER"
)

package entity

import "time"

// Roles. Owners manage their own listings; admins manage everything.
const (
	RoleAdmin    = "admin"
	RoleOwner    = "owner"
	RoleCustomer = "customer"
)

// User represents a platform account.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Phone        string
	Role         string // see Role* constants
	Status       string // active, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CanManage reports whether the user may mutate a business owned by ownerID.
func (u *User) CanManage(ownerID string) bool {
	return u.Role == RoleAdmin || u.ID == ownerID
}

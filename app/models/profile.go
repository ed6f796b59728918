package models

import "gorm.io/gorm"

// Role values stored on a profile.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Address is the shipping address block shared by Profile and Order.
// On Order it is a snapshot copied at checkout, not a live reference.
type Address struct {
	Address    string `gorm:"size:255" json:"address"`
	City       string `gorm:"size:100" json:"city"`
	State      string `gorm:"size:100" json:"state"`
	PostalCode string `gorm:"size:20;column:postal_code" json:"postal_code"`
	Country    string `gorm:"size:100" json:"country"`
}

// Profile is the account record: identity, role, and the last shipping
// address the user entered at checkout.
type Profile struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Password string `gorm:"size:255;not null" json:"-"` // bcrypt hash, never serialised
	FullName string `gorm:"size:255" json:"full_name"`
	Role     string `gorm:"size:50;default:user" json:"role"`
	Address  `gorm:"embedded"`
}

// IsAdmin reports whether the profile carries the admin role.
func (p Profile) IsAdmin() bool { return p.Role == RoleAdmin }

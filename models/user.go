package models

import (
	"time"
)

// Role represents user role types
type Role string

const (
	RoleUser  Role = "USER"
	RoleAgent Role = "AGENT"
	RoleAdmin Role = "ADMIN"
)

// User represents a user in the system
type User struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"not null"` // Password is not exposed in JSON
	Name      string    `json:"name" gorm:"not null"`
	Phone     string    `json:"phone" gorm:"default:null"`
	Role      Role      `json:"role" gorm:"type:varchar(10);default:'USER'"`
	Avatar    string    `json:"avatar" gorm:"default:null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CanManageListings reports whether the user may create or mutate property listings.
func (u *User) CanManageListings() bool {
	return u.Role == RoleAgent || u.Role == RoleAdmin
}

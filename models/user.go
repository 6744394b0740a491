package models

import (
	"time"
)

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;size:64;not null" json:"username"`
	Email        string    `gorm:"uniqueIndex;size:150;not null" json:"email"`
	PasswordHash string    `gorm:"column:password_hash;size:255" json:"-"` // bcrypt, never returned in JSON
	FirstName    string    `gorm:"size:100" json:"first_name"`
	LastName     string    `gorm:"size:100" json:"last_name"`
	Phone        string    `gorm:"size:32" json:"phone"`
	IsAdmin      bool      `gorm:"column:is_admin;not null" json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Actor is the authenticated caller of a core operation.
type Actor struct {
	ID       uint
	Username string
	IsAdmin  bool
}

func (u User) Actor() Actor {
	return Actor{ID: u.ID, Username: u.Username, IsAdmin: u.IsAdmin}
}

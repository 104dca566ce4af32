package models

import "time"

// User represents a registered account. The password column holds a bcrypt
// hash and is never serialized.
type User struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	FullName  string    `json:"fullName" gorm:"type:varchar(255)"`
	Email     string    `json:"email" gorm:"uniqueIndex;type:varchar(255)"`
	Password  string    `gorm:"type:varchar(255)"` // No json tag for security
	IsActive  bool      `json:"isActive" gorm:"default:true"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AuthUser is the reduced identity attached to the request context after
// the auth middleware has verified a token. It carries everything the user
// record has except the password.
type AuthUser struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

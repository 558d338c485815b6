package models

import "time"

// Account represents one registered user of the application.
//
// The email is stored lowercase and carries a unique index; together with the
// normalization done in the repository this makes email uniqueness
// case-insensitive at the storage layer. PasswordHash is always a bcrypt
// digest produced by pkg/passhash, never the plaintext password.
type Account struct {
	ID           uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	FullName     string    `json:"full_name" gorm:"type:varchar(255);not null" validate:"required"`
	Email        string    `json:"email" gorm:"uniqueIndex;type:varchar(255);not null" validate:"required,email"`
	PasswordHash string    `json:"-" gorm:"type:varchar(255);not null"`
	RegisteredAt time.Time `json:"registered_at" gorm:"not null"`
	ResumePath   *string   `json:"resume_path,omitempty" gorm:"type:varchar(512)"`
}
